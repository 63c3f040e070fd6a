package chassis

import "log"

// Warnf is the diagnostic sink for non-fatal conditions: the deprecated
// views path, mistyped options, unknown event handlers, template render
// failures. Replace it to route diagnostics into your application's
// logger, or set it to a no-op to silence them.
var Warnf = func(format string, args ...any) {
	log.Printf("chassis: "+format, args...)
}
