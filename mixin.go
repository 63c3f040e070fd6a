package chassis

// Behavior is a reusable bundle of class behavior applied with Mix.
//
// Events merge additively into the class's events map, last writer
// winning per event spec; every other member overwrites the class's
// existing definition of that name when set. Handlers merge per handler
// name, since each name is an independent definition.
type Behavior struct {
	Events      map[string]string
	Handlers    map[string]HandlerFunc
	Defaults    map[string]any
	Els         map[string]string
	Template    TemplateFunc
	AfterRender func(v *View)
	Format      func(name string, value any) string
}

// Mix composes the given behaviors onto the class, in order, and returns
// the class for chaining.
//
// The events map is the one surface that merges rather than replaces:
// mixing a behavior with events onto a class that already has events
// keeps both sets, so mixins can contribute event wiring without
// clobbering the class's own. Inherited events are folded into the
// class's own map first, preserving them under the merge.
func (c *Class) Mix(behaviors ...Behavior) *Class {
	for _, b := range behaviors {
		if b.Events != nil {
			if c.Events == nil {
				inherited := c.resolveEvents()
				c.Events = make(map[string]string, len(inherited))
				for spec, name := range inherited {
					c.Events[spec] = name
				}
			}
			for spec, name := range b.Events {
				c.Events[spec] = name
			}
		}
		if b.Handlers != nil {
			if c.Handlers == nil {
				c.Handlers = make(map[string]HandlerFunc)
			}
			for name, fn := range b.Handlers {
				c.Handlers[name] = fn
			}
		}
		if b.Defaults != nil {
			c.Defaults = b.Defaults
		}
		if b.Els != nil {
			c.Els = b.Els
		}
		if b.Template != nil {
			c.Template = b.Template
		}
		if b.AfterRender != nil {
			c.AfterRender = b.AfterRender
		}
		if b.Format != nil {
			c.Format = b.Format
		}
	}
	return c
}
