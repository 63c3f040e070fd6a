package dom

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Event is delivered to delegated handlers. Target is the element the
// event was triggered on, which may be a descendant of the element the
// delegate was registered on.
type Event struct {
	Type   string
	Target *Element
}

// delegate is one registered "eventType selector" entry.
type delegate struct {
	typ string
	sel cascadia.Selector // nil when the entry has no selector part
	fn  func(Event)
}

// Delegate registers a handler for an event specification of the form
// "eventType selector" ("click .save") or a bare event type ("click").
// With a selector, the handler fires when Trigger targets a matching
// descendant; without one, it fires for any trigger of that type.
func (e *Element) Delegate(spec string, fn func(Event)) {
	typ, rest, _ := strings.Cut(strings.TrimSpace(spec), " ")
	if typ == "" {
		return
	}
	d := delegate{typ: typ, fn: fn}
	if rest = strings.TrimSpace(rest); rest != "" {
		sel, err := cascadia.Compile(rest)
		if err != nil {
			return
		}
		d.sel = sel
	}
	e.delegates = append(e.delegates, d)
}

// Undelegate removes all delegated handlers.
func (e *Element) Undelegate() {
	e.delegates = nil
}

// Trigger dispatches an event of the given type targeting the given
// element, invoking matching delegates synchronously in registration
// order. A nil target means the event targets this element itself.
// Selector matching walks from the target up to (but not past) this
// element, mirroring event bubbling.
func (e *Element) Trigger(typ string, target *Element) {
	ev := Event{Type: typ, Target: target}
	if target == nil {
		ev.Target = e
	}
	for _, d := range e.delegates {
		if d.typ != typ {
			continue
		}
		if d.sel == nil {
			d.fn(ev)
			continue
		}
		if target != nil && e.bubbleMatch(target.node, d.sel) {
			d.fn(ev)
		}
	}
}

// bubbleMatch reports whether n or any ancestor of n up to (and not
// including) e's own node matches sel.
func (e *Element) bubbleMatch(n *html.Node, sel cascadia.Selector) bool {
	for ; n != nil && n != e.node; n = n.Parent {
		if n.Type == html.ElementNode && sel.Match(n) {
			return true
		}
	}
	return false
}
