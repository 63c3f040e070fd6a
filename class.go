package chassis

import (
	"github.com/pmorton/chassis/lib/dom"
)

// HandlerFunc is a named event handler on a class's behavior surface,
// referenced by name from the Events map.
type HandlerFunc func(v *View, ev dom.Event)

// ChildDescriptor declares one nested view: Name is both the option that
// carries the child instance in and the name it is exposed under on the
// parent; Selector locates the child's root element inside the parent's
// rendered output.
type ChildDescriptor struct {
	Name     string
	Selector string
}

// Class is a view class descriptor. Classes form a chain via Extend;
// declared option properties and children accumulate down the chain, while
// the behavior surface (Defaults, Els, Events, Handlers, Template, hooks)
// resolves to the nearest definition, the way prototype lookup would.
//
// Class metadata is meant to be fixed at definition time. Declarations
// are append-only and never deduplicated; a late declaration anywhere on
// the chain takes effect from the next resolution.
type Class struct {
	name   string
	parent *Class

	optionProps []string
	children    []ChildDescriptor

	// Flattened ancestor-first sequences, cached on first resolution.
	// version counts this class's own declarations; a cache is valid only
	// while the summed version of the whole chain is unchanged, so a
	// declaration on an ancestor invalidates descendant caches too.
	version          int
	resolvedProps    []string
	resolvedPropsAt  int
	resolvedChildren []ChildDescriptor
	resolvedKidsAt   int

	// Defaults is the lowest-priority source in the option merge.
	Defaults map[string]any

	// Els maps a selector to the name the first matching element is
	// cached under after template render.
	Els map[string]string

	// Events maps "eventType selector" specs to handler names. Merged
	// additively under Mix.
	Events map[string]string

	// Handlers holds the named handlers Events refers to.
	Handlers map[string]HandlerFunc

	// Template produces the rendered markup from the projection. Views
	// can override it per instance through the "template" option.
	Template TemplateFunc

	// AfterRender runs at the end of a view's own render, before child
	// views render. No-op when nil.
	AfterRender func(v *View)

	// Format computes the display value for a bound attribute. When nil
	// the value is HTML-escaped.
	Format func(name string, value any) string
}

// base anchors every class chain and registers the one option name the
// whole hierarchy shares: any view can swap its template through options
// alone.
var base = func() *Class {
	c := &Class{name: "view"}
	c.DeclareOptionProperty("template")
	return c
}()

// NewClass creates a class extending the hierarchy base.
func NewClass(name string) *Class {
	return &Class{name: name, parent: base}
}

// Extend creates a subclass. The subclass inherits the parent's declared
// option properties and children, and falls back to the parent's behavior
// surface for anything it does not define itself.
func (c *Class) Extend(name string) *Class {
	return &Class{name: name, parent: c}
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// DeclareOptionProperty registers an option name that is promoted to a
// view property on construction. Appends without deduplication; declaring
// the same name twice keeps both entries.
func (c *Class) DeclareOptionProperty(name string) *Class {
	c.optionProps = append(c.optionProps, name)
	c.version++
	return c
}

// DeclareChild registers a nested view slot. The child instance itself is
// always constructed externally and passed in under Name as an option, so
// Name is also registered as an option property.
func (c *Class) DeclareChild(name, selector string) *Class {
	c.children = append(c.children, ChildDescriptor{Name: name, Selector: selector})
	c.version++
	c.DeclareOptionProperty(name)
	return c
}

// chainVersion sums declaration counts over the whole ancestor chain.
func (c *Class) chainVersion() int {
	v := c.version
	if c.parent != nil {
		v += c.parent.chainVersion()
	}
	return v
}

// OptionProperties returns the full declared sequence, ancestors first,
// in declaration order. The flattened result is cached and recomputed
// whenever any class on the chain has declared since.
func (c *Class) OptionProperties() []string {
	if cv := c.chainVersion(); c.resolvedProps == nil || c.resolvedPropsAt != cv {
		var out []string
		if c.parent != nil {
			out = append(out, c.parent.OptionProperties()...)
		}
		out = append(out, c.optionProps...)
		c.resolvedProps = out
		c.resolvedPropsAt = cv
	}
	return c.resolvedProps
}

// Children returns the full declared child sequence, ancestors first.
func (c *Class) Children() []ChildDescriptor {
	if cv := c.chainVersion(); c.resolvedChildren == nil || c.resolvedKidsAt != cv {
		var out []ChildDescriptor
		if c.parent != nil {
			out = append(out, c.parent.Children()...)
		}
		out = append(out, c.children...)
		c.resolvedChildren = out
		c.resolvedKidsAt = cv
	}
	return c.resolvedChildren
}

// isChild reports whether name is a declared child slot.
func (c *Class) isChild(name string) bool {
	for _, d := range c.Children() {
		if d.Name == name {
			return true
		}
	}
	return false
}

// The resolve* methods walk the chain for the nearest definition.

func (c *Class) resolveDefaults() map[string]any {
	for k := c; k != nil; k = k.parent {
		if k.Defaults != nil {
			return k.Defaults
		}
	}
	return nil
}

func (c *Class) resolveEls() map[string]string {
	for k := c; k != nil; k = k.parent {
		if k.Els != nil {
			return k.Els
		}
	}
	return nil
}

func (c *Class) resolveEvents() map[string]string {
	for k := c; k != nil; k = k.parent {
		if k.Events != nil {
			return k.Events
		}
	}
	return nil
}

func (c *Class) resolveHandler(name string) HandlerFunc {
	for k := c; k != nil; k = k.parent {
		if fn, ok := k.Handlers[name]; ok {
			return fn
		}
	}
	return nil
}

func (c *Class) resolveTemplate() TemplateFunc {
	for k := c; k != nil; k = k.parent {
		if k.Template != nil {
			return k.Template
		}
	}
	return nil
}

func (c *Class) resolveAfterRender() func(*View) {
	for k := c; k != nil; k = k.parent {
		if k.AfterRender != nil {
			return k.AfterRender
		}
	}
	return nil
}

func (c *Class) resolveFormat() func(string, any) string {
	for k := c; k != nil; k = k.parent {
		if k.Format != nil {
			return k.Format
		}
	}
	return nil
}
