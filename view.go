package chassis

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pmorton/chassis/lib/dom"
	"github.com/pmorton/chassis/lib/model"
)

// State tracks where a view is in its lifecycle. Render is re-invocable:
// a rendered view stays StateRendered.
type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateRendered
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateRendered:
		return "rendered"
	default:
		return "uninitialized"
	}
}

// Reserved option names consumed by the lifecycle itself.
const (
	optionEl         = "el"
	optionModel      = "model"
	optionCollection = "collection"
	optionTemplate   = "template"
	optionViews      = "views"
)

// cidKey is the fixed projection key the per-view identifier is stamped
// under, overwriting any existing value.
const cidKey = "cid"

// View is a view instance: merged options, one property slot per declared
// option name, a cache of resolved elements, and a root element carrying a
// back-reference to the view in its data store.
type View struct {
	class *Class
	cid   string
	state State

	el       *dom.Element
	options  map[string]any
	props    map[string]any
	els      map[string]*dom.Element
	children map[string]*View

	// Model and Collection are the data sources bindings and the
	// projection read from. Set through the "model" and "collection"
	// options; their back-reference slots point at this view.
	Model      *model.Model
	Collection *model.Collection

	// AfterRender and Format override the class-level hooks for this
	// instance when non-nil.
	AfterRender func(v *View)
	Format      func(name string, value any) string

	template TemplateFunc
	bindings []binding
}

// New constructs a view of the given class and runs initialization with
// the given options. A nil options map is allowed. Panics on a nil class;
// that is a programming error, not a runtime condition.
func New(class *Class, opts map[string]any) *View {
	if class == nil {
		panic("chassis: New called with nil class")
	}
	v := &View{
		class:    class,
		cid:      "view-" + uuid.NewString(),
		el:       dom.New("div"),
		options:  make(map[string]any),
		props:    make(map[string]any),
		els:      make(map[string]*dom.Element),
		children: make(map[string]*View),
	}
	return v.Initialize(opts)
}

// Initialize merges configuration and applies option properties. The
// merged configuration is defaults, then previously-set own options, then
// the newly passed options, later sources winning per key. Re-invoking
// with an empty map therefore preserves everything already set.
//
// Initialization also stores the view back-reference on the root
// element's data store, claims the model/collection back-reference slots,
// and wires delegated events.
func (v *View) Initialize(opts map[string]any) *View {
	merged := make(map[string]any)
	for k, val := range v.class.resolveDefaults() {
		merged[k] = val
	}
	for k, val := range v.options {
		merged[k] = val
	}
	for k, val := range opts {
		merged[k] = val
	}
	v.options = merged

	if el, ok := merged[optionEl].(*dom.Element); ok && el != nil {
		v.el = el
	}
	if m, ok := merged[optionModel].(*model.Model); ok && m != nil {
		v.Model = m
	}
	if c, ok := merged[optionCollection].(*model.Collection); ok && c != nil {
		v.Collection = c
	}

	v.applyOptionProperties(merged)

	v.el.SetData("view", v)
	if v.Model != nil {
		v.Model.View = v
	}
	if v.Collection != nil {
		v.Collection.View = v
	}

	v.delegateEvents()

	if v.state == StateUninitialized {
		v.state = StateInitialized
	}
	return v
}

// applyOptionProperties promotes each declared option name present in the
// merged configuration (and not nil) to a view property. Absent or nil
// values leave any existing property untouched, so a value set by an
// earlier pass survives.
func (v *View) applyOptionProperties(merged map[string]any) {
	for _, name := range v.class.OptionProperties() {
		val, ok := merged[name]
		if !ok || val == nil {
			continue
		}
		if name == optionTemplate {
			tmpl, ok := val.(TemplateFunc)
			if !ok {
				Warnf("view %s: template option is %T, want chassis.TemplateFunc", v.class.name, val)
				continue
			}
			v.template = tmpl
			continue
		}
		if v.class.isChild(name) {
			child, ok := val.(*View)
			if !ok {
				Warnf("view %s: child option %q is %T, want *chassis.View", v.class.name, name, val)
				continue
			}
			v.children[name] = child
		}
		v.props[name] = val
	}
}

// delegateEvents wires the class's events map to its named handlers on
// the root element, replacing any previous wiring. Specs naming a handler
// the class chain does not define are skipped with a warning.
func (v *View) delegateEvents() {
	v.el.Undelegate()
	for spec, name := range v.class.resolveEvents() {
		fn := v.class.resolveHandler(name)
		if fn == nil {
			Warnf("view %s: events[%q] names unknown handler %q", v.class.name, spec, name)
			continue
		}
		v.el.Delegate(spec, func(ev dom.Event) {
			fn(v, ev)
		})
	}
}

// Render runs the render sequence and returns the view for chaining:
//
//  1. evaluate the template over the projection, replacing the root
//     element's content (skipped when no template is configured);
//  2. resolve and cache the els configuration;
//  3. create model bindings;
//  4. invoke the AfterRender hook;
//  5. run the deprecated legacy views path, if configured;
//  6. render declared children.
//
// Children render strictly last: running them any earlier would let the
// parent's element cache and bindings capture elements inside child
// subtrees that happen to match the parent's selectors.
func (v *View) Render() *View {
	if tmpl := v.resolveTemplate(); tmpl != nil {
		v.el.SetContent(tmpl(v.Projection()))
	}
	v.cacheEls()
	v.createBindings()
	if hook := v.afterRenderHook(); hook != nil {
		hook(v)
	}
	v.renderLegacyViews()
	v.RenderChildren()
	v.state = StateRendered
	return v
}

// cacheEls rebuilds the element cache from the current rendered output,
// caching the first element matching each selector under its configured
// name. The cache is rebuilt from scratch on every render: a selector
// matching nothing leaves no entry, stale or otherwise.
func (v *View) cacheEls() {
	v.els = make(map[string]*dom.Element)
	for selector, name := range v.class.resolveEls() {
		if el := v.el.Find(selector); el != nil {
			v.els[name] = el
		}
	}
}

// RenderChildren attaches and renders each declared child in declaration
// order: locate the first element matching the descriptor's selector in
// the current output, rebind the child's root element to it, and run the
// child's full render. Descriptors with no configured child instance or
// no matching element are skipped.
func (v *View) RenderChildren() {
	for _, desc := range v.class.Children() {
		child := v.children[desc.Name]
		if child == nil {
			continue
		}
		v.attachAndRender(child, desc.Selector)
	}
}

// renderLegacyViews runs the deprecated fallback path: a "views" option
// mapping selectors to view instances, rendered like declared children
// but without declaration order. Non-fatal; warns through the sink.
func (v *View) renderLegacyViews() {
	views, ok := v.options[optionViews].(map[string]*View)
	if !ok || len(views) == 0 {
		return
	}
	Warnf("view %s: the views option is deprecated; use DeclareChild", v.class.name)
	for selector, child := range views {
		if child == nil {
			continue
		}
		v.attachAndRender(child, selector)
	}
}

func (v *View) attachAndRender(child *View, selector string) {
	target := v.el.Find(selector)
	if target == nil {
		return
	}
	child.el.Rebind(target)
	child.Render()
}

func (v *View) resolveTemplate() TemplateFunc {
	if v.template != nil {
		return v.template
	}
	return v.class.resolveTemplate()
}

func (v *View) afterRenderHook() func(*View) {
	if v.AfterRender != nil {
		return v.AfterRender
	}
	return v.class.resolveAfterRender()
}

// Class returns the view's class.
func (v *View) Class() *Class {
	return v.class
}

// Cid returns the view's unique identifier.
func (v *View) Cid() string {
	return v.cid
}

// State returns the view's lifecycle state.
func (v *View) State() State {
	return v.state
}

// Root returns the view's root element.
func (v *View) Root() *dom.Element {
	return v.el
}

// El returns the element cached under name by the els configuration, or
// nil when the last render matched nothing for it.
func (v *View) El(name string) *dom.Element {
	return v.els[name]
}

// Option returns the named entry of the merged configuration.
func (v *View) Option(name string) any {
	return v.options[name]
}

// Prop returns the named option property, or nil when it was never
// assigned.
func (v *View) Prop(name string) any {
	return v.props[name]
}

// Child returns the declared child instance under name, or nil.
func (v *View) Child(name string) *View {
	return v.children[name]
}

// String identifies the view in diagnostics.
func (v *View) String() string {
	return fmt.Sprintf("%s(%s)", v.class.name, v.cid)
}
