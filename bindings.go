package chassis

import (
	"fmt"
	"html"

	"github.com/pmorton/chassis/lib/model"
)

// BindAttr is the marker attribute naming the model attribute an element's
// content is bound to.
const BindAttr = "data-bind"

// binding remembers which model a subscription was made on, so teardown
// still reaches it after the model option is swapped.
type binding struct {
	model *model.Model
	sub   *model.Subscription
}

// Projection computes the context handed to the template. The first
// available source wins: the model's curated snapshot, the model's full
// snapshot, the collection's curated snapshot, the collection's full
// snapshot (exposed under "models"), and finally the raw configuration.
// The view's identifier is always stamped under "cid", overwriting.
func (v *View) Projection() map[string]any {
	var data map[string]any
	switch {
	case v.Model != nil && v.Model.Presenter != nil:
		data = v.Model.Present()
	case v.Model != nil:
		data = v.Model.ToJSON()
	case v.Collection != nil && v.Collection.Presenter != nil:
		data = v.Collection.Present()
	case v.Collection != nil:
		data = map[string]any{"models": v.Collection.ToJSON()}
	default:
		data = make(map[string]any, len(v.options))
		for k, val := range v.options {
			data[k] = val
		}
	}
	if data == nil {
		data = make(map[string]any, 1)
	}
	data[cidKey] = v.cid
	return data
}

// createBindings scans the current rendered output for elements carrying
// the binding marker and subscribes to the named attribute's change event
// on the model. On notification the element's content is replaced with
// the formatted value. With no model attached this is a no-op.
//
// Subscriptions are created fresh on every render and never removed by
// the render path; re-rendering a long-lived view accumulates listeners.
// Callers needing idempotent re-render call UnbindModel first.
func (v *View) createBindings() {
	if v.Model == nil {
		return
	}
	for _, el := range v.el.FindAll("[" + BindAttr + "]") {
		name, _ := el.Attr(BindAttr)
		if name == "" {
			continue
		}
		sub := v.Model.On("change:"+name, func(_ *model.Model, value any) {
			el.SetContent(v.formatValue(name, value))
		})
		v.bindings = append(v.bindings, binding{model: v.Model, sub: sub})
	}
}

// UnbindModel removes every binding subscription this view has created,
// across all renders — including subscriptions against a previous model
// when the model option has since been swapped. The render path never
// does this itself; teardown is an explicit caller decision.
func (v *View) UnbindModel() {
	for _, b := range v.bindings {
		b.model.Off(b.sub)
	}
	v.bindings = nil
}

// formatValue computes the display value for a bound attribute through
// the instance or class Format hook, defaulting to HTML escaping.
func (v *View) formatValue(name string, value any) string {
	if v.Format != nil {
		return v.Format(name, value)
	}
	if fn := v.class.resolveFormat(); fn != nil {
		return fn(name, value)
	}
	return html.EscapeString(fmt.Sprint(value))
}
