// Package chassis is a composition layer over a minimal view primitive.
// It adds class-level declarative metadata, hierarchical view composition,
// a fixed render lifecycle with extension hooks, and one-way reactive
// binding from model attributes into rendered output.
//
// # Classes and option properties
//
// A view class declares which construction options become view
// properties, and which nested views it composes:
//
//	Task := chassis.NewClass("task").
//	    DeclareOptionProperty("editable").
//	    DeclareChild("toolbar", ".toolbar")
//
// Declarations accumulate down the Extend chain, ancestors first, and are
// consumed once at construction: every declared option present in the
// merged configuration is promoted to a property on the view. A declared
// child is always constructed externally and passed in as an option under
// its declared name.
//
// # Render lifecycle
//
// Render runs a fixed sequence: template evaluation over the projection,
// element caching per the Els configuration, binding creation, the
// AfterRender hook, and finally child rendering. Children render strictly
// last so the parent's element cache and bindings never capture elements
// inside child subtrees. Output is replaced wholesale on each render;
// there is no diffing.
//
// # Bindings
//
// Elements in the rendered output carrying data-bind="attr" are wired to
// the model's change notification for that attribute; on change the
// element's content is replaced with Format(attr, value), which defaults
// to HTML escaping. Bindings are one-way and are created fresh on every
// render without tearing down earlier ones — long-lived views that
// re-render repeatedly accumulate subscriptions unless the caller uses
// UnbindModel.
//
// # Mixins
//
// Mix composes Behavior bundles onto a class. The delegated-events map
// merges additively so mixins can contribute wiring without clobbering
// the class's own; every other member overwrites.
//
// # Collaborators
//
// The element surface lives in lib/dom, the attribute model and
// collection in lib/model, and an optional bolt-backed persistence
// adapter in lib/store. Templates are plain functions from the projection
// to markup; adapters for templ and html/template are provided.
package chassis
