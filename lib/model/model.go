// Package model provides the attribute model and collection the view layer
// binds against: attribute storage, synchronous per-attribute change
// notification, full and curated snapshots, and a back-reference slot a
// view may claim.
//
// Change delivery is synchronous and runs subscribers in subscription
// order. The model is the single source of truth; the view layer only ever
// reads attributes and sets the back-reference.
package model

import (
	"fmt"
	"reflect"
)

// ChangeFunc receives the model and the value associated with the event.
// For "change:<name>" and "change" events the value is the new attribute
// value.
type ChangeFunc func(m *Model, value any)

// Subscription identifies one registered listener so it can be removed.
type Subscription struct {
	event string
	fn    ChangeFunc
}

// Model holds a flat attribute map with change notification.
type Model struct {
	attrs map[string]any
	subs  map[string][]*Subscription

	// Presenter, when set, produces the curated snapshot returned by
	// Present. It should return a fresh map each call; callers may stamp
	// additional keys onto the result.
	Presenter func(m *Model) map[string]any

	// View is the back-reference slot claimed by the view layer.
	View any
}

// New creates a model with a copy of the given attributes. A nil map is
// allowed and yields an empty model.
func New(attrs map[string]any) *Model {
	m := &Model{attrs: make(map[string]any, len(attrs))}
	for k, v := range attrs {
		m.attrs[k] = v
	}
	return m
}

// ID returns the model's "id" attribute as a string, or "" when unset.
func (m *Model) ID() string {
	v, ok := m.attrs["id"]
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}

// Get returns the named attribute, or nil when unset.
func (m *Model) Get(name string) any {
	return m.attrs[name]
}

// Has reports whether the named attribute is set.
func (m *Model) Has(name string) bool {
	_, ok := m.attrs[name]
	return ok
}

// Set assigns the named attribute and, when the value actually changed,
// fires "change:<name>" followed by "change", synchronously.
func (m *Model) Set(name string, value any) {
	old, had := m.attrs[name]
	m.attrs[name] = value
	if had && reflect.DeepEqual(old, value) {
		return
	}
	m.Trigger("change:"+name, value)
	m.Trigger("change", value)
}

// SetAll assigns every attribute in attrs via Set.
func (m *Model) SetAll(attrs map[string]any) {
	for k, v := range attrs {
		m.Set(k, v)
	}
}

// On subscribes fn to the named event and returns a handle for Off.
// Duplicate subscriptions are kept; each fires independently.
func (m *Model) On(event string, fn ChangeFunc) *Subscription {
	if m.subs == nil {
		m.subs = make(map[string][]*Subscription)
	}
	sub := &Subscription{event: event, fn: fn}
	m.subs[event] = append(m.subs[event], sub)
	return sub
}

// Off removes a single subscription previously returned by On.
func (m *Model) Off(sub *Subscription) {
	if sub == nil || m.subs == nil {
		return
	}
	list := m.subs[sub.event]
	for i, s := range list {
		if s == sub {
			m.subs[sub.event] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Trigger fires the named event, invoking subscribers synchronously in
// subscription order.
func (m *Model) Trigger(event string, value any) {
	list := m.subs[event]
	for _, s := range list {
		s.fn(m, value)
	}
}

// ToJSON returns a copy of the full attribute map.
func (m *Model) ToJSON() map[string]any {
	out := make(map[string]any, len(m.attrs))
	for k, v := range m.attrs {
		out[k] = v
	}
	return out
}

// Present returns the curated snapshot, or nil when no Presenter is set.
func (m *Model) Present() map[string]any {
	if m.Presenter == nil {
		return nil
	}
	return m.Presenter(m)
}
