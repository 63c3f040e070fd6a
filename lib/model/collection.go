package model

// CollectionFunc receives the collection and the model the event concerns.
type CollectionFunc func(c *Collection, m *Model)

// Collection is an ordered list of models with add/remove notification.
type Collection struct {
	models []*Model
	subs   map[string][]CollectionFunc

	// Presenter, when set, produces the curated snapshot returned by
	// Present. It should return a fresh map each call.
	Presenter func(c *Collection) map[string]any

	// View is the back-reference slot claimed by the view layer.
	View any
}

// NewCollection creates a collection holding the given models.
func NewCollection(models ...*Model) *Collection {
	c := &Collection{}
	c.models = append(c.models, models...)
	return c
}

// Len returns the number of models.
func (c *Collection) Len() int {
	return len(c.models)
}

// At returns the model at index i, or nil when out of range.
func (c *Collection) At(i int) *Model {
	if i < 0 || i >= len(c.models) {
		return nil
	}
	return c.models[i]
}

// Models returns a copy of the model list.
func (c *Collection) Models() []*Model {
	out := make([]*Model, len(c.models))
	copy(out, c.models)
	return out
}

// Add appends a model and fires "add".
func (c *Collection) Add(m *Model) {
	c.models = append(c.models, m)
	c.trigger("add", m)
}

// Remove removes the first occurrence of m and fires "remove". Removing a
// model not in the collection is a no-op.
func (c *Collection) Remove(m *Model) {
	for i, have := range c.models {
		if have == m {
			c.models = append(c.models[:i:i], c.models[i+1:]...)
			c.trigger("remove", m)
			return
		}
	}
}

// On subscribes fn to "add" or "remove" events.
func (c *Collection) On(event string, fn CollectionFunc) {
	if c.subs == nil {
		c.subs = make(map[string][]CollectionFunc)
	}
	c.subs[event] = append(c.subs[event], fn)
}

func (c *Collection) trigger(event string, m *Model) {
	for _, fn := range c.subs[event] {
		fn(c, m)
	}
}

// ToJSON returns the full snapshot: one attribute map per model, in order.
func (c *Collection) ToJSON() []map[string]any {
	out := make([]map[string]any, len(c.models))
	for i, m := range c.models {
		out[i] = m.ToJSON()
	}
	return out
}

// Present returns the curated snapshot, or nil when no Presenter is set.
func (c *Collection) Present() map[string]any {
	if c.Presenter == nil {
		return nil
	}
	return c.Presenter(c)
}
