package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetFiresChangeEvents(t *testing.T) {
	m := New(nil)
	var events []string
	m.On("change:title", func(m *Model, v any) {
		events = append(events, "change:title")
	})
	m.On("change", func(m *Model, v any) {
		events = append(events, "change")
	})

	m.Set("title", "x")
	want := []string{"change:title", "change"}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("event order mismatch (-want +got):\n%s", diff)
	}
}

func TestSetSameValueDoesNotFire(t *testing.T) {
	m := New(map[string]any{"title": "x"})
	fired := false
	m.On("change:title", func(m *Model, v any) { fired = true })
	m.Set("title", "x")
	if fired {
		t.Error("change fired for an unchanged value")
	}
}

func TestSubscribersRunInSubscriptionOrder(t *testing.T) {
	m := New(nil)
	var order []int
	m.On("change:n", func(m *Model, v any) { order = append(order, 1) })
	m.On("change:n", func(m *Model, v any) { order = append(order, 2) })
	m.On("change:n", func(m *Model, v any) { order = append(order, 3) })

	m.Set("n", 1)
	if diff := cmp.Diff([]int{1, 2, 3}, order); diff != "" {
		t.Errorf("subscriber order mismatch (-want +got):\n%s", diff)
	}
}

func TestDuplicateSubscriptionsBothFire(t *testing.T) {
	m := New(nil)
	count := 0
	fn := func(m *Model, v any) { count++ }
	m.On("change:n", fn)
	m.On("change:n", fn)

	m.Set("n", 1)
	if count != 2 {
		t.Errorf("duplicate subscriptions fired %d times, want 2", count)
	}
}

func TestOffRemovesSingleSubscription(t *testing.T) {
	m := New(nil)
	count := 0
	sub := m.On("change:n", func(m *Model, v any) { count++ })
	m.On("change:n", func(m *Model, v any) { count++ })

	m.Off(sub)
	m.Set("n", 1)
	if count != 1 {
		t.Errorf("after Off, change fired %d subscribers, want 1", count)
	}
}

func TestToJSONReturnsCopy(t *testing.T) {
	m := New(map[string]any{"a": 1})
	snap := m.ToJSON()
	snap["a"] = 99
	if got := m.Get("a"); got != 1 {
		t.Errorf("Get(a) = %v after mutating snapshot, want 1", got)
	}
}

func TestPresent(t *testing.T) {
	m := New(map[string]any{"first": "Ada", "last": "Lovelace"})
	if m.Present() != nil {
		t.Error("Present() without Presenter should be nil")
	}
	m.Presenter = func(m *Model) map[string]any {
		return map[string]any{"name": m.Get("first").(string) + " " + m.Get("last").(string)}
	}
	if got := m.Present()["name"]; got != "Ada Lovelace" {
		t.Errorf("Present()[name] = %v, want Ada Lovelace", got)
	}
}

func TestModelID(t *testing.T) {
	if got := New(nil).ID(); got != "" {
		t.Errorf("ID() = %q, want empty", got)
	}
	if got := New(map[string]any{"id": 7}).ID(); got != "7" {
		t.Errorf("ID() = %q, want 7", got)
	}
}

func TestCollectionAddRemove(t *testing.T) {
	a := New(map[string]any{"id": "a"})
	b := New(map[string]any{"id": "b"})
	c := NewCollection(a)

	var added, removed *Model
	c.On("add", func(c *Collection, m *Model) { added = m })
	c.On("remove", func(c *Collection, m *Model) { removed = m })

	c.Add(b)
	if c.Len() != 2 || added != b {
		t.Errorf("Add: Len() = %d, added = %v; want 2, b", c.Len(), added)
	}

	c.Remove(a)
	if c.Len() != 1 || removed != a {
		t.Errorf("Remove: Len() = %d, removed = %v; want 1, a", c.Len(), removed)
	}
	if c.At(0) != b {
		t.Error("At(0) != b after removal")
	}

	// Removing a model not present is a no-op.
	c.Remove(a)
	if c.Len() != 1 {
		t.Errorf("Len() = %d after removing absent model, want 1", c.Len())
	}
}

func TestCollectionToJSON(t *testing.T) {
	c := NewCollection(
		New(map[string]any{"n": "a"}),
		New(map[string]any{"n": "b"}),
	)
	snaps := c.ToJSON()
	if len(snaps) != 2 || snaps[0]["n"] != "a" || snaps[1]["n"] != "b" {
		t.Errorf("ToJSON() = %v, want ordered snapshots", snaps)
	}
}
