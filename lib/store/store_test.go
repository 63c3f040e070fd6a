package store

import (
	"path/filepath"
	"testing"

	"github.com/pmorton/chassis/lib/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "chassis.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoad(t *testing.T) {
	s := openTestStore(t)

	m := model.New(map[string]any{"id": "1", "title": "first"})
	if err := s.Save("tasks", m); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := s.Load("tasks", "1")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Get("title") != "first" {
		t.Errorf("Load().Get(title) = %v, want first", got.Get("title"))
	}
	if got.ID() != "1" {
		t.Errorf("Load().ID() = %q, want 1", got.ID())
	}
}

func TestSaveWithoutID(t *testing.T) {
	s := openTestStore(t)
	err := s.Save("tasks", model.New(map[string]any{"title": "no id"}))
	if err != ErrNoID {
		t.Errorf("Save() error = %v, want ErrNoID", err)
	}
}

func TestLoadMissing(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Load("tasks", "nope"); !IsNotFound(err) {
		t.Errorf("Load() from missing bucket error = %v, want not-found", err)
	}

	s.Save("tasks", model.New(map[string]any{"id": "1"}))
	if _, err := s.Load("tasks", "nope"); !IsNotFound(err) {
		t.Errorf("Load() of missing key error = %v, want not-found", err)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	m := model.New(map[string]any{"id": "1", "title": "x"})
	if err := s.Save("tasks", m); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := s.Delete("tasks", "1"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := s.Load("tasks", "1"); !IsNotFound(err) {
		t.Errorf("Load() after delete error = %v, want not-found", err)
	}

	// Deleting from a missing bucket is a no-op.
	if err := s.Delete("other", "1"); err != nil {
		t.Errorf("Delete() on missing bucket error = %v, want nil", err)
	}
}

func TestLoadAll(t *testing.T) {
	s := openTestStore(t)

	s.Save("tasks", model.New(map[string]any{"id": "1", "title": "a"}))
	s.Save("tasks", model.New(map[string]any{"id": "2", "title": "b"}))

	c, err := s.LoadAll("tasks")
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("LoadAll().Len() = %d, want 2", c.Len())
	}
	if c.At(0).Get("title") != "a" || c.At(1).Get("title") != "b" {
		t.Errorf("LoadAll() models out of order: %v", c.ToJSON())
	}

	empty, err := s.LoadAll("missing")
	if err != nil {
		t.Fatalf("LoadAll(missing) error: %v", err)
	}
	if empty.Len() != 0 {
		t.Errorf("LoadAll(missing).Len() = %d, want 0", empty.Len())
	}
}
