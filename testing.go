package chassis

import "strings"

// RenderResult holds a rendered view for test assertions.
type RenderResult struct {
	HTML string
	View *View
}

// RenderFixture constructs a view of the given class with the given
// options, renders it, and returns the result for assertions:
//
//	result := chassis.RenderFixture(Task, map[string]any{"model": m})
//	if !result.HTMLContains("<h1") {
//	    t.Fatal("missing heading")
//	}
func RenderFixture(class *Class, opts map[string]any) *RenderResult {
	v := New(class, opts).Render()
	return &RenderResult{HTML: v.Root().HTML(), View: v}
}

// Refresh re-renders the view and updates HTML.
func (r *RenderResult) Refresh() *RenderResult {
	r.View.Render()
	r.HTML = r.View.Root().HTML()
	return r
}

// HTMLContains checks if the rendered HTML contains a substring.
func (r *RenderResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the rendered HTML contains all the given
// substrings.
func (r *RenderResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}
