package chassis

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/a-h/templ"
)

func TestHTMLTemplate(t *testing.T) {
	tmpl := MustHTMLTemplate("greeting", `<h1>{{.title}}</h1>`)
	got := tmpl(map[string]any{"title": "Hello"})
	if got != "<h1>Hello</h1>" {
		t.Errorf("tmpl() = %q, want <h1>Hello</h1>", got)
	}
}

func TestHTMLTemplateEscapes(t *testing.T) {
	tmpl := MustHTMLTemplate("unsafe", `<p>{{.v}}</p>`)
	got := tmpl(map[string]any{"v": "<b>"})
	if got != "<p>&lt;b&gt;</p>" {
		t.Errorf("tmpl() = %q, want escaped output", got)
	}
}

func TestTemplAdapter(t *testing.T) {
	tmpl := Templ(func(ctx map[string]any) templ.Component {
		return templ.ComponentFunc(func(c context.Context, w io.Writer) error {
			_, err := fmt.Fprintf(w, "<h1>%v</h1>", ctx["title"])
			return err
		})
	})

	got := tmpl(map[string]any{"title": "Templ"})
	if got != "<h1>Templ</h1>" {
		t.Errorf("tmpl() = %q, want <h1>Templ</h1>", got)
	}
}

func TestTemplAdapterRenderErrorYieldsEmpty(t *testing.T) {
	prev := Warnf
	Warnf = func(format string, args ...any) {}
	defer func() { Warnf = prev }()

	tmpl := Templ(func(ctx map[string]any) templ.Component {
		return templ.ComponentFunc(func(c context.Context, w io.Writer) error {
			return io.ErrClosedPipe
		})
	})
	if got := tmpl(nil); got != "" {
		t.Errorf("tmpl() = %q, want empty on render error", got)
	}
}
