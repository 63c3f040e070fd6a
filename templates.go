package chassis

import (
	"bytes"
	"context"
	htmltemplate "html/template"

	"github.com/a-h/templ"
)

// TemplateFunc is the template contract: a pure function from the
// projection to a markup string. Any template engine plugs in behind
// this signature; Templ and HTMLTemplate cover the common two.
type TemplateFunc func(ctx map[string]any) string

// Templ adapts a templ component constructor into a TemplateFunc.
//
//	class.Template = chassis.Templ(func(ctx map[string]any) templ.Component {
//	    return header(ctx["title"].(string))
//	})
//
// Render errors are reported through the diagnostic sink and yield empty
// output, matching the layer's permissive style.
func Templ(f func(ctx map[string]any) templ.Component) TemplateFunc {
	return func(ctx map[string]any) string {
		var buf bytes.Buffer
		if err := f(ctx).Render(context.Background(), &buf); err != nil {
			Warnf("templ render: %v", err)
			return ""
		}
		return buf.String()
	}
}

// HTMLTemplate adapts an html/template into a TemplateFunc. The
// projection is the template's data, so attributes are referenced as
// {{.title}}.
func HTMLTemplate(t *htmltemplate.Template) TemplateFunc {
	return func(ctx map[string]any) string {
		var buf bytes.Buffer
		if err := t.Execute(&buf, ctx); err != nil {
			Warnf("template %q: %v", t.Name(), err)
			return ""
		}
		return buf.String()
	}
}

// MustHTMLTemplate parses src as an html/template and adapts it. Panics
// on a parse error; templates are defined at class-definition time, where
// a bad template is a programming error.
func MustHTMLTemplate(name, src string) TemplateFunc {
	return HTMLTemplate(htmltemplate.Must(htmltemplate.New(name).Parse(src)))
}
