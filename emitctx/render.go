package emitctx

import (
	"fmt"
	"io"
	"text/template"
)

// Render executes a named Go template against ctx, in the same
// text/template style the teacher's own code generator uses to expand
// named templates against a data map (tool_templates.go's
// template.New(name).Parse(body).Execute(w, data)).
func Render(w io.Writer, name, body string, ctx Context) error {
	tmpl, err := template.New(name).Parse(body)
	if err != nil {
		return fmt.Errorf("emitctx: parsing template %q: %w", name, err)
	}
	if err := tmpl.Execute(w, ctx); err != nil {
		return fmt.Errorf("emitctx: rendering template %q: %w", name, err)
	}
	return nil
}
