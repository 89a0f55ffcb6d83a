// Package renderer turns portfolio reports into markdown text.
//
// The functions here only lay out data already computed by the stocktracker
// package. The CLI decides how the markdown reaches the terminal.
package renderer

import (
	"fmt"
	"strings"
	"text/template"
)

// render executes a template, returning the error in the output text rather
// than failing the whole command.
func render(tmpl *template.Template, data any) string {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
