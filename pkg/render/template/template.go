// Package template defines the renderer-agnostic template seam. Renderers
// depend on the TemplateRenderer contract, not on a concrete engine, so a host
// can swap template backends without touching renderer code.
package template

import "io"

// TemplateRenderer mirrors the github.com/goliatone/go-template engine
// contract. Render dispatches to RenderString when the name looks like inline
// template content.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
