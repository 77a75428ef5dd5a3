// Package render defines the renderer-facing view of a form: the schema to
// draw, the current values and errors, and the theme tokens to apply. It also
// hosts the renderer registry so hosts can pick an output format by name.
package render

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/pigeonhole/go-formkit/pkg/schema"
)

// View is the read-only snapshot a renderer works from. Values and Errors use
// field names as keys; both may be nil for a pristine form. Theme is optional;
// renderers fall back to their built-in styling when it is nil.
type View struct {
	Schema schema.Schema
	Values map[string]any
	Errors map[string]string
	Theme  *theme.RendererConfig
}

// Value returns the current value for a field, falling back to the schema
// default when the view carries none.
func (v View) Value(name string) any {
	if value, ok := v.Values[name]; ok {
		return value
	}
	return v.Schema.Field(name).Default
}

// Error returns the validation message attached to a field, if any.
func (v View) Error(name string) string {
	return v.Errors[name]
}

// Renderer converts a form view into a byte representation (HTML, text, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view View) ([]byte, error)
}
