// Package formkit ties the form engine together for callers that want the
// common path without importing every subpackage: declare or derive a schema,
// mount a controller, submit through a pipeline, and render the result.
package formkit

import (
	"context"
	"io/fs"

	"github.com/pigeonhole/go-formkit/pkg/form"
	"github.com/pigeonhole/go-formkit/pkg/openapi"
	"github.com/pigeonhole/go-formkit/pkg/render"
	"github.com/pigeonhole/go-formkit/pkg/renderers/html"
	"github.com/pigeonhole/go-formkit/pkg/renderers/tui"
	"github.com/pigeonhole/go-formkit/pkg/resolver"
	"github.com/pigeonhole/go-formkit/pkg/schema"
	"github.com/pigeonhole/go-formkit/pkg/uischema"
)

// Schema re-exports for the common path.
type (
	Schema    = schema.Schema
	Field     = schema.Field
	Rule      = schema.Rule
	FieldType = schema.FieldType
)

// Form state and submission re-exports.
type (
	Controller = form.Controller
	Pipeline   = form.Pipeline
	Binding    = form.Binding
	Action     = form.Action
	Reporter   = form.Reporter
	UserError  = form.UserError
)

// NewSchema builds a schema from field declarations.
var NewSchema = schema.New

// MustNewSchema is like NewSchema but panics on error.
var MustNewSchema = schema.MustNew

// NewController seeds a controller with the schema's default values.
var NewController = form.NewController

// NewPipeline wires a pipeline to its controller and action.
var NewPipeline = form.NewPipeline

// Resolve runs coercion and validation over a raw value set.
var Resolve = resolver.Resolve

// SchemaFromOpenAPI derives a form schema from the named operation's request
// body in a raw OpenAPI document.
func SchemaFromOpenAPI(ctx context.Context, location string, raw []byte, operationID string) (Schema, error) {
	doc, err := openapi.NewDocument(location, raw)
	if err != nil {
		return Schema{}, err
	}
	return openapi.NewAdapter().FormSchema(ctx, doc, operationID)
}

// ApplyUISchema loads presentation overlays from fsys and applies the one
// matching the schema's form name, if any.
func ApplyUISchema(fsys fs.FS, s Schema) (Schema, error) {
	store, err := uischema.LoadFS(fsys)
	if err != nil {
		return Schema{}, err
	}
	return uischema.Apply(store, s)
}

// RenderHTML draws the controller's current state as HTML.
func RenderHTML(ctx context.Context, controller *Controller, options ...html.Option) ([]byte, error) {
	renderer, err := html.New(options...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, render.View{
		Schema: controller.Schema(),
		Values: controller.Values(),
		Errors: controller.Errors(),
	})
}

// RunTUI walks the form as an interactive terminal session and submits
// through the supplied action.
func RunTUI(ctx context.Context, controller *Controller, action Action, options ...tui.SessionOption) error {
	return tui.NewSession(controller, action, options...).Run(ctx)
}
