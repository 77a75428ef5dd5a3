// Package html renders a form view as server-side HTML using the embedded
// pongo2 template bundle. Markup is classed with an fk- prefix so hosts can
// restyle without touching templates, and theme tokens arrive as CSS
// variables.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/pigeonhole/go-formkit/pkg/render"
	rendertemplate "github.com/pigeonhole/go-formkit/pkg/render/template"
	gotemplate "github.com/pigeonhole/go-formkit/pkg/render/template/gotemplate"
	"github.com/pigeonhole/go-formkit/pkg/schema"
	"github.com/pigeonhole/go-formkit/pkg/widgets"
)

const formTemplate = "templates/form"

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	widgets          *widgets.Registry
	submitLabel      string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithWidgets overrides the widget registry used to pick controls.
func WithWidgets(registry *widgets.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.widgets = registry
		}
	}
}

// WithSubmitLabel overrides the submit button caption.
func WithSubmitLabel(label string) Option {
	return func(cfg *config) {
		if label != "" {
			cfg.submitLabel = label
		}
	}
}

// Renderer draws a form view as HTML.
type Renderer struct {
	templates   rendertemplate.TemplateRenderer
	widgets     *widgets.Registry
	submitLabel string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:  TemplatesFS(),
		widgets:     widgets.NewRegistry(),
		submitLabel: "Save",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:   renderer,
		widgets:     cfg.widgets,
		submitLabel: cfg.submitLabel,
	}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render draws the whole form: every declared field in declaration order with
// its current value and validation message, then the submit control.
func (r *Renderer) Render(ctx context.Context, view render.View) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fields := make([]map[string]any, 0, view.Schema.Len())
	for _, field := range view.Schema.Fields() {
		fields = append(fields, r.fieldContext(field, view))
	}

	result, err := r.templates.RenderTemplate(formTemplate, map[string]any{
		"form":         view.Schema.Name(),
		"fields":       fields,
		"submit_label": r.submitLabel,
		"theme_style":  render.CSSVarsStyle(view.Theme),
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render form %q: %w", view.Schema.Name(), err)
	}
	return []byte(result), nil
}

func (r *Renderer) fieldContext(field schema.Field, view render.View) map[string]any {
	widget, ok := r.widgets.Resolve(field)
	if !ok {
		widget = widgets.WidgetInput
	}

	label := field.Label
	if label == "" {
		label = field.Name
	}

	value := view.Value(field.Name)
	checked := false
	if b, isBool := value.(bool); isBool {
		checked = b
	}

	return map[string]any{
		"name":        field.Name,
		"label":       label,
		"widget":      widget,
		"value":       displayValue(value),
		"checked":     checked,
		"required":    field.Required(),
		"placeholder": field.Placeholder,
		"help":        field.Description,
		"error":       view.Error(field.Name),
	}
}

// displayValue flattens a field value for markup. Booleans render through the
// checked flag instead, and nil integers stay blank.
func displayValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
