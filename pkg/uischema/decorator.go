package uischema

import (
	"fmt"
	"strings"

	"github.com/pigeonhole/go-formkit/pkg/schema"
)

// Apply overlays the store's configuration for the schema's form onto a new
// schema. The input schema is never mutated. Overlay entries referencing
// fields the schema does not declare are rejected: presentation config must
// not widen the schema.
func Apply(store *Store, s schema.Schema) (schema.Schema, error) {
	if store == nil {
		return s, nil
	}
	form, ok := store.Form(s.Name())
	if !ok || len(form.Fields) == 0 {
		return s, nil
	}

	for name := range form.Fields {
		if !s.Has(name) {
			return schema.Schema{}, fmt.Errorf("uischema: form %q overlay (file %s) references undeclared field %q", form.ID, form.Source, name)
		}
	}

	fields := s.Fields()
	for i, field := range fields {
		cfg, ok := form.Fields[field.Name]
		if !ok {
			continue
		}
		if label := strings.TrimSpace(cfg.Label); label != "" {
			fields[i].Label = label
		}
		if placeholder := strings.TrimSpace(cfg.Placeholder); placeholder != "" {
			fields[i].Placeholder = placeholder
		}
		if help := strings.TrimSpace(cfg.Help); help != "" {
			fields[i].Description = help
		}
		if widget := strings.TrimSpace(cfg.Widget); widget != "" {
			fields[i].Widget = widget
		}
	}

	decorated, err := schema.New(s.Name(), fields...)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("uischema: rebuild schema: %w", err)
	}
	return decorated, nil
}
