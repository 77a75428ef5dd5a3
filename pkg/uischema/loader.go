// Package uischema loads declarative UI overlays for form schemas. An overlay
// overrides presentation only (labels, placeholders, help text, widget
// hints); it can never add fields, so the schema stays closed end to end.
package uischema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldConfig carries the presentation overrides for one field.
type FieldConfig struct {
	Label       string `json:"label" yaml:"label"`
	Placeholder string `json:"placeholder" yaml:"placeholder"`
	Help        string `json:"help" yaml:"help"`
	Widget      string `json:"widget" yaml:"widget"`
}

// Form is the overlay declared for one form, keyed by its schema name.
type Form struct {
	ID     string
	Source string
	Fields map[string]FieldConfig
}

// Store holds the overlays parsed from a filesystem, keyed by form name.
type Store struct {
	forms map[string]Form
}

// Form returns the overlay for the supplied form name.
func (s *Store) Form(id string) (Form, bool) {
	if s == nil {
		return Form{}, false
	}
	form, ok := s.forms[id]
	return form, ok
}

// Empty reports whether the store holds any overlays.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

type documentFile struct {
	Forms map[string]formFile `json:"forms" yaml:"forms"`
}

type formFile struct {
	Fields map[string]FieldConfig `json:"fields" yaml:"fields"`
}

// LoadFS walks the provided filesystem and parses JSON/YAML overlay files.
// When fsys is nil or no overlay files are present, the returned store is
// empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{forms: make(map[string]Form)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isOverlayFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uischema: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for id, raw := range doc.Forms {
			trimmed := strings.TrimSpace(id)
			if trimmed == "" {
				return fmt.Errorf("uischema: file %s defines an empty form id", path)
			}
			if _, exists := store.forms[trimmed]; exists {
				return fmt.Errorf("uischema: duplicate form %q (file %s)", trimmed, path)
			}

			form := Form{
				ID:     trimmed,
				Source: path,
				Fields: make(map[string]FieldConfig, len(raw.Fields)),
			}
			for name, cfg := range raw.Fields {
				fieldName := strings.TrimSpace(name)
				if fieldName == "" {
					return fmt.Errorf("uischema: form %q (file %s) declares an empty field name", trimmed, path)
				}
				form.Fields[fieldName] = cfg
			}
			store.forms[trimmed] = form
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("uischema: file %s is empty", source)
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("uischema: parse %s: invalid JSON or YAML", source)
}

func isOverlayFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
