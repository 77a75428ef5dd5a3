package schema

import (
	"fmt"
	"strings"
)

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeText    FieldType = "text"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeInteger FieldType = "integer"
)

// Field models an individual input declared by a form schema. Default seeds
// the form state when a controller is created; Rules run at submission time
// in declaration order with a first-failure policy.
type Field struct {
	Name        string
	Type        FieldType
	Label       string
	Placeholder string
	Description string
	Default     any
	Widget      string
	Rules       []Rule
}

// Required reports whether the field carries a required rule. Renderers use
// this to mark mandatory inputs; validation itself stays with the resolver.
func (f Field) Required() bool {
	for _, rule := range f.Rules {
		if rule.Kind == RuleRequired {
			return true
		}
	}
	return false
}

// Schema is the static, ordered declaration of a form's fields. It is closed:
// any field access for a name it does not declare is a programming error and
// panics. A schema never changes once constructed; decorators that override
// presentation produce a new schema instead.
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
}

// New builds a Schema from the supplied fields. Field names must be unique
// and non-empty.
func New(name string, fields ...Field) (Schema, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Schema{}, fmt.Errorf("schema: form name is required")
	}

	index := make(map[string]int, len(fields))
	cloned := make([]Field, len(fields))
	for i, field := range fields {
		fieldName := strings.TrimSpace(field.Name)
		if fieldName == "" {
			return Schema{}, fmt.Errorf("schema: form %q field %d has an empty name", trimmed, i)
		}
		if _, exists := index[fieldName]; exists {
			return Schema{}, fmt.Errorf("schema: form %q declares field %q twice", trimmed, fieldName)
		}
		field.Name = fieldName
		field.Rules = append([]Rule(nil), field.Rules...)
		index[fieldName] = i
		cloned[i] = field
	}

	return Schema{name: trimmed, fields: cloned, index: index}, nil
}

// MustNew is like New but panics on error. Intended for package-level schema
// declarations where a malformed schema is a programming mistake.
func MustNew(name string, fields ...Field) Schema {
	s, err := New(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name reports the form identifier the schema was declared with.
func (s Schema) Name() string { return s.name }

// Len reports the number of declared fields.
func (s Schema) Len() int { return len(s.fields) }

// Fields returns the declared fields in declaration order. The slice is a
// copy; mutating it does not affect the schema.
func (s Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Has reports whether the schema declares the named field.
func (s Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Field returns the declaration for name. It panics when the schema does not
// declare the field: widgets and controllers must never reference names
// outside the schema.
func (s Schema) Field(name string) Field {
	idx, ok := s.index[name]
	if !ok {
		panic(fmt.Sprintf("schema: form %q does not declare field %q", s.name, name))
	}
	return s.fields[idx]
}

// Defaults returns a fresh value map seeded with each field's default,
// substituting the type's zero value when no default is declared.
func (s Schema) Defaults() map[string]any {
	out := make(map[string]any, len(s.fields))
	for _, field := range s.fields {
		if field.Default != nil {
			out[field.Name] = field.Default
			continue
		}
		out[field.Name] = zeroValue(field.Type)
	}
	return out
}

func zeroValue(t FieldType) any {
	switch t {
	case FieldTypeBoolean:
		return false
	case FieldTypeInteger:
		return nil
	default:
		return ""
	}
}
