// Package resolver compiles a form schema into typed, validated value sets.
// Resolution is deferred entirely to submission time: raw values collected by
// a controller are checked field by field, each field independently, and the
// outcome is either a complete typed record or one message per failing field.
package resolver

import (
	"strconv"
	"strings"

	"github.com/pigeonhole/go-formkit/pkg/schema"
)

// Result is the outcome of resolving raw input against a schema. When Valid
// reports true, Values holds every declared field coerced to its type with
// string values trimmed. Otherwise Errors maps each failing field to a single
// human-readable message (first-failure policy).
type Result struct {
	Values map[string]any
	Errors map[string]string
}

// Valid reports whether resolution produced a typed value set.
func (r Result) Valid() bool { return len(r.Errors) == 0 }

// Resolve checks raw values against every field the schema declares. Fields
// absent from raw fall back to the schema default. Evaluation order never
// affects the result; fields are independent.
func Resolve(s schema.Schema, raw map[string]any) Result {
	values := make(map[string]any, s.Len())
	errors := make(map[string]string)

	defaults := s.Defaults()
	for _, field := range s.Fields() {
		input, ok := raw[field.Name]
		if !ok {
			input = defaults[field.Name]
		}

		typed, message := coerce(field, input)
		if message != "" {
			errors[field.Name] = message
			continue
		}

		if message := applyRules(field, typed); message != "" {
			errors[field.Name] = message
			continue
		}

		values[field.Name] = typed
	}

	if len(errors) > 0 {
		return Result{Errors: errors}
	}
	return Result{Values: values}
}

func applyRules(field schema.Field, value any) string {
	for _, rule := range field.Rules {
		if rule.Check == nil {
			continue
		}
		if !rule.Check(value) {
			return rule.Message
		}
	}
	return ""
}

// coerce converts a raw value to the field's declared type. The trimmed
// string, not the raw one, is what reaches rules and the submit action.
func coerce(field schema.Field, value any) (any, string) {
	switch field.Type {
	case schema.FieldTypeBoolean:
		switch v := value.(type) {
		case bool:
			return v, ""
		case nil:
			return false, ""
		default:
			return nil, "Expected a yes/no value"
		}
	case schema.FieldTypeInteger:
		switch v := value.(type) {
		case int64:
			return v, ""
		case int:
			return int64(v), ""
		case float64:
			return int64(v), ""
		case nil:
			// Absent integers stay nil so required rules can tell an empty
			// submission apart from a literal zero.
			return nil, ""
		case string:
			trimmed := strings.TrimSpace(v)
			if trimmed == "" {
				return nil, ""
			}
			n, err := strconv.ParseInt(trimmed, 10, 64)
			if err != nil {
				return nil, "Enter a whole number"
			}
			return n, ""
		default:
			return nil, "Enter a whole number"
		}
	default:
		switch v := value.(type) {
		case string:
			return strings.TrimSpace(v), ""
		case nil:
			return "", ""
		default:
			return nil, "Expected text"
		}
	}
}
