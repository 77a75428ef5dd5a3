package schema

import (
	"fmt"
	"strings"
)

// Rule is a single validation constraint: a predicate over the submitted
// value plus the message surfaced when the predicate fails. String values
// reach rules already trimmed; the resolver applies rules in declaration
// order and keeps only the first failure per field.
type Rule struct {
	Kind    string
	Message string
	Check   func(value any) bool
}

// Canonical rule kinds.
const (
	RuleRequired  = "required"
	RuleBoolean   = "boolean"
	RuleMaxLength = "maxLength"
	RuleMinValue  = "min"
)

// Required fails when a trimmed string value is empty. A string trimmed to
// empty counts as absent regardless of the original whitespace.
func Required(message string) Rule {
	return Rule{
		Kind:    RuleRequired,
		Message: message,
		Check: func(value any) bool {
			s, ok := value.(string)
			if !ok {
				return value != nil
			}
			return strings.TrimSpace(s) != ""
		},
	}
}

// Boolean accepts the value as-is when it is a bool. It performs no
// transformation.
func Boolean() Rule {
	return Rule{
		Kind:    RuleBoolean,
		Message: "Expected a yes/no value",
		Check: func(value any) bool {
			_, ok := value.(bool)
			return ok
		},
	}
}

// MaxLength fails when a string value exceeds limit characters.
func MaxLength(limit int, message string) Rule {
	if message == "" {
		message = fmt.Sprintf("Must be at most %d characters", limit)
	}
	return Rule{
		Kind:    RuleMaxLength,
		Message: message,
		Check: func(value any) bool {
			s, ok := value.(string)
			if !ok {
				return true
			}
			return len(s) <= limit
		},
	}
}

// MinValue fails when an integer value is below min.
func MinValue(min int64, message string) Rule {
	if message == "" {
		message = fmt.Sprintf("Must be at least %d", min)
	}
	return Rule{
		Kind:    RuleMinValue,
		Message: message,
		Check: func(value any) bool {
			n, ok := value.(int64)
			if !ok {
				return true
			}
			return n >= min
		},
	}
}
