package widgets

import (
	"testing"

	"github.com/pigeonhole/go-formkit/pkg/schema"
)

func TestResolve_ExplicitWidgetWins(t *testing.T) {
	reg := NewRegistry()
	field := schema.Field{
		Name:   "isPublished",
		Type:   schema.FieldTypeBoolean,
		Widget: "switch",
	}

	if got, ok := reg.Resolve(field); !ok || got != "switch" {
		t.Fatalf("expected explicit widget to win, got %q (ok=%v)", got, ok)
	}
}

func TestResolve_Builtins(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		name   string
		field  schema.Field
		expect string
	}{
		{
			name:   "boolean toggle",
			field:  schema.Field{Name: "isPublished", Type: schema.FieldTypeBoolean},
			expect: WidgetToggle,
		},
		{
			name:   "text textarea",
			field:  schema.Field{Name: "description", Type: schema.FieldTypeText},
			expect: WidgetTextarea,
		},
		{
			name:   "integer number",
			field:  schema.Field{Name: "startDateTime", Type: schema.FieldTypeInteger},
			expect: WidgetNumber,
		},
		{
			name:   "string input fallback",
			field:  schema.Field{Name: "name", Type: schema.FieldTypeString},
			expect: WidgetInput,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := reg.Resolve(tc.field)
			if !ok {
				t.Fatalf("expected resolution for %s", tc.name)
			}
			if got != tc.expect {
				t.Fatalf("resolve %s: want %q, got %q", tc.name, tc.expect, got)
			}
		})
	}
}

func TestResolve_PriorityOverride(t *testing.T) {
	reg := NewRegistry()
	reg.Register("custom", 999, func(field schema.Field) bool {
		return field.Type == schema.FieldTypeBoolean
	})

	got, ok := reg.Resolve(schema.Field{Name: "isPublished", Type: schema.FieldTypeBoolean})
	if !ok || got != "custom" {
		t.Fatalf("priority matcher should win, got %q (ok=%v)", got, ok)
	}
}
