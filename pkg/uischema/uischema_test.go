package uischema

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/pigeonhole/go-formkit/pkg/schema"
)

const overlayYAML = `forms:
  course-create:
    fields:
      name:
        label: Course name
        placeholder: e.g. Algorithms
      description:
        help: Shown on the course card.
        widget: textarea
`

const overlayJSON = `{
  "forms": {
    "milestone-create": {
      "fields": {
        "name": {"label": "Milestone name"}
      }
    }
  }
}`

func courseSchema() schema.Schema {
	return schema.MustNew("course-create",
		schema.Field{Name: "name", Type: schema.FieldTypeString, Label: "Name"},
		schema.Field{Name: "description", Type: schema.FieldTypeText},
		schema.Field{Name: "isPublished", Type: schema.FieldTypeBoolean},
	)
}

func TestLoadFS_ParsesYAMLAndJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"course.yaml":    {Data: []byte(overlayYAML)},
		"milestone.json": {Data: []byte(overlayJSON)},
		"notes.txt":      {Data: []byte("ignored")},
	}

	store, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if store.Empty() {
		t.Fatalf("expected overlays, store is empty")
	}

	course, ok := store.Form("course-create")
	if !ok {
		t.Fatalf("course-create overlay missing")
	}
	if got := course.Fields["name"].Label; got != "Course name" {
		t.Fatalf("name label: %q", got)
	}

	milestone, ok := store.Form("milestone-create")
	if !ok {
		t.Fatalf("milestone-create overlay missing")
	}
	if got := milestone.Fields["name"].Label; got != "Milestone name" {
		t.Fatalf("milestone name label: %q", got)
	}
}

func TestLoadFS_RejectsDuplicateForms(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("forms:\n  course-create:\n    fields: {}\n")},
		"b.yaml": {Data: []byte("forms:\n  course-create:\n    fields: {}\n")},
	}

	if _, err := LoadFS(fsys); err == nil {
		t.Fatalf("expected duplicate form error")
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	store, err := LoadFS(nil)
	if err != nil {
		t.Fatalf("load nil fs: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}

func TestApply_OverridesPresentationOnly(t *testing.T) {
	fsys := fstest.MapFS{"course.yaml": {Data: []byte(overlayYAML)}}
	store, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	original := courseSchema()
	decorated, err := Apply(store, original)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if got := decorated.Field("name").Label; got != "Course name" {
		t.Fatalf("label not overridden: %q", got)
	}
	if got := decorated.Field("name").Placeholder; got != "e.g. Algorithms" {
		t.Fatalf("placeholder not overridden: %q", got)
	}
	if got := decorated.Field("description").Widget; got != "textarea" {
		t.Fatalf("widget hint not applied: %q", got)
	}
	if got := decorated.Field("isPublished"); got.Label != "" {
		t.Fatalf("untouched field changed: %+v", got)
	}

	// The input schema stays immutable.
	if got := original.Field("name").Label; got != "Name" {
		t.Fatalf("original schema mutated: %q", got)
	}
}

func TestApply_RejectsUndeclaredFields(t *testing.T) {
	fsys := fstest.MapFS{
		"course.yaml": {Data: []byte("forms:\n  course-create:\n    fields:\n      owner:\n        label: Owner\n")},
	}
	store, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	_, err = Apply(store, courseSchema())
	if err == nil {
		t.Fatalf("expected undeclared field error")
	}
	if !strings.Contains(err.Error(), "owner") {
		t.Fatalf("error does not name the field: %v", err)
	}
}

func TestApply_NoOverlayIsIdentity(t *testing.T) {
	s := courseSchema()
	decorated, err := Apply(&Store{}, s)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if decorated.Len() != s.Len() {
		t.Fatalf("schema changed without overlay")
	}
}
