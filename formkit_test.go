package formkit_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	formkit "github.com/pigeonhole/go-formkit"
	"github.com/pigeonhole/go-formkit/pkg/courses"
)

const courseAPI = `{
  "openapi": "3.0.3",
  "info": {"title": "courses", "version": "1.0.0"},
  "paths": {
    "/courses": {
      "post": {
        "operationId": "createCourse",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["name"],
                "properties": {
                  "name": {"type": "string", "title": "Course name"},
                  "isPublished": {"type": "boolean", "default": false}
                }
              }
            }
          }
        },
        "responses": {"201": {"description": "created"}}
      }
    }
  }
}`

func TestSchemaFromOpenAPIAndOverlay(t *testing.T) {
	s, err := formkit.SchemaFromOpenAPI(context.Background(), "courses.json", []byte(courseAPI), "createCourse")
	if err != nil {
		t.Fatalf("schema from openapi: %v", err)
	}
	if s.Name() != "createCourse" || s.Len() != 2 {
		t.Fatalf("unexpected schema: %s/%d", s.Name(), s.Len())
	}

	overlay := fstest.MapFS{
		"forms.yaml": {Data: []byte("forms:\n  createCourse:\n    fields:\n      name:\n        placeholder: e.g. Algorithms\n")},
	}
	decorated, err := formkit.ApplyUISchema(overlay, s)
	if err != nil {
		t.Fatalf("apply overlay: %v", err)
	}
	if got := decorated.Field("name").Placeholder; got != "e.g. Algorithms" {
		t.Fatalf("placeholder: %q", got)
	}
}

func TestRenderHTMLFromController(t *testing.T) {
	controller := formkit.NewController(courses.CreateCourseSchema())
	controller.Write("name", "Algorithms")

	markup, err := formkit.RenderHTML(context.Background(), controller)
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	if !strings.Contains(string(markup), `value="Algorithms"`) {
		t.Fatalf("value missing from markup:\n%s", markup)
	}
	if !strings.Contains(string(markup), `data-form="course-create"`) {
		t.Fatalf("form identity missing:\n%s", markup)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	fsys := formkit.EmbeddedTemplates()
	if _, err := fsys.Open("templates/form.tpl"); err != nil {
		t.Fatalf("embedded template missing: %v", err)
	}
}
