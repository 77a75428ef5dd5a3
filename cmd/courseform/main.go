// Command courseform runs a course form as an interactive terminal session.
// The schema comes either from the built-in course declarations or from an
// OpenAPI document, optionally decorated with a UI overlay directory, and the
// validated submission is printed as JSON.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	formkit "github.com/pigeonhole/go-formkit"
	"github.com/pigeonhole/go-formkit/pkg/courses"
	"github.com/pigeonhole/go-formkit/pkg/renderers/tui"
)

func main() {
	formName := flag.String("form", "course", "built-in form to run: course or milestone")
	openapiPath := flag.String("openapi", "", "derive the schema from an OpenAPI document instead")
	operationID := flag.String("operation", "createCourse", "operation ID when -openapi is set")
	overlayDir := flag.String("uischema", "", "directory of UI overlay files (JSON/YAML)")
	htmlOut := flag.String("html", "", "write the rendered HTML form to this file and exit")
	flag.Parse()

	ctx := context.Background()

	s, err := buildSchema(ctx, *formName, *openapiPath, *operationID)
	if err != nil {
		log.Fatalf("build schema: %v", err)
	}

	if *overlayDir != "" {
		s, err = formkit.ApplyUISchema(os.DirFS(*overlayDir), s)
		if err != nil {
			log.Fatalf("apply overlay: %v", err)
		}
	}

	controller := formkit.NewController(s)

	if *htmlOut != "" {
		markup, err := formkit.RenderHTML(ctx, controller)
		if err != nil {
			log.Fatalf("render html: %v", err)
		}
		if err := os.WriteFile(*htmlOut, markup, 0o644); err != nil {
			log.Fatalf("write html: %v", err)
		}
		fmt.Printf("Form written to %s\n", *htmlOut)
		return
	}

	action := courses.CreateCourseAction(os.Stdout)
	err = formkit.RunTUI(ctx, controller, action,
		tui.WithSuccessMessage("Course saved."),
	)
	switch {
	case err == nil:
	case errors.Is(err, tui.ErrAborted):
		fmt.Fprintln(os.Stderr, "aborted")
		os.Exit(130)
	default:
		log.Fatalf("session: %v", err)
	}
}

func buildSchema(ctx context.Context, formName, openapiPath, operationID string) (formkit.Schema, error) {
	if openapiPath != "" {
		raw, err := os.ReadFile(openapiPath)
		if err != nil {
			return formkit.Schema{}, fmt.Errorf("read %s: %w", openapiPath, err)
		}
		return formkit.SchemaFromOpenAPI(ctx, openapiPath, raw, operationID)
	}

	switch formName {
	case "course":
		return courses.CreateCourseSchema(), nil
	case "milestone":
		return courses.MilestoneSchema(), nil
	default:
		return formkit.Schema{}, fmt.Errorf("unknown form %q", formName)
	}
}
