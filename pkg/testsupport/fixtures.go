// Package testsupport holds fixtures shared by package tests.
package testsupport

import (
	"sync"

	"github.com/pigeonhole/go-formkit/pkg/schema"
)

// ArticleSchema returns a small three-field schema used by engine tests that
// do not depend on the course domain.
func ArticleSchema() schema.Schema {
	return schema.MustNew("article",
		schema.Field{
			Name:  "title",
			Type:  schema.FieldTypeString,
			Label: "Title",
			Rules: []schema.Rule{schema.Required("Please enter a title")},
		},
		schema.Field{
			Name:  "body",
			Type:  schema.FieldTypeText,
			Label: "Body",
		},
		schema.Field{
			Name:    "published",
			Type:    schema.FieldTypeBoolean,
			Label:   "Published",
			Default: false,
			Rules:   []schema.Rule{schema.Boolean()},
		},
	)
}

// RecordingReporter captures reported messages for assertions. Safe for use
// from concurrent submissions.
type RecordingReporter struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (r *RecordingReporter) ReportSuccess(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, message)
}

func (r *RecordingReporter) ReportFailure(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, message)
}

// Successes returns a snapshot of reported success messages.
func (r *RecordingReporter) Successes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.successes...)
}

// Failures returns a snapshot of reported failure messages.
func (r *RecordingReporter) Failures() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.failures...)
}
