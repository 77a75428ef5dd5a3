// Package form holds the state of a single mounted form instance and drives
// its validate→submit→report lifecycle. A Controller owns the field values,
// dirty/touched flags, and the re-entrancy guard; a Pipeline orchestrates
// submission against a caller-supplied action. Each form instance owns its
// state exclusively; nothing is shared across instances.
package form

import (
	"sync"

	"github.com/pigeonhole/go-formkit/pkg/schema"
)

// Binding is the boundary contract handed to a field widget: the current
// value and error for one field plus a callback for user edits. A widget has
// no access to other fields or to the submission guard.
type Binding struct {
	Name     string
	Value    any
	Error    string
	OnChange func(value any)
}

// Controller tracks the live state of one form instance. It is created with
// the schema defaults when the form mounts and lives as long as its owning
// view; there is no reset path. Writes never validate eagerly — validation is
// deferred entirely to submission time.
//
// Writes and submissions may arrive from different goroutines while a
// submission action is in flight, so state access is serialised internally.
type Controller struct {
	mu         sync.Mutex
	schema     schema.Schema
	values     map[string]any
	dirty      map[string]bool
	touched    map[string]bool
	errors     map[string]string
	submitting bool
}

// NewController seeds a controller with the schema's default values.
func NewController(s schema.Schema) *Controller {
	return &Controller{
		schema:  s,
		values:  s.Defaults(),
		dirty:   make(map[string]bool),
		touched: make(map[string]bool),
		errors:  make(map[string]string),
	}
}

// Schema returns the immutable schema this controller was created with.
func (c *Controller) Schema() schema.Schema { return c.schema }

// Read returns the current value for name. Referencing a field outside the
// schema is a programming error and panics.
func (c *Controller) Read(name string) any {
	field := c.schema.Field(name)

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[field.Name]
}

// Write records a new value for name and marks the field dirty. It always
// succeeds, also while a submission is in flight: values follow last-write-
// wins semantics. Like Read, an undeclared name panics.
func (c *Controller) Write(name string, value any) {
	field := c.schema.Field(name)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[field.Name] = value
	c.dirty[field.Name] = true
}

// Touch marks a field as visited without changing its value.
func (c *Controller) Touch(name string) {
	field := c.schema.Field(name)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.touched[field.Name] = true
}

// Dirty reports whether the field has been written since the form mounted.
func (c *Controller) Dirty(name string) bool {
	field := c.schema.Field(name)

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty[field.Name]
}

// Touched reports whether the field has been visited.
func (c *Controller) Touched(name string) bool {
	field := c.schema.Field(name)

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.touched[field.Name]
}

// Error returns the validation message attached to the field by the last
// failed submission, or the empty string.
func (c *Controller) Error(name string) string {
	field := c.schema.Field(name)

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors[field.Name]
}

// Errors returns a snapshot of all field errors currently attached.
func (c *Controller) Errors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.errors) == 0 {
		return nil
	}
	out := make(map[string]string, len(c.errors))
	for name, message := range c.errors {
		out[name] = message
	}
	return out
}

// Values returns a snapshot of the current field values.
func (c *Controller) Values() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]any, len(c.values))
	for name, value := range c.values {
		out[name] = value
	}
	return out
}

// Submitting reports whether a submission pipeline is in flight. The guard is
// owned by the pipeline; consumers only read it.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// Binding returns the widget-facing view of one field: current value, current
// error, and a write-through callback. It panics for undeclared names.
func (c *Controller) Binding(name string) Binding {
	field := c.schema.Field(name)

	c.mu.Lock()
	value := c.values[field.Name]
	message := c.errors[field.Name]
	c.mu.Unlock()

	return Binding{
		Name:  field.Name,
		Value: value,
		Error: message,
		OnChange: func(value any) {
			c.Write(field.Name, value)
		},
	}
}

// beginSubmit flips the guard. It reports false when a submission is already
// in flight, making a second submit a no-op rather than an error.
func (c *Controller) beginSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitting {
		return false
	}
	c.submitting = true
	return true
}

// endSubmit resets the guard. It runs on every pipeline exit path so the form
// is never left stuck in the submitting state.
func (c *Controller) endSubmit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
}

// setErrors replaces the attached field errors with the supplied mapping.
func (c *Controller) setErrors(errors map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.errors = make(map[string]string, len(errors))
	for name, message := range errors {
		c.errors[name] = message
	}
}

// clearErrors drops all attached field errors.
func (c *Controller) clearErrors() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = make(map[string]string)
}
