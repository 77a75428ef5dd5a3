package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pigeonhole/go-formkit/pkg/form"
	"github.com/pigeonhole/go-formkit/pkg/schema"
	"github.com/pigeonhole/go-formkit/pkg/widgets"
)

// SessionOption configures a Session before first use.
type SessionOption func(*Session)

// WithDriver swaps the prompt driver. Defaults to the survey driver.
func WithDriver(driver PromptDriver) SessionOption {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithWidgets overrides the widget registry used to pick prompts.
func WithWidgets(registry *widgets.Registry) SessionOption {
	return func(s *Session) {
		if registry != nil {
			s.widgets = registry
		}
	}
}

// WithMaxAttempts bounds how many times the session re-prompts after a failed
// validation pass.
func WithMaxAttempts(attempts int) SessionOption {
	return func(s *Session) {
		if attempts > 0 {
			s.maxAttempts = attempts
		}
	}
}

// WithSuccessMessage overrides the message shown after a successful
// submission.
func WithSuccessMessage(message string) SessionOption {
	return func(s *Session) {
		if message != "" {
			s.pipelineOpts = append(s.pipelineOpts, form.WithSuccessMessage(message))
		}
	}
}

// Session walks a form field by field, writes answers through the controller,
// and submits through the pipeline. Validation failures are shown inline and
// the affected fields re-prompted with their previous answers preserved.
type Session struct {
	driver       PromptDriver
	widgets      *widgets.Registry
	controller   *form.Controller
	maxAttempts  int
	pipelineOpts []form.PipelineOption
	pipeline     *form.Pipeline
	outcome      *outcomeReporter
}

// NewSession wires a session to a controller and submission action.
func NewSession(controller *form.Controller, action form.Action, options ...SessionOption) *Session {
	if controller == nil {
		panic("tui: session requires a controller")
	}

	s := &Session{
		driver:      NewSurveyDriver(),
		widgets:     widgets.NewRegistry(),
		controller:  controller,
		maxAttempts: 3,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	s.outcome = &outcomeReporter{}
	opts := append([]form.PipelineOption{form.WithReporter(s.outcome)}, s.pipelineOpts...)
	s.pipeline = form.NewPipeline(controller, action, opts...)
	return s
}

// Run prompts for every declared field, submits, and repeats while validation
// fails. It returns nil on a successful submission, ErrSubmitFailed when the
// action fails, and ErrTooManyAttempts when the retry budget runs out.
func (s *Session) Run(ctx context.Context) error {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		if err := s.promptFields(ctx); err != nil {
			return err
		}

		s.outcome.reset()
		s.pipeline.Submit(ctx)

		if errs := s.controller.Errors(); len(errs) > 0 {
			if err := s.showFieldErrors(ctx, errs); err != nil {
				return err
			}
			continue
		}

		message, failed := s.outcome.result()
		if failed {
			if err := s.driver.Info(ctx, message); err != nil {
				return err
			}
			return ErrSubmitFailed
		}
		return s.driver.Info(ctx, message)
	}
	return ErrTooManyAttempts
}

func (s *Session) promptFields(ctx context.Context) error {
	for _, field := range s.controller.Schema().Fields() {
		if err := s.promptField(ctx, field); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) promptField(ctx context.Context, field schema.Field) error {
	widget, ok := s.widgets.Resolve(field)
	if !ok {
		widget = widgets.WidgetInput
	}

	binding := s.controller.Binding(field.Name)
	message := fieldLabel(field)
	if binding.Error != "" {
		message = fmt.Sprintf("%s (%s)", message, binding.Error)
	}

	switch widget {
	case widgets.WidgetToggle:
		current, _ := binding.Value.(bool)
		answer, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: current,
			Help:    field.Description,
		})
		if err != nil {
			return err
		}
		binding.OnChange(answer)

	case widgets.WidgetTextarea:
		answer, err := s.driver.TextArea(ctx, TextAreaConfig{
			Message: message,
			Default: displayValue(binding.Value),
			Help:    field.Description,
		})
		if err != nil {
			return err
		}
		binding.OnChange(answer)

	case widgets.WidgetNumber:
		answer, err := s.driver.Input(ctx, InputConfig{
			Message:   message,
			Default:   displayValue(binding.Value),
			Help:      field.Description,
			Validator: validateInteger,
		})
		if err != nil {
			return err
		}
		binding.OnChange(strings.TrimSpace(answer))

	default:
		answer, err := s.driver.Input(ctx, InputConfig{
			Message: message,
			Default: displayValue(binding.Value),
			Help:    field.Description,
		})
		if err != nil {
			return err
		}
		binding.OnChange(answer)
	}

	s.controller.Touch(field.Name)
	return nil
}

// showFieldErrors prints validation messages in field declaration order.
func (s *Session) showFieldErrors(ctx context.Context, errs map[string]string) error {
	for _, field := range s.controller.Schema().Fields() {
		message, ok := errs[field.Name]
		if !ok {
			continue
		}
		if err := s.driver.Info(ctx, fmt.Sprintf("%s: %s", fieldLabel(field), message)); err != nil {
			return err
		}
	}
	return nil
}

func fieldLabel(field schema.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func displayValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func validateInteger(answer string) error {
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return nil
	}
	if _, err := strconv.ParseInt(trimmed, 10, 64); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

// outcomeReporter records the pipeline's report so the session can relay it
// through the driver after Submit returns.
type outcomeReporter struct {
	message string
	failed  bool
	seen    bool
}

func (r *outcomeReporter) ReportSuccess(message string) {
	r.message = message
	r.failed = false
	r.seen = true
}

func (r *outcomeReporter) ReportFailure(message string) {
	r.message = message
	r.failed = true
	r.seen = true
}

func (r *outcomeReporter) reset() {
	r.message = ""
	r.failed = false
	r.seen = false
}

func (r *outcomeReporter) result() (string, bool) {
	return r.message, r.failed
}
