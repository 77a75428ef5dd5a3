package form

import (
	"context"
	"fmt"

	"github.com/pigeonhole/go-formkit/pkg/resolver"
)

// Action is the caller-supplied submission handler. It receives the typed,
// validated value set and may block on I/O; any failure it returns stays
// opaque to the pipeline beyond coarse classification by the failure
// resolver.
type Action func(ctx context.Context, values map[string]any) error

// PipelineOption configures a Pipeline before first use.
type PipelineOption func(*Pipeline)

// WithReporter injects the notification sink used for user-visible feedback.
// Defaults to a reporter that drops everything.
func WithReporter(reporter Reporter) PipelineOption {
	return func(p *Pipeline) {
		if reporter != nil {
			p.reporter = reporter
		}
	}
}

// WithFailureResolver overrides the policy that converts an action failure
// into a display message.
func WithFailureResolver(resolve FailureResolver) PipelineOption {
	return func(p *Pipeline) {
		if resolve != nil {
			p.resolveFailure = resolve
		}
	}
}

// WithSuccessMessage overrides the message emitted on successful submission.
func WithSuccessMessage(message string) PipelineOption {
	return func(p *Pipeline) {
		if message != "" {
			p.successMessage = message
		}
	}
}

// WithSuccessCallback registers a callback invoked with the validated values
// after a successful submission has been reported.
func WithSuccessCallback(callback func(values map[string]any)) PipelineOption {
	return func(p *Pipeline) {
		p.onSuccess = callback
	}
}

// Pipeline orchestrates one form's submissions: guard re-entrancy, run the
// resolver, invoke the action, report the outcome. Nothing escapes Submit
// uncaught, and the guard is reset on every exit path.
type Pipeline struct {
	controller     *Controller
	action         Action
	reporter       Reporter
	resolveFailure FailureResolver
	successMessage string
	onSuccess      func(values map[string]any)
}

// NewPipeline wires a pipeline to its controller and action. The reporter and
// failure policy are explicit dependencies so forms stay independently
// testable; they default to NopReporter and ResolveFailure.
func NewPipeline(controller *Controller, action Action, options ...PipelineOption) *Pipeline {
	if controller == nil {
		panic("form: pipeline requires a controller")
	}
	if action == nil {
		panic("form: pipeline requires an action")
	}

	p := &Pipeline{
		controller:     controller,
		action:         action,
		reporter:       NopReporter{},
		resolveFailure: ResolveFailure,
		successMessage: "Saved.",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// Submit runs the submission sequence against the controller's current
// values. A call while a submission is in flight is an idempotent no-op. On
// validation failure the messages are attached to their fields and no report
// is emitted; on action failure the resolved message is reported and field
// values are left untouched so the user can correct and resubmit. The guard
// is always reset before any report is emitted.
func (p *Pipeline) Submit(ctx context.Context) {
	if !p.controller.beginSubmit() {
		return
	}

	result := resolver.Resolve(p.controller.Schema(), p.controller.Values())
	if !result.Valid() {
		p.controller.setErrors(result.Errors)
		p.controller.endSubmit()
		return
	}
	p.controller.clearErrors()

	err := p.invoke(ctx, result.Values)
	p.controller.endSubmit()

	if err != nil {
		p.reporter.ReportFailure(p.resolveFailure(err))
		return
	}

	p.reporter.ReportSuccess(p.successMessage)
	if p.onSuccess != nil {
		p.onSuccess(result.Values)
	}
}

// invoke runs the action, converting a panic into an error so no failure
// propagates past the pipeline boundary.
func (p *Pipeline) invoke(ctx context.Context, values map[string]any) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("form: action panic: %v", recovered)
		}
	}()
	if ctx == nil {
		ctx = context.Background()
	}
	return p.action(ctx, values)
}
