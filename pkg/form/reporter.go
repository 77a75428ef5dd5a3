package form

import (
	"context"
	"errors"
)

// Reporter is the notification sink for user-visible submission feedback,
// injected into the pipeline at construction time rather than reached through
// a process-wide singleton.
type Reporter interface {
	ReportSuccess(message string)
	ReportFailure(message string)
}

// NopReporter drops every report. It is the default when no reporter is
// configured.
type NopReporter struct{}

func (NopReporter) ReportSuccess(string) {}
func (NopReporter) ReportFailure(string) {}

// FailureResolver converts an opaque action failure into the message shown to
// the user.
type FailureResolver func(err error) string

// UserError carries a message safe to show directly to the user. Actions wrap
// failures they can classify; everything else falls through to the generic
// message.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *UserError) Unwrap() error { return e.Err }

// GenericFailureMessage is the fallback for failures the resolver cannot
// classify.
const GenericFailureMessage = "Something went wrong. Please try again."

// ResolveFailure is the default failure policy: user-classified failures keep
// their message, timeouts and cancellations get a retry hint, and anything
// else collapses to the generic message.
func ResolveFailure(err error) string {
	if err == nil {
		return GenericFailureMessage
	}

	var userErr *UserError
	if errors.As(err, &userErr) && userErr.Message != "" {
		return userErr.Message
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "The request timed out. Please try again."
	}
	if errors.Is(err, context.Canceled) {
		return "The request was cancelled."
	}
	return GenericFailureMessage
}
