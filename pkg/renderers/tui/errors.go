package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrSubmitFailed signals the submission action failed after valid input.
	ErrSubmitFailed = errors.New("tui: submission failed")
	// ErrTooManyAttempts signals the user exhausted the validation retry
	// budget without producing a valid submission.
	ErrTooManyAttempts = errors.New("tui: too many invalid attempts")
)
