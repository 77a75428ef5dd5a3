package form

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestResolveFailure(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: GenericFailureMessage},
		{name: "unknown", err: errors.New("disk full"), want: GenericFailureMessage},
		{name: "timeout", err: context.DeadlineExceeded, want: "The request timed out. Please try again."},
		{name: "wrapped timeout", err: fmt.Errorf("call backend: %w", context.DeadlineExceeded), want: "The request timed out. Please try again."},
		{name: "cancelled", err: context.Canceled, want: "The request was cancelled."},
		{name: "user error", err: &UserError{Message: "Name is taken."}, want: "Name is taken."},
		{name: "wrapped user error", err: fmt.Errorf("create course: %w", &UserError{Message: "Name is taken.", Err: errors.New("409")}), want: "Name is taken."},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveFailure(tc.err); got != tc.want {
				t.Fatalf("resolve: want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestUserError_Error(t *testing.T) {
	err := &UserError{Message: "Name is taken.", Err: errors.New("409 conflict")}
	if got := err.Error(); got != "Name is taken.: 409 conflict" {
		t.Fatalf("unexpected error string: %q", got)
	}
	if !errors.Is(err, err.Err) {
		t.Fatalf("unwrap broken")
	}
}
