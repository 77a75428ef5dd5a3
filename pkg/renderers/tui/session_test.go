package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pigeonhole/go-formkit/pkg/form"
	"github.com/pigeonhole/go-formkit/pkg/testsupport"
)

// scriptedDriver feeds canned answers to the session and records everything
// it was asked.
type scriptedDriver struct {
	inputs    []string
	textareas []string
	confirms  []bool

	prompts []string
	infos   []string
	err     error
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	d.prompts = append(d.prompts, cfg.Message)
	if len(d.inputs) == 0 {
		return cfg.Default, nil
	}
	answer := d.inputs[0]
	d.inputs = d.inputs[1:]
	return answer, nil
}

func (d *scriptedDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	d.prompts = append(d.prompts, cfg.Message)
	if len(d.textareas) == 0 {
		return cfg.Default, nil
	}
	answer := d.textareas[0]
	d.textareas = d.textareas[1:]
	return answer, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	d.prompts = append(d.prompts, cfg.Message)
	if len(d.confirms) == 0 {
		return cfg.Default, nil
	}
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestSession_SubmitsTrimmedValues(t *testing.T) {
	controller := form.NewController(testsupport.ArticleSchema())
	driver := &scriptedDriver{
		inputs:    []string{"  Go at scale  "},
		textareas: []string{"body text"},
		confirms:  []bool{true},
	}

	var got map[string]any
	session := NewSession(controller, func(_ context.Context, values map[string]any) error {
		got = values
		return nil
	}, WithDriver(driver))

	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := map[string]any{
		"title":     "Go at scale",
		"body":      "body text",
		"published": true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("action values mismatch (-want +got):\n%s", diff)
	}
	if len(driver.infos) != 1 || driver.infos[0] != "Saved." {
		t.Fatalf("success message missing: %v", driver.infos)
	}
}

func TestSession_RepromptsUntilValid(t *testing.T) {
	controller := form.NewController(testsupport.ArticleSchema())
	driver := &scriptedDriver{
		// First pass leaves the title blank, second pass fixes it.
		inputs: []string{"   ", "Go at scale"},
	}

	calls := 0
	session := NewSession(controller, func(context.Context, map[string]any) error {
		calls++
		return nil
	}, WithDriver(driver))

	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if calls != 1 {
		t.Fatalf("action calls: %d", calls)
	}

	if len(driver.infos) < 2 {
		t.Fatalf("expected validation message plus success, got %v", driver.infos)
	}
	if want := "Title: Please enter a title"; driver.infos[0] != want {
		t.Fatalf("validation message: %q", driver.infos[0])
	}

	// The second title prompt carries the inline error.
	var repromptSeen bool
	for _, prompt := range driver.prompts {
		if strings.Contains(prompt, "(Please enter a title)") {
			repromptSeen = true
		}
	}
	if !repromptSeen {
		t.Fatalf("re-prompt did not surface the field error: %v", driver.prompts)
	}
}

func TestSession_AttemptBudget(t *testing.T) {
	controller := form.NewController(testsupport.ArticleSchema())
	driver := &scriptedDriver{
		inputs: []string{"", "", ""},
	}

	session := NewSession(controller, func(context.Context, map[string]any) error {
		t.Fatalf("action must not run with invalid input")
		return nil
	}, WithDriver(driver), WithMaxAttempts(3))

	if err := session.Run(context.Background()); !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected attempt budget error, got %v", err)
	}
}

func TestSession_ActionFailureReported(t *testing.T) {
	controller := form.NewController(testsupport.ArticleSchema())
	driver := &scriptedDriver{
		inputs: []string{"Go at scale"},
	}

	session := NewSession(controller, func(context.Context, map[string]any) error {
		return &form.UserError{Message: "A course with this name already exists"}
	}, WithDriver(driver))

	if err := session.Run(context.Background()); !errors.Is(err, ErrSubmitFailed) {
		t.Fatalf("expected submit failure, got %v", err)
	}
	if len(driver.infos) != 1 || driver.infos[0] != "A course with this name already exists" {
		t.Fatalf("failure message: %v", driver.infos)
	}

	// The typed answer survives the failure for a later retry.
	if got := controller.Read("title"); got != "Go at scale" {
		t.Fatalf("value not preserved: %v", got)
	}
}

func TestSession_AbortPropagates(t *testing.T) {
	controller := form.NewController(testsupport.ArticleSchema())
	driver := &scriptedDriver{err: ErrAborted}

	session := NewSession(controller, func(context.Context, map[string]any) error {
		return nil
	}, WithDriver(driver))

	if err := session.Run(context.Background()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected abort, got %v", err)
	}
}

func TestValidateInteger(t *testing.T) {
	cases := []struct {
		answer string
		ok     bool
	}{
		{"", true},
		{"  ", true},
		{"42", true},
		{"-7", true},
		{"4.2", false},
		{"soon", false},
	}
	for _, tc := range cases {
		err := validateInteger(tc.answer)
		if tc.ok && err != nil {
			t.Fatalf("%q: unexpected error %v", tc.answer, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%q: expected error", tc.answer)
		}
	}
}
