package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/capita/ledger"
	"github.com/robinvdvleuten/capita/report"
)

func TestCommandError(t *testing.T) {
	err := NewCommandError(2)
	assert.EqualError(t, err, "capita: exit status 2")
	assert.Equal(t, 2, err.ExitCode())

	t.Run("SurvivesWrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("rm: %w", NewCommandError(1))
		assertCommandError(t, wrapped)
	})
}

func TestSessionFail(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		stderr string
	}{
		{"Validation", ledger.ErrPriceNotPositive, "Price must be greater than 0"},
		{"WrappedValidation", fmt.Errorf("add: %w", ledger.ErrNotANumber), "Enter a number"},
		{"NoExpenses", report.ErrNoExpenses, "No expenses available for this month!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			s := &session{kctx: &kong.Context{Kong: &kong.Kong{Stderr: &stderr}}}

			assertCommandError(t, s.fail(tt.err))
			assert.Contains(t, stderr.String(), tt.stderr)
		})
	}

	t.Run("PassesThroughOtherErrors", func(t *testing.T) {
		var stderr bytes.Buffer
		s := &session{kctx: &kong.Context{Kong: &kong.Kong{Stderr: &stderr}}}

		err := errors.New("disk full")
		assert.Equal(t, err, s.fail(err))
		assert.Equal(t, "", stderr.String())
	})
}
