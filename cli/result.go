package cli

import "fmt"

// CommandError is returned by a command that already told the user what went
// wrong. main exits with its code without printing anything else.
type CommandError struct {
	code int
}

func NewCommandError(code int) *CommandError {
	return &CommandError{code: code}
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("capita: exit status %d", e.code)
}

// ExitCode is the process exit status to use.
func (e *CommandError) ExitCode() int {
	return e.code
}
