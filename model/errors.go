package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUsage            = errors.New("usage error")
	ErrUnsupportedOS    = errors.New("unsupported OS")
	ErrDeclined         = errors.New("declined by user")
	ErrInterrupted      = errors.New("interrupted")
	ErrArtifactNotFound = errors.New("artifact not found")
	ErrToolMissing      = errors.New("required tool not found in PATH")
)

// CommandError reports an external command that exited non-zero.
type CommandError struct {
	Args     []string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("Command '%s' returned non-zero exit status %d.", strings.Join(e.Args, " "), e.ExitCode)
}

// Reported marks an error whose diagnostic was already printed.
type Reported struct {
	Err error
}

func (e *Reported) Error() string { return e.Err.Error() }

func (e *Reported) Unwrap() error { return e.Err }

// IsReported reports whether err already produced user-facing output.
func IsReported(err error) bool {
	var r *Reported
	return errors.As(err, &r)
}
