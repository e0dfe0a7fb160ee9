package runner

import (
	"context"
	"io"
	"os/exec"
)

// Command describes one external invocation.
type Command struct {
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
	// NonFatal commands report failure through the log only.
	NonFatal bool
}

type service struct {
	stdout   io.Writer
	stderr   io.Writer
	lookPath func(string) (string, error)
	command  func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// Service runs external commands for the pipeline stages.
type Service interface {
	Run(ctx context.Context, cmd Command) error
	Output(ctx context.Context, cmd Command) (string, error)
	LookPath(name string) (string, error)
}
