// Package runner executes the external tools the release pipeline wraps.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thirukguru/cmake-release/model"
)

// NewService creates a runner that streams command output to the terminal.
func NewService() Service {
	return NewServiceWithOutput(os.Stdout, os.Stderr)
}

// NewServiceWithOutput creates a runner writing to the given streams.
func NewServiceWithOutput(stdout, stderr io.Writer) Service {
	return &service{
		stdout:   stdout,
		stderr:   stderr,
		lookPath: exec.LookPath,
		command:  exec.CommandContext,
	}
}

func (s *service) Run(ctx context.Context, c Command) error {
	if len(c.Args) == 0 {
		return errors.New("runner: empty command")
	}
	fmt.Fprintf(s.stdout, ">> Running: %s\n", strings.Join(c.Args, " "))

	cmd := s.command(ctx, c.Args[0], c.Args[1:]...)
	cmd.Dir = c.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	return s.finish(ctx, c, cmd.Run)
}

func (s *service) Output(ctx context.Context, c Command) (string, error) {
	if len(c.Args) == 0 {
		return "", errors.New("runner: empty command")
	}

	var stdout bytes.Buffer
	cmd := s.command(ctx, c.Args[0], c.Args[1:]...)
	cmd.Dir = c.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = s.stderr

	if err := s.finish(ctx, c, cmd.Run); err != nil {
		return "", err
	}
	return stdout.String(), nil
}

func (s *service) LookPath(name string) (string, error) {
	return s.lookPath(name)
}

func (s *service) finish(ctx context.Context, c Command, run func() error) error {
	start := time.Now()
	err := run()
	logger := log.Debug().
		Strs("args", c.Args).
		Str("dir", c.Dir).
		Dur("took", time.Since(start))

	if err == nil {
		logger.Msg("command finished")
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		logger.Err(ctxErr).Msg("command cancelled")
		return fmt.Errorf("%w: %s", model.ErrInterrupted, strings.Join(c.Args, " "))
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	if exitErr != nil && interruptedExit(exitErr) {
		logger.Err(err).Int("exit_code", exitCode).Msg("command interrupted")
		return fmt.Errorf("%w: %s", model.ErrInterrupted, strings.Join(c.Args, " "))
	}

	if c.NonFatal {
		logger.Err(err).Int("exit_code", exitCode).Msg("non-fatal command failed")
		return nil
	}
	logger.Err(err).Int("exit_code", exitCode).Msg("command failed")

	if exitErr == nil {
		return fmt.Errorf("failed to execute %s: %w", c.Args[0], err)
	}
	return &model.CommandError{Args: c.Args, ExitCode: exitCode}
}

// sigintExitStatus is what shells and most CLIs exit with after Ctrl-C.
const sigintExitStatus = 128 + 2

// interruptedExit reports whether the child died from Ctrl-C. The terminal
// delivers SIGINT to the child and to us together, so the child may exit
// before our context is cancelled.
func interruptedExit(exitErr *exec.ExitError) bool {
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() && ws.Signal() == syscall.SIGINT {
		return true
	}
	return exitErr.ExitCode() == sigintExitStatus
}
