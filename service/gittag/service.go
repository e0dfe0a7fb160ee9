// Package gittag creates and pushes the annotated release tag.
package gittag

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thirukguru/cmake-release/model"
	"github.com/thirukguru/cmake-release/service/prompt"
	"github.com/thirukguru/cmake-release/service/runner"
)

// NewService creates a new tag service pushing to remote.
func NewService(r runner.Service, p prompt.Service, remote string) Service {
	return newServiceWithOutput(r, p, remote, os.Stdout)
}

func newServiceWithOutput(r runner.Service, p prompt.Service, remote string, out io.Writer) Service {
	if remote == "" {
		remote = model.DefaultRemote
	}
	return &service{runner: r, prompt: p, remote: remote, out: out}
}

func (s *service) Ensure(ctx context.Context, tag string) error {
	exists, err := s.exists(ctx, tag)
	if err != nil {
		return err
	}

	if exists {
		fmt.Fprintf(s.out, "Warning: Tag %s already exists locally.\n", tag)
		ok, err := s.prompt.Confirm(ctx, fmt.Sprintf("Do you want to delete the old local tag '%s' and continue?", tag))
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: keeping existing tag %s", model.ErrDeclined, tag)
		}
		if err := s.runner.Run(ctx, runner.Command{Args: []string{"git", "tag", "-d", tag}}); err != nil {
			return err
		}
	}

	fmt.Fprintf(s.out, "Creating git tag: %s\n", tag)
	if err := s.runner.Run(ctx, runner.Command{Args: []string{"git", "tag", "-a", tag, "-m", "Release " + tag}}); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Pushing tag to %s\n", s.remote)
	return s.runner.Run(ctx, runner.Command{Args: []string{"git", "push", s.remote, tag}})
}

func (s *service) exists(ctx context.Context, tag string) (bool, error) {
	listed, err := s.runner.Output(ctx, runner.Command{Args: []string{"git", "tag", "-l", tag}})
	if err != nil {
		return false, fmt.Errorf("list tags: %w", err)
	}
	for _, line := range strings.Split(listed, "\n") {
		if strings.TrimSpace(line) == tag {
			return true, nil
		}
	}
	return false, nil
}
