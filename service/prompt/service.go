// Package prompt asks the user for yes/no confirmation on the terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thirukguru/cmake-release/model"
)

// NewService creates a prompt reading stdin. With assumeYes every question is
// answered yes without reading input.
func NewService(assumeYes bool) Service {
	return NewServiceWithIO(os.Stdin, os.Stdout, assumeYes)
}

// NewServiceWithIO creates a prompt on the given streams.
func NewServiceWithIO(in io.Reader, out io.Writer, assumeYes bool) Service {
	return &service{
		in:        bufio.NewReader(in),
		out:       out,
		assumeYes: assumeYes,
	}
}

type answer struct {
	line string
	err  error
}

// Confirm prints the question with a "(y/n)" suffix and reads one line.
// EOF is a "no"; a cancelled context is ErrInterrupted.
func (s *service) Confirm(ctx context.Context, question string) (bool, error) {
	fmt.Fprintf(s.out, "%s (y/n): ", question)
	if s.assumeYes {
		fmt.Fprintln(s.out, "y")
		return true, nil
	}

	// The read cannot be cancelled, so it runs aside while we wait on ctx.
	ch := make(chan answer, 1)
	go func() {
		line, err := s.in.ReadString('\n')
		ch <- answer{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, model.ErrInterrupted
	case a := <-ch:
		if a.err != nil && !errors.Is(a.err, io.EOF) {
			return false, fmt.Errorf("read confirmation: %w", a.err)
		}
		return isYes(a.line), nil
	}
}

func isYes(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
