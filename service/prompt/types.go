package prompt

import (
	"bufio"
	"context"
	"io"
)

type service struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

// Service is the interface for interactive yes/no confirmation.
type Service interface {
	Confirm(ctx context.Context, question string) (bool, error)
}
