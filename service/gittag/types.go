package gittag

import (
	"context"
	"io"

	"github.com/thirukguru/cmake-release/service/prompt"
	"github.com/thirukguru/cmake-release/service/runner"
)

type service struct {
	runner runner.Service
	prompt prompt.Service
	remote string
	out    io.Writer
}

// Service is the interface for release tag management.
type Service interface {
	// Ensure creates an annotated tag and pushes it, replacing an existing
	// local tag only after confirmation.
	Ensure(ctx context.Context, tag string) error
}
