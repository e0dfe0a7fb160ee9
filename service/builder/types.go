package builder

import (
	"context"
	"io"

	"github.com/thirukguru/cmake-release/model"
	"github.com/thirukguru/cmake-release/service/runner"
)

type service struct {
	runner    runner.Service
	sourceDir string
	buildDir  string
	buildType string
	out       io.Writer
}

// Service is the interface for configuring and compiling the project.
type Service interface {
	// Build configures and compiles the project, returning the build directory.
	Build(ctx context.Context, info model.OsInfo) (string, error)
}
