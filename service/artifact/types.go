package artifact

import (
	"context"
	"io"

	"github.com/thirukguru/cmake-release/model"
	"github.com/thirukguru/cmake-release/service/runner"
)

type service struct {
	runner    runner.Service
	project   string
	buildDir  string
	buildType string
	goos      string
	out       io.Writer
}

// Service is the interface for locating the compiled binary.
type Service interface {
	Locate(ctx context.Context, info model.OsInfo) (model.Artifact, error)
}
