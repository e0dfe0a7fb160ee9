package publisher

import (
	"context"
	"io"

	"github.com/thirukguru/cmake-release/model"
	"github.com/thirukguru/cmake-release/service/runner"
)

const (
	ghBinary      = "gh"
	ghInstallHint = "https://cli.github.com/"
)

type service struct {
	runner runner.Service
	repo   string
	out    io.Writer
}

// Service is the interface for publishing the hosted release.
type Service interface {
	Publish(ctx context.Context, plan model.ReleasePlan, artifact model.Artifact, info model.OsInfo) error
}
