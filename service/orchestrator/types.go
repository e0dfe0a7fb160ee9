package orchestrator

import (
	"context"
	"time"

	"github.com/thirukguru/cmake-release/model"
	"github.com/thirukguru/cmake-release/service/artifact"
	"github.com/thirukguru/cmake-release/service/builder"
	"github.com/thirukguru/cmake-release/service/gittag"
	"github.com/thirukguru/cmake-release/service/mirror"
	"github.com/thirukguru/cmake-release/service/output"
	"github.com/thirukguru/cmake-release/service/platform"
	"github.com/thirukguru/cmake-release/service/publisher"
	"github.com/thirukguru/cmake-release/service/storage"
)

type service struct {
	// Pipeline stages
	platformService  platform.Service
	tagService       gittag.Service
	builderService   builder.Service
	artifactService  artifact.Service
	publisherService publisher.Service
	// Optional: nil disables the stage.
	mirrorService  mirror.Service
	storageService storage.Service

	outputService output.Service
	settings      model.Settings
	versionInfo   model.VersionInfo

	newID func() string
	now   func() time.Time
}

// Service is the interface for orchestrator service.
type Service interface {
	// Orchestrate runs one release for version. The returned result is
	// non-nil even when a stage fails.
	Orchestrate(ctx context.Context, version string) (*model.ReleaseResult, error)
}
