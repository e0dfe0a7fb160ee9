// Package orchestrator drives the release pipeline stage by stage.
package orchestrator

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
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

// NewService creates a new orchestrator service.
func NewService(
	platformService platform.Service,
	tagService gittag.Service,
	builderService builder.Service,
	artifactService artifact.Service,
	publisherService publisher.Service,
	// Optional stages
	mirrorService mirror.Service,
	storageService storage.Service,
	outputService output.Service,
	settings model.Settings,
	versionInfo model.VersionInfo,
) Service {
	return &service{
		platformService:  platformService,
		tagService:       tagService,
		builderService:   builderService,
		artifactService:  artifactService,
		publisherService: publisherService,
		mirrorService:    mirrorService,
		storageService:   storageService,
		outputService:    outputService,
		settings:         settings,
		versionInfo:      versionInfo,
		newID:            uuid.NewString,
		now:              time.Now,
	}
}

func (s *service) Orchestrate(ctx context.Context, version string) (*model.ReleaseResult, error) {
	result := &model.ReleaseResult{
		RunID:     s.newID(),
		StartedAt: s.now(),
	}
	logger := log.With().Str("run", result.RunID).Logger()

	err := s.runStages(ctx, version, result)
	result.FinishedAt = s.now()
	if err != nil {
		result.FailedStage = result.Stage
		result.Stage = model.StageAborted
		result.Err = err
		logger.Debug().Err(err).Str("stage", string(result.FailedStage)).Msg("release aborted")
	} else {
		logger.Debug().Dur("duration", result.FinishedAt.Sub(result.StartedAt)).Msg("release finished")
	}

	// The run is recorded even when it was interrupted.
	if perr := s.persistReleaseIfEnabled(context.WithoutCancel(ctx), result); perr != nil {
		logger.Warn().Err(perr).Msg("failed to record release history")
	}

	if err != nil {
		return result, err
	}

	s.outputService.Footer(result.Plan.Tag)
	s.outputService.RenderSummary(result)
	return result, nil
}

// runStages advances result.Stage before each step so a failure leaves the
// failing stage in place.
func (s *service) runStages(ctx context.Context, version string, result *model.ReleaseResult) error {
	var err error

	result.Stage = model.StageProbe
	if result.OsInfo, err = s.platformService.Detect(); err != nil {
		return err
	}
	if result.Plan, err = model.NewReleasePlan(s.settings.Project, version, result.OsInfo); err != nil {
		return err
	}
	log.Debug().
		Str("os", result.OsInfo.Name).
		Str("generator", result.OsInfo.Generator).
		Str("tag", result.Plan.Tag).
		Msg("environment probed")

	s.outputService.Header(result.Plan.Tag)

	result.Stage = model.StageTag
	if err = s.tagService.Ensure(ctx, result.Plan.Tag); err != nil {
		return err
	}

	result.Stage = model.StageBuild
	if result.BuildDir, err = s.builderService.Build(ctx, result.OsInfo); err != nil {
		return err
	}

	result.Stage = model.StageLocate
	if result.Artifact, err = s.artifactService.Locate(ctx, result.OsInfo); err != nil {
		return err
	}

	result.Stage = model.StagePublish
	if err = s.publisherService.Publish(ctx, result.Plan, result.Artifact, result.OsInfo); err != nil {
		return err
	}

	if s.mirrorService != nil {
		result.Stage = model.StageMirror
		upload, err := s.mirrorService.Upload(ctx, result.Plan, result.Artifact)
		if err != nil {
			return err
		}
		result.MirrorURI = upload.URI
		result.MirrorAccount = upload.AccountID
	}

	result.Stage = model.StageDone
	return nil
}
