package main

import (
	"context"
	"fmt"

	"github.com/thirukguru/cmake-release/model"
	"github.com/thirukguru/cmake-release/service/artifact"
	"github.com/thirukguru/cmake-release/service/awsconfig"
	"github.com/thirukguru/cmake-release/service/builder"
	"github.com/thirukguru/cmake-release/service/gittag"
	"github.com/thirukguru/cmake-release/service/mirror"
	"github.com/thirukguru/cmake-release/service/orchestrator"
	"github.com/thirukguru/cmake-release/service/output"
	"github.com/thirukguru/cmake-release/service/platform"
	"github.com/thirukguru/cmake-release/service/prompt"
	"github.com/thirukguru/cmake-release/service/publisher"
	"github.com/thirukguru/cmake-release/service/runner"
	"github.com/thirukguru/cmake-release/service/storage"
)

func runRelease(ctx context.Context, version string, settings model.Settings, versionInfo model.VersionInfo) error {
	runnerService := runner.NewService()
	promptService := prompt.NewService(settings.AssumeYes)

	platformService := platform.NewService(platform.WithGenerator(settings.Generator))
	tagService := gittag.NewService(runnerService, promptService, settings.Remote)
	builderService := builder.NewService(runnerService, settings.BuildDir, settings.BuildType)
	artifactService := artifact.NewService(runnerService, settings.Project, settings.BuildDir, settings.BuildType)
	publisherService := publisher.NewService(runnerService, settings.Repo())
	outputService := output.NewService()

	mirrorService, err := newMirrorService(ctx, settings)
	if err != nil {
		return err
	}

	var storageService storage.Service
	if settings.HistoryEnabled {
		storageService, err = storage.NewService(settings.HistoryDBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer storageService.Close()
	}

	orchestratorService := orchestrator.NewService(
		platformService,
		tagService,
		builderService,
		artifactService,
		publisherService,
		mirrorService,
		storageService,
		outputService,
		settings,
		versionInfo,
	)
	_, err = orchestratorService.Orchestrate(ctx, version)
	return err
}

// newMirrorService loads AWS credentials up front so a bad profile fails
// before anything is tagged. It returns nil when no bucket is configured.
func newMirrorService(ctx context.Context, settings model.Settings) (mirror.Service, error) {
	if !settings.MirrorEnabled() {
		return nil, nil
	}
	awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, settings.S3Region, settings.S3Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for artifact mirror: %w", err)
	}
	return mirror.NewService(awsCfg, settings.S3Bucket, settings.S3Prefix), nil
}
