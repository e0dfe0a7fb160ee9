package orchestrator

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/thirukguru/cmake-release/model"
	"github.com/thirukguru/cmake-release/service/storage"
)

const (
	stageStatusDone   = "done"
	stageStatusFailed = "failed"
)

func (s *service) stageOrder() []model.Stage {
	order := []model.Stage{
		model.StageProbe,
		model.StageTag,
		model.StageBuild,
		model.StageLocate,
		model.StagePublish,
	}
	if s.mirrorService != nil {
		order = append(order, model.StageMirror)
	}
	return order
}

// stageEvents lists the stages the run reached. An aborted run ends with its
// failed stage.
func (s *service) stageEvents(result *model.ReleaseResult) []storage.StageEvent {
	events := []storage.StageEvent{}
	for _, st := range s.stageOrder() {
		if result.Stage == model.StageAborted && st == result.FailedStage {
			events = append(events, storage.StageEvent{Stage: string(st), Status: stageStatusFailed})
			break
		}
		events = append(events, storage.StageEvent{Stage: string(st), Status: stageStatusDone})
	}
	return events
}

func (s *service) persistReleaseIfEnabled(ctx context.Context, result *model.ReleaseResult) error {
	if s.storageService == nil {
		return nil
	}
	if result.Plan.Tag == "" {
		log.Debug().Msg("no release plan, skipping history")
		return nil
	}

	status := storage.StatusSucceeded
	errMsg := ""
	if !result.Succeeded() {
		status = storage.StatusAborted
		if result.Err != nil {
			errMsg = result.Err.Error()
		}
	}

	_, err := s.storageService.SaveRelease(ctx, storage.SaveReleaseInput{
		RunUUID:        result.RunID,
		Tag:            result.Plan.Tag,
		Version:        result.Plan.Version,
		Project:        result.Plan.Project,
		OSName:         result.OsInfo.Name,
		Generator:      result.OsInfo.Generator,
		BuildType:      s.settings.BuildType,
		ArtifactPath:   result.Artifact.Path,
		ArtifactName:   result.Plan.ArtifactName,
		ArtifactSHA256: result.Artifact.Checksum,
		ArtifactSize:   result.Artifact.Size,
		MirrorURI:      result.MirrorURI,
		AWSAccount:     result.MirrorAccount,
		Status:         status,
		FailedStage:    string(result.FailedStage),
		ErrorMessage:   errMsg,
		CLIVersion:     s.versionInfo.Version,
		StartedAt:      result.StartedAt,
		FinishedAt:     result.FinishedAt,
		Stages:         s.stageEvents(result),
	})
	return err
}
