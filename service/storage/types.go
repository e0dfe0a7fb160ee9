package storage

import (
	"context"
	"time"
)

// Release statuses.
const (
	StatusSucceeded = "SUCCEEDED"
	StatusAborted   = "ABORTED"
)

// Service defines persistence and query operations for release history.
type Service interface {
	SaveRelease(ctx context.Context, input SaveReleaseInput) (int64, error)
	GetRecentReleases(limit int) ([]ReleaseSummary, error)
	GetReleasesByTag(tag string) ([]ReleaseSummary, error)
	ListStages(releaseID int64) ([]StageEvent, error)
	Vacuum(ctx context.Context) error
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
	Close() error
}

// SaveReleaseInput is the payload saved for a finished run.
type SaveReleaseInput struct {
	RunUUID        string
	Tag            string
	Version        string
	Project        string
	OSName         string
	Generator      string
	BuildType      string
	ArtifactPath   string
	ArtifactName   string
	ArtifactSHA256 string
	ArtifactSize   int64
	MirrorURI      string
	AWSAccount     string
	Status         string
	FailedStage    string
	ErrorMessage   string
	CLIVersion     string
	StartedAt      time.Time
	FinishedAt     time.Time
	// Stages lists the stages reached, in order.
	Stages []StageEvent
}

// StageEvent records one stage outcome.
type StageEvent struct {
	Stage  string
	Status string
}

// ReleaseSummary provides compact release metadata.
type ReleaseSummary struct {
	ReleaseID      int64
	RunUUID        string
	Tag            string
	Project        string
	OSName         string
	ArtifactName   string
	ArtifactSHA256 string
	MirrorURI      string
	Status         string
	FailedStage    string
	ErrorMessage   string
	StartedAt      time.Time
	FinishedAt     time.Time
}

// Duration is the wall time of the run.
func (r ReleaseSummary) Duration() time.Duration {
	if r.FinishedAt.Before(r.StartedAt) {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
