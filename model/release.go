package model

import (
	"fmt"
	"strings"
	"time"
)

// TagPrefix is prepended to the user-supplied version.
const TagPrefix = "v"

// ReleasePlan holds the names derived from the version argument.
type ReleasePlan struct {
	Version      string
	Tag          string
	Project      string
	ArtifactName string
}

// NewReleasePlan derives the tag and the uploaded artifact name.
func NewReleasePlan(project, version string, info OsInfo) (ReleasePlan, error) {
	if strings.TrimSpace(version) == "" {
		return ReleasePlan{}, fmt.Errorf("%w: no version tag provided", ErrUsage)
	}
	if strings.ContainsAny(version, " \t\r\n") {
		return ReleasePlan{}, fmt.Errorf("%w: version %q contains whitespace", ErrUsage, version)
	}

	tag := TagPrefix + version
	return ReleasePlan{
		Version:      version,
		Tag:          tag,
		Project:      project,
		ArtifactName: project + "-" + tag + info.ExecutableExtension,
	}, nil
}

// Artifact is the compiled binary found after the build.
type Artifact struct {
	Path     string
	Checksum string
	Size     int64
}

// Stage identifies a pipeline step.
type Stage string

const (
	StageProbe   Stage = "probe"
	StageTag     Stage = "tag"
	StageBuild   Stage = "build"
	StageLocate  Stage = "locate"
	StagePublish Stage = "publish"
	StageMirror  Stage = "mirror"
	StageDone    Stage = "done"
	StageAborted Stage = "aborted"
)

// ReleaseResult is the outcome of one pipeline run.
type ReleaseResult struct {
	RunID     string
	Plan      ReleasePlan
	OsInfo    OsInfo
	BuildDir  string
	Artifact  Artifact
	MirrorURI string
	// MirrorAccount is the AWS account that received the mirror upload.
	MirrorAccount string
	Stage         Stage
	FailedStage   Stage
	Err           error
	StartedAt     time.Time
	FinishedAt    time.Time
}

// Succeeded reports whether every stage completed.
func (r *ReleaseResult) Succeeded() bool {
	return r != nil && r.Stage == StageDone
}
