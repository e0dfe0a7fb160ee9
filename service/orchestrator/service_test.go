package orchestrator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/cmake-release/model"
	"github.com/thirukguru/cmake-release/service/mirror"
	"github.com/thirukguru/cmake-release/service/output"
	"github.com/thirukguru/cmake-release/service/storage"
)

type callLog struct {
	calls []string
}

func (c *callLog) add(s string) { c.calls = append(c.calls, s) }

type fakePlatform struct {
	log  *callLog
	info model.OsInfo
	err  error
}

func (f *fakePlatform) Detect() (model.OsInfo, error) {
	f.log.add("probe")
	return f.info, f.err
}

type fakeTags struct {
	log *callLog
	err error
}

func (f *fakeTags) Ensure(_ context.Context, tag string) error {
	f.log.add("tag " + tag)
	return f.err
}

type fakeBuilder struct {
	log *callLog
	err error
}

func (f *fakeBuilder) Build(_ context.Context, info model.OsInfo) (string, error) {
	f.log.add("build " + info.Generator)
	return "build", f.err
}

type fakeLocator struct {
	log      *callLog
	artifact model.Artifact
	err      error
}

func (f *fakeLocator) Locate(_ context.Context, _ model.OsInfo) (model.Artifact, error) {
	f.log.add("locate")
	return f.artifact, f.err
}

type fakePublisher struct {
	log *callLog
	err error
}

func (f *fakePublisher) Publish(_ context.Context, plan model.ReleasePlan, artifact model.Artifact, _ model.OsInfo) error {
	f.log.add("publish " + artifact.Path + "#" + plan.ArtifactName)
	return f.err
}

type fakeMirror struct {
	log *callLog
	err error
}

func (f *fakeMirror) Upload(_ context.Context, plan model.ReleasePlan, _ model.Artifact) (*mirror.Upload, error) {
	f.log.add("mirror " + plan.Tag)
	if f.err != nil {
		return nil, f.err
	}
	return &mirror.Upload{URI: "s3://bucket/" + plan.Tag + "/" + plan.ArtifactName, AccountID: "123456789012"}, nil
}

type fakeStorage struct {
	saved []storage.SaveReleaseInput
	err   error
}

func (f *fakeStorage) SaveRelease(ctx context.Context, input storage.SaveReleaseInput) (int64, error) {
	if ctx.Err() != nil {
		return 0, ctx.Err()
	}
	f.saved = append(f.saved, input)
	return int64(len(f.saved)), f.err
}

func (f *fakeStorage) GetRecentReleases(int) ([]storage.ReleaseSummary, error) { return nil, nil }
func (f *fakeStorage) GetReleasesByTag(string) ([]storage.ReleaseSummary, error) {
	return nil, nil
}
func (f *fakeStorage) ListStages(int64) ([]storage.StageEvent, error)     { return nil, nil }
func (f *fakeStorage) Vacuum(context.Context) error                       { return nil }
func (f *fakeStorage) PurgeOlderThan(context.Context, int) (int64, error) { return 0, nil }
func (f *fakeStorage) Close() error                                       { return nil }

type fakeOutput struct {
	log *callLog
}

func (f *fakeOutput) Header(tag string) { f.log.add("header " + tag) }
func (f *fakeOutput) Footer(tag string) { f.log.add("footer " + tag) }
func (f *fakeOutput) RenderSummary(result *model.ReleaseResult) {
	f.log.add("summary " + string(result.Stage))
}
func (f *fakeOutput) RenderHistory([]storage.ReleaseSummary) {}
func (f *fakeOutput) RenderRelease(storage.ReleaseSummary, []storage.StageEvent) {
}

var _ output.Service = (*fakeOutput)(nil)

type fixture struct {
	log       *callLog
	platform  *fakePlatform
	tags      *fakeTags
	builder   *fakeBuilder
	locator   *fakeLocator
	publisher *fakePublisher
	mirror    *fakeMirror
	storage   *fakeStorage
}

func newFixture() *fixture {
	l := &callLog{}
	return &fixture{
		log:       l,
		platform:  &fakePlatform{log: l, info: model.OsInfo{Name: "Ubuntu", Generator: "Unix Makefiles"}},
		tags:      &fakeTags{log: l},
		builder:   &fakeBuilder{log: l},
		locator:   &fakeLocator{log: l, artifact: model.Artifact{Path: "build/MyProject", Checksum: "abc", Size: 10}},
		publisher: &fakePublisher{log: l},
		mirror:    &fakeMirror{log: l},
		storage:   &fakeStorage{},
	}
}

func (f *fixture) service(withMirror, withStorage bool) Service {
	var m mirror.Service
	if withMirror {
		m = f.mirror
	}
	var st storage.Service
	if withStorage {
		st = f.storage
	}
	settings := model.DefaultSettings()
	svc := NewService(f.platform, f.tags, f.builder, f.locator, f.publisher, m, st,
		&fakeOutput{log: f.log}, settings, model.VersionInfo{Version: "1.2.3"}).(*service)

	clock := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	svc.newID = func() string { return "run-fixed" }
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return svc
}

func TestOrchestrateRunsStagesInOrder(t *testing.T) {
	f := newFixture()

	result, err := f.service(false, false).Orchestrate(context.Background(), "2.1.0")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"probe",
		"header v2.1.0",
		"tag v2.1.0",
		"build Unix Makefiles",
		"locate",
		"publish build/MyProject#MyProject-v2.1.0",
		"footer v2.1.0",
		"summary done",
	}, f.log.calls)
	assert.True(t, result.Succeeded())
	assert.Equal(t, "run-fixed", result.RunID)
	assert.Equal(t, "build", result.BuildDir)
	assert.Equal(t, time.Second, result.FinishedAt.Sub(result.StartedAt))
}

func TestOrchestrateStopsAtFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name   string
		setup  func(f *fixture)
		failed model.Stage
		last   string
	}{
		{
			name:   "probe",
			setup:  func(f *fixture) { f.platform.err = model.ErrUnsupportedOS },
			failed: model.StageProbe,
			last:   "probe",
		},
		{
			name:   "tag declined",
			setup:  func(f *fixture) { f.tags.err = model.ErrDeclined },
			failed: model.StageTag,
			last:   "tag v2.1.0",
		},
		{
			name:   "build",
			setup:  func(f *fixture) { f.builder.err = &model.CommandError{Args: []string{"cmake"}, ExitCode: 2} },
			failed: model.StageBuild,
			last:   "build Unix Makefiles",
		},
		{
			name:   "locate",
			setup:  func(f *fixture) { f.locator.err = &model.Reported{Err: model.ErrArtifactNotFound} },
			failed: model.StageLocate,
			last:   "locate",
		},
		{
			name:   "publish",
			setup:  func(f *fixture) { f.publisher.err = boom },
			failed: model.StagePublish,
			last:   "publish build/MyProject#MyProject-v2.1.0",
		},
		{
			name:   "mirror",
			setup:  func(f *fixture) { f.mirror.err = boom },
			failed: model.StageMirror,
			last:   "mirror v2.1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.setup(f)

			result, err := f.service(true, true).Orchestrate(context.Background(), "2.1.0")
			require.Error(t, err)
			require.NotNil(t, result)

			assert.Equal(t, model.StageAborted, result.Stage)
			assert.Equal(t, tt.failed, result.FailedStage)
			assert.Equal(t, tt.last, f.log.calls[len(f.log.calls)-1])
			assert.NotContains(t, f.log.calls, "footer v2.1.0")
			assert.ErrorIs(t, result.Err, err)
		})
	}
}

func TestOrchestrateInvalidVersion(t *testing.T) {
	f := newFixture()

	_, err := f.service(false, true).Orchestrate(context.Background(), "1.0 beta")
	assert.ErrorIs(t, err, model.ErrUsage)
	assert.Equal(t, []string{"probe"}, f.log.calls)
	assert.Empty(t, f.storage.saved)
}

func TestOrchestrateMirrorAndHistory(t *testing.T) {
	f := newFixture()

	result, err := f.service(true, true).Orchestrate(context.Background(), "2.1.0")
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/v2.1.0/MyProject-v2.1.0", result.MirrorURI)

	require.Len(t, f.storage.saved, 1)
	saved := f.storage.saved[0]
	assert.Equal(t, "run-fixed", saved.RunUUID)
	assert.Equal(t, "v2.1.0", saved.Tag)
	assert.Equal(t, "MyProject-v2.1.0", saved.ArtifactName)
	assert.Equal(t, "abc", saved.ArtifactSHA256)
	assert.Equal(t, "123456789012", saved.AWSAccount)
	assert.Equal(t, model.DefaultBuildType, saved.BuildType)
	assert.Equal(t, "1.2.3", saved.CLIVersion)
	assert.Equal(t, storage.StatusSucceeded, saved.Status)
	assert.Len(t, saved.Stages, 6)
	assert.Equal(t, storage.StageEvent{Stage: "mirror", Status: stageStatusDone}, saved.Stages[5])
}

func TestOrchestrateRecordsAbortedRun(t *testing.T) {
	f := newFixture()
	f.builder.err = &model.CommandError{Args: []string{"cmake", "--build", "."}, ExitCode: 2}

	_, err := f.service(false, true).Orchestrate(context.Background(), "2.1.0")
	require.Error(t, err)

	require.Len(t, f.storage.saved, 1)
	saved := f.storage.saved[0]
	assert.Equal(t, storage.StatusAborted, saved.Status)
	assert.Equal(t, "build", saved.FailedStage)
	assert.Equal(t, "Command 'cmake --build .' returned non-zero exit status 2.", saved.ErrorMessage)
	assert.Equal(t, []storage.StageEvent{
		{Stage: "probe", Status: stageStatusDone},
		{Stage: "tag", Status: stageStatusDone},
		{Stage: "build", Status: stageStatusFailed},
	}, saved.Stages)
}

func TestOrchestrateRecordsInterruptedRun(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f.tags.err = model.ErrInterrupted

	_, err := f.service(false, true).Orchestrate(ctx, "2.1.0")
	assert.ErrorIs(t, err, model.ErrInterrupted)
	require.Len(t, f.storage.saved, 1)
	assert.Equal(t, "tag", f.storage.saved[0].FailedStage)
}

func TestOrchestrateHistoryFailureIsNotFatal(t *testing.T) {
	f := newFixture()
	f.storage.err = errors.New("disk full")

	result, err := f.service(false, true).Orchestrate(context.Background(), "2.1.0")
	require.NoError(t, err)
	assert.True(t, result.Succeeded())
}

func TestNewServiceDefaults(t *testing.T) {
	svc := NewService(nil, nil, nil, nil, nil, nil, nil, nil, model.DefaultSettings(), model.VersionInfo{}).(*service)
	assert.NotEmpty(t, svc.newID())
	assert.WithinDuration(t, time.Now(), svc.now(), time.Minute)
}

func TestOrchestrateMirrorErrorUnchanged(t *testing.T) {
	f := newFixture()
	f.mirror.err = errors.New("mirror: put s3://bucket/v2.1.0/MyProject-v2.1.0: AccessDenied")

	_, err := f.service(true, false).Orchestrate(context.Background(), "2.1.0")
	require.Error(t, err)
	assert.Equal(t, "mirror: put s3://bucket/v2.1.0/MyProject-v2.1.0: AccessDenied", err.Error())
}
