package artifact

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/cmake-release/model"
	"github.com/thirukguru/cmake-release/service/runner"
)

type fakeRunner struct {
	commands []runner.Command
}

func (f *fakeRunner) Run(_ context.Context, c runner.Command) error {
	f.commands = append(f.commands, c)
	if c.NonFatal {
		return nil
	}
	return &model.CommandError{Args: c.Args, ExitCode: 1}
}

func (f *fakeRunner) Output(context.Context, runner.Command) (string, error) { return "", nil }

func (f *fakeRunner) LookPath(name string) (string, error) { return name, nil }

func newTestLocator(r runner.Service, buildDir, goos string, out *bytes.Buffer) *service {
	return &service{
		runner:    r,
		project:   "MyProject",
		buildDir:  buildDir,
		buildType: "Release",
		goos:      goos,
		out:       out,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o755))
}

func TestLocatePrefersConfigurationSubdirectory(t *testing.T) {
	buildDir := t.TempDir()
	writeFile(t, filepath.Join(buildDir, "MyProject"), "root")
	writeFile(t, filepath.Join(buildDir, "Release", "MyProject"), "release")

	var out bytes.Buffer
	a, err := newTestLocator(&fakeRunner{}, buildDir, "linux", &out).Locate(context.Background(), model.OsInfo{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(buildDir, "Release", "MyProject"), a.Path)
	assert.Equal(t, int64(len("release")), a.Size)
	assert.Len(t, a.Checksum, 64)
	assert.Contains(t, out.String(), "Found artifact: ")
}

func TestLocateFallsBackToRoot(t *testing.T) {
	buildDir := t.TempDir()
	writeFile(t, filepath.Join(buildDir, "MyProject.exe"), "bin")

	a, err := newTestLocator(&fakeRunner{}, buildDir, "windows", &bytes.Buffer{}).
		Locate(context.Background(), model.OsInfo{ExecutableExtension: ".exe"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(buildDir, "MyProject.exe"), a.Path)
}

func TestLocateSkipsDirectories(t *testing.T) {
	buildDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(buildDir, "Release", "MyProject"), 0o755))
	writeFile(t, filepath.Join(buildDir, "MyProject"), "root")

	a, err := newTestLocator(&fakeRunner{}, buildDir, "linux", &bytes.Buffer{}).Locate(context.Background(), model.OsInfo{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(buildDir, "MyProject"), a.Path)
}

func TestLocateMissingListsBuildDirectory(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{goos: "linux", want: "find %s -type f"},
		{goos: "windows", want: "cmd /c dir /s /b %s"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			buildDir := t.TempDir()
			r := &fakeRunner{}
			var out bytes.Buffer

			_, err := newTestLocator(r, buildDir, tt.goos, &out).Locate(context.Background(), model.OsInfo{})
			require.ErrorIs(t, err, model.ErrArtifactNotFound)
			assert.True(t, model.IsReported(err))

			require.Len(t, r.commands, 1)
			assert.True(t, r.commands[0].NonFatal)
			assert.Equal(t, strings.Replace(tt.want, "%s", buildDir, 1), strings.Join(r.commands[0].Args, " "))
			assert.Contains(t, out.String(), "Error: Could not find MyProject in "+buildDir+"/")
			assert.Contains(t, out.String(), "Files in build directory:")
		})
	}
}

func TestCandidatesOrder(t *testing.T) {
	got := Candidates("build", "Release", "MyProject")
	assert.Equal(t, []string{
		filepath.Join("build", "Release", "MyProject"),
		filepath.Join("build", "MyProject"),
	}, got)
}
