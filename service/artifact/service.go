// Package artifact finds the binary produced by the build.
package artifact

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/thirukguru/cmake-release/model"
	"github.com/thirukguru/cmake-release/service/runner"
)

// NewService creates a locator for project inside buildDir.
func NewService(r runner.Service, project, buildDir, buildType string) Service {
	return &service{
		runner:    r,
		project:   project,
		buildDir:  buildDir,
		buildType: buildType,
		goos:      runtime.GOOS,
		out:       os.Stdout,
	}
}

// Candidates lists where the binary may be, in priority order: the
// per-configuration subdirectory used by multi-config generators, then the
// build directory root.
func Candidates(buildDir, buildType, exeName string) []string {
	return []string{
		filepath.Join(buildDir, buildType, exeName),
		filepath.Join(buildDir, exeName),
	}
}

func (s *service) Locate(ctx context.Context, info model.OsInfo) (model.Artifact, error) {
	exeName := s.project + info.ExecutableExtension

	for _, p := range Candidates(s.buildDir, s.buildType, exeName) {
		st, err := os.Stat(p)
		if err != nil || st.IsDir() {
			continue
		}
		fmt.Fprintf(s.out, "Found artifact: %s\n", p)
		sum, err := checksum(p)
		if err != nil {
			return model.Artifact{}, err
		}
		return model.Artifact{Path: p, Checksum: sum, Size: st.Size()}, nil
	}

	fmt.Fprintf(s.out, "Error: Could not find %s in %s/\n", exeName, s.buildDir)
	fmt.Fprintln(s.out, "Files in build directory:")
	_ = s.runner.Run(ctx, runner.Command{Args: s.listCommand(), NonFatal: true})

	return model.Artifact{}, &model.Reported{
		Err: fmt.Errorf("%w: %s in %s", model.ErrArtifactNotFound, exeName, s.buildDir),
	}
}

func (s *service) listCommand() []string {
	if s.goos == "windows" {
		return []string{"cmd", "/c", "dir", "/s", "/b", s.buildDir}
	}
	return []string{"find", s.buildDir, "-type", "f"}
}

func checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash artifact: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
