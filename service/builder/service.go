// Package builder drives the CMake configure and build steps.
package builder

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/thirukguru/cmake-release/model"
	"github.com/thirukguru/cmake-release/service/runner"
)

// NewService creates a builder for the project in the current directory.
// A relative buildDir is resolved against that directory.
func NewService(r runner.Service, buildDir, buildType string) Service {
	sourceDir, err := os.Getwd()
	if err != nil {
		sourceDir = "."
	}
	return newServiceWithOutput(r, sourceDir, buildDir, buildType, os.Stdout)
}

func newServiceWithOutput(r runner.Service, sourceDir, buildDir, buildType string, out io.Writer) Service {
	if buildDir == "" {
		buildDir = model.DefaultBuildDir
	}
	if buildType == "" {
		buildType = model.DefaultBuildType
	}
	return &service{runner: r, sourceDir: sourceDir, buildDir: buildDir, buildType: buildType, out: out}
}

// sourceArg is the source directory as seen from inside the build
// directory: ".." for the usual "build" child, absolute when no relative
// path exists.
func (s *service) sourceArg() string {
	absSource, err := filepath.Abs(s.sourceDir)
	if err != nil {
		return s.sourceDir
	}
	absBuild := s.buildDir
	if !filepath.IsAbs(absBuild) {
		absBuild = filepath.Join(absSource, absBuild)
	}
	rel, err := filepath.Rel(absBuild, absSource)
	if err != nil {
		return absSource
	}
	return rel
}

// Build runs both CMake steps inside the build directory. Each subprocess gets
// the build directory as its own working directory; the process cwd is left
// untouched on every path.
func (s *service) Build(ctx context.Context, info model.OsInfo) (string, error) {
	fmt.Fprintf(s.out, "Compiling project for %s...\n", info.Name)

	if err := os.MkdirAll(s.buildDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create build directory %s: %w", s.buildDir, err)
	}

	configure := runner.Command{
		Args: []string{"cmake", s.sourceArg(), "-G", info.Generator, "-DCMAKE_BUILD_TYPE=" + s.buildType},
		Dir:  s.buildDir,
	}
	if err := s.runner.Run(ctx, configure); err != nil {
		return "", err
	}

	build := runner.Command{
		Args: []string{"cmake", "--build", ".", "--config", s.buildType},
		Dir:  s.buildDir,
	}
	if err := s.runner.Run(ctx, build); err != nil {
		return "", err
	}

	fmt.Fprintln(s.out, "Build successful!")
	return s.buildDir, nil
}
