// Package publisher creates the GitHub release through the gh CLI.
package publisher

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/thirukguru/cmake-release/model"
	"github.com/thirukguru/cmake-release/service/runner"
)

// NewService creates a publisher. An empty repo ("owner/name") lets gh infer
// the repository from the git remote.
func NewService(r runner.Service, repo string) Service {
	return newServiceWithOutput(r, repo, os.Stdout)
}

func newServiceWithOutput(r runner.Service, repo string, out io.Writer) Service {
	return &service{runner: r, repo: repo, out: out}
}

func (s *service) Publish(ctx context.Context, plan model.ReleasePlan, artifact model.Artifact, info model.OsInfo) error {
	fmt.Fprintln(s.out, "Creating GitHub Release...")

	if _, err := s.runner.LookPath(ghBinary); err != nil {
		fmt.Fprintln(s.out, "Error: GitHub CLI (gh) is not installed or not in PATH.")
		fmt.Fprintf(s.out, "Please install it: %s\n", ghInstallHint)
		return &model.Reported{Err: fmt.Errorf("%w: %s", model.ErrToolMissing, ghBinary)}
	}

	return s.runner.Run(ctx, runner.Command{Args: ReleaseArgs(plan, artifact, info, s.repo)})
}

// ReleaseArgs builds the gh invocation. The "path#name" form uploads the file
// under a different display name.
func ReleaseArgs(plan model.ReleasePlan, artifact model.Artifact, info model.OsInfo, repo string) []string {
	args := []string{
		ghBinary, "release", "create", plan.Tag,
		artifact.Path + "#" + plan.ArtifactName,
		"--title", "Release " + plan.Tag,
		"--notes", fmt.Sprintf("Automated release for version %s on %s", plan.Tag, info.Name),
	}
	if repo != "" {
		args = append(args, "--repo", repo)
	}
	return args
}
