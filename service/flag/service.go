package flag

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/thirukguru/cmake-release/model"
)

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses and returns the command-line flags.
func (s *service) GetParsedFlags() (model.Flags, error) {
	configPath := pflag.String("config-path", "", "Path to cmake-release config file (default .cmake-release.yaml)")
	project := pflag.String("project", "", "CMake project name (default MyProject)")
	buildDir := pflag.String("build-dir", "", "Build directory (default build)")
	buildType := pflag.String("build-type", "", "CMake build type (default Release)")
	generator := pflag.String("generator", "", "Override the CMake generator chosen for this OS")
	remote := pflag.String("remote", "", "Git remote the tag is pushed to (default origin)")
	repoOwner := pflag.String("repo-owner", "", "GitHub repository owner")
	repoName := pflag.String("repo-name", "", "GitHub repository name")
	assumeYes := pflag.BoolP("yes", "y", false, "Answer yes to confirmation prompts")
	verbose := pflag.Bool("verbose", false, "Enable debug logging")
	version := pflag.BoolP("version", "v", false, "Show version information")
	store := pflag.Bool("store", false, "Record the run in the local SQLite history")
	dbPath := pflag.String("db-path", "", "Custom SQLite database path (default ~/.cmake-release/history.db)")
	s3Bucket := pflag.String("s3-bucket", "", "Also upload the artifact to this S3 bucket")
	s3Prefix := pflag.String("s3-prefix", "", "Key prefix for S3 uploads")
	region := pflag.StringP("region", "r", "", "AWS region for S3 uploads")
	profile := pflag.StringP("profile", "p", "", "AWS profile for S3 uploads")

	pflag.Parse()

	if pflag.NArg() > 1 {
		return model.Flags{}, fmt.Errorf("%w: expected one version argument, got %d", model.ErrUsage, pflag.NArg())
	}

	flags := model.Flags{
		ReleaseVersion: strings.TrimSpace(pflag.Arg(0)),
		ConfigPath:     *configPath,
		Project:        *project,
		BuildDir:       *buildDir,
		BuildType:      *buildType,
		Generator:      *generator,
		Remote:         *remote,
		RepoOwner:      *repoOwner,
		RepoName:       *repoName,
		AssumeYes:      *assumeYes,
		Verbose:        *verbose,
		Version:        *version,
		Store:          *store,
		DBPath:         *dbPath,
		S3Bucket:       *s3Bucket,
		S3Prefix:       *s3Prefix,
		Region:         *region,
		Profile:        *profile,
	}

	return flags, nil
}
