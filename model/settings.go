package model

const (
	DefaultProject   = "MyProject"
	DefaultBuildDir  = "build"
	DefaultBuildType = "Release"
	DefaultRemote    = "origin"
)

// Settings is the resolved configuration for one run: defaults, then the
// config file, then command-line flags.
type Settings struct {
	Project   string
	BuildDir  string
	BuildType string
	// Generator overrides the per-OS preset when non-empty.
	Generator string
	Remote    string
	RepoOwner string
	RepoName  string
	AssumeYes bool

	S3Bucket  string
	S3Prefix  string
	S3Region  string
	S3Profile string

	HistoryEnabled bool
	HistoryDBPath  string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Project:   DefaultProject,
		BuildDir:  DefaultBuildDir,
		BuildType: DefaultBuildType,
		Remote:    DefaultRemote,
	}
}

// Repo returns "owner/name" when both parts are set, otherwise "".
func (s Settings) Repo() string {
	if s.RepoOwner == "" || s.RepoName == "" {
		return ""
	}
	return s.RepoOwner + "/" + s.RepoName
}

// MirrorEnabled reports whether artifacts are also uploaded to S3.
func (s Settings) MirrorEnabled() bool {
	return s.S3Bucket != ""
}
