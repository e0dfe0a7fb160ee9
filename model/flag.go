package model

// Flags represents the parsed command line.
type Flags struct {
	// ReleaseVersion is the positional version argument without the "v" prefix.
	ReleaseVersion string
	ConfigPath     string
	Project        string
	BuildDir       string
	BuildType      string
	Generator      string
	Remote         string
	RepoOwner      string
	RepoName       string
	AssumeYes      bool
	Verbose        bool
	Version        bool
	Store          bool
	DBPath         string
	S3Bucket       string
	S3Prefix       string
	Region         string
	Profile        string
}
