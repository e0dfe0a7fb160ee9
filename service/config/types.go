package config

import "github.com/thirukguru/cmake-release/model"

// DefaultPath is read when no --config-path is given. A missing file is not an error.
const DefaultPath = ".cmake-release.yaml"

// File is the on-disk configuration schema.
type File struct {
	Project   string `yaml:"project"`
	BuildDir  string `yaml:"buildDir"`
	BuildType string `yaml:"buildType"`
	Generator string `yaml:"generator"`
	Remote    string `yaml:"remote"`

	Repo struct {
		Owner string `yaml:"owner"`
		Name  string `yaml:"name"`
	} `yaml:"repo"`

	S3 struct {
		Bucket  string `yaml:"bucket"`
		Prefix  string `yaml:"prefix"`
		Region  string `yaml:"region"`
		Profile string `yaml:"profile"`
	} `yaml:"s3"`

	History struct {
		Enabled bool   `yaml:"enabled"`
		DBPath  string `yaml:"dbPath"`
	} `yaml:"history"`
}

type service struct {
	readFile func(string) ([]byte, error)
}

// Service is the interface for resolving run settings.
type Service interface {
	// Load returns defaults overlaid with the file at path.
	Load(path string) (model.Settings, error)
	// Resolve loads flags.ConfigPath and applies flag overrides on top.
	Resolve(flags model.Flags) (model.Settings, error)
}
