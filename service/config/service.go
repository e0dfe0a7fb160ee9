// Package config resolves release settings from defaults, a YAML file and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/thirukguru/cmake-release/model"
	yaml "gopkg.in/yaml.v3"
)

// NewService creates a new config service.
func NewService() Service {
	return &service{readFile: os.ReadFile}
}

func (s *service) Load(path string) (model.Settings, error) {
	settings := model.DefaultSettings()

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultPath
	}

	b, err := s.readFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			log.Debug().Str("path", path).Msg("no config file, using defaults")
			return settings, nil
		}
		return settings, fmt.Errorf("read config %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return settings, fmt.Errorf("parse config %s: %w", path, err)
	}
	log.Debug().Str("path", path).Msg("loaded config file")

	apply(&settings, f)
	return settings, nil
}

func (s *service) Resolve(flags model.Flags) (model.Settings, error) {
	settings, err := s.Load(flags.ConfigPath)
	if err != nil {
		return settings, err
	}
	ApplyFlags(&settings, flags)
	return settings, nil
}

func apply(s *model.Settings, f File) {
	setIf(&s.Project, f.Project)
	setIf(&s.BuildDir, f.BuildDir)
	setIf(&s.BuildType, f.BuildType)
	setIf(&s.Generator, f.Generator)
	setIf(&s.Remote, f.Remote)
	setIf(&s.RepoOwner, f.Repo.Owner)
	setIf(&s.RepoName, f.Repo.Name)
	setIf(&s.S3Bucket, f.S3.Bucket)
	setIf(&s.S3Prefix, f.S3.Prefix)
	setIf(&s.S3Region, f.S3.Region)
	setIf(&s.S3Profile, f.S3.Profile)
	setIf(&s.HistoryDBPath, f.History.DBPath)
	if f.History.Enabled {
		s.HistoryEnabled = true
	}
}

// ApplyFlags overlays non-empty flag values onto s.
func ApplyFlags(s *model.Settings, flags model.Flags) {
	setIf(&s.Project, flags.Project)
	setIf(&s.BuildDir, flags.BuildDir)
	setIf(&s.BuildType, flags.BuildType)
	setIf(&s.Generator, flags.Generator)
	setIf(&s.Remote, flags.Remote)
	setIf(&s.RepoOwner, flags.RepoOwner)
	setIf(&s.RepoName, flags.RepoName)
	setIf(&s.S3Bucket, flags.S3Bucket)
	setIf(&s.S3Prefix, flags.S3Prefix)
	setIf(&s.S3Region, flags.Region)
	setIf(&s.S3Profile, flags.Profile)
	setIf(&s.HistoryDBPath, flags.DBPath)
	if flags.Store {
		s.HistoryEnabled = true
	}
	if flags.AssumeYes {
		s.AssumeYes = true
	}
}

func setIf(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}
