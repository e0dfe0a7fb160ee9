// Package platform detects the host OS and the matching CMake generator.
package platform

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/thirukguru/cmake-release/model"
)

// Option customizes detection.
type Option func(*service)

// WithGOOS overrides runtime.GOOS.
func WithGOOS(goos string) Option {
	return func(s *service) { s.goos = goos }
}

// WithOSReleasePath overrides /etc/os-release.
func WithOSReleasePath(path string) Option {
	return func(s *service) { s.osReleasePath = path }
}

// WithGenerator replaces the preset generator for every OS.
func WithGenerator(generator string) Option {
	return func(s *service) { s.generator = generator }
}

// WithOutput redirects the unsupported-OS diagnostic.
func WithOutput(w io.Writer) Option {
	return func(s *service) { s.out = w }
}

// NewService creates a new platform service.
func NewService(opts ...Option) Service {
	s := &service{
		goos:          runtime.GOOS,
		osReleasePath: defaultOSReleasePath,
		readFile:      os.ReadFile,
		out:           os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Detect() (model.OsInfo, error) {
	p, ok := presets[s.goos]
	if !ok {
		fmt.Fprintf(s.out, "Error: Unsupported OS detected: %s\n", s.goos)
		return model.OsInfo{}, &model.Reported{Err: fmt.Errorf("%w detected: %s", model.ErrUnsupportedOS, s.goos)}
	}

	info := model.OsInfo{
		Name:                p.name,
		Generator:           p.generator,
		ExecutableExtension: p.extension,
	}
	if s.goos == "linux" {
		info.Name = s.linuxDistro()
	}
	if s.generator != "" {
		info.Generator = s.generator
	}

	log.Debug().Str("goos", s.goos).Str("name", info.Name).Str("generator", info.Generator).Msg("detected platform")
	return info, nil
}

// linuxDistro is best effort: any read failure yields the generic label.
func (s *service) linuxDistro() string {
	content, err := s.readFile(s.osReleasePath)
	if err != nil {
		log.Debug().Err(err).Str("path", s.osReleasePath).Msg("os-release unreadable")
		return presets["linux"].name
	}

	lower := strings.ToLower(string(content))
	for _, d := range distros {
		if strings.Contains(lower, d.marker) {
			return d.name
		}
	}
	return presets["linux"].name
}
