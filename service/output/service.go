// Package output provides a service for rendering release progress to the console.
package output

import (
	"io"
	"os"

	"github.com/thirukguru/cmake-release/model"
	"github.com/thirukguru/cmake-release/service/storage"
	"github.com/thirukguru/cmake-release/shared/console"
)

// NewService creates an output service writing to stdout, colored when it is a terminal.
func NewService() Service {
	return NewServiceWithWriter(os.Stdout, console.ColorEnabled(os.Stdout))
}

// NewServiceWithWriter creates an output service writing to w.
func NewServiceWithWriter(w io.Writer, color bool) Service {
	return &service{
		w:        w,
		color:    color,
		renderer: &realRenderer{},
	}
}

func (s *service) Header(tag string) {
	s.renderer.DrawTitle(s.w, "Starting Release Process: "+tag, s.color)
}

func (s *service) Footer(tag string) {
	s.renderer.DrawTitle(s.w, "Release "+tag+" created successfully!", s.color)
}

func (s *service) RenderSummary(result *model.ReleaseResult) {
	s.renderer.DrawSummaryTable(s.w, result)
}

func (s *service) RenderHistory(records []storage.ReleaseSummary) {
	s.renderer.DrawHistoryTable(s.w, records, s.color)
}

func (s *service) RenderRelease(record storage.ReleaseSummary, stages []storage.StageEvent) {
	s.renderer.DrawStageTable(s.w, record, stages, s.color)
}
