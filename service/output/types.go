package output

import (
	"io"

	"github.com/thirukguru/cmake-release/model"
	"github.com/thirukguru/cmake-release/service/storage"
	"github.com/thirukguru/cmake-release/shared/banner"
	releasetable "github.com/thirukguru/cmake-release/shared/release_table"
)

// Renderer defines the interface for drawing titles and tables
type Renderer interface {
	DrawTitle(w io.Writer, title string, color bool)
	DrawSummaryTable(w io.Writer, result *model.ReleaseResult)
	DrawHistoryTable(w io.Writer, records []storage.ReleaseSummary, color bool)
	DrawStageTable(w io.Writer, record storage.ReleaseSummary, stages []storage.StageEvent, color bool)
}

type realRenderer struct{}

func (r *realRenderer) DrawTitle(w io.Writer, title string, color bool) {
	banner.DrawTitle(w, title, color)
}

func (r *realRenderer) DrawSummaryTable(w io.Writer, result *model.ReleaseResult) {
	releasetable.DrawSummaryTable(w, result)
}

func (r *realRenderer) DrawHistoryTable(w io.Writer, records []storage.ReleaseSummary, color bool) {
	releasetable.DrawHistoryTable(w, records, color)
}

func (r *realRenderer) DrawStageTable(w io.Writer, record storage.ReleaseSummary, stages []storage.StageEvent, color bool) {
	releasetable.DrawStageTable(w, record, stages, color)
}

// service is the internal implementation
type service struct {
	w        io.Writer
	color    bool
	renderer Renderer
}

// Service defines the interface for output operations
type Service interface {
	Header(tag string)
	Footer(tag string)
	RenderSummary(result *model.ReleaseResult)
	RenderHistory(records []storage.ReleaseSummary)
	RenderRelease(record storage.ReleaseSummary, stages []storage.StageEvent)
}
