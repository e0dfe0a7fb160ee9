// Package releasetable renders release summaries and history as tables.
package releasetable

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/thirukguru/cmake-release/model"
	"github.com/thirukguru/cmake-release/service/storage"
)

func newWriter(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

// DrawSummaryTable prints the key facts of a finished run.
func DrawSummaryTable(w io.Writer, result *model.ReleaseResult) {
	if result == nil {
		return
	}
	t := newWriter(w)
	t.SetTitle("Release Summary")
	t.AppendRow(table.Row{"Tag", result.Plan.Tag})
	t.AppendRow(table.Row{"Platform", result.OsInfo.Name})
	t.AppendRow(table.Row{"Generator", result.OsInfo.Generator})
	t.AppendRow(table.Row{"Artifact", result.Artifact.Path})
	t.AppendRow(table.Row{"Uploaded as", result.Plan.ArtifactName})
	if result.Artifact.Checksum != "" {
		t.AppendRow(table.Row{"SHA-256", result.Artifact.Checksum})
	}
	if result.Artifact.Size > 0 {
		t.AppendRow(table.Row{"Size", formatSize(result.Artifact.Size)})
	}
	if result.MirrorURI != "" {
		t.AppendRow(table.Row{"Mirror", result.MirrorURI})
	}
	t.AppendRow(table.Row{"Duration", result.FinishedAt.Sub(result.StartedAt).Round(time.Millisecond)})
	t.AppendRow(table.Row{"Run ID", result.RunID})
	t.Render()
}

// DrawHistoryTable prints one row per stored release run.
func DrawHistoryTable(w io.Writer, records []storage.ReleaseSummary, color bool) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No releases recorded yet")
		return
	}
	t := newWriter(w)
	t.AppendHeader(table.Row{"ID", "Tag", "Project", "Platform", "Status", "Failed Stage", "Started", "Duration"})
	for _, r := range records {
		t.AppendRow(table.Row{
			r.ReleaseID,
			r.Tag,
			r.Project,
			r.OSName,
			statusText(r.Status, color),
			r.FailedStage,
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Duration().Round(time.Second),
		})
	}
	t.Render()
}

// DrawStageTable prints the stages one run went through.
func DrawStageTable(w io.Writer, record storage.ReleaseSummary, stages []storage.StageEvent, color bool) {
	fmt.Fprintf(w, "\nRun %s (%s)\n", record.RunUUID, record.Tag)
	if record.ArtifactName != "" {
		fmt.Fprintf(w, "Artifact: %s\n", record.ArtifactName)
	}
	if record.ArtifactSHA256 != "" {
		fmt.Fprintf(w, "SHA-256:  %s\n", record.ArtifactSHA256)
	}
	if record.MirrorURI != "" {
		fmt.Fprintf(w, "Mirror:   %s\n", record.MirrorURI)
	}
	if record.ErrorMessage != "" {
		fmt.Fprintf(w, "Error:    %s\n", record.ErrorMessage)
	}

	t := newWriter(w)
	t.AppendHeader(table.Row{"#", "Stage", "Status"})
	for i, st := range stages {
		t.AppendRow(table.Row{i + 1, st.Stage, statusText(st.Status, color)})
	}
	t.Render()
}

func statusText(status string, color bool) string {
	if !color {
		return status
	}
	switch status {
	case storage.StatusSucceeded, "done":
		return text.FgGreen.Sprint(status)
	case storage.StatusAborted, "failed":
		return text.FgRed.Sprint(status)
	}
	return status
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
