package ui

import (
	"io"

	"github.com/cheggaaa/pb/v3"

	"github.com/fr4nk3nst1ner/langsalary/internal/models"
)

const progressTemplate = `{{string . "prefix"}} {{counters . }} {{bar . "[" "=" ">" " " "]"}} {{etime . }}`

// NewProgress starts a page progress bar on w. With enabled unset the
// returned tracker only counts pages.
func NewProgress(w io.Writer, enabled bool) *models.ScrapeProgress {
	progress := &models.ScrapeProgress{}
	if !enabled {
		return progress
	}

	bar := pb.ProgressBarTemplate(progressTemplate).New(0)
	bar.SetWriter(w)
	bar.Start()
	progress.PageBar = bar
	return progress
}

// StopProgress finishes the bar, if any
func StopProgress(progress *models.ScrapeProgress) {
	if progress != nil && progress.PageBar != nil {
		progress.PageBar.Finish()
	}
}
