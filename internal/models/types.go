package models

import (
	"fmt"

	"github.com/cheggaaa/pb/v3"
)

// VacancySummary holds the salary statistics for one language on one job board
type VacancySummary struct {
	Language           string `json:"language"`
	VacanciesFound     int    `json:"vacancies_found"`
	VacanciesProcessed int    `json:"vacancies_processed"`
	AverageSalary      int    `json:"average_salary"`
}

// SummaryResult is the outcome of gathering statistics for one language.
// A failed result carries the error and an empty summary.
type SummaryResult struct {
	Language string
	Summary  VacancySummary
	Err      error
}

// OK reports whether the statistics were gathered successfully
func (r SummaryResult) OK() bool {
	return r.Err == nil
}

// FailedResult builds the empty result returned when a fetch fails
func FailedResult(language string, err error) SummaryResult {
	return SummaryResult{Language: language, Err: err}
}

// SalaryRange is an advertised salary fork. Nil bounds are absent.
type SalaryRange struct {
	From *float64
	To   *float64
}

// NewSalaryRange builds a range treating zero and negative bounds as absent
func NewSalaryRange(from, to float64) SalaryRange {
	var r SalaryRange
	if from > 0 {
		r.From = &from
	}
	if to > 0 {
		r.To = &to
	}
	return r
}

// Empty reports whether neither bound is present
func (r SalaryRange) Empty() bool {
	return r.From == nil && r.To == nil
}

// ScrapeProgress tracks page downloads for the current language
type ScrapeProgress struct {
	PageBar    *pb.ProgressBar
	FoundJobs  int
	PagesDone  int
	TotalPages int
}

// StartLanguage resets the counters and labels the bar with the language being fetched
func (p *ScrapeProgress) StartLanguage(source, language string) {
	if p == nil {
		return
	}
	p.FoundJobs = 0
	p.PagesDone = 0
	p.TotalPages = 0
	if p.PageBar != nil {
		p.PageBar.SetCurrent(0)
		p.PageBar.SetTotal(0)
		p.PageBar.Set("prefix", fmt.Sprintf("%s %s", source, language))
	}
}

// PageFetched records a downloaded page. total is the number of pages known so far.
func (p *ScrapeProgress) PageFetched(total, found int) {
	if p == nil {
		return
	}
	p.PagesDone++
	p.FoundJobs = found
	if total < p.PagesDone {
		total = p.PagesDone
	}
	p.TotalPages = total
	if p.PageBar != nil {
		p.PageBar.SetTotal(int64(total))
		p.PageBar.Increment()
	}
}
