package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/langsalary/internal/models"
)

func sampleResults() []models.SummaryResult {
	return []models.SummaryResult{
		{Language: "Python", Summary: models.VacancySummary{Language: "Python", VacanciesFound: 250, VacanciesProcessed: 2, AverageSalary: 125000}},
		models.FailedResult("Go", errors.New("unexpected status 500")),
		{Language: "Ruby", Summary: models.VacancySummary{Language: "Ruby", VacanciesFound: 3}},
	}
}

func TestPrintStatistics(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	var buf bytes.Buffer
	require.NoError(t, PrintStatistics(&buf, "HeadHunter Moscow", sampleResults()))
	out := buf.String()

	assert.Contains(t, out, "HeadHunter Moscow")
	for _, col := range tableHeader {
		assert.Contains(t, out, col)
	}
	assert.Contains(t, out, "125,000 ₽")
	assert.Contains(t, out, "250")

	// rows keep insertion order
	python := strings.Index(out, "Python")
	golang := strings.Index(out, "Go ")
	ruby := strings.Index(out, "Ruby")
	assert.True(t, python < golang && golang < ruby, "rows out of order:\n%s", out)
}

func TestPrintStatisticsNoData(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	var buf bytes.Buffer
	results := []models.SummaryResult{models.FailedResult("Go", errors.New("boom"))}
	require.NoError(t, PrintStatistics(&buf, "SuperJob Moscow", results))
	assert.Contains(t, buf.String(), "no data")
	assert.NotContains(t, buf.String(), "vacancies_found")

	buf.Reset()
	require.NoError(t, PrintStatistics(&buf, "SuperJob Moscow", nil))
	assert.Contains(t, buf.String(), "no data")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, "HeadHunter Moscow", sampleResults()))

	var report struct {
		Title      string `json:"title"`
		Statistics []struct {
			Language           string `json:"language"`
			VacanciesFound     int    `json:"vacancies_found"`
			VacanciesProcessed int    `json:"vacancies_processed"`
			AverageSalary      int    `json:"average_salary"`
			Error              string `json:"error"`
		} `json:"statistics"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	assert.Equal(t, "HeadHunter Moscow", report.Title)
	require.Len(t, report.Statistics, 3)
	assert.Equal(t, 125000, report.Statistics[0].AverageSalary)
	assert.Equal(t, "Go", report.Statistics[1].Language)
	assert.Equal(t, "unexpected status 500", report.Statistics[1].Error)
	assert.Empty(t, report.Statistics[2].Error)
}

func TestColorizeSalary(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	assert.Equal(t, "350,000 ₽", ColorizeSalary(350000))
	assert.Equal(t, "99,999 ₽", ColorizeSalary(99999))
}

func TestNewProgressDisabled(t *testing.T) {
	p := NewProgress(nil, false)
	require.NotNil(t, p)
	assert.Nil(t, p.PageBar)

	p.StartLanguage("hh", "Go")
	p.PageFetched(3, 120)
	p.PageFetched(3, 120)
	assert.Equal(t, 2, p.PagesDone)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 120, p.FoundJobs)
	StopProgress(p)
}
