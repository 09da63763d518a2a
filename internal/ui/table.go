package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/langsalary/internal/models"
)

var tableHeader = []string{"language", "vacancies_found", "vacancies_processed", "average_salary"}

// PrintStatistics renders one table row per language, in the given order.
// Languages whose fetch failed get empty cells.
func PrintStatistics(w io.Writer, title string, results []models.SummaryResult) error {
	if !hasData(results) {
		fmt.Fprintln(w, pterm.Warning.Sprintf("%s: no data", title))
		return nil
	}

	data := pterm.TableData{tableHeader}
	for _, r := range results {
		if !r.OK() {
			data = append(data, []string{r.Language, "", "", ""})
			continue
		}
		data = append(data, []string{
			r.Language,
			strconv.Itoa(r.Summary.VacanciesFound),
			strconv.Itoa(r.Summary.VacanciesProcessed),
			ColorizeSalary(r.Summary.AverageSalary),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render %s table: %w", title, err)
	}

	fmt.Fprintln(w, pterm.DefaultBox.WithTitle(title).Sprint(table))
	return nil
}

type jsonSummary struct {
	models.VacancySummary
	Error string `json:"error,omitempty"`
}

type jsonReport struct {
	Title      string        `json:"title"`
	Statistics []jsonSummary `json:"statistics"`
}

// PrintJSON writes the statistics as an indented JSON document
func PrintJSON(w io.Writer, title string, results []models.SummaryResult) error {
	report := jsonReport{Title: title, Statistics: make([]jsonSummary, 0, len(results))}
	for _, r := range results {
		s := jsonSummary{VacancySummary: r.Summary}
		s.Language = r.Language
		if !r.OK() {
			s.Error = r.Err.Error()
		}
		report.Statistics = append(report.Statistics, s)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode %s statistics: %w", title, err)
	}
	return nil
}

func hasData(results []models.SummaryResult) bool {
	for _, r := range results {
		if r.OK() {
			return true
		}
	}
	return false
}
