package scraper

import (
	"context"
	"errors"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/langsalary/internal/client"
	"github.com/fr4nk3nst1ner/langsalary/internal/models"
	"github.com/fr4nk3nst1ner/langsalary/internal/utils"
)

// ErrTooManyPages is returned when an API keeps reporting more pages past the configured cap
var ErrTooManyPages = errors.New("page limit reached")

// Source gathers salary statistics for one language from one job board
type Source interface {
	// Name is the short identifier used on the command line
	Name() string
	// Title is the caption of the report table
	Title() string
	Summarize(ctx context.Context, language string, progress *models.ScrapeProgress) models.SummaryResult
}

// fetchPages requests pages 0, 1, 2... until more reports false for the
// latest page. The first failing request aborts the whole fetch.
func fetchPages[P any](ctx context.Context, maxPages int, fetch func(ctx context.Context, page int) (P, error), more func(page int, payload P) bool) ([]P, error) {
	var pages []P
	for page := 0; ; page++ {
		if page >= maxPages {
			return pages, fmt.Errorf("%w: %d", ErrTooManyPages, maxPages)
		}
		payload, err := fetch(ctx, page)
		if err != nil {
			return pages, fmt.Errorf("page %d: %w", page, err)
		}
		pages = append(pages, payload)
		if !more(page, payload) {
			return pages, nil
		}
	}
}

// buildSummary turns the extracted salary forks into the language summary
func buildSummary(language string, found int, ranges []models.SalaryRange) models.VacancySummary {
	estimates := make([]float64, 0, len(ranges))
	for _, r := range ranges {
		if estimate, ok := utils.PredictSalary(r); ok {
			estimates = append(estimates, estimate)
		}
	}

	// Some boards cap the reported total; processed must never exceed found.
	if found < len(estimates) {
		found = len(estimates)
	}

	return models.VacancySummary{
		Language:           language,
		VacanciesFound:     found,
		VacanciesProcessed: len(estimates),
		AverageSalary:      utils.AverageSalary(estimates),
	}
}

// failed logs a fetch error and converts it into an empty result
func failed(logger *pterm.Logger, source, language string, err error) models.SummaryResult {
	args := []any{"source", source, "language", language, "error", err}
	var statusErr *client.StatusError
	if errors.As(err, &statusErr) {
		args = append(args, "status", statusErr.Code)
	}
	logger.Error("failed to gather statistics", logger.Args(args...))
	return models.FailedResult(language, err)
}

// Collect gathers statistics for each language in order, one at a time.
// Failed languages stay in the result with their error.
func Collect(ctx context.Context, src Source, languages []string, progress *models.ScrapeProgress) []models.SummaryResult {
	results := make([]models.SummaryResult, 0, len(languages))
	for _, language := range languages {
		results = append(results, src.Summarize(ctx, language, progress))
	}
	return results
}
