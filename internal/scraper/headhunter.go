package scraper

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/langsalary/internal/client"
	"github.com/fr4nk3nst1ner/langsalary/internal/config"
	"github.com/fr4nk3nst1ner/langsalary/internal/models"
)

const hhRubles = "RUR"

// HHSearchResponse is one page of the HeadHunter vacancy search
type HHSearchResponse struct {
	Items   []HHVacancy `json:"items"`
	Found   int         `json:"found"`
	Pages   int         `json:"pages"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
}

// HHVacancy represents a vacancy from HeadHunter
type HHVacancy struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	URL    string    `json:"alternate_url"`
	Salary *HHSalary `json:"salary"`
}

// HHSalary is the salary block of a vacancy. Missing bounds are null.
type HHSalary struct {
	From     *float64 `json:"from"`
	To       *float64 `json:"to"`
	Currency string   `json:"currency"`
	Gross    *bool    `json:"gross"`
}

// SalaryRange extracts the ruble salary fork, ok is false for vacancies
// without salary or paid in another currency
func (v HHVacancy) SalaryRange() (models.SalaryRange, bool) {
	if v.Salary == nil || v.Salary.Currency != hhRubles {
		return models.SalaryRange{}, false
	}
	return models.NewSalaryRange(deref(v.Salary.From), deref(v.Salary.To)), true
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// HeadHunter gathers statistics from the api.hh.ru vacancy search
type HeadHunter struct {
	cfg        config.HeadHunterConfig
	httpClient *http.Client
	logger     *pterm.Logger
}

func NewHeadHunter(cfg config.HeadHunterConfig, httpClient *http.Client, logger *pterm.Logger) *HeadHunter {
	return &HeadHunter{cfg: cfg, httpClient: httpClient, logger: logger}
}

func (h *HeadHunter) Name() string { return "hh" }

func (h *HeadHunter) Title() string { return h.cfg.Title }

// Summarize downloads every result page for the language and averages the ruble salaries
func (h *HeadHunter) Summarize(ctx context.Context, language string, progress *models.ScrapeProgress) models.SummaryResult {
	progress.StartLanguage(h.Name(), language)

	pages, err := fetchPages(ctx, h.cfg.MaxPages,
		func(ctx context.Context, page int) (HHSearchResponse, error) {
			h.logger.Debug("downloading page", h.logger.Args("source", h.Name(), "language", language, "page", page))
			var resp HHSearchResponse
			if err := client.GetJSON(ctx, h.httpClient, h.cfg.BaseURL, h.query(language, page), h.headers(), &resp); err != nil {
				return resp, err
			}
			progress.PageFetched(resp.Pages, resp.Found)
			return resp, nil
		},
		func(page int, resp HHSearchResponse) bool {
			return page+1 < resp.Pages
		},
	)
	if err != nil {
		return failed(h.logger, h.Name(), language, err)
	}

	var ranges []models.SalaryRange
	for _, p := range pages {
		for _, v := range p.Items {
			if r, ok := v.SalaryRange(); ok {
				ranges = append(ranges, r)
			}
		}
	}

	summary := buildSummary(language, pages[len(pages)-1].Found, ranges)
	h.logger.Info("statistics gathered", h.logger.Args(
		"source", h.Name(),
		"language", language,
		"pages", len(pages),
		"found", summary.VacanciesFound,
		"processed", summary.VacanciesProcessed,
	))
	return models.SummaryResult{Language: language, Summary: summary}
}

func (h *HeadHunter) query(language string, page int) url.Values {
	q := url.Values{}
	q.Set("area", strconv.Itoa(h.cfg.Area))
	q.Set("period", strconv.Itoa(h.cfg.Period))
	q.Set("text", strings.ReplaceAll(h.cfg.TextTemplate, "{language}", language))
	q.Set("per_page", strconv.Itoa(h.cfg.PerPage))
	q.Set("page", strconv.Itoa(page))
	return q
}

func (h *HeadHunter) headers() http.Header {
	headers := http.Header{}
	if h.cfg.UserAgent != "" {
		headers.Set("User-Agent", h.cfg.UserAgent)
	}
	return headers
}
