package scraper

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/langsalary/internal/client"
	"github.com/fr4nk3nst1ner/langsalary/internal/config"
	"github.com/fr4nk3nst1ner/langsalary/internal/models"
)

const (
	sjRubles    = "rub"
	sjAppHeader = "X-Api-App-Id"
)

// SJSearchResponse is one page of the SuperJob vacancy search
type SJSearchResponse struct {
	Objects []SJVacancy `json:"objects"`
	Total   int         `json:"total"`
	More    bool        `json:"more"`
}

// SJVacancy represents a vacancy from SuperJob. The API reports missing bounds as 0.
type SJVacancy struct {
	ID          int     `json:"id"`
	Profession  string  `json:"profession"`
	Link        string  `json:"link"`
	PaymentFrom float64 `json:"payment_from"`
	PaymentTo   float64 `json:"payment_to"`
	Currency    string  `json:"currency"`
}

// SalaryRange extracts the ruble salary fork. A zero bound counts as absent,
// so a vacancy offering "from 0" is treated like one without a lower bound.
func (v SJVacancy) SalaryRange() (models.SalaryRange, bool) {
	r := models.NewSalaryRange(v.PaymentFrom, v.PaymentTo)
	if r.Empty() || v.Currency != sjRubles {
		return models.SalaryRange{}, false
	}
	return r, true
}

// SuperJob gathers statistics from the api.superjob.ru vacancy search
type SuperJob struct {
	cfg        config.SuperJobConfig
	httpClient *http.Client
	logger     *pterm.Logger
}

func NewSuperJob(cfg config.SuperJobConfig, httpClient *http.Client, logger *pterm.Logger) *SuperJob {
	return &SuperJob{cfg: cfg, httpClient: httpClient, logger: logger}
}

func (s *SuperJob) Name() string { return "sj" }

func (s *SuperJob) Title() string { return s.cfg.Title }

// Summarize downloads result pages while the API reports more and averages the ruble salaries
func (s *SuperJob) Summarize(ctx context.Context, language string, progress *models.ScrapeProgress) models.SummaryResult {
	progress.StartLanguage(s.Name(), language)

	pages, err := fetchPages(ctx, s.cfg.MaxPages,
		func(ctx context.Context, page int) (SJSearchResponse, error) {
			s.logger.Debug("downloading page", s.logger.Args("source", s.Name(), "language", language, "page", page))
			var resp SJSearchResponse
			if err := client.GetJSON(ctx, s.httpClient, s.cfg.BaseURL, s.query(language, page), s.headers(), &resp); err != nil {
				return resp, err
			}
			total := page + 1
			if resp.More {
				total++
			}
			progress.PageFetched(total, resp.Total)
			return resp, nil
		},
		func(_ int, resp SJSearchResponse) bool {
			return resp.More
		},
	)
	if err != nil {
		return failed(s.logger, s.Name(), language, err)
	}

	var ranges []models.SalaryRange
	for _, p := range pages {
		for _, v := range p.Objects {
			if r, ok := v.SalaryRange(); ok {
				ranges = append(ranges, r)
			}
		}
	}

	summary := buildSummary(language, pages[len(pages)-1].Total, ranges)
	s.logger.Info("statistics gathered", s.logger.Args(
		"source", s.Name(),
		"language", language,
		"pages", len(pages),
		"found", summary.VacanciesFound,
		"processed", summary.VacanciesProcessed,
	))
	return models.SummaryResult{Language: language, Summary: summary}
}

func (s *SuperJob) query(language string, page int) url.Values {
	q := url.Values{}
	q.Set("town", strconv.Itoa(s.cfg.Town))
	q.Set("period", strconv.Itoa(s.cfg.Period))
	q.Set("catalogues", strconv.Itoa(s.cfg.Catalogues))
	q.Set("keyword", language)
	q.Set("count", strconv.Itoa(s.cfg.Count))
	q.Set("page", strconv.Itoa(page))
	return q
}

func (s *SuperJob) headers() http.Header {
	headers := http.Header{}
	headers.Set(sjAppHeader, s.cfg.AppKey)
	return headers
}
