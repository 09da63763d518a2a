package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/langsalary/internal/client"
	"github.com/fr4nk3nst1ner/langsalary/internal/config"
	"github.com/fr4nk3nst1ner/langsalary/internal/models"
	"github.com/fr4nk3nst1ner/langsalary/internal/scraper"
	"github.com/fr4nk3nst1ner/langsalary/internal/ui"
	"github.com/fr4nk3nst1ner/langsalary/internal/utils"
)

type options struct {
	configPath string
	envPath    string
	source     string
	langs      string
	format     string
	proxyURL   string
	debug      bool
	progress   bool
	silence    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "config.yaml", "Path to the YAML config file (optional)")
	flag.StringVar(&opts.envPath, "env", ".env", "Path to the .env file holding SUPERJOB_APP_KEY (optional)")
	flag.StringVar(&opts.source, "source", "", "Job board to query (hh, sj). If not specified, queries both.")
	flag.StringVar(&opts.langs, "langs", "", "Comma separated languages, overrides the configured list")
	flag.StringVar(&opts.format, "format", "table", "Output format (table, json)")
	flag.StringVar(&opts.proxyURL, "proxy", "", "Proxy URL to use")
	flag.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&opts.progress, "progress", true, "Show page download progress")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")
	flag.Parse()
	opts.silence = *silence || *noBanner

	logger := newLogger(os.Stderr, opts.debug)
	if err := run(context.Background(), opts, os.Stdout, os.Stderr, logger); err != nil {
		logger.Fatal(err.Error())
	}
}

func newLogger(w io.Writer, debug bool) *pterm.Logger {
	level := pterm.LogLevelInfo
	if debug {
		level = pterm.LogLevelDebug
	}
	return pterm.DefaultLogger.WithLevel(level).WithWriter(w)
}

func run(ctx context.Context, opts options, stdout, stderr io.Writer, logger *pterm.Logger) error {
	if opts.format != "table" && opts.format != "json" {
		return fmt.Errorf("invalid format %q: must be table or json", opts.format)
	}
	if opts.source != "" && !utils.IsValidSource(opts.source) {
		return fmt.Errorf("invalid source %q: must be one of hh, sj", opts.source)
	}

	cfg, err := config.Load(opts.configPath, opts.envPath)
	if err != nil {
		return err
	}
	if opts.langs != "" {
		cfg.Languages = utils.ParseLanguages(opts.langs)
		if len(cfg.Languages) == 0 {
			return fmt.Errorf("no languages in %q", opts.langs)
		}
	}
	if opts.proxyURL != "" {
		cfg.HTTP.Proxy = opts.proxyURL
	}

	httpClient, err := client.CreateHTTPClient(cfg.HTTP.Timeout, cfg.HTTP.Proxy)
	if err != nil {
		return err
	}

	sources, err := selectSources(cfg, strings.ToLower(opts.source), httpClient, logger)
	if err != nil {
		return err
	}

	if opts.format == "table" {
		ui.PrintBanner(stdout, opts.silence)
	}

	progress := ui.NewProgress(stderr, opts.progress)
	reports := make([][]models.SummaryResult, len(sources))
	for i, src := range sources {
		logger.Debug("querying source", logger.Args("source", src.Name(), "languages", len(cfg.Languages)))
		reports[i] = scraper.Collect(ctx, src, cfg.Languages, progress)
	}
	ui.StopProgress(progress)

	for i, src := range sources {
		if opts.format == "json" {
			err = ui.PrintJSON(stdout, src.Title(), reports[i])
		} else {
			err = ui.PrintStatistics(stdout, src.Title(), reports[i])
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// selectSources builds the job boards to query in report order: HeadHunter first, then SuperJob
func selectSources(cfg *config.AppConfig, source string, httpClient *http.Client, logger *pterm.Logger) ([]scraper.Source, error) {
	var sources []scraper.Source
	if source == "" || source == "hh" {
		sources = append(sources, scraper.NewHeadHunter(cfg.HeadHunter, httpClient, logger))
	}
	if source == "" || source == "sj" {
		if err := cfg.RequireSuperJobKey(); err != nil {
			return nil, err
		}
		sources = append(sources, scraper.NewSuperJob(cfg.SuperJob, httpClient, logger))
	}
	return sources, nil
}
