package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	superJobKeyEnv = "SUPERJOB_APP_KEY"
	hhUserAgentEnv = "HH_USER_AGENT"
)

// ErrMissingAPIKey is returned when SuperJob is queried without an application key
var ErrMissingAPIKey = errors.New(superJobKeyEnv + " is not set")

// AppConfig represents the application configuration
type AppConfig struct {
	Languages  []string         `yaml:"languages"`
	HTTP       HTTPConfig       `yaml:"http"`
	HeadHunter HeadHunterConfig `yaml:"headhunter"`
	SuperJob   SuperJobConfig   `yaml:"superjob"`
}

type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout"`
	Proxy   string        `yaml:"proxy"`
}

type HeadHunterConfig struct {
	BaseURL      string `yaml:"base_url"`
	Title        string `yaml:"title"`
	Area         int    `yaml:"area"`
	Period       int    `yaml:"period"`
	TextTemplate string `yaml:"text_template"` // {language} is replaced with the language name
	PerPage      int    `yaml:"per_page"`
	MaxPages     int    `yaml:"max_pages"`
	UserAgent    string `yaml:"user_agent"` // Prefer HH_USER_AGENT env var
}

type SuperJobConfig struct {
	BaseURL    string `yaml:"base_url"`
	Title      string `yaml:"title"`
	Town       int    `yaml:"town"`
	Period     int    `yaml:"period"`
	Catalogues int    `yaml:"catalogues"`
	Count      int    `yaml:"count"`
	MaxPages   int    `yaml:"max_pages"`
	AppKey     string `yaml:"app_key"` // Prefer SUPERJOB_APP_KEY env var
}

// DefaultLanguages is the language list queried when none is configured
var DefaultLanguages = []string{
	"Python",
	"JavaScript",
	"Java",
	"Ruby",
	"PHP",
	"C++",
	"C#",
	"C",
	"Go",
	"Objective-C",
}

// Default returns the built-in configuration: Moscow, last 30 days
func Default() *AppConfig {
	return &AppConfig{
		Languages: append([]string(nil), DefaultLanguages...),
		HTTP: HTTPConfig{
			Timeout: 30 * time.Second,
		},
		HeadHunter: HeadHunterConfig{
			BaseURL:      "https://api.hh.ru/vacancies",
			Title:        "HeadHunter Moscow",
			Area:         1,
			Period:       30,
			TextTemplate: "name:Программист {language}",
			PerPage:      100,
			MaxPages:     100,
			UserAgent:    "langsalary/1.0 (github.com/fr4nk3nst1ner/langsalary)",
		},
		SuperJob: SuperJobConfig{
			BaseURL:    "https://api.superjob.ru/2.0/vacancies/",
			Title:      "SuperJob Moscow",
			Town:       4,
			Period:     30,
			Catalogues: 48,
			Count:      100,
			MaxPages:   100,
		},
	}
}

// Load reads the optional .env file and YAML config on top of the defaults.
// A missing file at either path is not an error.
func Load(configPath, envPath string) (*AppConfig, error) {
	if err := loadEnv(envPath); err != nil {
		return nil, err
	}

	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
			}
		}
	}

	if key := os.Getenv(superJobKeyEnv); key != "" {
		cfg.SuperJob.AppKey = key
	}
	if ua := os.Getenv(hhUserAgentEnv); ua != "" {
		cfg.HeadHunter.UserAgent = ua
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnv(envPath string) error {
	if envPath == "" {
		return nil
	}
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", envPath, err)
	}
	return nil
}

// Validate checks the values that would otherwise produce broken queries
func (c *AppConfig) Validate() error {
	if len(c.Languages) == 0 {
		return errors.New("config: languages list is empty")
	}
	if c.HeadHunter.PerPage <= 0 || c.HeadHunter.PerPage > 100 {
		return fmt.Errorf("config: headhunter.per_page must be in 1..100, got %d", c.HeadHunter.PerPage)
	}
	if c.SuperJob.Count <= 0 || c.SuperJob.Count > 100 {
		return fmt.Errorf("config: superjob.count must be in 1..100, got %d", c.SuperJob.Count)
	}
	if c.HeadHunter.MaxPages <= 0 || c.SuperJob.MaxPages <= 0 {
		return errors.New("config: max_pages must be positive")
	}
	return nil
}

// RequireSuperJobKey reports ErrMissingAPIKey when no SuperJob key is configured
func (c *AppConfig) RequireSuperJobKey() error {
	if c.SuperJob.AppKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
