package utils

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fr4nk3nst1ner/langsalary/internal/models"
)

const (
	onlyFromFactor = 1.2
	onlyToFactor   = 0.8
)

// PredictSalary estimates a single salary from a possibly partial fork.
// ok is false when neither bound is present.
func PredictSalary(r models.SalaryRange) (estimate float64, ok bool) {
	switch {
	case r.From != nil && r.To != nil:
		return (*r.From + *r.To) / 2, true
	case r.To != nil:
		return *r.To * onlyToFactor, true
	case r.From != nil:
		return *r.From * onlyFromFactor, true
	default:
		return 0, false
	}
}

// AverageSalary returns the truncated mean of the estimates, or 0 for none
func AverageSalary(estimates []float64) int {
	if len(estimates) == 0 {
		return 0
	}
	var total float64
	for _, e := range estimates {
		total += e
	}
	return int(total / float64(len(estimates)))
}

// FormatRubles formats an amount with thousands separators and a ruble sign
func FormatRubles(amount int) string {
	return fmt.Sprintf("%s ₽", humanize.Comma(int64(amount)))
}

// ParseLanguages splits a comma separated list, dropping blanks and duplicates
func ParseLanguages(list string) []string {
	seen := make(map[string]struct{})
	var langs []string
	for _, l := range strings.Split(list, ",") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		langs = append(langs, l)
	}
	return langs
}

// IsValidSource checks if the source is supported
func IsValidSource(source string) bool {
	validSources := map[string]bool{
		"hh": true,
		"sj": true,
	}
	return validSources[strings.ToLower(source)]
}
