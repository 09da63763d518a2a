package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeBoards(t *testing.T) (hh, sj *httptest.Server) {
	hh = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Query().Get("text"), "Go") && r.URL.Query().Get("page") == "1" {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"found": 10, "pages": 2, "items": [
			{"id": "1", "salary": {"from": 100000, "to": 150000, "currency": "RUR"}},
			{"id": "2", "salary": {"from": 4000, "to": null, "currency": "USD"}},
			{"id": "3", "salary": null}
		]}`)
	}))
	sj = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Api-App-Id"))
		fmt.Fprint(w, `{"total": 5, "more": false, "objects": [
			{"id": 1, "payment_from": 0, "payment_to": 90000, "currency": "rub"}
		]}`)
	}))
	return hh, sj
}

func writeConfig(t *testing.T, hhURL, sjURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := fmt.Sprintf("languages: [Python, Go]\nheadhunter:\n  base_url: %s\nsuperjob:\n  base_url: %s\n", hhURL, sjURL)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()
	t.Setenv("SUPERJOB_APP_KEY", "test-key")

	hh, sj := fakeBoards(t)
	defer hh.Close()
	defer sj.Close()

	opts := options{
		configPath: writeConfig(t, hh.URL, sj.URL),
		format:     "table",
		silence:    true,
	}

	var stdout, stderr bytes.Buffer
	logger := pterm.DefaultLogger.WithWriter(io.Discard)
	require.NoError(t, run(context.Background(), opts, &stdout, &stderr, logger))

	out := stdout.String()
	hhTable := strings.Index(out, "HeadHunter Moscow")
	sjTable := strings.Index(out, "SuperJob Moscow")
	require.True(t, hhTable >= 0 && sjTable > hhTable, "unexpected output:\n%s", out)

	// Python: two pages of one RUR vacancy each, Go fails on the second page
	assert.Contains(t, out[hhTable:sjTable], "125,000 ₽")
	assert.Contains(t, out[sjTable:], "72,000 ₽")
	assert.Contains(t, out[sjTable:], "Go")
}

func TestRunJSON(t *testing.T) {
	t.Setenv("SUPERJOB_APP_KEY", "test-key")

	hh, sj := fakeBoards(t)
	defer hh.Close()
	defer sj.Close()

	opts := options{
		configPath: writeConfig(t, hh.URL, sj.URL),
		source:     "hh",
		format:     "json",
	}

	var stdout bytes.Buffer
	logger := pterm.DefaultLogger.WithWriter(io.Discard)
	require.NoError(t, run(context.Background(), opts, &stdout, io.Discard, logger))

	out := stdout.String()
	assert.Contains(t, out, `"title": "HeadHunter Moscow"`)
	assert.Contains(t, out, `"average_salary": 125000`)
	assert.Contains(t, out, `"error": "page 1: GET`)
	assert.NotContains(t, out, "SuperJob Moscow")
}

func TestRunRejectsBadOptions(t *testing.T) {
	logger := pterm.DefaultLogger.WithWriter(io.Discard)

	err := run(context.Background(), options{format: "xml"}, io.Discard, io.Discard, logger)
	assert.ErrorContains(t, err, "invalid format")

	err = run(context.Background(), options{format: "table", source: "linkedin"}, io.Discard, io.Discard, logger)
	assert.ErrorContains(t, err, "invalid source")
}

func TestRunRequiresSuperJobKey(t *testing.T) {
	t.Setenv("SUPERJOB_APP_KEY", "")
	logger := pterm.DefaultLogger.WithWriter(io.Discard)

	opts := options{configPath: filepath.Join(t.TempDir(), "none.yaml"), format: "table", source: "sj"}
	err := run(context.Background(), opts, io.Discard, io.Discard, logger)
	assert.ErrorContains(t, err, "SUPERJOB_APP_KEY")
}
