package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/guildandgrove/website/internal/content"
	"github.com/guildandgrove/website/internal/domain"
	"github.com/guildandgrove/website/internal/ports"
	"github.com/guildandgrove/website/internal/seo"
	"github.com/guildandgrove/website/internal/util"
)

const testBase = "/guildandgrove/"

type recorded struct {
	source string
	est    domain.Estimate
}

type fakeRecorder struct {
	mu   sync.Mutex
	got  []recorded
	fail bool
}

func (f *fakeRecorder) RecordEstimate(ctx context.Context, source string, est domain.Estimate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, recorded{source: source, est: est})
	if f.fail {
		return errors.New("backend down")
	}
	return nil
}

func (f *fakeRecorder) Close(ctx context.Context) error { return nil }

func (f *fakeRecorder) sources() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, r := range f.got {
		out = append(out, r.source)
	}
	return out
}

var _ ports.EstimateRecorder = (*fakeRecorder)(nil)

func testServer(t *testing.T, basePath string, reg *prometheus.Registry) (*Server, *fakeRecorder) {
	t.Helper()

	site := content.Default()
	meta, err := seo.Build("https://www.guildandgrove.com"+basePath, site.Brand)
	require.NoError(t, err)

	rec := &fakeRecorder{}
	s, err := NewServer(Options{
		Addr:         ":0",
		BasePath:     basePath,
		Lang:         "en-GB",
		AssetVersion: "test",
		Registry:     reg,
	}, site, meta, util.NewMoney(language.BritishEnglish, currency.GBP), rec, nil)
	require.NoError(t, err)
	return s, rec
}

func do(t *testing.T, s *Server, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestIndex_RendersLandingPage(t *testing.T) {
	s, rec := testServer(t, testBase, nil)

	w := do(t, s, http.MethodGet, testBase, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	for _, id := range content.RequiredSectionIDs {
		assert.Contains(t, body, `id="`+id+`"`)
	}
	assert.Contains(t, body, `id="agency-calc"`)
	assert.Contains(t, body, "£240,000")
	assert.Contains(t, body, `<link rel="canonical" href="https://www.guildandgrove.com/guildandgrove/">`)
	assert.Contains(t, body, `hx-get="/guildandgrove/estimate"`)
	assert.Empty(t, rec.sources(), "plain page loads are not recorded")
}

func TestIndex_PrefillsFromQuery(t *testing.T) {
	s, rec := testServer(t, testBase, nil)

	w := do(t, s, http.MethodGet, testBase+"?hires=10&salary=50000&percent=25", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "£125,000")
	assert.Equal(t, []string{ports.SourcePage}, rec.sources())
}

func TestEstimate_HTMXReturnsFragment(t *testing.T) {
	s, rec := testServer(t, testBase, nil)

	w := do(t, s, http.MethodGet, testBase+"estimate?hires=0&salary=60000&percent=20", map[string]string{"HX-Request": "true"})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, `<div id="estimate-result"`), body)
	assert.NotContains(t, body, "<html")
	assert.Equal(t, 4, strings.Count(body, "£0"))
	assert.Contains(t, w.Header().Values("Vary"), "HX-Request")
	assert.Equal(t, []string{ports.SourceHTMX}, rec.sources())
}

func TestEstimate_WithoutHTMXReturnsFullPage(t *testing.T) {
	s, _ := testServer(t, testBase, nil)

	w := do(t, s, http.MethodGet, testBase+"estimate?hires=20", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<!doctype html>")
}

func TestAPIEstimate(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantFees  float64
		wantHire  float64
		wantLabel string
	}{
		{"defaults", "", 240000, 12000, "£240,000"},
		{"zero hires", "hires=0", 0, 0, "£0"},
		{"malformed hires", "hires=abc", 0, 0, "£0"},
		{"empty salary", "salary=", 0, 0, "£0"},
		{"negative hires", "hires=-5", 0, 0, "£0"},
		{"custom", "hires=3&salary=40000&percent=15", 18000, 6000, "£18,000"},
		{"overflowing fees", "hires=1e200&salary=1e200", 0, 0, "£0"},
		{"overflowing fees zero percent", "hires=1e200&salary=1e200&percent=0", 0, 0, "£0"},
		{"hex hires", "hires=0x10&salary=1000&percent=10", 1600, 100, "£1,600"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec := testServer(t, testBase, nil)

			w := do(t, s, http.MethodGet, testBase+"api/estimate?"+tt.query, nil)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var resp EstimateResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "GBP", resp.Currency)
			assert.InDelta(t, tt.wantFees, resp.Result.AnnualFees, 1e-6)
			assert.InDelta(t, tt.wantHire, resp.Result.PerHire, 1e-6)
			assert.InDelta(t, tt.wantFees*domain.SavingsLowRate, resp.Result.SavingsLow, 1e-6)
			assert.InDelta(t, tt.wantFees*domain.SavingsHighRate, resp.Result.SavingsHigh, 1e-6)
			assert.Equal(t, tt.wantLabel, resp.Formatted.AnnualFees)
			assert.GreaterOrEqual(t, resp.Input.Hires, 0.0)
			assert.Equal(t, []string{ports.SourceAPI}, rec.sources())
		})
	}
}

func TestAPIEstimate_RecorderFailureIsNotSurfaced(t *testing.T) {
	s, rec := testServer(t, testBase, nil)
	rec.fail = true

	w := do(t, s, http.MethodGet, testBase+"api/estimate", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestForms_Acknowledge(t *testing.T) {
	for _, path := range []string{"contact", "newsletter"} {
		t.Run(path, func(t *testing.T) {
			s, _ := testServer(t, testBase, nil)

			form := url.Values{"email": {"alex@company.com"}}
			req := httptest.NewRequest(http.MethodPost, testBase+path, strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req.Header.Set("HX-Request", "true")
			w := httptest.NewRecorder()
			s.Handler().ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `class="form-ack"`)
		})
	}
}

func TestForms_PlainPostRedirects(t *testing.T) {
	s, _ := testServer(t, testBase, nil)

	w := do(t, s, http.MethodPost, testBase+"contact", nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, testBase+"#contact", w.Header().Get("Location"))
}

func TestSitemapAndRobots(t *testing.T) {
	s, _ := testServer(t, testBase, nil)

	w := do(t, s, http.MethodGet, testBase+"sitemap.xml", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, w.Body.String(), "<loc>https://www.guildandgrove.com/guildandgrove/</loc>")

	w = do(t, s, http.MethodGet, testBase+"robots.txt", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sitemap: https://www.guildandgrove.com/guildandgrove/sitemap.xml")
}

func TestStaticAndHealth(t *testing.T) {
	s, _ := testServer(t, testBase, nil)

	w := do(t, s, http.MethodGet, testBase+"static/site.css", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".estimator")

	w = do(t, s, http.MethodGet, testBase+"health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestOutsideBasePath(t *testing.T) {
	s, _ := testServer(t, testBase, nil)

	w := do(t, s, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, testBase, w.Header().Get("Location"))

	w = do(t, s, http.MethodGet, testBase+"missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRootBasePath(t *testing.T) {
	s, _ := testServer(t, "/", nil)

	w := do(t, s, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="/static/site.css?v=test"`)

	w = do(t, s, http.MethodGet, "/api/estimate", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	s, _ := testServer(t, testBase, reg)

	do(t, s, http.MethodGet, testBase+"api/estimate", nil)
	w := do(t, s, http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gg_http_requests_total")
}

func TestExport(t *testing.T) {
	s, _ := testServer(t, testBase, nil)
	dir := t.TempDir()

	res, err := s.Export(context.Background(), dir)
	require.NoError(t, err)
	assert.Contains(t, res.Files, "index.html")
	assert.Contains(t, res.Files, filepath.Join("static", "site.css"))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `id="agency-calc"`)

	for _, name := range []string{"sitemap.xml", "robots.txt", filepath.Join("static", "site.css")} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}
