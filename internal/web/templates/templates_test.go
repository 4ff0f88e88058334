package templates

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/guildandgrove/website/internal/content"
	"github.com/guildandgrove/website/internal/domain"
	"github.com/guildandgrove/website/internal/util"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func defaultView(basePath string) EstimatorView {
	in := domain.DefaultEstimateInput()
	money := util.NewMoney(language.BritishEnglish, currency.GBP)
	return NewEstimatorView(basePath, in, in.Calculate(), money)
}

func TestLandingPage_ContainsRequiredSections(t *testing.T) {
	head := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<title>head-marker</title>")
		return err
	})
	cfg := PageConfig{BasePath: "/guildandgrove/", AssetVersion: "v1", Lang: "en-GB", Head: head, Year: 2026}

	html := render(t, LandingPage(cfg, content.Default(), defaultView(cfg.BasePath)))

	for _, id := range content.RequiredSectionIDs {
		if !strings.Contains(html, `id="`+id+`"`) {
			t.Errorf("missing section id %q", id)
		}
	}
	for _, want := range []string{
		`id="` + content.EstimatorID + `"`,
		`id="` + ResultID + `"`,
		`id="video"`,
		"<title>head-marker</title>",
		`lang="en-GB"`,
		`href="/guildandgrove/static/site.css?v=v1"`,
		"Guild &amp; Grove",
		"© 2026",
		"<form",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
}

func TestEstimator_DefaultValues(t *testing.T) {
	html := render(t, Estimator(defaultView("/")))

	tests := []string{
		`hx-get="/estimate"`,
		`action="/"`,
		`name="hires"`,
		`value="20"`,
		`value="60000"`,
		`max="100"`,
		"Avg salary (£)",
		"£240,000",
		"£12,000",
		"£96,000",
		"£168,000",
		"40%",
		"70%",
	}
	for _, want := range tests {
		if !strings.Contains(html, want) {
			t.Errorf("expected estimator to contain %q", want)
		}
	}
}

func TestEstimateResult_ZeroHires(t *testing.T) {
	in := domain.EstimateInput{Hires: 0, AverageSalary: 60000, AgencyFeePercent: 20}
	money := util.NewMoney(language.BritishEnglish, currency.GBP)
	view := NewEstimatorView("/", in, in.Calculate(), money)

	html := render(t, EstimateResult(view))

	if strings.Count(html, "£0") != 4 {
		t.Errorf("expected four zero amounts, got %q", html)
	}
}

func TestNewEstimatorView_EchoesRawInput(t *testing.T) {
	in := domain.EstimateInput{Hires: -5, AverageSalary: 1.5, AgencyFeePercent: 20}
	money := util.NewMoney(language.BritishEnglish, currency.GBP)

	view := NewEstimatorView("/base/", in, in.Calculate(), money)

	if view.Hires != "-5" {
		t.Errorf("expected raw hires -5, got %q", view.Hires)
	}
	if view.Salary != "1.5" {
		t.Errorf("expected raw salary 1.5, got %q", view.Salary)
	}
	if view.AnnualFees != "£0" {
		t.Errorf("expected clamped fees £0, got %q", view.AnnualFees)
	}
	if view.Endpoint != "/base/estimate" {
		t.Errorf("unexpected endpoint %q", view.Endpoint)
	}
}

func TestContactSection_Forms(t *testing.T) {
	site := content.Default()
	html := render(t, ContactSection("/gg/", site.Brand, site.Contact))

	for _, want := range []string{
		`id="contact"`,
		`action="/gg/contact"`,
		`hx-post="/gg/newsletter"`,
		`hx-target="#contact-result"`,
		`<textarea rows="4" class="field" name="message"`,
		`<div class="wide">`,
		`href="mailto:hello@guildandgrove.com"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected contact section to contain %q", want)
		}
	}
}

func TestFormAck_EscapesMessage(t *testing.T) {
	html := render(t, FormAck("<b>thanks</b>"))
	if strings.Contains(html, "<b>") {
		t.Errorf("expected escaped message, got %q", html)
	}
}

func TestAnchorURL(t *testing.T) {
	tests := []struct {
		base, href string
		want       templ.SafeURL
	}{
		{"/gg/", "#contact", "#contact"},
		{"/gg/", "mailto:hello@example.com", "mailto:hello@example.com"},
		{"/gg/", "sitemap.xml", "/gg/sitemap.xml"},
		{"", "javascript:alert(1)", templ.FailedSanitizationURL},
	}
	for _, tt := range tests {
		if got := anchorURL(tt.base, tt.href); got != tt.want {
			t.Errorf("anchorURL(%q, %q) = %q, want %q", tt.base, tt.href, got, tt.want)
		}
	}
}

func TestIcon_UnknownRendersNothing(t *testing.T) {
	if html := render(t, Icon("nope", "")); html != "" {
		t.Errorf("expected empty output, got %q", html)
	}
}

func TestComponent_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := FormAck("ok").Render(ctx, io.Discard); err == nil {
		t.Error("expected error for cancelled context")
	}
}
