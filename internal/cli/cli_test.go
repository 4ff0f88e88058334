package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/guildandgrove/website/internal/app"
	"github.com/guildandgrove/website/internal/domain"
	"github.com/guildandgrove/website/internal/util"
	"github.com/guildandgrove/website/internal/web"
)

func gbp() *util.Money {
	return util.NewMoney(language.BritishEnglish, currency.GBP)
}

func TestPrintEstimate_Table(t *testing.T) {
	var out bytes.Buffer
	in := domain.DefaultEstimateInput()

	require.NoError(t, printEstimate(&out, in.Calculate(), gbp(), false))

	text := out.String()
	for _, want := range []string{
		"FIELD",
		"Estimated annual fees",
		"£240,000",
		"£12,000",
		"Savings at 40%",
		"£96,000",
		"Savings at 70%",
		"£168,000",
		"20%",
	} {
		assert.Contains(t, text, want)
	}
}

func TestPrintEstimate_JSON(t *testing.T) {
	var out bytes.Buffer
	in := domain.EstimateInput{Hires: 0, AverageSalary: 60000, AgencyFeePercent: 20}

	require.NoError(t, printEstimate(&out, in.Calculate(), gbp(), true))

	var resp web.EstimateResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "GBP", resp.Currency)
	assert.Zero(t, resp.Result.AnnualFees)
	assert.Zero(t, resp.Result.PerHire)
	assert.Equal(t, "£0", resp.Formatted.PerHire)
}

func TestPrintEstimate_JSONOverflow(t *testing.T) {
	for _, percent := range []float64{20, 0} {
		var out bytes.Buffer
		in := domain.EstimateInput{Hires: 1e200, AverageSalary: 1e200, AgencyFeePercent: percent}

		require.NoError(t, printEstimate(&out, in.Calculate(), gbp(), true), "percent %v", percent)

		var resp web.EstimateResponse
		require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
		assert.Zero(t, resp.Result.AnnualFees)
		assert.Zero(t, resp.Result.SavingsHigh)
		assert.Equal(t, "£0", resp.Formatted.AnnualFees)
	}
}

func TestFlagLookup(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	var hires, salary, percent string
	cmd.Flags().StringVar(&hires, domain.FieldHires, "", "")
	cmd.Flags().StringVar(&salary, domain.FieldSalary, "", "")
	cmd.Flags().StringVar(&percent, domain.FieldPercent, "", "")
	require.NoError(t, cmd.Flags().Parse([]string{"--hires", "abc", "--salary", "-100"}))

	in := domain.ParseEstimateInput(flagLookup(cmd.Flags()))

	assert.Zero(t, in.Hires, "malformed flag value counts as zero")
	assert.Equal(t, -100.0, in.AverageSalary)
	assert.Equal(t, float64(domain.DefaultAgencyFeePercent), in.AgencyFeePercent, "unset flag keeps default")

	est := in.Calculate()
	assert.Zero(t, est.AnnualFees)
	assert.Zero(t, est.Input.AverageSalary)
}

func TestApplyServeFlags(t *testing.T) {
	c, err := app.New()
	require.NoError(t, err)

	cmd := &cobra.Command{Use: "serve"}
	cmd.Flags().IntVarP(&servePort, "port", "p", 8080, "")
	cmd.Flags().StringVar(&serveBasePath, "base-path", "", "")
	require.NoError(t, cmd.Flags().Parse([]string{"--port", "3000", "--base-path", "site"}))

	require.NoError(t, applyServeFlags(cmd, c))
	assert.Equal(t, ":3000", c.Addr)
	assert.Equal(t, "/site/", c.BasePath)
}

func TestEstimateCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"estimate", "--hires", "3", "--salary", "40000", "--percent", "15", "--json", "--log-level", "error"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	var resp web.EstimateResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.InDelta(t, 18000, resp.Result.AnnualFees, 1e-6)
	assert.InDelta(t, 6000, resp.Result.PerHire, 1e-6)
	assert.Equal(t, "£18,000", resp.Formatted.AnnualFees)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestRenderCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"render", "--out", dir, "--base-path", "/gg", "--log-level", "error"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `href="/gg/static/site.css`)
	assert.Contains(t, string(index), `<link rel="canonical" href="https://www.guildandgrove.com/gg/">`)

	robots, err := os.ReadFile(filepath.Join(dir, "robots.txt"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(robots), "Sitemap: https://www.guildandgrove.com/gg/sitemap.xml\n"))

	assert.Contains(t, out.String(), "wrote index.html")
}
