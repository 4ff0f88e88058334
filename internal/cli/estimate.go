package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/guildandgrove/website/internal/app"
	"github.com/guildandgrove/website/internal/app/tui"
	"github.com/guildandgrove/website/internal/domain"
	"github.com/guildandgrove/website/internal/ports"
	"github.com/guildandgrove/website/internal/util"
	"github.com/guildandgrove/website/internal/web"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate agency fee spend and potential savings",
	Long: `Estimate annual agency fee spend and the savings from building in-house
recruitment capability.

Values that do not parse as numbers count as zero; negatives count as zero.

Examples:
  guildandgrove estimate                                  # Defaults: 20 hires, 60000 salary, 20%
  guildandgrove estimate --hires 35 --salary 72000        # Custom inputs
  guildandgrove estimate --percent 25 --json              # JSON output
  guildandgrove estimate --interactive                    # Terminal estimator`,
	RunE: runEstimate,
}

var (
	estimateHires       string
	estimateSalary      string
	estimatePercent     string
	estimateJSON        bool
	estimateInteractive bool
)

func init() {
	rootCmd.AddCommand(estimateCmd)
	estimateCmd.Flags().StringVar(&estimateHires, domain.FieldHires, "", "Hires per year (default 20)")
	estimateCmd.Flags().StringVar(&estimateSalary, domain.FieldSalary, "", "Average salary (default 60000)")
	estimateCmd.Flags().StringVar(&estimatePercent, domain.FieldPercent, "", "Agency fee percent (default 20)")
	estimateCmd.Flags().BoolVar(&estimateJSON, "json", false, "Print JSON")
	estimateCmd.Flags().BoolVarP(&estimateInteractive, "interactive", "i", false, "Open the terminal estimator")
}

// flagLookup reports a field as present only when its flag was set.
func flagLookup(flags *pflag.FlagSet) func(string) (string, bool) {
	return func(field string) (string, bool) {
		if !flags.Changed(field) {
			return "", false
		}
		return flags.Lookup(field).Value.String(), true
	}
}

func runEstimate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := app.Build(ctx, cfg, logger, cfg.OTEL.Enabled)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(ctx); err != nil {
			logger.Sugar().Named("cli").Warnw("flush recorders", "error", err)
		}
	}()

	in := domain.ParseEstimateInput(flagLookup(cmd.Flags()))
	source := ports.SourceCLI

	var est domain.Estimate
	if estimateInteractive {
		est, err = tui.Run(a.Money, in)
		if err != nil {
			return fmt.Errorf("run estimator: %w", err)
		}
		source = ports.SourceTUI
	} else {
		est = in.Calculate()
	}

	if err := a.Recorder.RecordEstimate(ctx, source, est); err != nil {
		logger.Sugar().Named("cli").Warnw("record estimate", "error", err)
	}

	return printEstimate(cmd.OutOrStdout(), est, a.Money, estimateJSON)
}

func printEstimate(out io.Writer, est domain.Estimate, money *util.Money, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(web.NewEstimateResponse(est, money))
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tVALUE")
	fmt.Fprintln(w, "-----\t-----")
	fmt.Fprintf(w, "Hires / year\t%s\n", util.FormatInput(est.Input.Hires))
	fmt.Fprintf(w, "Avg salary\t%s\n", money.Format(est.Input.AverageSalary))
	fmt.Fprintf(w, "Agency fee\t%s%%\n", util.FormatInput(est.Input.AgencyFeePercent))
	fmt.Fprintf(w, "Estimated annual fees\t%s\n", money.Format(est.AnnualFees))
	fmt.Fprintf(w, "Per hire\t%s\n", money.Format(est.PerHire))
	fmt.Fprintf(w, "Savings at %s\t%s\n", util.FormatPercent(domain.SavingsLowRate), money.Format(est.SavingsLow))
	fmt.Fprintf(w, "Savings at %s\t%s\n", util.FormatPercent(domain.SavingsHighRate), money.Format(est.SavingsHigh))
	return w.Flush()
}
