package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guildandgrove/website/internal/app"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Export the landing page as static files",
	Long: `Render index.html, static assets, sitemap.xml and robots.txt into a directory
for hosting under the configured base path.

Examples:
  guildandgrove render                   # Write to ./dist
  guildandgrove render --out public      # Write to ./public`,
	RunE: runRender,
}

var (
	renderOut      string
	renderBasePath string
)

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "dist", "Output directory")
	renderCmd.Flags().StringVar(&renderBasePath, "base-path", "", "URL path prefix (overrides GG_BASE_PATH)")
}

func runRender(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("base-path") {
		cfg.BasePath = renderBasePath
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	a, err := app.Build(cmd.Context(), cfg, logger, false)
	if err != nil {
		return err
	}
	srv, err := a.Server()
	if err != nil {
		return err
	}

	res, err := srv.Export(cmd.Context(), renderOut)
	if err != nil {
		return fmt.Errorf("export site: %w", err)
	}

	for _, f := range res.Files {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nSite rendered for %s\n", cfg.CanonicalURL())
	return nil
}
