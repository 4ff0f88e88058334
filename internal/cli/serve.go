package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/guildandgrove/website/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the landing page web server.

Examples:
  guildandgrove serve                    # Listen on GG_ADDR (default :8080)
  guildandgrove serve --port 3000        # Listen on :3000
  guildandgrove serve --base-path /      # Serve at the site root`,
	RunE: runServe,
}

var (
	servePort     int
	serveBasePath string
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on (overrides GG_ADDR)")
	serveCmd.Flags().StringVar(&serveBasePath, "base-path", "", "URL path prefix (overrides GG_BASE_PATH)")
}

// applyServeFlags overrides configuration with flags the user set explicitly.
func applyServeFlags(cmd *cobra.Command, c *app.Config) error {
	if cmd.Flags().Changed("port") {
		c.Addr = fmt.Sprintf(":%d", servePort)
	}
	if cmd.Flags().Changed("base-path") {
		c.BasePath = serveBasePath
	}
	return c.Validate()
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := applyServeFlags(cmd, cfg); err != nil {
		return err
	}

	// Create context that cancels on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, cfg, logger)
}
