package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/guildandgrove/website/internal/app"
	"github.com/guildandgrove/website/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "guildandgrove",
	Short: "Guild & Grove landing site and savings estimator",
	Long: `guildandgrove serves the Guild & Grove landing page, exports it as static
files, and runs the agency fees savings estimator from the terminal.

Configuration is read from GG_* environment variables; flags override them.`,
	SilenceUsage:       true,
	PersistentPreRunE:  loadConfig,
	PersistentPostRunE: syncLogger,
}

var (
	cfg      *app.Config
	logger   *zap.Logger
	logLevel string
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides GG_LOG_LEVEL)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := app.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		c.LogLevel = logLevel
	}

	l, err := logging.Init(c.LogLevel)
	if err != nil {
		return err
	}
	cfg, logger = c, l
	return nil
}

func syncLogger(cmd *cobra.Command, args []string) error {
	if logger != nil {
		// stderr does not support fsync on every platform.
		_ = logger.Sync()
	}
	return nil
}
