// internal/cli/root.go
package cli

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/yiangostim/commodity-price-scraper/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "commodityscrape",
	Short:   "Scrape commodity prices into local CSV/JSON snapshots",
	Long:    `Commodityscrape fetches the Business Insider commodities listing and archives the extracted price table rows under a local data directory.`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Register centralized flags
	config.RegisterFlags(rootCmd)
	cobra.OnInitialize(initLogging)

	// Disable the default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// initLogging configures the global zerolog logger from flags.
func initLogging() {
	cfg, err := config.Load(rootCmd)
	if err != nil {
		// Fall back to defaults but log the issue
		log.Warn().Err(err).Msg("failed to load configuration, using defaults")
		cfg = &config.Config{LogLevel: config.DefaultLogLevel}
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		// Suppress info chatter unless verbose is explicitly requested
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}

	if cfg.JSONLog {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	log.Debug().Str("user_agent", cfg.UserAgent).Msg("Configuration loaded")
}
