package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Config holds application configuration values
type Config struct {
	// Logging
	LogLevel string
	JSONLog  bool

	// HTTP/Scraping
	SourceURL   string
	HTTPTimeout time.Duration
	UserAgent   string

	// Output
	OutputDir   string
	WriteReport bool
}

// Load builds a Config by combining defaults, environment variables, and CLI
// flags. Caller should pass the root *cobra.Command so flags can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	cfg := &Config{
		LogLevel:    DefaultLogLevel,
		JSONLog:     DefaultJSONLog,
		SourceURL:   DefaultSourceURL,
		HTTPTimeout: DefaultHTTPTimeout,
		UserAgent:   DefaultUserAgent,
		OutputDir:   DefaultOutputDir,
		WriteReport: DefaultWriteReport,
	}

	// Override from environment variables (simple helpers)
	if v := os.Getenv("COMMODITY_URL"); v != "" {
		cfg.SourceURL = v
	}
	if v := os.Getenv("COMMODITY_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("COMMODITY_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}

	// Read CLI flags if provided
	if cmd != nil {
		if f := cmd.Flags().Lookup("url"); f != nil && f.Changed {
			if s := f.Value.String(); s != "" {
				cfg.SourceURL = s
			}
		}
		if f := cmd.Flags().Lookup("output-dir"); f != nil && f.Changed {
			if s := f.Value.String(); s != "" {
				cfg.OutputDir = s
			}
		}
		if f := cmd.Flags().Lookup("user-agent"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.UserAgent = s
			}
		}
		if f := cmd.Flags().Lookup("timeout"); f != nil {
			if s := f.Value.String(); s != "" {
				if d, err := time.ParseDuration(s); err == nil {
					cfg.HTTPTimeout = d
				}
			}
		}
		if f := cmd.Flags().Lookup("json"); f != nil {
			if f.Value.String() == "true" {
				cfg.JSONLog = true
			}
		}
		if f := cmd.Flags().Lookup("verbose"); f != nil {
			if f.Value.String() == "true" {
				cfg.LogLevel = "debug"
			}
		}
		if f := cmd.Flags().Lookup("no-report"); f != nil {
			if f.Value.String() == "true" {
				cfg.WriteReport = false
			}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
