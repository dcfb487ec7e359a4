package config

import "github.com/spf13/cobra"

// RegisterFlags registers common CLI flags on the provided root command
func RegisterFlags(cmd *cobra.Command) {
	if cmd == nil {
		return
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().Bool("json", false, "Emit logs in JSON format")
	cmd.PersistentFlags().String("url", DefaultSourceURL, "Commodities listing page to scrape")
	cmd.PersistentFlags().String("output-dir", DefaultOutputDir, "Directory for CSV/JSON output files")
	cmd.PersistentFlags().String("timeout", "30s", "Hard timeout for the HTTP request")
	cmd.PersistentFlags().String("user-agent", "", "Custom user agent string")
	cmd.PersistentFlags().Bool("no-report", false, "Skip writing the markdown report")
}
