// internal/cli/scrape.go
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/yiangostim/commodity-price-scraper/internal/config"
	"github.com/yiangostim/commodity-price-scraper/internal/extract"
	"github.com/yiangostim/commodity-price-scraper/internal/fetch"
	"github.com/yiangostim/commodity-price-scraper/internal/report"
	"github.com/yiangostim/commodity-price-scraper/internal/store"
	"github.com/yiangostim/commodity-price-scraper/internal/utils/headers"
	"github.com/yiangostim/commodity-price-scraper/pkg/models"
)

var extraHeaders []string

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Fetch the commodities page and write CSV/JSON snapshots",
	Long: `Fetches the commodities listing page, extracts every table row into a
price record, and writes the run's snapshot files under the output directory.

The run exits nonzero when no records could be extracted, whether the cause
was a network failure or an unrecognized page structure.`,
	Example: `  # Default run against Business Insider into ./data
  commodityscrape scrape

  # Archive into a different directory with debug logging
  commodityscrape scrape --output-dir=/var/lib/commodities -v

  # Add a custom header
  commodityscrape scrape -H "Accept-Language: de-DE,de;q=0.7"`,
	Args: cobra.NoArgs,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringArrayVarP(&extraHeaders, "header", "H", []string{}, "Custom headers (e.g., -H \"Accept-Language: de-DE\")")
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	result := scrapeOnce(cfg)
	if result.Empty() {
		// Both failure kinds have already been logged; zero records is the
		// only signal surfaced to the caller.
		return fmt.Errorf("no data was scraped, check the website structure or network connection")
	}

	fmt.Printf("Scraped %d commodities from %s\n", len(result.Records), cfg.SourceURL)

	writer, err := store.NewWriter(cfg.OutputDir)
	if err != nil {
		return err
	}
	if err := writer.Write(result); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	if cfg.WriteReport {
		if err := report.SaveMarkdown(result, cfg.OutputDir); err != nil {
			log.Warn().Err(err).Msg("Failed to write markdown report")
		}
	}

	fmt.Printf("Scrape completed successfully at %s\n", result.ScrapedAt.UTC().Format(time.RFC3339))
	return nil
}

// scrapeOnce runs the fetch+extract pipeline. Transport and parse failures
// are logged and collapsed into an empty result.
func scrapeOnce(cfg *config.Config) *models.ScrapeResult {
	fetcher := fetch.New(cfg.HTTPTimeout, cfg.UserAgent)
	defer fetcher.CloseIdleConnections()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
	defer cancel()

	log.Info().Str("url", cfg.SourceURL).Msg("Fetching commodities page")
	page, err := fetcher.Fetch(ctx, cfg.SourceURL, headers.ParseHeaders(extraHeaders))
	if err != nil {
		log.Error().Err(err).Str("url", cfg.SourceURL).Msg("Fetch failed")
		return nil
	}

	return extract.Extract(page.Document)
}
