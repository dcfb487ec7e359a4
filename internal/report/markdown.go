// internal/report/markdown.go
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"

	"github.com/yiangostim/commodity-price-scraper/pkg/models"
)

const reportName = "latest_prices.md"

// SaveMarkdown renders the run's commodity tables as a human-readable
// markdown report, one section per category in page order. Categories whose
// table HTML was not captured are skipped.
func SaveMarkdown(res *models.ScrapeResult, dir string) error {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	var sb strings.Builder
	sb.WriteString("# Commodity Prices\n\n")
	fmt.Fprintf(&sb, "Scraped at %s\n", res.ScrapedAt.UTC().Format(time.RFC3339))

	for _, category := range models.Categories {
		html, ok := res.TableHTML[category]
		if !ok || strings.TrimSpace(html) == "" {
			continue
		}

		table, err := converter.ConvertString(html)
		if err != nil {
			return fmt.Errorf("failed to convert %s table: %w", category, err)
		}

		fmt.Fprintf(&sb, "\n## %s\n\n", category)
		sb.WriteString(strings.TrimSpace(table))
		sb.WriteString("\n")
	}

	return os.WriteFile(filepath.Join(dir, reportName), []byte(sb.String()), 0644)
}
