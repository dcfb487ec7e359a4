// internal/store/summary.go
package store

import (
	"encoding/json"
	"os"
	"time"

	"github.com/yiangostim/commodity-price-scraper/pkg/models"
)

// CategorySummary aggregates one category's records.
type CategorySummary struct {
	Count       int                      `json:"count"`
	Commodities []models.CommodityRecord `json:"commodities"`
}

// Summary groups a run's records by category for quick consumption.
type Summary struct {
	ScrapedAt        string                     `json:"scraped_at"`
	TotalCommodities int                        `json:"total_commodities"`
	Categories       map[string]CategorySummary `json:"categories"`
}

// BuildSummary aggregates res into the category-grouped summary document.
func BuildSummary(res *models.ScrapeResult) Summary {
	summary := Summary{
		ScrapedAt:        res.ScrapedAt.UTC().Format(time.RFC3339),
		TotalCommodities: len(res.Records),
		Categories:       make(map[string]CategorySummary),
	}

	for category, records := range res.ByCategory() {
		summary.Categories[category] = CategorySummary{
			Count:       len(records),
			Commodities: records,
		}
	}

	return summary
}

func (w *Writer) writeSummary(path string, res *models.ScrapeResult) error {
	content, err := json.MarshalIndent(BuildSummary(res), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0644)
}
