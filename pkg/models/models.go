// pkg/models/models.go
package models

import "time"

// Trend is the direction of a commodity's percentage change, derived from
// the color class on the percentage cell.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// Categories lists the four commodity groupings in the order their tables
// appear on the page. Tables are labeled by position, not by content.
var Categories = []string{
	"Precious Metals",
	"Energy",
	"Industrial Metals",
	"Agriculture",
}

// CommodityRecord represents one row of a commodity table. All figures are
// kept as text exactly as displayed; numeric conversion is left to consumers.
type CommodityRecord struct {
	Category         string `json:"category"`
	Name             string `json:"name"`
	Price            string `json:"price"`
	PercentageChange string `json:"percentage_change"`
	AbsoluteChange   string `json:"absolute_change"`
	Unit             string `json:"unit"`
	MarketTime       string `json:"market_time"`
	Trend            Trend  `json:"trend"`
}

// ScrapeResult is the outcome of one scrape run: the ordered records plus
// the raw HTML of each matched table, keyed by category, for report output.
type ScrapeResult struct {
	ScrapedAt time.Time         `json:"scraped_at"`
	Records   []CommodityRecord `json:"records"`
	TableHTML map[string]string `json:"-"`
}

// Empty reports whether the run produced no records.
func (r *ScrapeResult) Empty() bool {
	return r == nil || len(r.Records) == 0
}

// ByCategory groups the records by category, preserving record order within
// each group. Categories with no records are absent from the map.
func (r *ScrapeResult) ByCategory() map[string][]CommodityRecord {
	grouped := make(map[string][]CommodityRecord)
	for _, rec := range r.Records {
		grouped[rec.Category] = append(grouped[rec.Category], rec)
	}
	return grouped
}
