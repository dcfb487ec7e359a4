// internal/extract/extractor.go
package extract

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/yiangostim/commodity-price-scraper/pkg/models"
)

const (
	tableSelector = "table.table"
	liveValue     = "span.push-data"
	classGreen    = "colorGreen"
	classRed      = "colorRed"
	minCells      = 6
)

// Extract walks the commodity tables in doc and returns one record per
// well-formed row. The first four tables matching table.table are labeled
// positionally with the fixed category list; any further tables are ignored.
// A document without tables (or without table bodies) yields an empty
// result, never an error - the caller treats zero records as run failure.
func Extract(doc *goquery.Document) *models.ScrapeResult {
	result := &models.ScrapeResult{
		ScrapedAt: time.Now().UTC(),
		TableHTML: make(map[string]string),
	}

	doc.Find(tableSelector).EachWithBreak(func(i int, table *goquery.Selection) bool {
		if i >= len(models.Categories) {
			return false
		}
		category := models.Categories[i]

		log.Debug().
			Str("category", category).
			Int("table_index", i).
			Msg("Processing table")

		if html, err := goquery.OuterHtml(table); err == nil {
			result.TableHTML[category] = html
		}

		table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
			if rec, ok := extractRow(category, row); ok {
				result.Records = append(result.Records, rec)
				log.Debug().
					Str("name", rec.Name).
					Str("price", rec.Price).
					Str("pct", rec.PercentageChange).
					Msg("Extracted commodity")
			}
		})
		return true
	})

	if len(result.Records) == 0 {
		log.Warn().Msg("No commodity rows found in document")
	}

	return result
}

// extractRow maps one table row to a record. Rows with fewer than six cells
// carry no complete quote and are skipped entirely.
func extractRow(category string, row *goquery.Selection) (models.CommodityRecord, bool) {
	cells := row.Find("td")
	if cells.Length() < minCells {
		return models.CommodityRecord{}, false
	}

	nameCell := cells.Eq(0)
	name := strings.TrimSpace(nameCell.Find("a").First().Text())
	if name == "" {
		name = strings.TrimSpace(nameCell.Text())
	}

	pctSpan := cells.Eq(2).Find(liveValue).First()

	return models.CommodityRecord{
		Category:         category,
		Name:             name,
		Price:            cellValue(cells.Eq(1)),
		PercentageChange: cellValue(cells.Eq(2)),
		AbsoluteChange:   cellValue(cells.Eq(3)),
		Unit:             strings.TrimSpace(cells.Eq(4).Text()),
		MarketTime:       cellValue(cells.Eq(5)),
		Trend:            trendOf(pctSpan),
	}, true
}

// cellValue prefers the nested live-value element over the cell's raw text.
func cellValue(cell *goquery.Selection) string {
	if span := cell.Find(liveValue).First(); span.Length() > 0 {
		return strings.TrimSpace(span.Text())
	}
	return strings.TrimSpace(cell.Text())
}

// trendOf reads the directional color class off the percentage live-value
// element. No element or no marker class means neutral.
func trendOf(span *goquery.Selection) models.Trend {
	if span.Length() == 0 {
		return models.TrendNeutral
	}
	switch {
	case span.HasClass(classGreen):
		return models.TrendUp
	case span.HasClass(classRed):
		return models.TrendDown
	default:
		return models.TrendNeutral
	}
}
