// internal/store/writer.go
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yiangostim/commodity-price-scraper/pkg/models"
)

const (
	latestJSONName = "latest_prices.json"
	latestCSVName  = "latest_prices.csv"
	summaryName    = "summary.json"
	snapshotPrefix = "commodity_prices_"

	// Colons are not valid in filenames on every platform
	fileStampLayout = "2006-01-02T15-04-05Z"
)

var csvHeader = []string{
	"timestamp",
	"category",
	"name",
	"price",
	"percentage_change",
	"absolute_change",
	"unit",
	"market_time",
	"trend",
}

// Snapshot is the JSON document written for one scrape run.
type Snapshot struct {
	ScrapedAt        string                   `json:"scraped_at"`
	TotalCommodities int                      `json:"total_commodities"`
	Commodities      []models.CommodityRecord `json:"commodities"`
}

// Writer persists scrape results as timestamped snapshot files plus
// overwritten "latest" files under a single output directory.
type Writer struct {
	dir string
}

// NewWriter creates a Writer rooted at dir, creating dir if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Write persists one run: a timestamped CSV+JSON pair, the latest CSV+JSON
// pair, and the category summary. Every file is stamped with the run's
// scrape time in RFC 3339 UTC.
func (w *Writer) Write(res *models.ScrapeResult) error {
	if res.Empty() {
		return fmt.Errorf("no records to write")
	}

	stamp := res.ScrapedAt.UTC()
	fileStamp := stamp.Format(fileStampLayout)

	snapshotCSV := filepath.Join(w.dir, snapshotPrefix+fileStamp+".csv")
	snapshotJSON := filepath.Join(w.dir, snapshotPrefix+fileStamp+".json")

	if err := w.writeCSV(snapshotCSV, res); err != nil {
		return err
	}
	if err := w.writeJSON(snapshotJSON, res); err != nil {
		return err
	}
	if err := w.writeCSV(filepath.Join(w.dir, latestCSVName), res); err != nil {
		return err
	}
	if err := w.writeJSON(filepath.Join(w.dir, latestJSONName), res); err != nil {
		return err
	}
	if err := w.writeSummary(filepath.Join(w.dir, summaryName), res); err != nil {
		return err
	}

	log.Info().
		Str("dir", w.dir).
		Int("records", len(res.Records)).
		Str("stamp", stamp.Format(time.RFC3339)).
		Msg("Scrape results written")

	return nil
}

func (w *Writer) writeCSV(path string, res *models.ScrapeResult) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	stamp := res.ScrapedAt.UTC().Format(time.RFC3339)
	for _, rec := range res.Records {
		row := []string{
			stamp,
			rec.Category,
			rec.Name,
			rec.Price,
			rec.PercentageChange,
			rec.AbsoluteChange,
			rec.Unit,
			rec.MarketTime,
			string(rec.Trend),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func (w *Writer) writeJSON(path string, res *models.ScrapeResult) error {
	snapshot := Snapshot{
		ScrapedAt:        res.ScrapedAt.UTC().Format(time.RFC3339),
		TotalCommodities: len(res.Records),
		Commodities:      res.Records,
	}

	content, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0644)
}

// LoadLatest reads the latest-JSON snapshot back from dir.
func LoadLatest(dir string) (*models.ScrapeResult, error) {
	content, err := os.ReadFile(filepath.Join(dir, latestJSONName))
	if err != nil {
		return nil, fmt.Errorf("failed to read latest snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(content, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode latest snapshot: %w", err)
	}

	scrapedAt, err := time.Parse(time.RFC3339, snapshot.ScrapedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot timestamp: %w", err)
	}

	return &models.ScrapeResult{
		ScrapedAt: scrapedAt,
		Records:   snapshot.Commodities,
	}, nil
}
