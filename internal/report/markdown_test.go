// internal/report/markdown_test.go
package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yiangostim/commodity-price-scraper/pkg/models"
)

func TestSaveMarkdown(t *testing.T) {
	dir := t.TempDir()
	res := &models.ScrapeResult{
		ScrapedAt: time.Date(2025, 8, 23, 14, 6, 0, 0, time.UTC),
		Records: []models.CommodityRecord{
			{Category: "Precious Metals", Name: "Gold"},
		},
		TableHTML: map[string]string{
			"Precious Metals": `<table><tbody><tr><td><a href="/gold">Gold</a></td><td>2,411.50</td></tr></tbody></table>`,
			"Energy":          `<table><tbody><tr><td>Oil (WTI)</td><td>74.83</td></tr></tbody></table>`,
		},
	}

	if err := SaveMarkdown(res, dir); err != nil {
		t.Fatalf("SaveMarkdown failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "latest_prices.md"))
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	md := string(content)

	if !strings.Contains(md, "# Commodity Prices") {
		t.Errorf("Expected report title, got:\n%s", md)
	}
	if !strings.Contains(md, "2025-08-23T14:06:00Z") {
		t.Errorf("Expected scrape timestamp in report")
	}
	if !strings.Contains(md, "## Precious Metals") {
		t.Errorf("Expected Precious Metals section")
	}
	if !strings.Contains(md, "## Energy") {
		t.Errorf("Expected Energy section")
	}
	if !strings.Contains(md, "Gold") || !strings.Contains(md, "74.83") {
		t.Errorf("Expected table contents in report, got:\n%s", md)
	}
	// Categories without captured HTML are skipped
	if strings.Contains(md, "## Agriculture") {
		t.Errorf("Did not expect a section for an absent category")
	}
}

func TestSaveMarkdown_SectionOrder(t *testing.T) {
	dir := t.TempDir()
	res := &models.ScrapeResult{
		ScrapedAt: time.Now().UTC(),
		TableHTML: map[string]string{
			"Agriculture":       `<table><tbody><tr><td>Wheat</td></tr></tbody></table>`,
			"Precious Metals":   `<table><tbody><tr><td>Gold</td></tr></tbody></table>`,
			"Industrial Metals": `<table><tbody><tr><td>Copper</td></tr></tbody></table>`,
		},
	}

	if err := SaveMarkdown(res, dir); err != nil {
		t.Fatalf("SaveMarkdown failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "latest_prices.md"))
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	md := string(content)

	metals := strings.Index(md, "## Precious Metals")
	industrial := strings.Index(md, "## Industrial Metals")
	agriculture := strings.Index(md, "## Agriculture")
	if metals == -1 || industrial == -1 || agriculture == -1 {
		t.Fatalf("Missing sections in report:\n%s", md)
	}
	if !(metals < industrial && industrial < agriculture) {
		t.Errorf("Sections not in page order: metals=%d industrial=%d agriculture=%d",
			metals, industrial, agriculture)
	}
}
