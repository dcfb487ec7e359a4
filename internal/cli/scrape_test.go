// internal/cli/scrape_test.go
package cli

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yiangostim/commodity-price-scraper/internal/config"
	"github.com/yiangostim/commodity-price-scraper/internal/report"
	"github.com/yiangostim/commodity-price-scraper/internal/store"
)

const fixtureHTML = `<!DOCTYPE html>
<html>
<body>
	<table class="table"><tbody>
		<tr>
			<td><a href="/commodities/gold">Gold</a></td>
			<td><span class="push-data">2,411.50</span></td>
			<td><span class="push-data colorGreen">+0.55%</span></td>
			<td><span class="push-data">+13.25</span></td>
			<td>USD per Troy Ounce</td>
			<td><span class="push-data">08/23/2025</span></td>
		</tr>
	</tbody></table>
	<table class="table"><tbody>
		<tr>
			<td><a href="/commodities/oil">Oil (WTI)</a></td>
			<td><span class="push-data">74.83</span></td>
			<td><span class="push-data colorRed">-1.10%</span></td>
			<td><span class="push-data">-0.81</span></td>
			<td>USD per Barrel</td>
			<td><span class="push-data">08/23/2025</span></td>
		</tr>
	</tbody></table>
</body>
</html>`

func testConfig(url, dir string) *config.Config {
	return &config.Config{
		SourceURL:   url,
		OutputDir:   dir,
		HTTPTimeout: 5 * time.Second,
		UserAgent:   "Test/1.0",
		WriteReport: true,
	}
}

func TestScrapeOnce_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixtureHTML))
	}))
	defer server.Close()

	result := scrapeOnce(testConfig(server.URL, t.TempDir()))

	if result.Empty() {
		t.Fatal("Expected records from fixture page")
	}
	if len(result.Records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(result.Records))
	}
	if result.Records[0].Category != "Precious Metals" || result.Records[1].Category != "Energy" {
		t.Errorf("Unexpected categories: %q, %q",
			result.Records[0].Category, result.Records[1].Category)
	}
}

func TestScrapeOnce_FetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	result := scrapeOnce(testConfig(server.URL, t.TempDir()))

	// Transport and parse failures both collapse to an empty result
	if !result.Empty() {
		t.Fatalf("Expected empty result on 503, got %d records", len(result.Records))
	}
}

func TestScrapeOnce_NoTables(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>Maintenance</p></body></html>"))
	}))
	defer server.Close()

	result := scrapeOnce(testConfig(server.URL, t.TempDir()))

	if !result.Empty() {
		t.Fatalf("Expected empty result without tables, got %d records", len(result.Records))
	}
}

func TestPipeline_WritesAllOutputs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixtureHTML))
	}))
	defer server.Close()

	dir := t.TempDir()
	cfg := testConfig(server.URL, dir)

	result := scrapeOnce(cfg)
	if result.Empty() {
		t.Fatal("Expected records from fixture page")
	}

	writer, err := store.NewWriter(cfg.OutputDir)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if err := writer.Write(result); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := report.SaveMarkdown(result, cfg.OutputDir); err != nil {
		t.Fatalf("SaveMarkdown failed: %v", err)
	}

	for _, name := range []string{"latest_prices.csv", "latest_prices.json", "summary.json", "latest_prices.md"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected output file %s: %v", name, err)
		}
	}

	loaded, err := store.LoadLatest(dir)
	if err != nil {
		t.Fatalf("LoadLatest failed: %v", err)
	}
	if len(loaded.Records) != len(result.Records) {
		t.Errorf("Round-trip record count mismatch: got %d, want %d",
			len(loaded.Records), len(result.Records))
	}
}
