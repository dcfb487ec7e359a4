package config

import (
	"fmt"
	"net/url"
)

func validate(c *Config) error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be > 0")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	u, err := url.Parse(c.SourceURL)
	if err != nil {
		return fmt.Errorf("source url is not parseable: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("source url must use http or https, got %q", u.Scheme)
	}
	return nil
}
