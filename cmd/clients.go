package main

import (
	"github.com/sells-group/site2api/internal/scrape"
	"github.com/sells-group/site2api/pkg/firecrawl"
)

// buildClients validates the config and constructs the scraper plus the
// Firecrawl client backing it. Called by every command that talks to
// the provider, so a missing key fails before any work starts.
func buildClients() (*scrape.FirecrawlScraper, firecrawl.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	scraper, err := scrape.New(cfg.Firecrawl.Key, firecrawl.WithBaseURL(cfg.Firecrawl.BaseURL))
	if err != nil {
		return nil, nil, err
	}
	scraper.WithFormats(cfg.Firecrawl.Formats)

	return scraper, scraper.Client(), nil
}
