// Package scrape turns Firecrawl responses into pages with a small,
// UI-friendly error taxonomy.
package scrape

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/site2api/internal/model"
	"github.com/sells-group/site2api/pkg/firecrawl"
)

// Scraper fetches a single URL and returns its content.
type Scraper interface {
	Scrape(ctx context.Context, rawURL string) (*model.Page, error)
}

// FirecrawlScraper implements Scraper against the Firecrawl scrape API.
// It is stateless: each call is one outbound request, no retries, no
// caching.
type FirecrawlScraper struct {
	client  firecrawl.Client
	formats []string
}

// New creates a FirecrawlScraper. An empty API key is rejected here so
// a missing credential surfaces at startup, before any scrape attempt.
func New(apiKey string, opts ...firecrawl.Option) (*FirecrawlScraper, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, newError(KindMissingCredential, "FIRECRAWL_API_KEY is not set", nil)
	}
	return NewWithClient(firecrawl.NewClient(apiKey, opts...)), nil
}

// NewWithClient creates a FirecrawlScraper from an existing client.
func NewWithClient(client firecrawl.Client) *FirecrawlScraper {
	return &FirecrawlScraper{
		client:  client,
		formats: []string{"markdown"},
	}
}

// WithFormats overrides the formats requested from the provider.
func (s *FirecrawlScraper) WithFormats(formats []string) *FirecrawlScraper {
	if len(formats) > 0 {
		s.formats = formats
	}
	return s
}

// Client exposes the underlying Firecrawl client so callers can share
// it with other provider operations.
func (s *FirecrawlScraper) Client() firecrawl.Client {
	return s.client
}

// ValidateURL checks that rawURL is a well-formed absolute http(s) URL.
// It returns the parsed URL or a KindMalformedURL error.
func ValidateURL(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, newError(KindMalformedURL, "URL is empty", nil)
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, newError(KindMalformedURL, "URL does not parse: "+trimmed, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, newError(KindMalformedURL, "URL must start with http:// or https://", nil)
	}
	if u.Host == "" {
		return nil, newError(KindMalformedURL, "URL has no host", nil)
	}
	return u, nil
}

// Scrape validates rawURL locally, then makes exactly one call to the
// provider. Provider failures come back classified; see ErrorKind.
func (s *FirecrawlScraper) Scrape(ctx context.Context, rawURL string) (*model.Page, error) {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Scrape(ctx, firecrawl.ScrapeRequest{
		URL:     u.String(),
		Formats: s.formats,
	})
	if err != nil {
		return nil, classifyProviderError(u.String(), err)
	}
	if !resp.Success {
		return nil, newError(KindUnreachableTarget, "provider could not fetch "+u.String(), nil)
	}
	if resp.Data.StatusCode >= 400 {
		zap.L().Debug("scrape: target returned error status",
			zap.String("url", u.String()),
			zap.Int("status", resp.Data.StatusCode),
		)
		return nil, newError(KindUnreachableTarget, "target responded with an error page", nil)
	}

	return &model.Page{
		URL:        resp.Data.URL,
		Title:      resp.Data.Title,
		Markdown:   resp.Data.Markdown,
		StatusCode: resp.Data.StatusCode,
	}, nil
}

// classifyProviderError maps a Firecrawl client error to the closest
// ErrorKind. 401/403 mean the key was rejected; 402 and 429 are account
// and provider-side conditions; other 4xx responses mean the provider
// refused or failed to fetch the target; everything else (5xx,
// transport, decode) is a service error.
func classifyProviderError(targetURL string, err error) error {
	var apiErr *firecrawl.APIError
	if !errors.As(err, &apiErr) {
		return newError(KindServiceError, "scraping service is unavailable", err)
	}

	switch {
	case apiErr.StatusCode == 401 || apiErr.StatusCode == 403:
		return newError(KindInvalidCredential, "scraping service rejected the API key", err)
	case apiErr.StatusCode == 402:
		return newError(KindServiceError, "scraping service reported insufficient credits", err)
	case apiErr.StatusCode == 429:
		return newError(KindServiceError, "scraping service is rate limiting requests", err)
	case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
		return newError(KindUnreachableTarget, "provider could not fetch "+targetURL, err)
	default:
		return newError(KindServiceError, "scraping service returned an unexpected response", err)
	}
}
