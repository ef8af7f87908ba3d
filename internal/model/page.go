// Package model holds the shared domain types.
package model

// Page represents a page fetched through the scraping provider.
type Page struct {
	URL        string `json:"url"`
	Title      string `json:"title"`
	Markdown   string `json:"markdown"`
	StatusCode int    `json:"status_code"`
}
