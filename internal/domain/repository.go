package domain

import "context"

// Fetcher retrieves a response body for a URL
type Fetcher interface {
	Fetch(ctx context.Context, url string, headers map[string]string) ([]byte, error)
}

// Document answers structural locator queries against a parsed page
type Document interface {
	// Text returns the text content of the first match, or false when nothing matches
	Text(locator string) (string, bool)
	// Attr returns the named attribute of the first match, or false when absent
	Attr(locator, name string) (string, bool)
}

// Extractor produces a fixed number of candidate products for a search term
type Extractor interface {
	Retailer() Retailer
	Extract(ctx context.Context, searchTerm string) ([]Product, error)
}
