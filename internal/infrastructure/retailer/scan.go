// Package retailer implements the per-retailer product extractors.
package retailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/basketwise/backend/internal/domain"
	"github.com/basketwise/backend/internal/infrastructure/document"
	"github.com/basketwise/backend/internal/normalize"
	"github.com/shopspring/decimal"
)

// slotReader reads the candidate at a 1-based result slot
type slotReader func(doc domain.Document, slot int) domain.Product

// schemaFor returns the retailer schema with the configured page size applied
func schemaFor(retailer domain.Retailer, maxResults int) domain.Schema {
	schema, _ := domain.SchemaFor(retailer)
	if maxResults > 0 {
		schema.MaxResults = maxResults
	}
	return schema
}

// fetchDocument fetches and parses a search results page
func fetchDocument(ctx context.Context, fetcher domain.Fetcher, url string) (domain.Document, error) {
	body, err := fetcher.Fetch(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	doc, err := document.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	return doc, nil
}

// scanSlots probes slots 1..n and returns one candidate per slot, empty or not
func scanSlots(doc domain.Document, n int, read slotReader) []domain.Product {
	candidates := make([]domain.Product, 0, n)
	for slot := 1; slot <= n; slot++ {
		candidates = append(candidates, read(doc, slot))
	}
	return candidates
}

func text(doc domain.Document, profile domain.Profile, locator string) string {
	raw, _ := doc.Text(locator)
	return normalize.Normalize(profile, raw)
}

func attr(doc domain.Document, profile domain.Profile, locator, name string) string {
	raw, _ := doc.Attr(locator, name)
	return normalize.Normalize(profile, raw)
}

// price parses price text, leaving the field zero when it is not numeric
func price(text string) decimal.Decimal {
	p, err := normalize.ParsePrice(text)
	if err != nil {
		return decimal.Decimal{}
	}
	return p
}

// composedPrice joins price fragments with sep. A missing fragment leaves the
// price zero so the record is dropped instead of priced from a partial amount.
func composedPrice(sep string, fragments ...string) decimal.Decimal {
	for _, f := range fragments {
		if f == "" {
			return decimal.Decimal{}
		}
	}
	return price(strings.Join(fragments, sep))
}

// unitPrice parses a per-kilo label, leaving the field zero when it carries no amount
func unitPrice(text string) decimal.Decimal {
	p, err := normalize.ParseUnitPrice(text)
	if err != nil {
		return decimal.Decimal{}
	}
	return p
}
