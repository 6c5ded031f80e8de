package retailer

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/basketwise/backend/internal/domain"
	"github.com/basketwise/backend/internal/normalize"
)

// Albert Heijn search-lane locators, relative to a result card
const (
	ahCard     = "#search-lane > div > article:nth-child(%d) > div"
	ahTitle    = " > div > a > strong > span"
	ahImage    = " > a > figure > div > img"
	ahUnitSize = " > a > div > div > span"
	ahEuros    = " > a > div > div > div > span:nth-child(1)"
	ahCents    = " > a > div > div > div > span:nth-child(3)"
)

// AlbertHeijn extracts products from the Albert Heijn search lane
type AlbertHeijn struct {
	fetcher domain.Fetcher
	baseURL string
	schema  domain.Schema
}

// NewAlbertHeijn creates an Albert Heijn extractor
func NewAlbertHeijn(fetcher domain.Fetcher, baseURL string, maxResults int) *AlbertHeijn {
	return &AlbertHeijn{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
		schema:  schemaFor(domain.RetailerAlbertHeijn, maxResults),
	}
}

// Retailer identifies the extractor
func (a *AlbertHeijn) Retailer() domain.Retailer {
	return domain.RetailerAlbertHeijn
}

func (a *AlbertHeijn) searchURL(searchTerm string) string {
	return fmt.Sprintf("%s/zoeken?query=%s", a.baseURL, url.QueryEscape(searchTerm))
}

// Extract fetches the search page and reads every result slot
func (a *AlbertHeijn) Extract(ctx context.Context, searchTerm string) ([]domain.Product, error) {
	doc, err := fetchDocument(ctx, a.fetcher, a.searchURL(searchTerm))
	if err != nil {
		return nil, err
	}
	return scanSlots(doc, a.schema.MaxResults, a.readSlot), nil
}

// readSlot joins the euro and cent spans with a decimal comma.
// The card shows no per-kilo price, so it is derived from the unit size.
func (a *AlbertHeijn) readSlot(doc domain.Document, slot int) domain.Product {
	card := fmt.Sprintf(ahCard, slot)
	profile := a.schema.Profile

	unitSize := text(doc, profile, card+ahUnitSize)
	p := composedPrice(",", text(doc, profile, card+ahEuros), text(doc, profile, card+ahCents))
	perKilo, _ := normalize.PricePerKilo(p, unitSize)

	return domain.Product{
		Title:     text(doc, profile, card+ahTitle),
		Image:     attr(doc, profile, card+ahImage, "src"),
		Weight:    normalize.ParseWeight(unitSize),
		Price:     p,
		PriceKilo: perKilo,
	}
}
