package retailer

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/basketwise/backend/internal/domain"
	"github.com/basketwise/backend/internal/normalize"
)

// Colruyt shelf-grid locators, relative to a result tile
const (
	colruytTile      = "#plpProducts > div.plp__items > div.plp-products > div > div:nth-child(%d) > div"
	colruytTitle     = " > div.plp-item-top > div.c-tile__data > div > div.c-product-name__long.--plp"
	colruytBrand     = " > div.plp-item-top > div.c-tile__data > div > div.c-product-name__brand.--plp"
	colruytContent   = " > div.plp-item-top > div.c-tile__data > div > div.c-product-name__content.--plp"
	colruytImage     = " > div.plp-item-top > div.plp-item-top__image-banner-wrap > a > img"
	colruytEuro      = " > div.plp-item__price > div.plp-item__price-display > div > span.c-price__euro"
	colruytCent      = " > div.plp-item__price > div.plp-item__price-display > div > span.c-price__cent"
	colruytPriceKilo = " > div.plp-item__price > div.plp-item__price-display > div > span.product__price__weight-price > span.product__price__volume-price.s-volume-price"
)

// Colruyt extracts products from the Colruyt search result grid
type Colruyt struct {
	fetcher domain.Fetcher
	baseURL string
	schema  domain.Schema
}

// NewColruyt creates a Colruyt extractor
func NewColruyt(fetcher domain.Fetcher, baseURL string, maxResults int) *Colruyt {
	return &Colruyt{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
		schema:  schemaFor(domain.RetailerColruyt, maxResults),
	}
}

// Retailer identifies the extractor
func (c *Colruyt) Retailer() domain.Retailer {
	return domain.RetailerColruyt
}

func (c *Colruyt) searchURL(searchTerm string) string {
	return fmt.Sprintf("%s/colruyt/nl/zoek?searchTerm=%s", c.baseURL, url.QueryEscape(searchTerm))
}

// Extract fetches the search page and reads every result slot
func (c *Colruyt) Extract(ctx context.Context, searchTerm string) ([]domain.Product, error) {
	doc, err := fetchDocument(ctx, c.fetcher, c.searchURL(searchTerm))
	if err != nil {
		return nil, err
	}
	return scanSlots(doc, c.schema.MaxResults, c.readSlot), nil
}

// readSlot composes the price from the euro and cent fragments ("2," + "49")
func (c *Colruyt) readSlot(doc domain.Document, slot int) domain.Product {
	tile := fmt.Sprintf(colruytTile, slot)
	profile := c.schema.Profile

	euro := text(doc, profile, tile+colruytEuro)
	cent := text(doc, profile, tile+colruytCent)

	return domain.Product{
		Title:     text(doc, profile, tile+colruytTitle),
		Brand:     text(doc, profile, tile+colruytBrand),
		Weight:    normalize.ParseWeight(text(doc, profile, tile+colruytContent)),
		Image:     attr(doc, profile, tile+colruytImage, "src"),
		Price:     composedPrice("", euro, cent),
		PriceKilo: unitPrice(text(doc, profile, tile+colruytPriceKilo)),
	}
}
