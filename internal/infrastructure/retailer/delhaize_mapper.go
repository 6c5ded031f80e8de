package retailer

import (
	"github.com/basketwise/backend/internal/domain"
	"github.com/basketwise/backend/internal/normalize"
)

// searchResponse is the GetProductSearch response envelope
type searchResponse struct {
	Data struct {
		ProductSearch struct {
			Products []apiProduct `json:"products"`
		} `json:"productSearch"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type apiProduct struct {
	Name             string     `json:"name"`
	ManufacturerName string     `json:"manufacturerName"`
	Price            *apiPrice  `json:"price"`
	Images           []apiImage `json:"images"`
}

type apiPrice struct {
	FormattedValue           string `json:"formattedValue"`
	SupplementaryPriceLabel1 string `json:"supplementaryPriceLabel1"` // per-kilo, e.g. "€ 4,98/kg"
	SupplementaryPriceLabel2 string `json:"supplementaryPriceLabel2"` // pack size, e.g. "500 g"
}

type apiImage struct {
	URL    string `json:"url"`
	Format string `json:"format"`
}

// mapProducts fills exactly schema.MaxResults slots; slots without a product stay empty
func mapProducts(products []apiProduct, schema domain.Schema) []domain.Product {
	candidates := make([]domain.Product, schema.MaxResults)
	for i := range candidates {
		if i < len(products) {
			candidates[i] = mapProduct(&products[i], schema.Profile)
		}
	}
	return candidates
}

func mapProduct(p *apiProduct, profile domain.Profile) domain.Product {
	product := domain.Product{
		Title: normalize.Normalize(profile, p.Name),
		Brand: normalize.Normalize(profile, p.ManufacturerName),
	}

	if p.Price != nil {
		product.Price = price(normalize.Normalize(profile, p.Price.FormattedValue))
		product.PriceKilo = unitPrice(normalize.Normalize(profile, p.Price.SupplementaryPriceLabel1))
		product.Weight = normalize.ParseWeight(normalize.Normalize(profile, p.Price.SupplementaryPriceLabel2))
	}

	if len(p.Images) > 0 {
		product.Image = normalize.Normalize(profile, p.Images[0].URL)
	}

	return product
}
