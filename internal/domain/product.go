package domain

import "github.com/shopspring/decimal"

// Product is a single retailer listing after normalization
type Product struct {
	Title     string          `json:"title" yaml:"title"`
	Price     decimal.Decimal `json:"price" yaml:"price"`
	Image     string          `json:"image" yaml:"image"`
	Weight    int             `json:"weight,omitempty" yaml:"weight,omitempty"`
	Brand     string          `json:"brand,omitempty" yaml:"brand,omitempty"`
	PriceKilo decimal.Decimal `json:"priceKilo" yaml:"priceKilo"`
}

// Has reports whether the field carries a value: a non-empty string or a non-zero number.
func (p Product) Has(field Field) bool {
	switch field {
	case FieldTitle:
		return p.Title != ""
	case FieldPrice:
		return !p.Price.IsZero()
	case FieldImage:
		return p.Image != ""
	case FieldWeight:
		return p.Weight != 0
	case FieldBrand:
		return p.Brand != ""
	case FieldPriceKilo:
		return !p.PriceKilo.IsZero()
	}
	return false
}

// ProductList maps each retailer to its products in page rank order
type ProductList map[Retailer][]Product

// Comparison is the outcome of a search across all retailers
type Comparison struct {
	SearchTerm string                       `json:"searchTerm" yaml:"searchTerm"`
	Products   ProductList                  `json:"products" yaml:"products"`
	Averages   map[Retailer]decimal.Decimal `json:"averages" yaml:"averages"`
	BestChoice string                       `json:"bestChoice,omitempty" yaml:"bestChoice,omitempty"`
	Failures   map[Retailer]string          `json:"failures,omitempty" yaml:"failures,omitempty"`
}
