package domain

// Retailer identifies a grocery search source
type Retailer string

const (
	RetailerColruyt     Retailer = "colruyt"
	RetailerAlbertHeijn Retailer = "ah"
	RetailerDelhaize    Retailer = "delhaize"
)

// Field names a Product attribute a schema can require
type Field string

const (
	FieldTitle     Field = "title"
	FieldPrice     Field = "price"
	FieldImage     Field = "image"
	FieldWeight    Field = "weight"
	FieldBrand     Field = "brand"
	FieldPriceKilo Field = "priceKilo"
)

// DefaultMaxResults is the number of result slots probed per search page
const DefaultMaxResults = 10

// Profile selects the retailer-specific text clean-up steps.
// Non-breaking spaces are always removed.
type Profile struct {
	DecodeAmpersand bool
	StripCurrency   bool
}

// Schema describes how one retailer's listings are normalized and validated
type Schema struct {
	Retailer   Retailer
	Label      string
	Required   []Field
	Profile    Profile
	MaxResults int
}

// Schemas returns the retailer table in comparison order.
// The position of a retailer is the store index used by best-choice selection.
func Schemas() []Schema {
	return []Schema{
		{
			Retailer:   RetailerColruyt,
			Label:      "Colruyt",
			Required:   []Field{FieldTitle, FieldPrice, FieldImage, FieldBrand, FieldPriceKilo, FieldWeight},
			Profile:    Profile{},
			MaxResults: DefaultMaxResults,
		},
		{
			Retailer:   RetailerAlbertHeijn,
			Label:      "Albert Heijn",
			Required:   []Field{FieldTitle, FieldPrice, FieldImage, FieldWeight},
			Profile:    Profile{StripCurrency: true},
			MaxResults: DefaultMaxResults,
		},
		{
			Retailer:   RetailerDelhaize,
			Label:      "Delhaize",
			Required:   []Field{FieldTitle, FieldPrice, FieldImage, FieldPriceKilo},
			Profile:    Profile{DecodeAmpersand: true, StripCurrency: true},
			MaxResults: DefaultMaxResults,
		},
	}
}

// SchemaFor looks up a retailer's schema
func SchemaFor(retailer Retailer) (Schema, bool) {
	for _, s := range Schemas() {
		if s.Retailer == retailer {
			return s, true
		}
	}
	return Schema{}, false
}

// Label returns the human-readable name for a store index
func Label(index int) (string, bool) {
	schemas := Schemas()
	if index < 0 || index >= len(schemas) {
		return "", false
	}
	return schemas[index].Label, true
}
