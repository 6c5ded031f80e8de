package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// quantityRegex matches a pack quantity such as "500 g", "250 gram", "1,5 l" or "6 x 330 ml"
var quantityRegex = regexp.MustCompile(`(?i)(?:(\d+)\s*x\s*)?(\d+(?:[.,]\d+)?)\s*(kilo|kg|gram|gr|g|liter|litre|l|cl|ml)\b`)

// gramsPerUnit converts a quantity unit to grams (or millilitres)
var gramsPerUnit = map[string]int64{
	"kilo":  1000,
	"kg":    1000,
	"liter": 1000,
	"litre": 1000,
	"l":     1000,
	"cl":    10,
	"gram":  1,
	"gr":    1,
	"g":     1,
	"ml":    1,
}

var thousand = decimal.NewFromInt(1000)

// Kilos returns the pack quantity of a weight label expressed in kilograms (or litres).
func Kilos(text string) (decimal.Decimal, bool) {
	m := quantityRegex.FindStringSubmatch(text)
	if m == nil {
		return decimal.Decimal{}, false
	}

	amount, err := decimal.NewFromString(strings.Replace(m[2], ",", ".", 1))
	if err != nil || amount.IsZero() {
		return decimal.Decimal{}, false
	}
	if m[1] != "" {
		count, err := decimal.NewFromString(m[1])
		if err != nil || count.IsZero() {
			return decimal.Decimal{}, false
		}
		amount = amount.Mul(count)
	}

	grams := amount.Mul(decimal.NewFromInt(gramsPerUnit[strings.ToLower(m[3])]))
	return grams.Div(thousand), true
}

// PricePerKilo derives a per-kilo price from a pack price and its weight label.
func PricePerKilo(price decimal.Decimal, weightText string) (decimal.Decimal, bool) {
	kilos, ok := Kilos(weightText)
	if !ok || price.IsZero() {
		return decimal.Decimal{}, false
	}
	return price.Div(kilos).Round(priceDecimalPlaces), true
}
