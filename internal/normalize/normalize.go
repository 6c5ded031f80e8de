// Package normalize turns raw retailer text fragments into clean strings and numbers.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/basketwise/backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Package-level compiled regex patterns
var (
	digitRunRegex = regexp.MustCompile(`\d+`)

	// "1.234,56" (grouping dots with a decimal comma), "4,98" or "4.98"
	amountPattern  = `\d{1,3}(?:\.\d{3})+,\d+|\d+(?:[.,]\d+)?`
	priceRegex     = regexp.MustCompile(`^(?:` + amountPattern + `)$`)
	unitPriceRegex = regexp.MustCompile(amountPattern)
)

const (
	nbspEntity      = "&nbsp;"
	nbspRune        = "\u00a0"
	ampersandEntity = "&amp;"
	currencySymbol  = "€"

	priceDecimalPlaces = 2
)

// Normalize cleans a raw fragment according to a retailer profile.
// An absent fragment is passed as "" and stays "".
func Normalize(profile domain.Profile, raw string) string {
	if raw == "" {
		return ""
	}

	s := strings.ReplaceAll(raw, nbspEntity, "")
	s = strings.ReplaceAll(s, nbspRune, " ")

	if profile.DecodeAmpersand {
		s = strings.ReplaceAll(s, ampersandEntity, "&")
	}
	if profile.StripCurrency {
		s = strings.ReplaceAll(s, currencySymbol, "")
	}

	return strings.TrimSpace(s)
}

// ParseWeight returns the first run of digits in text, or 0 when there is none.
// Units are ignored: "300g" and "300 kg" both yield 300.
func ParseWeight(text string) int {
	run := digitRunRegex.FindString(text)
	if run == "" {
		return 0
	}
	weight, err := strconv.Atoi(run)
	if err != nil {
		// only reachable when the run overflows int
		return 0
	}
	return weight
}

// ParsePrice parses a price written with a decimal comma or point, rounded to cents.
// Only unsigned plain amounts are accepted: no sign, exponent or unit.
func ParsePrice(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty", domain.ErrInvalidPrice)
	}
	if !priceRegex.MatchString(s) {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", domain.ErrInvalidPrice, text)
	}

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
	}
	price, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", domain.ErrInvalidPrice, text)
	}

	return price.Round(priceDecimalPlaces), nil
}

// ParseUnitPrice extracts the amount from a per-unit label such as "€ 4,98/kg"
// or "€ 1.234,56/kg".
func ParseUnitPrice(text string) (decimal.Decimal, error) {
	amount := unitPriceRegex.FindString(text)
	if amount == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: no amount in %q", domain.ErrInvalidPrice, text)
	}
	return ParsePrice(amount)
}
