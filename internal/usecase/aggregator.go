package usecase

import (
	"fmt"

	"github.com/basketwise/backend/internal/domain"
	"github.com/shopspring/decimal"
)

// averageDecimalPlaces is the precision of per-kilo averages
const averageDecimalPlaces = 4

// AveragePricePerKilo returns the mean per-kilo price of the products that have one.
// It reports false when no product carries a per-kilo price.
func AveragePricePerKilo(products []domain.Product) (decimal.Decimal, bool) {
	var sum decimal.Decimal
	count := 0

	for _, p := range products {
		if p.PriceKilo.IsZero() {
			continue
		}
		sum = sum.Add(p.PriceKilo)
		count++
	}

	if count == 0 {
		return decimal.Decimal{}, false
	}

	return sum.Div(decimal.NewFromInt(int64(count))).Round(averageDecimalPlaces), true
}

// BestChoice returns the label of the store with the lowest average per-kilo price.
// Stores are indexed in retailer table order. Stores without an average are never
// selected, and equal averages go to the lowest index.
func BestChoice(stores [][]domain.Product) (string, error) {
	best := -1
	var bestAverage decimal.Decimal

	for i, store := range stores {
		average, ok := AveragePricePerKilo(store)
		if !ok {
			continue
		}
		if best == -1 || average.LessThan(bestAverage) {
			best = i
			bestAverage = average
		}
	}

	if best == -1 {
		return "", domain.ErrNoEligibleRetailer
	}

	label, ok := domain.Label(best)
	if !ok {
		return "", fmt.Errorf("%w: store index %d", domain.ErrUnknownRetailer, best)
	}
	return label, nil
}

// GetBestChoice orders a product list by the retailer table and picks the cheapest store.
func GetBestChoice(list domain.ProductList) (string, error) {
	schemas := domain.Schemas()
	stores := make([][]domain.Product, len(schemas))
	for i, schema := range schemas {
		stores[i] = list[schema.Retailer]
	}
	return BestChoice(stores)
}

// Averages returns the per-kilo average of every retailer that has one
func Averages(list domain.ProductList) map[domain.Retailer]decimal.Decimal {
	averages := make(map[domain.Retailer]decimal.Decimal, len(list))
	for retailer, products := range list {
		if average, ok := AveragePricePerKilo(products); ok {
			averages[retailer] = average
		}
	}
	return averages
}
