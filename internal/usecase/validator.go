package usecase

import "github.com/basketwise/backend/internal/domain"

// Filter keeps the candidates that carry every field the retailer schema requires.
// Kept records are returned unchanged and in their original order.
func Filter(candidates []domain.Product, schema domain.Schema) []domain.Product {
	valid := make([]domain.Product, 0, len(candidates))
	for _, candidate := range candidates {
		if isComplete(candidate, schema.Required) {
			valid = append(valid, candidate)
		}
	}
	return valid
}

func isComplete(product domain.Product, required []domain.Field) bool {
	for _, field := range required {
		if !product.Has(field) {
			return false
		}
	}
	return true
}
