package usecase

import (
	"reflect"
	"testing"

	"github.com/basketwise/backend/internal/domain"
	"github.com/shopspring/decimal"
)

func completeProduct() domain.Product {
	return domain.Product{
		Title:     "Halfvolle melk",
		Price:     decimal.RequireFromString("0.99"),
		Image:     "https://static.example.com/melk.jpg",
		Weight:    1,
		Brand:     "Boni Selection",
		PriceKilo: decimal.RequireFromString("0.99"),
	}
}

func TestFilter(t *testing.T) {
	colruyt, _ := domain.SchemaFor(domain.RetailerColruyt)
	ah, _ := domain.SchemaFor(domain.RetailerAlbertHeijn)
	delhaize, _ := domain.SchemaFor(domain.RetailerDelhaize)

	without := func(field domain.Field) domain.Product {
		p := completeProduct()
		switch field {
		case domain.FieldTitle:
			p.Title = ""
		case domain.FieldPrice:
			p.Price = decimal.Decimal{}
		case domain.FieldImage:
			p.Image = ""
		case domain.FieldWeight:
			p.Weight = 0
		case domain.FieldBrand:
			p.Brand = ""
		case domain.FieldPriceKilo:
			p.PriceKilo = decimal.Decimal{}
		}
		return p
	}

	tests := []struct {
		name   string
		schema domain.Schema
		field  domain.Field
		kept   bool
	}{
		{"colruyt requires title", colruyt, domain.FieldTitle, false},
		{"colruyt requires price", colruyt, domain.FieldPrice, false},
		{"colruyt requires image", colruyt, domain.FieldImage, false},
		{"colruyt requires brand", colruyt, domain.FieldBrand, false},
		{"colruyt requires per-kilo price", colruyt, domain.FieldPriceKilo, false},
		{"colruyt requires weight", colruyt, domain.FieldWeight, false},
		{"ah requires weight", ah, domain.FieldWeight, false},
		{"ah requires price", ah, domain.FieldPrice, false},
		{"ah does not require brand", ah, domain.FieldBrand, true},
		{"ah does not require per-kilo price", ah, domain.FieldPriceKilo, true},
		{"delhaize requires per-kilo price", delhaize, domain.FieldPriceKilo, false},
		{"delhaize requires image", delhaize, domain.FieldImage, false},
		{"delhaize does not require brand", delhaize, domain.FieldBrand, true},
		{"delhaize does not require weight", delhaize, domain.FieldWeight, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := without(tt.field)
			got := Filter([]domain.Product{candidate}, tt.schema)

			if tt.kept {
				if len(got) != 1 {
					t.Fatalf("len = %d, want 1", len(got))
				}
				if !reflect.DeepEqual(got[0], candidate) {
					t.Errorf("kept record = %+v, want %+v", got[0], candidate)
				}
				return
			}
			if len(got) != 0 {
				t.Errorf("len = %d, want 0", len(got))
			}
		})
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	schema, _ := domain.SchemaFor(domain.RetailerAlbertHeijn)

	first := completeProduct()
	first.Title = "first"
	second := completeProduct()
	second.Title = "second"

	candidates := []domain.Product{first, {}, second, {Title: "incomplete"}}
	got := Filter(candidates, schema)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Title != "first" || got[1].Title != "second" {
		t.Errorf("order = [%s %s], want [first second]", got[0].Title, got[1].Title)
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	schema, _ := domain.SchemaFor(domain.RetailerDelhaize)

	got := Filter(nil, schema)
	if got == nil {
		t.Error("Filter(nil) = nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
