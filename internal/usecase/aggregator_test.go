package usecase

import (
	"errors"
	"testing"

	"github.com/basketwise/backend/internal/domain"
	"github.com/shopspring/decimal"
)

func perKilo(values ...string) []domain.Product {
	products := make([]domain.Product, 0, len(values))
	for _, v := range values {
		products = append(products, domain.Product{PriceKilo: decimal.RequireFromString(v)})
	}
	return products
}

func TestAveragePricePerKilo(t *testing.T) {
	tests := []struct {
		name     string
		products []domain.Product
		want     string
		ok       bool
	}{
		{"single product", perKilo("2"), "2", true},
		{"mean of several", perKilo("1", "2", "4.5"), "2.5", true},
		{"rounds to four places", perKilo("1", "1", "2"), "1.3333", true},
		{"skips products without per-kilo price", append(perKilo("3"), domain.Product{Title: "no unit price"}), "3", true},
		{"empty store", nil, "0", false},
		{"no per-kilo prices", []domain.Product{{Title: "a"}, {Title: "b"}}, "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AveragePricePerKilo(tt.products)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("average = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBestChoice(t *testing.T) {
	tests := []struct {
		name   string
		stores [][]domain.Product
		want   string
	}{
		{
			name:   "lowest average wins",
			stores: [][]domain.Product{perKilo("2"), perKilo("1"), perKilo("1.5")},
			want:   "Albert Heijn",
		},
		{
			name:   "tie goes to the first store",
			stores: [][]domain.Product{perKilo("1"), perKilo("1")},
			want:   "Colruyt",
		},
		{
			name:   "empty store is never selected",
			stores: [][]domain.Product{perKilo("3"), {}, perKilo("2.5")},
			want:   "Delhaize",
		},
		{
			name:   "empty first store does not win",
			stores: [][]domain.Product{nil, perKilo("4", "6"), perKilo("5.5")},
			want:   "Albert Heijn",
		},
		{
			name:   "averages over all products",
			stores: [][]domain.Product{perKilo("1", "5"), perKilo("2.5"), perKilo("4")},
			want:   "Albert Heijn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BestChoice(tt.stores)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("BestChoice() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBestChoice_NoEligibleStore(t *testing.T) {
	for _, stores := range [][][]domain.Product{nil, {}, {{}, {}, {}}, {nil, {{Title: "no unit price"}}}} {
		_, err := BestChoice(stores)
		if !errors.Is(err, domain.ErrNoEligibleRetailer) {
			t.Errorf("error = %v, want ErrNoEligibleRetailer", err)
		}
	}
}

func TestBestChoice_UnknownStoreIndex(t *testing.T) {
	stores := [][]domain.Product{perKilo("3"), perKilo("3"), perKilo("3"), perKilo("1")}

	_, err := BestChoice(stores)
	if !errors.Is(err, domain.ErrUnknownRetailer) {
		t.Errorf("error = %v, want ErrUnknownRetailer", err)
	}
}

func TestGetBestChoice(t *testing.T) {
	list := domain.ProductList{
		domain.RetailerDelhaize:    perKilo("1.2"),
		domain.RetailerColruyt:     perKilo("1.2"),
		domain.RetailerAlbertHeijn: perKilo("1.5"),
	}

	got, err := GetBestChoice(list)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Colruyt precedes Delhaize in the retailer table
	if got != "Colruyt" {
		t.Errorf("GetBestChoice() = %q, want Colruyt", got)
	}
}

func TestGetBestChoice_MissingRetailer(t *testing.T) {
	list := domain.ProductList{
		domain.RetailerDelhaize: perKilo("9"),
	}

	got, err := GetBestChoice(list)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Delhaize" {
		t.Errorf("GetBestChoice() = %q, want Delhaize", got)
	}
}

func TestAverages(t *testing.T) {
	list := domain.ProductList{
		domain.RetailerColruyt:     perKilo("1", "2"),
		domain.RetailerAlbertHeijn: {},
		domain.RetailerDelhaize:    perKilo("3"),
	}

	got := Averages(list)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if _, ok := got[domain.RetailerAlbertHeijn]; ok {
		t.Error("retailer without products has an average")
	}
	if !got[domain.RetailerColruyt].Equal(decimal.RequireFromString("1.5")) {
		t.Errorf("colruyt average = %s, want 1.5", got[domain.RetailerColruyt])
	}
}
