package cart

import (
	"testing"

	"github.com/toushik018/hardal/internal/commerce"

	"github.com/shopspring/decimal"
)

func TestCalculateTotalsWithExtras(t *testing.T) {
	c := &commerce.Cart{
		Order: []commerce.PackageOrder{
			{
				ID:      "7",
				Package: "Hardal Menü",
				Price:   decimal.RequireFromString("25.00"),
				Guests:  4,
				Products: map[string][]commerce.CartProduct{
					"107": {
						{CartID: "1", Name: "Mercimeksuppe", Quantity: 4, Kind: commerce.LineIncluded},
						{CartID: "2", Name: "Baklava", Quantity: 10, Total: decimal.RequireFromString("7.50"), Kind: commerce.LineExtra},
					},
				},
			},
		},
	}

	totals := CalculateTotals(c)

	if totals.SubTotal != "100.00€" {
		t.Fatalf("expected subtotal 100.00€, got %s", totals.SubTotal)
	}
	if totals.ExtrasTotal != "7.50€" {
		t.Fatalf("expected extras 7.50€, got %s", totals.ExtrasTotal)
	}
	if totals.Total != "107.50€" {
		t.Fatalf("expected total 107.50€, got %s", totals.Total)
	}
}

func TestCalculateTotalsEmptyCart(t *testing.T) {
	for _, c := range []*commerce.Cart{nil, {}} {
		totals := CalculateTotals(c)
		if totals.SubTotal != "0.00€" || totals.ExtrasTotal != "0.00€" || totals.Total != "0.00€" {
			t.Fatalf("expected zero totals, got %+v", totals)
		}
	}
}

func TestCalculateTotalsMissingGuestsCountsAsOne(t *testing.T) {
	c := &commerce.Cart{
		Order: []commerce.PackageOrder{
			{Package: "Klassik Menü", Price: decimal.RequireFromString("20.00"), Guests: 0},
		},
	}

	totals := CalculateTotals(c)
	if totals.Total != "20.00€" {
		t.Fatalf("expected 20.00€, got %s", totals.Total)
	}
}

func TestIncludedLinesDoNotAddToTotals(t *testing.T) {
	c := &commerce.Cart{
		Order: []commerce.PackageOrder{
			{
				Package: "Premium Menü",
				Price:   decimal.RequireFromString("35.00"),
				Guests:  2,
				Products: map[string][]commerce.CartProduct{
					"109": {
						{CartID: "3", Quantity: 2, Total: decimal.RequireFromString("70.00"), Kind: commerce.LineIncluded},
					},
				},
			},
		},
	}

	totals := CalculateTotals(c)
	if totals.ExtrasTotal != "0.00€" {
		t.Fatalf("included line leaked into extras: %s", totals.ExtrasTotal)
	}
	if totals.Total != "70.00€" {
		t.Fatalf("expected 70.00€, got %s", totals.Total)
	}
}
