package cart

import (
	"testing"

	"github.com/toushik018/hardal/internal/commerce"

	"github.com/shopspring/decimal"
)

func TestBuildViewGroupsByMenuEchoOrder(t *testing.T) {
	c := &commerce.Cart{
		Menu: &commerce.Menu{
			Name: "Hardal Menü",
			Contents: []commerce.MenuContent{
				{Name: "Vorspeise", IDs: []int{107}, Count: 2},
				{Name: "Hauptgericht", IDs: []int{109}, Count: 1},
			},
		},
		Order: []commerce.PackageOrder{
			{
				ID:      "7",
				Package: "Hardal Menü",
				Price:   decimal.RequireFromString("25.00"),
				Guests:  2,
				Products: map[string][]commerce.CartProduct{
					"109": {{CartID: "2", Name: "Adana Kebab"}},
					"107": {{CartID: "1", Name: "Mercimeksuppe"}},
				},
			},
		},
	}

	view := BuildView(c, nil)

	if view.Empty {
		t.Fatalf("cart with a package must not be empty")
	}
	if len(view.Packages) != 1 {
		t.Fatalf("expected 1 package, got %d", len(view.Packages))
	}

	pkg := view.Packages[0]
	if pkg.Price != "25.00€" {
		t.Fatalf("expected formatted price, got %s", pkg.Price)
	}
	if len(pkg.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(pkg.Categories))
	}
	if pkg.Categories[0].Name != "Vorspeise" || pkg.Categories[1].Name != "Hauptgericht" {
		t.Fatalf("menu echo order not kept: %s, %s", pkg.Categories[0].Name, pkg.Categories[1].Name)
	}
}

func TestBuildViewFallsBackToResolver(t *testing.T) {
	c := &commerce.Cart{
		Order: []commerce.PackageOrder{
			{
				ID:      "7",
				Package: "Hardal Menü",
				Guests:  2,
				Products: map[string][]commerce.CartProduct{
					"113": {{CartID: "5", Name: "Künefe"}},
					"999": {{CartID: "6", Name: "Unbekannt"}},
				},
			},
		},
	}

	resolve := func(packageName, categoryID string) (string, bool) {
		if categoryID == "113" {
			return "Dessert", true
		}
		return "", false
	}

	view := BuildView(c, resolve)

	pkg := view.Packages[0]
	if len(pkg.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(pkg.Categories))
	}
	// Leftover ids come sorted, so 113 precedes 999.
	if pkg.Categories[0].Name != "Dessert" {
		t.Fatalf("resolver not consulted: %s", pkg.Categories[0].Name)
	}
	if pkg.Categories[1].Name != "Other" {
		t.Fatalf("unresolved category must land under Other: %s", pkg.Categories[1].Name)
	}
}

func TestBuildViewEmptyCart(t *testing.T) {
	view := BuildView(nil, nil)
	if !view.Empty {
		t.Fatalf("nil cart must report empty")
	}
	if view.Totals.Total != "0.00€" {
		t.Fatalf("expected zero totals, got %s", view.Totals.Total)
	}
}
