package commerce

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecodeCartAcceptsStringAndNumberScalars(t *testing.T) {
	payload := []byte(`{
		"cart": {"order": []},
		"products": [
			{"cart_id": "101", "product_id": 55, "name": "Lahmacun", "quantity": "2.0000", "price": "4.50", "total": "9.00"},
			{"cart_id": 102, "product_id": "56", "name": "Ayran", "quantity": 3, "price": 1.5, "total": 4.5}
		],
		"totals": [{"title": "Total", "text": "13.50€"}]
	}`)

	cart, err := decodeCart(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cart.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(cart.Products))
	}

	first := cart.Products[0]
	if first.CartID != "101" || first.ProductID != "55" {
		t.Fatalf("ids not normalized: %+v", first)
	}
	if first.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", first.Quantity)
	}
	if !first.Price.Equal(decimal.RequireFromString("4.50")) {
		t.Fatalf("expected price 4.50, got %s", first.Price)
	}

	second := cart.Products[1]
	if second.CartID != "102" || second.Quantity != 3 {
		t.Fatalf("numeric scalars not normalized: %+v", second)
	}
}

func TestDecodeCartStripsCurrencySuffix(t *testing.T) {
	payload := []byte(`{
		"cart": {"order": []},
		"products": [{"cart_id": "1", "product_id": "2", "name": "Baklava", "quantity": 1, "price": "3.90€", "total": "3.90€"}]
	}`)

	cart, err := decodeCart(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cart.Products[0].Price.Equal(decimal.RequireFromString("3.90")) {
		t.Fatalf("expected 3.90, got %s", cart.Products[0].Price)
	}
}

func TestNormalizeOrderArrayAndKeyedObjectAreEquivalent(t *testing.T) {
	asArray := []byte(`[
		{"id": "7", "package": "Hardal Menü", "price": "25.00", "guests": "4", "products": {"107": [{"cart_id": "1", "product_id": "9", "name": "Mercimeksuppe", "quantity": 2, "price": "0.00", "total": "0.00"}]}}
	]`)
	asObject := []byte(`{
		"7": {"package": "Hardal Menü", "price": 25, "guests": 4, "products": {"107": [{"cart_id": 1, "product_id": 9, "name": "Mercimeksuppe", "quantity": "2", "price": 0, "total": 0}]}}
	}`)

	fromArray := normalizeOrder(asArray)
	fromObject := normalizeOrder(asObject)

	if len(fromArray) != 1 || len(fromObject) != 1 {
		t.Fatalf("expected one package each, got %d and %d", len(fromArray), len(fromObject))
	}

	a, b := fromArray[0], fromObject[0]
	if a.ID != b.ID {
		t.Fatalf("id mismatch: %q vs %q", a.ID, b.ID)
	}
	if a.Package != b.Package || a.Guests != b.Guests {
		t.Fatalf("package mismatch: %+v vs %+v", a, b)
	}
	if !a.Price.Equal(b.Price) {
		t.Fatalf("price mismatch: %s vs %s", a.Price, b.Price)
	}
	if len(a.Products["107"]) != 1 || len(b.Products["107"]) != 1 {
		t.Fatalf("category lines mismatch")
	}
	if a.Products["107"][0].Quantity != b.Products["107"][0].Quantity {
		t.Fatalf("line quantity mismatch")
	}
}

func TestNormalizeOrderKeyedObjectIsSortedByKey(t *testing.T) {
	keyed := []byte(`{
		"12": {"package": "Premium Menü", "price": "35.00", "guests": 2, "products": {}},
		"3":  {"package": "Klassik Menü", "price": "20.00", "guests": 2, "products": {}}
	}`)

	order := normalizeOrder(keyed)
	if len(order) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(order))
	}
	if order[0].ID != "12" || order[1].ID != "3" {
		t.Fatalf("expected key order [12 3], got [%s %s]", order[0].ID, order[1].ID)
	}
}

func TestClassifyLine(t *testing.T) {
	cases := []struct {
		quantity int
		price    string
		want     LineKind
	}{
		{10, "4.50", LineExtra},
		{10, "0.00", LineIncluded},
		{2, "4.50", LineIncluded},
		{9, "4.50", LineIncluded},
		{11, "4.50", LineIncluded},
		{1, "0.00", LineIncluded},
	}

	for _, tc := range cases {
		got := classifyLine(tc.quantity, decimal.RequireFromString(tc.price))
		if got != tc.want {
			t.Fatalf("classifyLine(%d, %s): expected %s, got %s", tc.quantity, tc.price, tc.want, got)
		}
	}
}

func TestStatusUnmarshalAcceptsStringAndBool(t *testing.T) {
	var s Status
	if err := json.Unmarshal([]byte(`{"success": "true", "message": "ok"}`), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Success || s.Message != "ok" {
		t.Fatalf("string form not accepted: %+v", s)
	}

	s = Status{}
	if err := json.Unmarshal([]byte(`{"success": false}`), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Success {
		t.Fatalf("expected success=false")
	}
}

func TestNormalizeMenuCarriesCurrentCount(t *testing.T) {
	payload := []byte(`{
		"cart": {
			"order": [],
			"menu": {"id": "1", "name": "Hardal Menü", "price": "25.00", "contents": [
				{"name": "Vorspeise", "ids": ["107", 108], "count": "2", "currentCount": "1"},
				{"name": "Hauptgericht", "ids": [109], "count": 1}
			]}
		},
		"products": []
	}`)

	cart, err := decodeCart(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Menu == nil {
		t.Fatalf("menu missing")
	}

	vorspeise := cart.Menu.Contents[0]
	if vorspeise.Count != 2 {
		t.Fatalf("expected count 2, got %d", vorspeise.Count)
	}
	if vorspeise.CurrentCount == nil || *vorspeise.CurrentCount != 1 {
		t.Fatalf("currentCount not carried: %+v", vorspeise.CurrentCount)
	}
	if len(vorspeise.IDs) != 2 || vorspeise.IDs[0] != 107 {
		t.Fatalf("ids not normalized: %v", vorspeise.IDs)
	}

	haupt := cart.Menu.Contents[1]
	if haupt.CurrentCount != nil {
		t.Fatalf("absent currentCount must stay nil")
	}
}
