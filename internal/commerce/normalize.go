package commerce

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/shopspring/decimal"
)

// Raw wire types. The backend's cart payload is loosely typed: `order` is an
// array of packages or an object keyed by package id, scalars switch between
// strings and numbers, and nested fields go missing. Everything is absorbed
// here and handed out as the clean types in model.go.

type rawCartEnvelope struct {
	Cart struct {
		Order json.RawMessage `json:"order"`
		Menu  *rawMenu        `json:"menu"`
	} `json:"cart"`
	Products []rawLine  `json:"products"`
	Totals   []rawTotal `json:"totals"`
}

type rawPackage struct {
	ID       flexString               `json:"id"`
	Package  string                   `json:"package"`
	Price    flexDecimal              `json:"price"`
	Guests   flexInt                  `json:"guests"`
	Products map[string]json.RawMessage `json:"products"`
}

type rawLine struct {
	CartID    flexString  `json:"cart_id"`
	ProductID flexString  `json:"product_id"`
	Name      string      `json:"name"`
	Image     string      `json:"image"`
	Thumb     string      `json:"thumb"`
	Quantity  flexInt     `json:"quantity"`
	Price     flexDecimal `json:"price"`
	Total     flexDecimal `json:"total"`
}

type rawTotal struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type rawMenu struct {
	ID       flexInt          `json:"id"`
	Name     string           `json:"name"`
	Price    flexDecimal      `json:"price"`
	Contents []rawMenuContent `json:"contents"`
}

type rawMenuContent struct {
	Name         string    `json:"name"`
	IDs          []flexInt `json:"ids"`
	Count        flexInt   `json:"count"`
	CurrentCount *flexInt  `json:"currentCount"`
}

func decimalOf(f flexDecimal) decimal.Decimal { return decimal.Decimal(f) }

// decodeCart parses a raw get-cart payload into a normalized Cart.
func decodeCart(data []byte) (*Cart, error) {
	var raw rawCartEnvelope
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	cart := &Cart{
		Order:    normalizeOrder(raw.Cart.Order),
		Products: normalizeLines(raw.Products),
		Totals:   make([]TotalLine, 0, len(raw.Totals)),
	}
	for _, t := range raw.Totals {
		cart.Totals = append(cart.Totals, TotalLine{Title: t.Title, Text: t.Text})
	}
	if raw.Cart.Menu != nil {
		cart.Menu = normalizeMenu(raw.Cart.Menu)
	}
	return cart, nil
}

// normalizeOrder accepts the `order` field as either a JSON array of packages
// or an object keyed by package id and returns an ordered slice. Keyed form
// is ordered by key so equivalent payloads normalize identically.
func normalizeOrder(data json.RawMessage) []PackageOrder {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var raws []rawPackage
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil
		}
	case '{':
		var keyed map[string]rawPackage
		if err := json.Unmarshal(data, &keyed); err != nil {
			return nil
		}
		keys := make([]string, 0, len(keyed))
		for k := range keyed {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			p := keyed[k]
			if string(p.ID) == "" {
				p.ID = flexString(k)
			}
			raws = append(raws, p)
		}
	default:
		return nil
	}

	out := make([]PackageOrder, 0, len(raws))
	for _, rp := range raws {
		pkg := PackageOrder{
			ID:       string(rp.ID),
			Package:  rp.Package,
			Price:    decimal.Decimal(rp.Price),
			Guests:   int(rp.Guests),
			Products: make(map[string][]CartProduct, len(rp.Products)),
		}
		for catID, linesRaw := range rp.Products {
			var lines []rawLine
			if err := json.Unmarshal(linesRaw, &lines); err != nil {
				continue
			}
			pkg.Products[catID] = normalizeLines(lines)
		}
		out = append(out, pkg)
	}
	return out
}

func normalizeLines(raws []rawLine) []CartProduct {
	out := make([]CartProduct, 0, len(raws))
	for _, rl := range raws {
		image := rl.Image
		if image == "" {
			image = rl.Thumb
		}
		out = append(out, CartProduct{
			CartID:    string(rl.CartID),
			ProductID: string(rl.ProductID),
			Name:      rl.Name,
			Image:     image,
			Quantity:  int(rl.Quantity),
			Price:     decimal.Decimal(rl.Price),
			Total:     decimal.Decimal(rl.Total),
			Kind:      classifyLine(int(rl.Quantity), decimal.Decimal(rl.Price)),
		})
	}
	return out
}

// classifyLine maps the backend's quantity sentinel onto an explicit kind.
// A priced line with quantity exactly 10 is an extra; everything else counts
// toward its category's required selections.
func classifyLine(quantity int, price decimal.Decimal) LineKind {
	if quantity == extraQuantitySentinel && price.IsPositive() {
		return LineExtra
	}
	return LineIncluded
}

func normalizeMenu(raw *rawMenu) *Menu {
	m := &Menu{
		ID:       int(raw.ID),
		Name:     raw.Name,
		Price:    decimal.Decimal(raw.Price),
		Contents: make([]MenuContent, 0, len(raw.Contents)),
	}
	for _, rc := range raw.Contents {
		mc := MenuContent{
			Name:  rc.Name,
			IDs:   make([]int, 0, len(rc.IDs)),
			Count: int(rc.Count),
		}
		for _, id := range rc.IDs {
			mc.IDs = append(mc.IDs, int(id))
		}
		if rc.CurrentCount != nil {
			cc := int(*rc.CurrentCount)
			mc.CurrentCount = &cc
		}
		m.Contents = append(m.Contents, mc)
	}
	return m
}
