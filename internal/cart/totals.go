package cart

import (
	"github.com/toushik018/hardal/internal/commerce"

	"github.com/shopspring/decimal"
)

// Totals are the derived cart totals, formatted for display: two fixed
// decimals with a trailing euro sign, no grouping.
type Totals struct {
	SubTotal    string `json:"subTotal"`
	ExtrasTotal string `json:"extrasTotal"`
	Total       string `json:"totalPrice"`
}

// CalculateTotals folds a cart snapshot into its totals. Every package
// contributes its per-guest base price times the guest count (a package
// without a guest count counts as one guest); extra lines contribute their
// line totals on top. A nil or empty cart yields zero totals.
func CalculateTotals(c *commerce.Cart) Totals {
	sub := decimal.Zero
	extras := decimal.Zero

	if c != nil {
		for _, pkg := range c.Order {
			guests := pkg.Guests
			if guests <= 0 {
				guests = 1
			}
			sub = sub.Add(pkg.Price.Mul(decimal.NewFromInt(int64(guests))))

			for _, lines := range pkg.Products {
				for _, line := range lines {
					if line.Kind == commerce.LineExtra {
						extras = extras.Add(line.Total)
					}
				}
			}
		}
	}

	return Totals{
		SubTotal:    FormatEuro(sub),
		ExtrasTotal: FormatEuro(extras),
		Total:       FormatEuro(sub.Add(extras)),
	}
}

// FormatEuro renders an amount as the shop displays it, e.g. "107.50€".
func FormatEuro(d decimal.Decimal) string {
	return d.StringFixed(2) + "€"
}
