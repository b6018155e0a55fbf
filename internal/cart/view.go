package cart

import (
	"sort"
	"strconv"

	"github.com/toushik018/hardal/internal/commerce"
)

// CategoryResolver maps a package name and raw category id to a display name
// when the cart's own menu echo does not cover the category.
type CategoryResolver func(packageName, categoryID string) (string, bool)

// CategoryGroup is the products of one package under one resolved category.
type CategoryGroup struct {
	Name     string                 `json:"name"`
	Products []commerce.CartProduct `json:"products"`
}

// PackageView is one package of the cart prepared for display.
type PackageView struct {
	ID         string          `json:"id"`
	Package    string          `json:"package"`
	Price      string          `json:"price"`
	Guests     int             `json:"guests"`
	Categories []CategoryGroup `json:"categories"`
}

// View is the complete display-ready cart.
type View struct {
	Packages []PackageView `json:"packages"`
	Totals   Totals        `json:"totals"`
	Empty    bool          `json:"empty"`
}

// BuildView groups every package's flattened products by category name.
// Names are resolved from the cart's live menu echo first, then through the
// resolver, then bucketed under "Other". Menu-echo categories keep the menu's
// order; leftover category ids follow in sorted order.
func BuildView(c *commerce.Cart, resolve CategoryResolver) View {
	view := View{Totals: CalculateTotals(c)}
	if c == nil || len(c.Order) == 0 {
		view.Empty = true
		return view
	}

	echoNames := map[string]string{}
	var echoOrder []string
	if c.Menu != nil {
		for _, content := range c.Menu.Contents {
			for _, id := range content.IDs {
				key := strconv.Itoa(id)
				if _, seen := echoNames[key]; !seen {
					echoNames[key] = content.Name
					echoOrder = append(echoOrder, key)
				}
			}
		}
	}

	for _, pkg := range c.Order {
		pv := PackageView{
			ID:      pkg.ID,
			Package: pkg.Package,
			Price:   FormatEuro(pkg.Price),
			Guests:  pkg.Guests,
		}

		groups := map[string]*CategoryGroup{}
		var groupOrder []string
		appendGroup := func(name string, products []commerce.CartProduct) {
			if g, ok := groups[name]; ok {
				g.Products = append(g.Products, products...)
				return
			}
			groups[name] = &CategoryGroup{Name: name, Products: products}
			groupOrder = append(groupOrder, name)
		}

		remaining := map[string]bool{}
		for catID := range pkg.Products {
			remaining[catID] = true
		}

		for _, catID := range echoOrder {
			if products, ok := pkg.Products[catID]; ok {
				appendGroup(echoNames[catID], products)
				delete(remaining, catID)
			}
		}

		leftover := make([]string, 0, len(remaining))
		for catID := range remaining {
			leftover = append(leftover, catID)
		}
		sort.Strings(leftover)

		for _, catID := range leftover {
			name := "Other"
			if resolve != nil {
				if resolved, ok := resolve(pkg.Package, catID); ok {
					name = resolved
				}
			}
			appendGroup(name, pkg.Products[catID])
		}

		for _, name := range groupOrder {
			pv.Categories = append(pv.Categories, *groups[name])
		}
		view.Packages = append(view.Packages, pv)
	}

	return view
}
