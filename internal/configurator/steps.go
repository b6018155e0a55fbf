package configurator

import (
	"github.com/toushik018/hardal/internal/commerce"
)

// CurrentCount derives how many units are selected for a category. The
// cart's own menu echo wins when it carries a live count; otherwise the count
// is reconstructed from the raw cart lines whose product id belongs to the
// category. Extra lines never count toward the requirement.
func CurrentCount(c *commerce.Cart, categoryName string, categoryProductIDs map[string]bool) int {
	if c == nil {
		return 0
	}

	if c.Menu != nil {
		for _, content := range c.Menu.Contents {
			if content.Name == categoryName && content.CurrentCount != nil {
				return *content.CurrentCount
			}
		}
	}

	count := 0
	for _, line := range c.Products {
		if line.Kind == commerce.LineExtra {
			continue
		}
		if categoryProductIDs[line.ProductID] {
			count += line.Quantity
		}
	}
	return count
}
