package menu

import (
	"log"
	"strconv"
)

// Static fallback tables for category resolution. The cart's live menu echo
// is the source of truth; these exist only because the backend does not
// always echo the menu alongside the cart. Every fallback hit is logged so
// drift between these tables and the backend shows up in the logs.

type fallbackContent struct {
	Name string
	IDs  []int
}

var packageMenuIDs = map[string]int{
	"Hardal Menü":        1,
	"Klassik Menü":       2,
	"Premium Menü":       3,
	"Vegetarisches Menü": 4,
}

var menuCategories = map[int][]fallbackContent{
	1: {
		{Name: "Vorspeise", IDs: []int{59, 60}},
		{Name: "Hauptgericht", IDs: []int{61, 62}},
		{Name: "Beilage", IDs: []int{63}},
		{Name: "Dessert", IDs: []int{64}},
	},
	2: {
		{Name: "Vorspeise", IDs: []int{59}},
		{Name: "Hauptgericht", IDs: []int{61}},
		{Name: "Dessert", IDs: []int{64}},
	},
	3: {
		{Name: "Vorspeise", IDs: []int{59, 60}},
		{Name: "Hauptgericht", IDs: []int{61, 62, 65}},
		{Name: "Beilage", IDs: []int{63}},
		{Name: "Salat", IDs: []int{66}},
		{Name: "Dessert", IDs: []int{64}},
	},
	4: {
		{Name: "Vorspeise", IDs: []int{60}},
		{Name: "Hauptgericht", IDs: []int{65}},
		{Name: "Dessert", IDs: []int{64}},
	},
}

// MenuIDForPackage maps a package name onto its menu id via the fallback
// table.
func MenuIDForPackage(packageName string) (int, bool) {
	id, ok := packageMenuIDs[packageName]
	return id, ok
}

// ResolveCategory resolves a raw category id to its display name through the
// fallback tables. Callers should only reach for this when the live menu
// echo did not cover the category.
func ResolveCategory(packageName, categoryID string) (string, bool) {
	menuID, ok := packageMenuIDs[packageName]
	if !ok {
		return "", false
	}
	for _, content := range menuCategories[menuID] {
		for _, id := range content.IDs {
			if strconv.Itoa(id) == categoryID {
				log.Printf("menu: fallback category resolution used for package %q category %s -> %s",
					packageName, categoryID, content.Name)
				return content.Name, true
			}
		}
	}
	return "", false
}
