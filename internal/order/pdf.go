package order

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/toushik018/hardal/internal/cart"
	"github.com/toushik018/hardal/internal/commerce"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const (
	pdfRestaurantName = "Hardal Restaurant"
	pdfFooterLine     = "Hardal Restaurant | Möllner Landstraße 3, 22111 Hamburg | Tel: +49 408 470 82 | Email: info@hardal-restaurant.de"
)

// GeneratePDF renders the line-itemized order document: header, customer
// block, one table section per package with its products and subtotal, and
// the recomputed grand total.
func GeneratePDF(c *commerce.Cart, customer CustomerInfo, orderNumber string, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetTextColor(33, 37, 41)

	// Header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(15, 15, tr(pdfRestaurantName))
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(15, 21, tr("Catering-Auftrag"))

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(15, 30, tr(fmt.Sprintf("Bestellnummer: %s", orderNumber)))
	pdf.Text(15, 35, tr(fmt.Sprintf("Datum: %s", now.Format("02.01.2006"))))

	// Customer block
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(15, 46, tr("Kundeninformationen"))
	pdf.SetFont("Helvetica", "", 10)
	customerLines := []string{
		fmt.Sprintf("%s %s", customer.FirstName, customer.LastName),
		customer.Address,
		fmt.Sprintf("%s %s", customer.PostalCode, customer.City),
		fmt.Sprintf("Tel: %s", customer.Phone),
		fmt.Sprintf("Email: %s", customer.Email),
	}
	y := 52.0
	for _, line := range customerLines {
		pdf.Text(15, y, tr(line))
		y += 5
	}

	// Order details
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(15, 82, tr("Bestelldetails"))
	pdf.SetY(85)

	colWidths := [3]float64{120, 25, 35}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(252, 200, 26)
	pdf.CellFormat(colWidths[0], 7, tr("Artikel"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(colWidths[1], 7, tr("Menge"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(colWidths[2], 7, tr("Preis"), "1", 1, "R", true, 0, "")

	grandTotal := decimal.Zero
	for _, pkg := range c.Order {
		guests := pkg.Guests
		if guests <= 0 {
			guests = 1
		}
		base := pkg.Price.Mul(decimal.NewFromInt(int64(guests)))
		extras := decimal.Zero

		header := pkg.Package
		if pkg.Guests > 0 {
			header = fmt.Sprintf("%s (%d Gäste)", pkg.Package, pkg.Guests)
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(colWidths[0]+colWidths[1], 7, tr(header), "1", 0, "L", true, 0, "")
		pdf.CellFormat(colWidths[2], 7, tr(cart.FormatEuro(pkg.Price)), "1", 1, "R", true, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		for _, line := range packageLines(c, pkg) {
			if line.Kind == commerce.LineExtra {
				extras = extras.Add(line.Total)
			}
			price := line.Price
			if line.Total.IsPositive() {
				price = line.Total
			}
			pdf.CellFormat(colWidths[0], 6, tr(line.Name), "1", 0, "L", false, 0, "")
			pdf.CellFormat(colWidths[1], 6, strconv.Itoa(line.Quantity), "1", 0, "C", false, 0, "")
			pdf.CellFormat(colWidths[2], 6, tr(cart.FormatEuro(price)), "1", 1, "R", false, 0, "")
		}

		packageTotal := base.Add(extras)
		grandTotal = grandTotal.Add(packageTotal)

		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(colWidths[0]+colWidths[1], 6, tr("Zwischensumme"), "1", 0, "L", true, 0, "")
		pdf.CellFormat(colWidths[2], 6, tr(cart.FormatEuro(packageTotal)), "1", 1, "R", true, 0, "")
	}

	// Grand total
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(180, 8, tr(fmt.Sprintf("Gesamtbetrag: %s", cart.FormatEuro(grandTotal))), "", 1, "L", true, 0, "")

	// Footer
	pdf.SetY(-15)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 5, tr(pdfFooterLine), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// packageLines flattens a package's products in a stable order: the menu
// echo's category order when the package belongs to the cart's menu, sorted
// category ids otherwise.
func packageLines(c *commerce.Cart, pkg commerce.PackageOrder) []commerce.CartProduct {
	var lines []commerce.CartProduct

	if c.Menu != nil && c.Menu.Name == pkg.Package {
		seen := map[string]bool{}
		for _, content := range c.Menu.Contents {
			for _, id := range content.IDs {
				key := strconv.Itoa(id)
				if seen[key] {
					continue
				}
				seen[key] = true
				lines = append(lines, pkg.Products[key]...)
			}
		}
		// Categories the menu echo does not cover still belong on the order.
		var leftover []string
		for catID := range pkg.Products {
			if !seen[catID] {
				leftover = append(leftover, catID)
			}
		}
		sort.Strings(leftover)
		for _, catID := range leftover {
			lines = append(lines, pkg.Products[catID]...)
		}
		return lines
	}

	catIDs := make([]string, 0, len(pkg.Products))
	for catID := range pkg.Products {
		catIDs = append(catIDs, catID)
	}
	sort.Strings(catIDs)
	for _, catID := range catIDs {
		lines = append(lines, pkg.Products[catID]...)
	}
	return lines
}
