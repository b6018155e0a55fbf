package commerce

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// LineKind tells whether a cart line counts toward a category's required
// selections or is a separately priced extra. The backend itself has no such
// field; it marks extras by setting quantity to exactly 10 on a priced line.
// The flag is decided once at decode time and carried from there on.
type LineKind string

const (
	LineIncluded LineKind = "included"
	LineExtra    LineKind = "extra"
)

// extraQuantitySentinel is the backend's marker quantity for extra lines.
const extraQuantitySentinel = 10

// CartProduct is one line item of the remote cart, mirrored locally for
// display only. CartID identifies the line on the backend.
type CartProduct struct {
	CartID    string          `json:"cart_id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
	Kind      LineKind        `json:"kind"`
}

// PackageOrder is one configured package inside the cart: a menu plus guest
// count, with the selected products keyed by category id.
type PackageOrder struct {
	ID       string                   `json:"id"`
	Package  string                   `json:"package"`
	Price    decimal.Decimal          `json:"price"`
	Guests   int                      `json:"guests"`
	Products map[string][]CartProduct `json:"products"`
}

// MenuContent is one configurator step: a named category spanning one or more
// backend category ids with a required selection count. CurrentCount is the
// backend's live tally for the category; it is not always echoed.
type MenuContent struct {
	Name         string `json:"name"`
	IDs          []int  `json:"ids"`
	Count        int    `json:"count"`
	CurrentCount *int   `json:"currentCount,omitempty"`
}

// Menu describes one catering menu with its per-guest base price.
type Menu struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Contents []MenuContent   `json:"contents"`
}

// TotalLine is a backend-rendered total row ("Sub-Total", "Total", ...).
type TotalLine struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Cart is the normalized cart snapshot. Order is always an ordered slice here
// even though the backend sometimes returns it keyed by package id.
type Cart struct {
	Order    []PackageOrder `json:"order"`
	Menu     *Menu          `json:"menu,omitempty"`
	Products []CartProduct  `json:"products"`
	Totals   []TotalLine    `json:"totals"`
}

// Product is a shop product as returned by the category and product lookups.
type Product struct {
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	Thumb      string          `json:"thumb"`
	Price      decimal.Decimal `json:"price"`
	CategoryID string          `json:"category_id,omitempty"`
	LeadTime   string          `json:"leadTime,omitempty"`
}

// Category is a backend product category.
type Category struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

// Package is a bookable catering package as listed on the shop.
type Package struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image,omitempty"`
}

// Address carries the fields the backend expects for both shipping and
// payment addresses.
type Address struct {
	Firstname         string `json:"firstname"`
	Lastname          string `json:"lastname"`
	Email             string `json:"email,omitempty"`
	Phone             string `json:"phone,omitempty"`
	Address1          string `json:"address_1"`
	City              string `json:"city"`
	CountryID         string `json:"country_id"`
	ZoneID            string `json:"zone_id"`
	ShippingAddressID string `json:"shipping_address_id,omitempty"`
	PaymentAddressID  string `json:"payment_address_id,omitempty"`
}

// PaymentMethod is one entry of the backend's payment method listing.
type PaymentMethod struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

// ShippingMethod is one entry of the backend's shipping method listing.
type ShippingMethod struct {
	Code  string `json:"code"`
	Title string `json:"title"`
	Cost  string `json:"cost,omitempty"`
}

// Status is the backend's generic mutation response. Success arrives as a
// bool or as the string "true".
type Status struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw struct {
		Success flexBool `json:"success"`
		Message string   `json:"message"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Success = bool(raw.Success)
	s.Message = raw.Message
	return nil
}

// ---------------------------------------------------------------
// Flexible JSON scalars
//
// The backend is inconsistent about scalar types: quantities arrive as "2" or
// 2, prices as "25.00" or 25, success as "true" or true. These wrappers
// absorb that at decode time so the rest of the code sees plain Go types.
// ---------------------------------------------------------------

type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	s := strings.Trim(string(data), `"`)
	if s == "" {
		*f = 0
		return nil
	}
	// Quantities occasionally come back as "2.0000".
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*f = flexInt(int(v))
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*f = flexInt(v)
	return nil
}

type flexDecimal decimal.Decimal

func (f *flexDecimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = flexDecimal(decimal.Zero)
		return nil
	}
	s := strings.Trim(string(data), `"`)
	// Prices sometimes carry the currency symbol ("25.00€").
	s = strings.TrimSuffix(strings.TrimSpace(s), "€")
	s = strings.TrimSpace(s)
	if s == "" {
		*f = flexDecimal(decimal.Zero)
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	*f = flexDecimal(d)
	return nil
}

type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(string(data))
	return nil
}

type flexBool bool

func (f *flexBool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	switch strings.ToLower(s) {
	case "true", "1":
		*f = true
	default:
		*f = false
	}
	return nil
}
