package order

import (
	"fmt"
	"time"
)

// CustomerInfo is the customer block collected by the checkout form.
type CustomerInfo struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Address    string `json:"address" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	City       string `json:"city" binding:"required"`
}

// Order is one submitted catering order as archived.
type Order struct {
	ID        string       `json:"id"`
	Number    string       `json:"orderNumber"`
	Customer  CustomerInfo `json:"customer"`
	Total     string       `json:"total"`
	PDFUrl    string       `json:"pdfUrl,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// NewOrderNumber derives the order number from the submission timestamp:
// "ORD-" plus the last six digits of the unix millisecond clock.
func NewOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%06d", now.UnixMilli()%1000000)
}
