package order

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/toushik018/hardal/internal/cart"
	"github.com/toushik018/hardal/internal/commerce"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
)

// Commerce is the slice of the commerce client order submission needs.
type Commerce interface {
	GetCart(ctx context.Context, token string) (*commerce.Cart, error)
}

// Storage archives the generated order PDFs.
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	api     Commerce
	repo    Repository
	storage Storage
	mailer  Mailer
	now     func() time.Time
}

func NewService(api Commerce, repo Repository, storage Storage, mailer Mailer) *Service {
	return &Service{
		api:     api,
		repo:    repo,
		storage: storage,
		mailer:  mailer,
		now:     time.Now,
	}
}

// Submit turns the current cart into an order: it renders the PDF, archives
// both the document and the order row, and mails the confirmation. The mail
// is fire-and-forget; a failed PDF upload is logged but does not block the
// order.
func (s *Service) Submit(ctx context.Context, token string, customer CustomerInfo) (*Order, error) {
	c, err := s.api.GetCart(ctx, token)
	if err != nil {
		return nil, err
	}
	if len(c.Order) == 0 {
		return nil, ErrEmptyCart
	}

	now := s.now()
	number := NewOrderNumber(now)
	totals := cart.CalculateTotals(c)

	pdf, err := GeneratePDF(c, customer, number, now)
	if err != nil {
		return nil, err
	}

	pdfURL := ""
	if s.storage != nil {
		key := fmt.Sprintf("orders/%s.pdf", number)
		url, err := s.storage.Upload(ctx, key, bytes.NewReader(pdf), "application/pdf")
		if err != nil {
			log.Printf("order: pdf upload for %s failed: %v", number, err)
		} else {
			pdfURL = url
		}
	}

	o := &Order{
		ID:        uuid.New().String(),
		Number:    number,
		Customer:  customer,
		Total:     totals.Total,
		PDFUrl:    pdfURL,
		CreatedAt: now,
	}
	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		go func(o Order, pdf []byte) {
			if err := s.mailer.SendOrderMail(&o, pdf); err != nil {
				log.Printf("order: mail for %s failed: %v", o.Number, err)
			}
		}(*o, pdf)
	}

	return o, nil
}

func (s *Service) ByNumber(ctx context.Context, number string) (*Order, error) {
	return s.repo.FindByNumber(ctx, number)
}
