package menu

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/toushik018/hardal/internal/commerce"
)

var (
	ErrMenuNotFound = errors.New("menu not found")
)

// Commerce is the slice of the commerce client the menu flows need.
type Commerce interface {
	GetPackages(ctx context.Context, token string) ([]commerce.Package, error)
	GetCategories(ctx context.Context, token string) ([]commerce.Category, error)
	GetMenuContent(ctx context.Context, token string, menuID int) (*commerce.Menu, error)
	GetProductsByCategory(ctx context.Context, token, categoryID string) ([]commerce.Product, error)
	GetProductByID(ctx context.Context, token, productID string) (*commerce.Product, error)
}

type Service struct {
	api Commerce
}

func NewService(api Commerce) *Service {
	return &Service{api: api}
}

func (s *Service) Packages(ctx context.Context, token string) ([]commerce.Package, error) {
	return s.api.GetPackages(ctx, token)
}

func (s *Service) Categories(ctx context.Context, token string) ([]commerce.Category, error) {
	return s.api.GetCategories(ctx, token)
}

// Content fetches a menu's configurator steps. When the backend returns a
// menu without contents, the static fallback tables fill in; the fallback is
// logged to surface drift.
func (s *Service) Content(ctx context.Context, token string, menuID int) (*commerce.Menu, error) {
	m, err := s.api.GetMenuContent(ctx, token, menuID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMenuNotFound
	}

	if len(m.Contents) == 0 {
		fallback, ok := menuCategories[menuID]
		if !ok {
			return nil, ErrMenuNotFound
		}
		log.Printf("menu: backend returned menu %d without contents, using fallback table", menuID)
		for _, fc := range fallback {
			m.Contents = append(m.Contents, commerce.MenuContent{
				Name:  fc.Name,
				IDs:   fc.IDs,
				Count: 1,
			})
		}
	}
	return m, nil
}

func (s *Service) ProductsByCategory(ctx context.Context, token, categoryID string) ([]commerce.Product, error) {
	return s.api.GetProductsByCategory(ctx, token, categoryID)
}

func (s *Service) ProductByID(ctx context.Context, token, productID string) (*commerce.Product, error) {
	return s.api.GetProductByID(ctx, token, productID)
}

// StepProducts loads the selectable products of one configurator step by
// fetching every category id the step spans and merging the results.
func (s *Service) StepProducts(ctx context.Context, token string, content commerce.MenuContent) ([]commerce.Product, error) {
	var all []commerce.Product
	for _, id := range content.IDs {
		products, err := s.api.GetProductsByCategory(ctx, token, strconv.Itoa(id))
		if err != nil {
			return nil, err
		}
		all = append(all, products...)
	}
	return all, nil
}
