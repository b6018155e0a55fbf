package cart

import (
	"context"
	"errors"

	"github.com/toushik018/hardal/internal/commerce"
)

var (
	ErrLineNotFound = errors.New("cart line not found")
)

// Commerce is the slice of the commerce client the cart needs.
type Commerce interface {
	GetCart(ctx context.Context, token string) (*commerce.Cart, error)
	EditProduct(ctx context.Context, token, cartID string, quantity int) error
	RemoveProduct(ctx context.Context, token, cartID string) error
	DeletePackage(ctx context.Context, token string) error
	ClearCart(ctx context.Context, token string) error
}

type Service struct {
	api     Commerce
	resolve CategoryResolver
}

func NewService(api Commerce, resolve CategoryResolver) *Service {
	return &Service{api: api, resolve: resolve}
}

// View fetches the canonical cart and prepares it for display.
func (s *Service) View(ctx context.Context, token string) (View, error) {
	c, err := s.api.GetCart(ctx, token)
	if err != nil {
		return View{}, err
	}
	return BuildView(c, s.resolve), nil
}

// Increment raises a line's quantity by one, then returns the refetched cart.
// The current quantity is read from the backend, never trusted from the
// caller.
func (s *Service) Increment(ctx context.Context, token, cartID string) (View, error) {
	line, err := s.findLine(ctx, token, cartID)
	if err != nil {
		return View{}, err
	}
	if err := s.api.EditProduct(ctx, token, cartID, line.Quantity+1); err != nil {
		return View{}, err
	}
	return s.View(ctx, token)
}

// Decrement lowers a line's quantity by one. A line already at quantity one
// is removed instead; quantities never reach zero or below.
func (s *Service) Decrement(ctx context.Context, token, cartID string) (View, error) {
	line, err := s.findLine(ctx, token, cartID)
	if err != nil {
		return View{}, err
	}

	if line.Quantity <= 1 {
		if err := s.api.RemoveProduct(ctx, token, cartID); err != nil {
			return View{}, err
		}
	} else {
		if err := s.api.EditProduct(ctx, token, cartID, line.Quantity-1); err != nil {
			return View{}, err
		}
	}
	return s.View(ctx, token)
}

// Remove deletes one line outright.
func (s *Service) Remove(ctx context.Context, token, cartID string) (View, error) {
	if err := s.api.RemoveProduct(ctx, token, cartID); err != nil {
		return View{}, err
	}
	return s.View(ctx, token)
}

// DeletePackage removes the whole configured package from the cart.
func (s *Service) DeletePackage(ctx context.Context, token string) (View, error) {
	if err := s.api.DeletePackage(ctx, token); err != nil {
		return View{}, err
	}
	return s.View(ctx, token)
}

// Clear empties the cart entirely.
func (s *Service) Clear(ctx context.Context, token string) (View, error) {
	if err := s.api.ClearCart(ctx, token); err != nil {
		return View{}, err
	}
	return s.View(ctx, token)
}

func (s *Service) findLine(ctx context.Context, token, cartID string) (*commerce.CartProduct, error) {
	c, err := s.api.GetCart(ctx, token)
	if err != nil {
		return nil, err
	}

	for _, pkg := range c.Order {
		for _, lines := range pkg.Products {
			for i := range lines {
				if lines[i].CartID == cartID {
					return &lines[i], nil
				}
			}
		}
	}
	for i := range c.Products {
		if c.Products[i].CartID == cartID {
			return &c.Products[i], nil
		}
	}
	return nil, ErrLineNotFound
}
