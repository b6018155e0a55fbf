package order

import "context"

// Repository archives submitted orders.
// Service depends ONLY on this interface.
type Repository interface {
	Save(ctx context.Context, o *Order) error
	FindByNumber(ctx context.Context, number string) (*Order, error)
}
