package checkout

import (
	"context"
	"fmt"

	"github.com/toushik018/hardal/internal/commerce"
)

// ErrWrongStep rejects a submit that does not belong to the wizard's current
// step.
type ErrWrongStep struct {
	Expected Step
	Actual   Step
}

func (e *ErrWrongStep) Error() string {
	return fmt.Sprintf("checkout is at step %s, not %s", e.Actual, e.Expected)
}

// Commerce is the slice of the commerce client the wizard needs.
type Commerce interface {
	GetPaymentMethods(ctx context.Context, token string) ([]commerce.PaymentMethod, error)
	SetPaymentMethod(ctx context.Context, token, method string) error
	SetShippingAddress(ctx context.Context, token string, addr commerce.Address) error
	SetPaymentAddress(ctx context.Context, token string, addr commerce.Address) error
	GetShippingMethods(ctx context.Context, token string) ([]commerce.ShippingMethod, error)
	SetShippingMethod(ctx context.Context, token, method string) error
}

type Service struct {
	api   Commerce
	store Store
}

func NewService(api Commerce, store Store) *Service {
	return &Service{api: api, store: store}
}

func (s *Service) State(token string) (*State, error) {
	return s.store.Load(token)
}

func (s *Service) PaymentMethods(ctx context.Context, token string) ([]commerce.PaymentMethod, error) {
	return s.api.GetPaymentMethods(ctx, token)
}

func (s *Service) ShippingMethods(ctx context.Context, token string) ([]commerce.ShippingMethod, error) {
	return s.api.GetShippingMethods(ctx, token)
}

// SetPaymentMethod commits the payment method remotely, then stores it and
// advances. On failure nothing changes locally and the submit stays
// retryable.
func (s *Service) SetPaymentMethod(ctx context.Context, token, method string) (*State, error) {
	st, err := s.at(token, StepPaymentMethod)
	if err != nil {
		return st, err
	}

	if err := s.api.SetPaymentMethod(ctx, token, method); err != nil {
		return st, err
	}

	st.Data.PaymentMethod = method
	st.Step = st.Step.next()
	return st, s.store.Save(token, st)
}

func (s *Service) SetShippingAddress(ctx context.Context, token string, addr commerce.Address) (*State, error) {
	st, err := s.at(token, StepShippingAddress)
	if err != nil {
		return st, err
	}

	if err := s.api.SetShippingAddress(ctx, token, addr); err != nil {
		return st, err
	}

	st.Data.ShippingAddress = &addr
	st.Step = st.Step.next()
	return st, s.store.Save(token, st)
}

func (s *Service) SetPaymentAddress(ctx context.Context, token string, addr commerce.Address) (*State, error) {
	st, err := s.at(token, StepPaymentAddress)
	if err != nil {
		return st, err
	}

	if err := s.api.SetPaymentAddress(ctx, token, addr); err != nil {
		return st, err
	}

	st.Data.PaymentAddress = &addr
	st.Step = st.Step.next()
	return st, s.store.Save(token, st)
}

func (s *Service) SetShippingMethod(ctx context.Context, token, method string) (*State, error) {
	st, err := s.at(token, StepShippingMethod)
	if err != nil {
		return st, err
	}

	if err := s.api.SetShippingMethod(ctx, token, method); err != nil {
		return st, err
	}

	st.Data.ShippingMethod = method
	st.Step = st.Step.next()
	return st, s.store.Save(token, st)
}

// Back decrements the step. Previously committed remote values stay as they
// are; revisiting a step and resubmitting overwrites them.
func (s *Service) Back(token string) (*State, error) {
	st, err := s.store.Load(token)
	if err != nil {
		return nil, err
	}

	st.Step = st.Step.previous()
	return st, s.store.Save(token, st)
}

// Confirm leaves the review step. Order submission itself is a separate
// operation; this only moves the wizard to its terminal state.
func (s *Service) Confirm(token string) (*State, error) {
	st, err := s.at(token, StepReview)
	if err != nil {
		return st, err
	}

	st.Step = StepConfirmation
	return st, s.store.Save(token, st)
}

// Reset drops the wizard state, e.g. after a submitted order.
func (s *Service) Reset(token string) error {
	return s.store.Clear(token)
}

func (s *Service) at(token string, expected Step) (*State, error) {
	st, err := s.store.Load(token)
	if err != nil {
		return nil, err
	}
	if st.Step != expected {
		return st, &ErrWrongStep{Expected: expected, Actual: st.Step}
	}
	return st, nil
}
