package checkout

import (
	"github.com/toushik018/hardal/internal/commerce"
)

// Step is the checkout wizard's position. The order is strictly linear;
// every non-terminal step commits exactly one value to the remote session
// before the wizard moves on.
type Step int

const (
	StepPaymentMethod Step = iota + 1
	StepShippingAddress
	StepPaymentAddress
	StepShippingMethod
	StepReview
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepPaymentMethod:
		return "payment_method"
	case StepShippingAddress:
		return "shipping_address"
	case StepPaymentAddress:
		return "payment_address"
	case StepShippingMethod:
		return "shipping_method"
	case StepReview:
		return "review"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

func (s Step) next() Step {
	if s < StepConfirmation {
		return s + 1
	}
	return s
}

func (s Step) previous() Step {
	if s > StepPaymentMethod {
		return s - 1
	}
	return s
}

// Data accumulates the values committed so far. Going back does not undo a
// committed remote value; resubmitting a step overwrites it remotely and
// here.
type Data struct {
	PaymentMethod   string            `json:"paymentMethod,omitempty"`
	ShippingAddress *commerce.Address `json:"shippingAddress,omitempty"`
	PaymentAddress  *commerce.Address `json:"paymentAddress,omitempty"`
	ShippingMethod  string            `json:"shippingMethod,omitempty"`
}

// State is one session's wizard position plus its committed data. It lives
// only for the duration of the checkout flow.
type State struct {
	Step Step `json:"step"`
	Data Data `json:"data"`
}

func NewState() *State {
	return &State{Step: StepPaymentMethod}
}

func (s *State) clone() *State {
	c := *s
	if s.Data.ShippingAddress != nil {
		addr := *s.Data.ShippingAddress
		c.Data.ShippingAddress = &addr
	}
	if s.Data.PaymentAddress != nil {
		addr := *s.Data.PaymentAddress
		c.Data.PaymentAddress = &addr
	}
	return &c
}
