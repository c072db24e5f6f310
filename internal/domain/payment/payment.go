// Package payment defines the payment gateway abstraction and the checkout
// service that dispatches to the currently selected gateway.
package payment

import (
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
)

// Gateway is the contract every payment provider implements. Implementations
// are stateless and immutable: the same amount always produces the same
// message, and gateways carry no data beyond their behavior.
type Gateway interface {
	// Name returns the stable, human-readable provider name.
	Name() string
	// InitiatePayment charges the given amount and returns a confirmation.
	// Amounts pass through unchanged; zero and negative values are the
	// caller's concern.
	InitiatePayment(amount decimal.Decimal) Confirmation
}

// Confirmation describes a single initiated payment.
type Confirmation struct {
	ID       string
	Provider string
	Amount   decimal.Decimal
	Message  string
}

// Encode writes the confirmation as a JSON object to the given encoder.
func (c Confirmation) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(c.ID) })
		e.Field("provider", func(e *jx.Encoder) { e.Str(c.Provider) })
		e.Field("amount", func(e *jx.Encoder) { e.Str(c.Amount.StringFixed(2)) })
		e.Field("message", func(e *jx.Encoder) { e.Str(c.Message) })
	})
}

// JSON returns the confirmation as a compact JSON string.
func (c Confirmation) JSON() string {
	var e jx.Encoder
	c.Encode(&e)
	return e.String()
}
