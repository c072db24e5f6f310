// Package gateway provides the built-in payment gateway implementations and
// a name-based registry for selecting one at runtime.
package gateway

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/checkout-strategy/internal/domain/payment"
)

// Stripe charges in US dollars.
type Stripe struct{}

// Name implements payment.Gateway.
func (Stripe) Name() string { return "Stripe" }

// InitiatePayment implements payment.Gateway.
func (Stripe) InitiatePayment(amount decimal.Decimal) payment.Confirmation {
	return confirm("Stripe", "$", amount)
}

// Razorpay charges in Indian rupees.
type Razorpay struct{}

// Name implements payment.Gateway.
func (Razorpay) Name() string { return "Razorpay" }

// InitiatePayment implements payment.Gateway.
func (Razorpay) InitiatePayment(amount decimal.Decimal) payment.Confirmation {
	return confirm("Razorpay", "₹", amount)
}

// PayPal charges in US dollars.
type PayPal struct{}

// Name implements payment.Gateway.
func (PayPal) Name() string { return "PayPal" }

// InitiatePayment implements payment.Gateway.
func (PayPal) InitiatePayment(amount decimal.Decimal) payment.Confirmation {
	return confirm("PayPal", "$", amount)
}

var (
	_ payment.Gateway = Stripe{}
	_ payment.Gateway = Razorpay{}
	_ payment.Gateway = PayPal{}
)

// confirm builds the provider confirmation. Amounts are always rendered with
// two decimal places so "120.50" survives as a literal.
func confirm(provider, symbol string, amount decimal.Decimal) payment.Confirmation {
	return payment.Confirmation{
		ID:       uuid.New().String(),
		Provider: provider,
		Amount:   amount,
		Message:  fmt.Sprintf("Processing payment via %s: %s%s", provider, symbol, amount.StringFixed(2)),
	}
}
