package gateway

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xenking/checkout-strategy/internal/domain/payment"
)

func TestNamesStableAndDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, g := range []payment.Gateway{Stripe{}, Razorpay{}, PayPal{}} {
		name := g.Name()
		assert.NotEmpty(t, name)
		assert.Equal(t, name, g.Name())
		assert.False(t, seen[name], "duplicate gateway name %q", name)
		seen[name] = true
	}
}

func TestInitiatePayment(t *testing.T) {
	amount := decimal.RequireFromString("120.50")

	tests := []struct {
		gateway payment.Gateway
		message string
	}{
		{Stripe{}, "Processing payment via Stripe: $120.50"},
		{Razorpay{}, "Processing payment via Razorpay: ₹120.50"},
		{PayPal{}, "Processing payment via PayPal: $120.50"},
	}
	for _, tt := range tests {
		t.Run(tt.gateway.Name(), func(t *testing.T) {
			conf := tt.gateway.InitiatePayment(amount)
			assert.Equal(t, tt.message, conf.Message)
			assert.Equal(t, tt.gateway.Name(), conf.Provider)
			assert.True(t, amount.Equal(conf.Amount))
			assert.NotEmpty(t, conf.ID)
		})
	}
}

func TestByName(t *testing.T) {
	g, err := ByName("RaZorPay")
	require.NoError(t, err)
	assert.Equal(t, "Razorpay", g.Name())

	_, err = ByName("square")
	require.ErrorIs(t, err, ErrUnknownGateway)
	assert.Contains(t, err.Error(), "square")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"paypal", "razorpay", "stripe"}, Names())
}

// Pay through Stripe, switch to Razorpay mid-flight, and confirm the second
// charge carries no trace of the first provider.
func TestCheckoutSwitchScenario(t *testing.T) {
	svc := payment.NewService(Stripe{}, zap.NewNop())

	conf := svc.Checkout(decimal.RequireFromString("120.50"))
	require.NotNil(t, conf)
	assert.Equal(t, "Processing payment via Stripe: $120.50", conf.Message)

	svc.SetGateway(Razorpay{})
	conf = svc.Checkout(decimal.RequireFromString("150.50"))
	require.NotNil(t, conf)
	assert.Equal(t, "Processing payment via Razorpay: ₹150.50", conf.Message)
	assert.NotContains(t, conf.Message, "Stripe")
}
