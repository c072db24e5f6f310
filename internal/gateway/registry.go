package gateway

import (
	"sort"
	"strings"

	"github.com/go-faster/errors"

	"github.com/xenking/checkout-strategy/internal/domain/payment"
)

// ErrUnknownGateway indicates a provider name with no registered implementation.
var ErrUnknownGateway = errors.New("unknown payment gateway")

// Gateways are stateless, so the registry holds shared instances.
var registry = map[string]payment.Gateway{
	"stripe":   Stripe{},
	"razorpay": Razorpay{},
	"paypal":   PayPal{},
}

// ByName resolves a gateway by its case-insensitive provider name. It returns
// ErrUnknownGateway wrapped with the offending name when no gateway matches.
func ByName(name string) (payment.Gateway, error) {
	g, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrap(ErrUnknownGateway, name)
	}
	return g, nil
}

// Names returns the registered provider names, sorted for stable output.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
