package payment

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service routes checkouts to the currently selected payment gateway.
//
// The service does not own the gateway: callers construct gateways, hand one
// in, and may swap it at any time. A nil gateway is a valid state meaning
// "not configured"; checking out in that state is a guarded no-op, not an
// error. The service is used from a single control flow and holds no locks.
type Service struct {
	gateway Gateway
	lg      *zap.Logger
}

// NewService creates a checkout Service. The gateway may be nil, leaving the
// service unconfigured until SetGateway is called.
func NewService(gateway Gateway, lg *zap.Logger) *Service {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &Service{gateway: gateway, lg: lg}
}

// SetGateway replaces the current gateway unconditionally. Passing nil unsets it.
func (s *Service) SetGateway(g Gateway) {
	s.gateway = g
}

// Gateway returns the currently bound gateway, or nil when unconfigured.
func (s *Service) Gateway() Gateway {
	return s.gateway
}

// Checkout initiates a payment for the given amount through the current
// gateway and returns its confirmation. When no gateway is bound it logs a
// warning and returns nil; this is an expected, recoverable condition.
// Amounts are not validated and pass through unchanged.
func (s *Service) Checkout(amount decimal.Decimal) *Confirmation {
	if s.gateway == nil {
		s.lg.Warn("no payment gateway configured",
			zap.String("amount", amount.StringFixed(2)),
		)
		return nil
	}

	conf := s.gateway.InitiatePayment(amount)
	s.lg.Info("payment initiated",
		zap.String("provider", conf.Provider),
		zap.String("amount", conf.Amount.StringFixed(2)),
		zap.String("confirmation_id", conf.ID),
	)
	return &conf
}
