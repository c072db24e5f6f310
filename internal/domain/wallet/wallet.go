// Package wallet models coin denominations and a coin-counting wallet.
package wallet

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Coin is a US coin denomination.
type Coin int

// Supported denominations.
const (
	Penny Coin = iota
	Nickel
	Dime
	Quarter
)

// ErrUnknownCoin indicates a denomination name with no matching Coin.
var ErrUnknownCoin = errors.New("unknown coin")

// Value returns the coin's worth in cents. Unrecognized coins are worth nothing.
func (c Coin) Value() int64 {
	switch c {
	case Penny:
		return 1
	case Nickel:
		return 5
	case Dime:
		return 10
	case Quarter:
		return 25
	}
	return 0
}

// String returns the denomination name.
func (c Coin) String() string {
	switch c {
	case Penny:
		return "Penny"
	case Nickel:
		return "Nickel"
	case Dime:
		return "Dime"
	case Quarter:
		return "Quarter"
	}
	return "Unknown"
}

// ParseCoin parses a case-insensitive denomination name.
func ParseCoin(s string) (Coin, error) {
	switch strings.ToLower(s) {
	case "penny":
		return Penny, nil
	case "nickel":
		return Nickel, nil
	case "dime":
		return Dime, nil
	case "quarter":
		return Quarter, nil
	}
	return 0, errors.Wrap(ErrUnknownCoin, s)
}

// Wallet accumulates the total value of added coins. The zero value is an
// empty wallet ready for use.
type Wallet struct {
	total int64
}

// Add puts a coin into the wallet.
func (w *Wallet) Add(c Coin) {
	w.total += c.Value()
}

// Total returns the wallet contents in cents.
func (w *Wallet) Total() int64 {
	return w.total
}

// TotalAmount returns the wallet contents in dollars.
func (w *Wallet) TotalAmount() decimal.Decimal {
	return decimal.New(w.total, -2)
}
