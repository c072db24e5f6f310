// Package rational implements exact fraction arithmetic over int64 numerators
// and denominators.
package rational

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrZeroDenominator indicates an attempt to build a fraction with a zero
// denominator.
var ErrZeroDenominator = errors.New("zero denominator")

// Rational is an immutable fraction. Arithmetic uses cross multiplication and
// results are not reduced: 1/2 + 1/2 is 4/4, not 1/1.
type Rational struct {
	num int64
	den int64
}

// New builds a fraction, rejecting zero denominators.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	return Rational{num: num, den: den}, nil
}

// MustNew is New for literals known to be valid. It panics on a zero
// denominator.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// Num returns the numerator.
func (r Rational) Num() int64 { return r.num }

// Den returns the denominator.
func (r Rational) Den() int64 { return r.den }

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	return Rational{num: r.num*o.den + o.num*r.den, den: r.den * o.den}
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	return Rational{num: r.num*o.den - o.num*r.den, den: r.den * o.den}
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	return Rational{num: r.num * o.num, den: r.den * o.den}
}

// String renders the fraction as "num/den".
func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

// Decimal converts the fraction to a decimal value.
func (r Rational) Decimal() decimal.Decimal {
	return decimal.NewFromInt(r.num).Div(decimal.NewFromInt(r.den))
}
