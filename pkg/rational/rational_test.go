package rational

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r, err := New(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.Num())
	assert.Equal(t, int64(2), r.Den())

	_, err = New(1, 0)
	require.ErrorIs(t, err, ErrZeroDenominator)
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { MustNew(3, 0) })
}

func TestAdd(t *testing.T) {
	sum := MustNew(1, 2).Add(MustNew(1, 3))
	assert.Equal(t, "5/6", sum.String())
}

func TestSub(t *testing.T) {
	diff := MustNew(1, 2).Sub(MustNew(1, 3))
	assert.Equal(t, "1/6", diff.String())
}

func TestMul(t *testing.T) {
	prod := MustNew(2, 3).Mul(MustNew(3, 4))
	assert.Equal(t, "6/12", prod.String())
}

func TestAddDoesNotReduce(t *testing.T) {
	sum := MustNew(1, 2).Add(MustNew(1, 2))
	assert.Equal(t, "4/4", sum.String())
}

func TestDecimal(t *testing.T) {
	assert.Equal(t, "0.25", MustNew(1, 4).Decimal().StringFixed(2))
	assert.Equal(t, "-1.50", MustNew(-3, 2).Decimal().StringFixed(2))
}
