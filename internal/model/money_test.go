package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(2500, " pln ")
	require.NoError(t, err)
	assert.Equal(t, int64(2500), m.Cents)
	assert.Equal(t, "PLN", m.Currency)

	_, err = NewMoney(100, "  ")
	require.ErrorIs(t, err, ErrValidation)

	_, err = NewMoney(-1, "PLN")
	require.ErrorIs(t, err, ErrValidation)
}

func TestMoneyArithmetic(t *testing.T) {
	a := PLN(2500)
	b := PLN(1800)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, int64(4300), sum.Cents)

	_, err = a.Add(Money{Cents: 100, Currency: "EUR"})
	require.ErrorIs(t, err, ErrValidation)

	triple, err := b.Times(3)
	require.NoError(t, err)
	assert.Equal(t, int64(5400), triple.Cents)

	_, err = b.Times(-1)
	require.ErrorIs(t, err, ErrValidation)
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "25.00 PLN", PLN(2500).String())
	assert.Equal(t, "18.05 PLN", PLN(1805).String())
}
