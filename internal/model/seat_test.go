package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeatID(t *testing.T) {
	tests := []struct {
		name    string
		row     string
		number  int
		want    SeatID
		wantErr error
	}{
		{name: "normalizes row", row: " h ", number: 34, want: SeatID{Row: "H", Number: 34}},
		{name: "keeps upper row", row: "A", number: 1, want: SeatID{Row: "A", Number: 1}},
		{name: "blank row", row: "   ", number: 1, wantErr: ErrValidation},
		{name: "zero number", row: "A", number: 0, wantErr: ErrValidation},
		{name: "negative number", row: "A", number: -3, wantErr: ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewSeatID(tt.row, tt.number)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestSeatIDEquality(t *testing.T) {
	a, err := NewSeatID("h ", 34)
	require.NoError(t, err)
	b, err := NewSeatID("H", 34)
	require.NoError(t, err)
	// Normalized identities are comparable and usable as map keys.
	assert.Equal(t, a, b)
	assert.Equal(t, "H34", a.String())
}

func TestSeatStateString(t *testing.T) {
	assert.Equal(t, "FREE", SeatFree.String())
	assert.Equal(t, "RESERVED", SeatReserved.String())
	assert.Equal(t, "SOLD", SeatSold.String())
}
