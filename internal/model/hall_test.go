package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seat(t *testing.T, row string, number int, zone SeatZone) Seat {
	t.Helper()
	id, err := NewSeatID(row, number)
	require.NoError(t, err)
	return Seat{ID: id, Zone: zone}
}

func TestNewHall(t *testing.T) {
	hall, err := NewHall(" Sala A ", []Seat{
		seat(t, "A", 1, ZoneStandard),
		seat(t, "A", 2, ZoneVIP),
	})
	require.NoError(t, err)
	assert.Equal(t, "Sala A", hall.Name())
	assert.Equal(t, 2, hall.SeatCount())
}

func TestNewHallRejectsBadInput(t *testing.T) {
	_, err := NewHall("  ", []Seat{seat(t, "A", 1, ZoneStandard)})
	require.ErrorIs(t, err, ErrValidation)

	_, err = NewHall("Sala A", nil)
	require.ErrorIs(t, err, ErrValidation)

	// Duplicate identities within one hall are rejected, even when
	// the rows differ only in case.
	_, err = NewHall("Sala A", []Seat{
		seat(t, "a", 1, ZoneStandard),
		seat(t, "A", 1, ZonePromo),
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestHallSeatLookup(t *testing.T) {
	hall, err := NewHall("Sala A", []Seat{seat(t, "B", 7, ZonePromo)})
	require.NoError(t, err)

	got, err := hall.Seat(SeatID{Row: "B", Number: 7})
	require.NoError(t, err)
	assert.Equal(t, ZonePromo, got.Zone)

	_, err = hall.Seat(SeatID{Row: "Z", Number: 99})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHallSeatIDsIsACopy(t *testing.T) {
	hall, err := NewHall("Sala A", []Seat{
		seat(t, "A", 1, ZoneStandard),
		seat(t, "A", 2, ZoneStandard),
	})
	require.NoError(t, err)

	ids := hall.SeatIDs()
	ids[0] = SeatID{Row: "X", Number: 1}
	assert.Equal(t, SeatID{Row: "A", Number: 1}, hall.SeatIDs()[0])
}
