package model

import (
	"fmt"
	"strconv"
	"strings"
)

// SeatID identifies a seat within a hall by row and number. The row
// is upper-cased and trimmed on construction so that "h" and "H "
// name the same row; two IDs are equal iff row and number match
// after normalization. SeatID is an immutable value type and is used
// as a map key throughout the seat ledger.
type SeatID struct {
	Row    string
	Number int
}

// NewSeatID builds a normalized SeatID. The row must be non-blank
// and the number positive.
func NewSeatID(row string, number int) (SeatID, error) {
	r := strings.ToUpper(strings.TrimSpace(row))
	if r == "" {
		return SeatID{}, fmt.Errorf("%w: seat row cannot be blank", ErrValidation)
	}
	if number <= 0 {
		return SeatID{}, fmt.Errorf("%w: seat number must be positive", ErrValidation)
	}
	return SeatID{Row: r, Number: number}, nil
}

// String renders the ID the way it is printed on a ticket, e.g. "H34".
func (id SeatID) String() string {
	return id.Row + strconv.Itoa(id.Number)
}

// SeatState is the lifecycle state a seat occupies within one
// screening. Every seat holds exactly one state at any time.
type SeatState int

const (
	// SeatFree means the seat can be reserved or purchased.
	SeatFree SeatState = iota
	// SeatReserved means a live reservation currently holds the seat.
	SeatReserved
	// SeatSold is terminal; only a purchase moves a seat here.
	SeatSold
)

// String returns the state label used in API responses and logs.
func (s SeatState) String() string {
	switch s {
	case SeatFree:
		return "FREE"
	case SeatReserved:
		return "RESERVED"
	case SeatSold:
		return "SOLD"
	default:
		return "UNKNOWN"
	}
}

// SeatZone classifies a seat for pricing purposes.
type SeatZone string

const (
	ZoneStandard   SeatZone = "STANDARD"
	ZoneVIP        SeatZone = "VIP"
	ZonePromo      SeatZone = "PROMO"
	ZoneSuperPromo SeatZone = "SUPER_PROMO"
)

// Seat is a physical seat in a hall: an identity plus its pricing
// zone. Reservation and sale state does not live here; that belongs
// to the screening's seat ledger.
type Seat struct {
	ID   SeatID
	Zone SeatZone
}
