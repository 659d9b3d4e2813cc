package model

import (
	"fmt"
	"time"
)

// Reservation is a revocable hold on a set of seats for one buyer.
// It is created only by a successful reserve operation and removed
// only by cancellation; the seat set never changes while the
// reservation is live.
type Reservation struct {
	ID        string
	Screening *Screening
	Buyer     Buyer
	SeatIDs   []SeatID
	CreatedAt time.Time
}

// newReservation builds a Reservation. Only the screening's reserve
// operation constructs these, after the whole seat set has passed
// the free-seat check.
func newReservation(id string, screening *Screening, buyer Buyer, seatIDs []SeatID, createdAt time.Time) (*Reservation, error) {
	rid, err := requireText(id, "reservation id")
	if err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, fmt.Errorf("%w: reservation buyer cannot be nil", ErrValidation)
	}
	if len(seatIDs) == 0 {
		return nil, fmt.Errorf("%w: reservation must hold at least one seat", ErrValidation)
	}
	copied := make([]SeatID, len(seatIDs))
	copy(copied, seatIDs)
	return &Reservation{
		ID:        rid,
		Screening: screening,
		Buyer:     buyer,
		SeatIDs:   copied,
		CreatedAt: createdAt,
	}, nil
}
