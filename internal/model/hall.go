package model

import "fmt"

// Hall is a screening room with a fixed set of seats. The seat map
// is established at construction and never changes afterwards:
// screenings copy the hall's seat identities into their own ledger
// and rely on the set staying stable.
type Hall struct {
	name  string
	seats map[SeatID]Seat
	order []SeatID
}

// NewHall validates and builds a Hall. The name must be non-blank,
// the seat collection non-empty, and no two seats may share an
// identity. Seat order is preserved for stable listings.
func NewHall(name string, seats []Seat) (*Hall, error) {
	n, err := requireText(name, "hall name")
	if err != nil {
		return nil, err
	}
	if len(seats) == 0 {
		return nil, fmt.Errorf("%w: hall %q must have at least one seat", ErrValidation, n)
	}
	byID := make(map[SeatID]Seat, len(seats))
	order := make([]SeatID, 0, len(seats))
	for _, seat := range seats {
		if _, dup := byID[seat.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate seat %s in hall %q", ErrValidation, seat.ID, n)
		}
		byID[seat.ID] = seat
		order = append(order, seat.ID)
	}
	return &Hall{name: n, seats: byID, order: order}, nil
}

// Name returns the hall name as given at construction.
func (h *Hall) Name() string {
	return h.name
}

// Seat looks up a seat by identity. It fails with ErrNotFound when
// the identity does not belong to this hall; the ticket factory uses
// this lookup to resolve a seat's pricing zone.
func (h *Hall) Seat(id SeatID) (Seat, error) {
	seat, ok := h.seats[id]
	if !ok {
		return Seat{}, fmt.Errorf("%w: seat %s in hall %q", ErrNotFound, id, h.name)
	}
	return seat, nil
}

// SeatIDs returns the hall's seat identities in construction order.
// The result is a copy; mutating it does not affect the hall.
func (h *Hall) SeatIDs() []SeatID {
	out := make([]SeatID, len(h.order))
	copy(out, h.order)
	return out
}

// SeatCount reports how many seats the hall has.
func (h *Hall) SeatCount() int {
	return len(h.seats)
}
