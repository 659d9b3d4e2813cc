package model

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CleaningBreak is the buffer appended after a movie's runtime
// before the hall is considered free for the next screening. Named
// here so the overlap algorithm never hardcodes it.
const CleaningBreak = 20 * time.Minute

// ScreeningFormat is the projection format of a screening.
type ScreeningFormat string

const (
	FormatTwoD   ScreeningFormat = "2D"
	FormatThreeD ScreeningFormat = "3D"
)

// ScreeningClass is the service class of a screening.
type ScreeningClass string

const (
	ClassStandard ScreeningClass = "STANDARD"
	ClassVIP      ScreeningClass = "VIP"
)

// TicketMinter produces a priced ticket for one seat of a screening.
// The purchase flow invokes it once per requested seat; it must not
// touch seat state. The pricing package provides the default
// implementation.
type TicketMinter interface {
	CreateTicket(buyer Buyer, screening *Screening, seatID SeatID) (Ticket, error)
}

// Screening is a scheduled showing of a movie in a hall. It owns the
// seat ledger (one lifecycle state per hall seat) and the live
// reservations for this specific showing. All mutations go through
// Reserve, CancelReservation and Purchase; each screening instance
// is its own unit of mutual exclusion, so those operations are
// serialized per screening and fully parallel across screenings.
type Screening struct {
	id     string
	movie  *Movie
	hall   *Hall
	start  time.Time
	format ScreeningFormat
	class  ScreeningClass

	mu           sync.Mutex
	states       map[SeatID]SeatState
	reservations map[string]*Reservation
}

// NewScreening builds a Screening with every hall seat initialized
// to Free. The tracked seat set equals the hall's seat set exactly
// and is fixed for the screening's lifetime.
func NewScreening(movie *Movie, hall *Hall, start time.Time, format ScreeningFormat, class ScreeningClass) (*Screening, error) {
	if movie == nil {
		return nil, fmt.Errorf("%w: screening movie cannot be nil", ErrValidation)
	}
	if hall == nil {
		return nil, fmt.Errorf("%w: screening hall cannot be nil", ErrValidation)
	}
	if start.IsZero() {
		return nil, fmt.Errorf("%w: screening start cannot be zero", ErrValidation)
	}
	states := make(map[SeatID]SeatState, hall.SeatCount())
	for _, id := range hall.SeatIDs() {
		states[id] = SeatFree
	}
	return &Screening{
		id:           uuid.NewString(),
		movie:        movie,
		hall:         hall,
		start:        start,
		format:       format,
		class:        class,
		states:       states,
		reservations: make(map[string]*Reservation),
	}, nil
}

// ID returns the screening identifier used to address it over HTTP.
func (s *Screening) ID() string { return s.id }

// Movie returns the movie being shown.
func (s *Screening) Movie() *Movie { return s.movie }

// Hall returns the hall hosting the screening.
func (s *Screening) Hall() *Hall { return s.hall }

// Start returns the scheduled start time.
func (s *Screening) Start() time.Time { return s.start }

// Format returns the projection format.
func (s *Screening) Format() ScreeningFormat { return s.format }

// Class returns the service class.
func (s *Screening) Class() ScreeningClass { return s.class }

// End is derived, never stored: start plus the movie runtime plus
// the cleaning break.
func (s *Screening) End() time.Time {
	return s.start.Add(time.Duration(s.movie.DurationMin)*time.Minute + CleaningBreak)
}

// SeatStatus reports the current lifecycle state of one seat. It
// fails with ErrNotFound when the identity is not part of this
// screening.
func (s *Screening) SeatStatus(id SeatID) (SeatState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[id]
	if !ok {
		return SeatFree, fmt.Errorf("%w: seat %s in this screening", ErrNotFound, id)
	}
	return state, nil
}

// FreeSeats returns a snapshot of the identities currently Free, in
// the hall's seat order. The snapshot does not track later changes.
func (s *Screening) FreeSeats() []SeatID {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SeatID, 0, len(s.states))
	for _, id := range s.hall.SeatIDs() {
		if s.states[id] == SeatFree {
			out = append(out, id)
		}
	}
	return out
}

// SeatStates returns a snapshot of the whole ledger in hall order.
// Handlers use it to render seat maps; it is never a live view.
func (s *Screening) SeatStates() map[SeatID]SeatState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[SeatID]SeatState, len(s.states))
	for id, state := range s.states {
		out[id] = state
	}
	return out
}

// Reserve places a hold on the requested seats for the buyer. The
// whole set is validated before any seat is touched: every identity
// must belong to this screening (ErrNotFound) and be Free
// (ErrInvalidState), otherwise no seat changes and no reservation is
// created. On success every seat moves to Reserved and the new
// reservation is recorded and returned.
func (s *Screening) Reserve(buyer Buyer, seatIDs []SeatID) (*Reservation, error) {
	if buyer == nil {
		return nil, fmt.Errorf("%w: buyer cannot be nil", ErrValidation)
	}
	requested, err := dedupeSeatIDs(seatIDs)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range requested {
		state, ok := s.states[id]
		if !ok {
			return nil, fmt.Errorf("%w: seat %s in this screening", ErrNotFound, id)
		}
		if state != SeatFree {
			return nil, fmt.Errorf("%w: seat %s is not free", ErrInvalidState, id)
		}
	}

	res, err := newReservation(uuid.NewString(), s, buyer, requested, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	for _, id := range requested {
		s.states[id] = SeatReserved
	}
	s.reservations[res.ID] = res
	return res, nil
}

// CancelReservation removes a live reservation and frees its seats.
// Seats that have moved to Sold in the meantime stay Sold;
// cancellation never downgrades a sale. Unknown reservation IDs fail
// with ErrNotFound.
func (s *Screening) CancelReservation(reservationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.reservations[reservationID]
	if !ok {
		return fmt.Errorf("%w: reservation %s", ErrNotFound, reservationID)
	}
	delete(s.reservations, reservationID)
	for _, id := range res.SeatIDs {
		if s.states[id] == SeatReserved {
			s.states[id] = SeatFree
		}
	}
	return nil
}

// Purchase sells the requested seats to the buyer and returns one
// order with a ticket per seat. Every identity must belong to this
// screening (ErrNotFound) and none may already be Sold
// (ErrInvalidState); Free and Reserved seats are both eligible, so a
// purchase may override another buyer's hold. All tickets are minted
// before any seat transitions, which keeps the outcome atomic: a
// minting or pricing failure leaves the ledger exactly as it was.
// When the buyer exposes a ticket account, the minted tickets are
// appended to its history.
func (s *Screening) Purchase(buyer Buyer, seatIDs []SeatID, minter TicketMinter) (*TicketOrder, error) {
	if buyer == nil {
		return nil, fmt.Errorf("%w: buyer cannot be nil", ErrValidation)
	}
	if minter == nil {
		return nil, fmt.Errorf("%w: ticket minter cannot be nil", ErrValidation)
	}
	requested, err := dedupeSeatIDs(seatIDs)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range requested {
		state, ok := s.states[id]
		if !ok {
			return nil, fmt.Errorf("%w: seat %s in this screening", ErrNotFound, id)
		}
		if state == SeatSold {
			return nil, fmt.Errorf("%w: seat %s already sold", ErrInvalidState, id)
		}
	}

	tickets := make([]Ticket, 0, len(requested))
	for _, id := range requested {
		ticket, err := minter.CreateTicket(buyer, s, id)
		if err != nil {
			return nil, fmt.Errorf("mint ticket for seat %s: %w", id, err)
		}
		tickets = append(tickets, ticket)
	}

	order, err := NewTicketOrder(uuid.NewString(), buyer, tickets, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	for _, id := range requested {
		s.states[id] = SeatSold
	}
	if account, ok := buyer.(TicketAccount); ok {
		account.AddTickets(order.Tickets)
	}
	return order, nil
}

// Reservation returns a live reservation by ID, or ErrNotFound.
func (s *Screening) Reservation(reservationID string) (*Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.reservations[reservationID]
	if !ok {
		return nil, fmt.Errorf("%w: reservation %s", ErrNotFound, reservationID)
	}
	return res, nil
}

// dedupeSeatIDs rejects empty requests and collapses duplicates
// while preserving order, so "A1,A1" behaves like "A1".
func dedupeSeatIDs(seatIDs []SeatID) ([]SeatID, error) {
	if len(seatIDs) == 0 {
		return nil, fmt.Errorf("%w: seat set cannot be empty", ErrValidation)
	}
	seen := make(map[SeatID]struct{}, len(seatIDs))
	out := make([]SeatID, 0, len(seatIDs))
	for _, id := range seatIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
