package repository

import (
	"sync"
)

// ReservationRef records which screening a reservation belongs to
// and which user created it. The reservation itself lives inside
// the screening; this index exists so DELETE /v1/reservations/:id
// can find the owning screening and enforce ownership.
type ReservationRef struct {
	ScreeningID string
	UserID      string
}

// ReservationRepo indexes live reservations by ID.
type ReservationRepo struct {
	mu   sync.RWMutex
	byID map[string]ReservationRef
}

// NewReservationRepo builds an empty index.
func NewReservationRepo() *ReservationRepo {
	return &ReservationRepo{byID: make(map[string]ReservationRef)}
}

// Add indexes a freshly created reservation.
func (r *ReservationRepo) Add(reservationID, screeningID, userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[reservationID] = ReservationRef{ScreeningID: screeningID, UserID: userID}
}

// GetForUser resolves a reservation for a specific user. Unknown IDs
// fail with ErrReservationNotFound; a reservation owned by a
// different user fails with ErrForbidden.
func (r *ReservationRepo) GetForUser(reservationID, userID string) (ReservationRef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ref, ok := r.byID[reservationID]
	if !ok {
		return ReservationRef{}, ErrReservationNotFound
	}
	if ref.UserID != userID {
		return ReservationRef{}, ErrForbidden
	}
	return ref, nil
}

// Remove drops a reservation from the index after cancellation.
func (r *ReservationRepo) Remove(reservationID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, reservationID)
}
