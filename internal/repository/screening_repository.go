package repository

import (
	"sync"

	"github.com/kinoplex/multiplex-booking/internal/model"
)

// ScreeningEntry pairs a screening with the cinema it was scheduled
// on, so handlers resolving a screening ID also learn its venue.
type ScreeningEntry struct {
	Screening *model.Screening
	Cinema    *model.Cinema
}

// ScreeningRepo indexes scheduled screenings by their ID. Scheduling
// itself happens on the Cinema aggregate; the repo only makes the
// admitted screening addressable over HTTP afterwards.
type ScreeningRepo struct {
	mu   sync.RWMutex
	byID map[string]ScreeningEntry
}

// NewScreeningRepo builds an empty index.
func NewScreeningRepo() *ScreeningRepo {
	return &ScreeningRepo{byID: make(map[string]ScreeningEntry)}
}

// Add indexes a screening that a cinema has admitted.
func (r *ScreeningRepo) Add(screening *model.Screening, cinema *model.Cinema) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[screening.ID()] = ScreeningEntry{Screening: screening, Cinema: cinema}
}

// GetByID resolves a screening ID, or fails with
// ErrScreeningNotFound.
func (r *ScreeningRepo) GetByID(id string) (ScreeningEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.byID[id]
	if !ok {
		return ScreeningEntry{}, ErrScreeningNotFound
	}
	return entry, nil
}
