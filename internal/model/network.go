package model

import (
	"fmt"
	"strings"
	"sync"
)

// MultiplexNetwork is the registry of cinema locations managed by
// one operator. Cinema names are unique case-insensitively across
// the network.
type MultiplexNetwork struct {
	mu      sync.RWMutex
	cinemas []*Cinema
}

// NewMultiplexNetwork builds an empty network.
func NewMultiplexNetwork() *MultiplexNetwork {
	return &MultiplexNetwork{}
}

// AddCinema registers a cinema. A cinema whose name is already taken
// (ignoring case) is rejected with ErrValidation.
func (n *MultiplexNetwork) AddCinema(cinema *Cinema) error {
	if cinema == nil {
		return fmt.Errorf("%w: cinema cannot be nil", ErrValidation)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, existing := range n.cinemas {
		if strings.EqualFold(existing.Name(), cinema.Name()) {
			return fmt.Errorf("%w: cinema %q already exists", ErrValidation, cinema.Name())
		}
	}
	n.cinemas = append(n.cinemas, cinema)
	return nil
}

// RemoveCinema drops a cinema from the network by name. Removing an
// unknown cinema is a no-op.
func (n *MultiplexNetwork) RemoveCinema(name string) {
	key := strings.TrimSpace(name)
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, existing := range n.cinemas {
		if strings.EqualFold(existing.Name(), key) {
			n.cinemas = append(n.cinemas[:i], n.cinemas[i+1:]...)
			return
		}
	}
}

// FindCinema looks a cinema up by name, case-insensitively.
func (n *MultiplexNetwork) FindCinema(name string) (*Cinema, error) {
	key, err := requireText(name, "cinema name")
	if err != nil {
		return nil, err
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, cinema := range n.cinemas {
		if strings.EqualFold(cinema.Name(), key) {
			return cinema, nil
		}
	}
	return nil, fmt.Errorf("%w: cinema %q", ErrNotFound, key)
}

// Cinemas returns a snapshot of the registered cinemas.
func (n *MultiplexNetwork) Cinemas() []*Cinema {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*Cinema, len(n.cinemas))
	copy(out, n.cinemas)
	return out
}
