package model

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Cinema is one multiplex location: a registry of halls plus the
// list of scheduled screenings (the repertoire). Cinema does not
// manage seat reservations or sales; that lives in Screening. The
// scheduler is guarded by a read-write lock so overlap checks are
// race-free while programme queries run concurrently and observe a
// consistent snapshot.
type Cinema struct {
	name    string
	address string

	mu         sync.RWMutex
	halls      []*Hall
	screenings []*Screening
}

// NewCinema validates and builds a Cinema with no halls and no
// screenings.
func NewCinema(name, address string) (*Cinema, error) {
	n, err := requireText(name, "cinema name")
	if err != nil {
		return nil, err
	}
	a, err := requireText(address, "cinema address")
	if err != nil {
		return nil, err
	}
	return &Cinema{name: n, address: a}, nil
}

// Name returns the cinema name.
func (c *Cinema) Name() string { return c.name }

// Address returns the cinema address.
func (c *Cinema) Address() string { return c.address }

// AddHall registers a hall on this cinema. Hall names are unique
// case-insensitively within one cinema.
func (c *Cinema) AddHall(hall *Hall) error {
	if hall == nil {
		return fmt.Errorf("%w: hall cannot be nil", ErrValidation)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.halls {
		if strings.EqualFold(existing.Name(), hall.Name()) {
			return fmt.Errorf("%w: hall %q already exists in cinema %q", ErrValidation, hall.Name(), c.name)
		}
	}
	c.halls = append(c.halls, hall)
	return nil
}

// Halls returns a snapshot of the registered halls.
func (c *Cinema) Halls() []*Hall {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Hall, len(c.halls))
	copy(out, c.halls)
	return out
}

// FindHall looks a hall up by name, case-insensitively.
func (c *Cinema) FindHall(name string) (*Hall, error) {
	key, err := requireText(name, "hall name")
	if err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, hall := range c.halls {
		if strings.EqualFold(hall.Name(), key) {
			return hall, nil
		}
	}
	return nil, fmt.Errorf("%w: hall %q in cinema %q", ErrNotFound, key, c.name)
}

// Schedule admits a screening into the repertoire. The screening's
// hall must already be registered on this cinema (ErrValidation).
// For every existing screening in the same hall the half-open
// intervals [start, end) are compared; any overlap rejects the new
// screening with ErrConflict. Intervals that merely touch at an
// endpoint are accepted. The whole check-then-append runs under the
// write lock, so concurrent Schedule calls cannot race past the
// overlap check.
func (c *Cinema) Schedule(screening *Screening) error {
	if screening == nil {
		return fmt.Errorf("%w: screening cannot be nil", ErrValidation)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	hallName := screening.Hall().Name()
	registered := false
	for _, hall := range c.halls {
		if strings.EqualFold(hall.Name(), hallName) {
			registered = true
			break
		}
	}
	if !registered {
		return fmt.Errorf("%w: hall %q is not registered in cinema %q", ErrValidation, hallName, c.name)
	}

	for _, existing := range c.screenings {
		if !strings.EqualFold(existing.Hall().Name(), hallName) {
			continue
		}
		if overlaps(existing.Start(), existing.End(), screening.Start(), screening.End()) {
			return fmt.Errorf("%w: screening %s-%s overlaps %s-%s in hall %q",
				ErrConflict,
				screening.Start().Format(time.RFC3339), screening.End().Format(time.RFC3339),
				existing.Start().Format(time.RFC3339), existing.End().Format(time.RFC3339),
				hallName)
		}
	}

	c.screenings = append(c.screenings, screening)
	return nil
}

// Screenings returns a snapshot of all scheduled screenings.
func (c *Cinema) Screenings() []*Screening {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Screening, len(c.screenings))
	copy(out, c.screenings)
	return out
}

// Programme returns the screenings starting within
// [from 00:00, to+1day 00:00), sorted by start time and then by hall
// name, case-insensitively.
func (c *Cinema) Programme(from, to time.Time) []*Screening {
	startInclusive := startOfDay(from)
	endExclusive := startOfDay(to).AddDate(0, 0, 1)

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*Screening, 0)
	for _, s := range c.screenings {
		if !s.Start().Before(startInclusive) && s.Start().Before(endExclusive) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Start().Equal(out[j].Start()) {
			return out[i].Start().Before(out[j].Start())
		}
		return strings.ToLower(out[i].Hall().Name()) < strings.ToLower(out[j].Hall().Name())
	})
	return out
}

// ProgrammeNextWeek is a convenience wrapper covering today plus the
// following seven days.
func (c *Cinema) ProgrammeNextWeek(today time.Time) []*Screening {
	return c.Programme(today, today.AddDate(0, 0, 7))
}

// FindMovie searches the repertoire for movies whose title or
// director contains the query, case-insensitively. Each movie
// appears once, in first-scheduled order.
func (c *Cinema) FindMovie(query string) ([]*Movie, error) {
	q, err := requireText(query, "query")
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(q)

	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]struct{})
	out := make([]*Movie, 0)
	for _, s := range c.screenings {
		m := s.Movie()
		key := strings.ToLower(m.Title + "|" + m.Director)
		if _, dup := seen[key]; dup {
			continue
		}
		if strings.Contains(strings.ToLower(m.Title), q) || strings.Contains(strings.ToLower(m.Director), q) {
			seen[key] = struct{}{}
			out = append(out, m)
		}
	}
	return out, nil
}

// overlaps reports whether two half-open intervals share an instant.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
