package repository

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kinoplex/multiplex-booking/internal/model"
)

// User is a registered account. Customers carry a domain Customer
// that accumulates their ticket history; owner accounts manage the
// catalog and have no ticket history.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         string // OWNER or CUSTOMER
	Customer     *model.Customer
	CreatedAt    time.Time
}

// UserRepo is the in-memory account store, indexed by ID and by
// lower-cased email. Domain state does not survive restarts, so
// neither do accounts.
type UserRepo struct {
	mu      sync.RWMutex
	byID    map[string]*User
	byEmail map[string]*User
}

// NewUserRepo builds an empty store.
func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:    make(map[string]*User),
		byEmail: make(map[string]*User),
	}
}

// Create registers a user. Emails are unique case-insensitively;
// a taken email fails with ErrEmailTaken. Customer-role users get a
// domain Customer built from their name so purchases can append to
// their ticket history.
func (r *UserRepo) Create(email, passwordHash, fullName, role string) (*User, error) {
	key := strings.ToLower(strings.TrimSpace(email))

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byEmail[key]; taken {
		return nil, ErrEmailTaken
	}

	id := uuid.NewString()
	u := &User{
		ID:           id,
		Email:        strings.TrimSpace(email),
		PasswordHash: passwordHash,
		FullName:     strings.TrimSpace(fullName),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if role == "CUSTOMER" {
		first, last := splitName(u.FullName)
		customer, err := model.NewCustomer(id, first, last)
		if err != nil {
			return nil, err
		}
		u.Customer = customer
	}
	r.byID[id] = u
	r.byEmail[key] = u
	return u, nil
}

// GetByEmail looks a user up by email, case-insensitively.
func (r *UserRepo) GetByEmail(email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// GetByID looks a user up by ID.
func (r *UserRepo) GetByID(id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// splitName breaks a full name into first and last on the final
// space. Single-word names double as both parts so the domain
// Customer constructor stays satisfied.
func splitName(full string) (string, string) {
	full = strings.TrimSpace(full)
	idx := strings.LastIndex(full, " ")
	if idx < 0 {
		return full, full
	}
	return full[:idx], full[idx+1:]
}
