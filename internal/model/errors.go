// Package model contains the in-memory booking domain: seats, halls,
// screenings, reservations and the multiplex network. These sentinel
// errors classify every failure the domain can report. Higher layers
// such as handlers use errors.Is to translate them into HTTP
// responses, for example ErrConflict becomes a 409 when scheduling
// overlapping screenings.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is returned for malformed input: blank names, empty
// seat sets, non-positive seat numbers or durations, and duplicate
// hall or cinema names at registration time. Handlers should
// translate this into an HTTP 400 response.
var ErrValidation = errors.New("validation")

// ErrNotFound is returned when a seat, hall, reservation, screening
// or cinema identifier does not exist in the relevant scope.
// Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrInvalidState is returned when a seat is not in the lifecycle
// state an operation requires: reserving a seat that is not free, or
// purchasing a seat that is already sold. Handlers should translate
// this into an HTTP 409 response.
var ErrInvalidState = errors.New("invalid state")

// ErrConflict is returned when a new screening's time interval
// overlaps an existing screening in the same hall. Handlers should
// translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// requireText trims s and fails with ErrValidation when the result
// is empty. Every textual identifier in the domain goes through it.
func requireText(s, field string) (string, error) {
	out := strings.TrimSpace(s)
	if out == "" {
		return "", fmt.Errorf("%w: %s cannot be blank", ErrValidation, field)
	}
	return out, nil
}
