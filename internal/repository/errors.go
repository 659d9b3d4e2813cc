// Package repository holds the application-level stores: registered
// users, refresh tokens, and the indexes that make screenings and
// reservations addressable by ID over HTTP. Domain state itself
// lives inside the model aggregates. These sentinel errors let
// handlers distinguish failure scenarios without inspecting
// messages.
package repository

import "errors"

// ErrUserNotFound is returned when no user matches the given email
// or ID. Handlers should translate this into an HTTP 404 or a login
// failure, depending on context.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken is returned when registration is attempted with an
// email that already has an account. Handlers should translate this
// into an HTTP 409 response.
var ErrEmailTaken = errors.New("email already registered")

// ErrTokenNotFound is returned when a refresh token is unknown,
// expired or revoked. Handlers should translate this into an HTTP
// 401 response.
var ErrTokenNotFound = errors.New("refresh token not found")

// ErrScreeningNotFound is returned when no scheduled screening
// matches the given ID.
var ErrScreeningNotFound = errors.New("screening not found")

// ErrReservationNotFound is returned when no live reservation
// matches the given ID.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrForbidden is returned when the caller attempts an operation on
// a resource they do not own, such as cancelling another buyer's
// reservation. Handlers should translate this into an HTTP 403.
var ErrForbidden = errors.New("forbidden")
