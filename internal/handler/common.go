// Package handler contains the HTTP handlers that expose the
// booking domain. Handlers translate JSON requests into domain
// operations and domain error kinds into HTTP status codes; they
// hold no business rules of their own.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kinoplex/multiplex-booking/internal/model"
)

// getUserID extracts the authenticated user ID that JWTAuth stored
// in the context.
func getUserID(c echo.Context) (string, error) {
	if s, ok := c.Get("user_id").(string); ok && s != "" {
		return s, nil
	}
	return "", errors.New("invalid user_id in context")
}

// seatRef is the wire form of a seat identity.
type seatRef struct {
	Row    string `json:"row"`
	Number int    `json:"number"`
}

// parseSeatRefs converts wire seat references into normalized domain
// identities. An empty list or a malformed entry fails with
// ErrValidation so the caller can map it to a 400.
func parseSeatRefs(refs []seatRef) ([]model.SeatID, error) {
	if len(refs) == 0 {
		return nil, errors.New("seats is required")
	}
	out := make([]model.SeatID, 0, len(refs))
	for _, ref := range refs {
		id, err := model.NewSeatID(ref.Row, ref.Number)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// seatLabels renders identities for responses and events, e.g. "A12".
func seatLabels(ids []model.SeatID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

// domainJSON maps the four domain error kinds onto HTTP statuses:
// validation 400, not found 404, invalid state and scheduling
// conflicts 409. Anything else is an internal error.
func domainJSON(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, model.ErrConflict):
		status = http.StatusConflict
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}
