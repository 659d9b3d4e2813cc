package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kinoplex/multiplex-booking/internal/model"
	"github.com/kinoplex/multiplex-booking/internal/pricing"
	"github.com/kinoplex/multiplex-booking/internal/queue"
	"github.com/kinoplex/multiplex-booking/internal/repository"
	queue_publisher "github.com/kinoplex/multiplex-booking/internal/service"
)

// BookingHandler exposes the seat booking flow: reserving, canceling
// and purchasing. All routes require the CUSTOMER role; the
// authenticated user's domain Customer is the buyer.
type BookingHandler struct {
	Users        *repository.UserRepo
	Screenings   *repository.ScreeningRepo
	Reservations *repository.ReservationRepo
	Factory      *pricing.TicketFactory
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(users *repository.UserRepo, screenings *repository.ScreeningRepo, reservations *repository.ReservationRepo, factory *pricing.TicketFactory) *BookingHandler {
	if users == nil || screenings == nil || reservations == nil || factory == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{
		Users:        users,
		Screenings:   screenings,
		Reservations: reservations,
		Factory:      factory,
	}
}

// customer resolves the authenticated user's domain Customer.
func (h *BookingHandler) customer(c echo.Context) (*repository.User, *model.Customer, error) {
	userID, err := getUserID(c)
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	user, err := h.Users.GetByID(userID)
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if user.Customer == nil {
		return nil, nil, echo.NewHTTPError(http.StatusForbidden, "account has no customer profile")
	}
	return user, user.Customer, nil
}

// ReserveSeats handles POST /v1/screenings/:id/reservations. The
// reservation is all or nothing: one unavailable seat rejects the
// whole request and nothing changes.
func (h *BookingHandler) ReserveSeats(c echo.Context) error {
	user, customer, err := h.customer(c)
	if err != nil {
		return err
	}
	var body struct {
		Seats []seatRef `json:"seats"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	seatIDs, err := parseSeatRefs(body.Seats)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	entry, err := h.Screenings.GetByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "screening not found"})
	}

	res, err := entry.Screening.Reserve(customer, seatIDs)
	if err != nil {
		return domainJSON(c, err)
	}
	h.Reservations.Add(res.ID, entry.Screening.ID(), user.ID)

	return c.JSON(http.StatusCreated, echo.Map{
		"reservation_id": res.ID,
		"screening_id":   entry.Screening.ID(),
		"seats":          seatLabels(res.SeatIDs),
		"created_at":     res.CreatedAt.Format(time.RFC3339),
	})
}

// CancelReservation handles DELETE /v1/reservations/:id. Only the
// reservation's owner may cancel it. Seats sold in the meantime stay
// sold.
func (h *BookingHandler) CancelReservation(c echo.Context) error {
	user, _, err := h.customer(c)
	if err != nil {
		return err
	}
	reservationID := c.Param("id")
	ref, err := h.Reservations.GetForUser(reservationID, user.ID)
	if err != nil {
		if err == repository.ErrForbidden {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "reservation belongs to another user"})
		}
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	}
	entry, err := h.Screenings.GetByID(ref.ScreeningID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "screening not found"})
	}
	if err := entry.Screening.CancelReservation(reservationID); err != nil {
		return domainJSON(c, err)
	}
	h.Reservations.Remove(reservationID)
	return c.NoContent(http.StatusNoContent)
}

// BuyTickets handles POST /v1/screenings/:id/orders. A successful
// purchase mints one ticket per seat, appends them to the customer's
// history and publishes a confirmation event. The broker publish
// runs in the background; its failure never fails the sale.
func (h *BookingHandler) BuyTickets(c echo.Context) error {
	_, customer, err := h.customer(c)
	if err != nil {
		return err
	}
	var body struct {
		Seats []seatRef `json:"seats"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	seatIDs, err := parseSeatRefs(body.Seats)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	entry, err := h.Screenings.GetByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "screening not found"})
	}

	order, err := entry.Screening.Purchase(customer, seatIDs, h.Factory)
	if err != nil {
		return domainJSON(c, err)
	}
	// Holds overridden by this sale are now stale; their cancellation
	// later is a harmless no-op on the sold seats.

	total, err := order.Total()
	if err != nil {
		return domainJSON(c, err)
	}

	event := queue.OrderConfirmedEvent{
		OrderID:     order.ID,
		BuyerName:   customer.DisplayName(),
		ScreeningID: entry.Screening.ID(),
		CinemaName:  entry.Cinema.Name(),
		HallName:    entry.Screening.Hall().Name(),
		MovieTitle:  entry.Screening.Movie().Title,
		StartsAt:    entry.Screening.Start().Format(time.RFC3339),
		EndsAt:      entry.Screening.End().Format(time.RFC3339),
		Seats:       seatLabels(orderSeatIDs(order)),
		TotalCents:  total.Cents,
		Currency:    total.Currency,
		ConfirmedAt: order.CreatedAt.Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishOrderConfirmed(ctx, event)
	}()

	tickets := make([]echo.Map, 0, len(order.Tickets))
	for _, t := range order.Tickets {
		tickets = append(tickets, echo.Map{
			"ticket_id": t.ID,
			"seat":      t.SeatID.String(),
			"price":     t.Price.String(),
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"order_id":     order.ID,
		"screening_id": entry.Screening.ID(),
		"tickets":      tickets,
		"total":        total.String(),
		"created_at":   order.CreatedAt.Format(time.RFC3339),
	})
}

// MyTickets handles GET /v1/my-tickets and lists the customer's
// purchase history across all screenings.
func (h *BookingHandler) MyTickets(c echo.Context) error {
	_, customer, err := h.customer(c)
	if err != nil {
		return err
	}
	tickets := customer.Tickets()
	out := make([]echo.Map, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, echo.Map{
			"ticket_id": t.ID,
			"movie":     t.Screening.Movie().Title,
			"hall":      t.Screening.Hall().Name(),
			"start":     t.Screening.Start().Format(time.RFC3339),
			"seat":      t.SeatID.String(),
			"price":     t.Price.String(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"tickets": out})
}

// orderSeatIDs extracts the seat identities of an order's tickets.
func orderSeatIDs(order *model.TicketOrder) []model.SeatID {
	out := make([]model.SeatID, 0, len(order.Tickets))
	for _, t := range order.Tickets {
		out = append(out, t.SeatID)
	}
	return out
}
