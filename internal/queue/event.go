// Package queue defines message payloads exchanged over the message
// broker and the background consumer that processes them.
package queue

// OrderConfirmedEvent is published after a ticket purchase succeeds.
// It carries enough context for downstream consumers to log, notify
// or feed analytics without reaching back into the service.
type OrderConfirmedEvent struct {
	OrderID     string   `json:"order_id"`
	BuyerName   string   `json:"buyer_name"`
	ScreeningID string   `json:"screening_id"`
	CinemaName  string   `json:"cinema_name"`
	HallName    string   `json:"hall_name"`
	MovieTitle  string   `json:"movie_title"`
	StartsAt    string   `json:"starts_at"`
	EndsAt      string   `json:"ends_at"`
	Seats       []string `json:"seats"`
	TotalCents  int64    `json:"total_cents"`
	Currency    string   `json:"currency"`
	ConfirmedAt string   `json:"confirmed_at"`
}
