package model

import (
	"fmt"
	"time"
)

// Ticket is a single priced admission for one seat at one screening.
// Tickets are minted by the ticket factory during purchase and never
// mutated afterwards.
type Ticket struct {
	ID        string
	Screening *Screening
	SeatID    SeatID
	Buyer     Buyer
	Price     Money
}

// NewTicket validates and builds a Ticket.
func NewTicket(id string, screening *Screening, seatID SeatID, buyer Buyer, price Money) (Ticket, error) {
	tid, err := requireText(id, "ticket id")
	if err != nil {
		return Ticket{}, err
	}
	if screening == nil {
		return Ticket{}, fmt.Errorf("%w: ticket screening cannot be nil", ErrValidation)
	}
	if buyer == nil {
		return Ticket{}, fmt.Errorf("%w: ticket buyer cannot be nil", ErrValidation)
	}
	return Ticket{ID: tid, Screening: screening, SeatID: seatID, Buyer: buyer, Price: price}, nil
}

// TicketOrder groups the tickets of one successful purchase. The
// ticket list is never empty and never changes once the order is
// created.
type TicketOrder struct {
	ID        string
	Buyer     Buyer
	Tickets   []Ticket
	CreatedAt time.Time
}

// NewTicketOrder validates and builds a TicketOrder. The ticket
// slice is copied so the order stays immutable.
func NewTicketOrder(id string, buyer Buyer, tickets []Ticket, createdAt time.Time) (*TicketOrder, error) {
	oid, err := requireText(id, "order id")
	if err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, fmt.Errorf("%w: order buyer cannot be nil", ErrValidation)
	}
	if len(tickets) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one ticket", ErrValidation)
	}
	copied := make([]Ticket, len(tickets))
	copy(copied, tickets)
	return &TicketOrder{ID: oid, Buyer: buyer, Tickets: copied, CreatedAt: createdAt}, nil
}

// Total sums the ticket prices of the order. All tickets of one
// order share a currency, so summation cannot fail in practice.
func (o *TicketOrder) Total() (Money, error) {
	total := o.Tickets[0].Price
	for _, t := range o.Tickets[1:] {
		sum, err := total.Add(t.Price)
		if err != nil {
			return Money{}, err
		}
		total = sum
	}
	return total, nil
}
