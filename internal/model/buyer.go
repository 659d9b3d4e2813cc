package model

import "sync"

// Buyer is anyone who can hold a reservation or purchase tickets.
// The domain only ever needs a display name from a buyer; account
// bookkeeping is an optional capability expressed by TicketAccount.
type Buyer interface {
	DisplayName() string
}

// TicketAccount is the optional account capability of a buyer.
// Purchase appends freshly minted tickets to the account's history
// when the buyer implements it; anonymous guests simply don't.
type TicketAccount interface {
	AddTickets(tickets []Ticket)
}

// Customer is an account-bearing buyer with a ticket history. The
// history has its own lock because purchases on different screenings
// may append to the same customer concurrently.
type Customer struct {
	id        string
	firstName string
	lastName  string

	mu      sync.Mutex
	tickets []Ticket
}

// NewCustomer validates and builds a Customer.
func NewCustomer(id, firstName, lastName string) (*Customer, error) {
	cid, err := requireText(id, "customer id")
	if err != nil {
		return nil, err
	}
	first, err := requireText(firstName, "first name")
	if err != nil {
		return nil, err
	}
	last, err := requireText(lastName, "last name")
	if err != nil {
		return nil, err
	}
	return &Customer{id: cid, firstName: first, lastName: last}, nil
}

// ID returns the customer identifier.
func (c *Customer) ID() string {
	return c.id
}

// DisplayName implements Buyer.
func (c *Customer) DisplayName() string {
	return c.firstName + " " + c.lastName
}

// AddTickets implements TicketAccount by appending to the history.
func (c *Customer) AddTickets(tickets []Ticket) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tickets = append(c.tickets, tickets...)
}

// Tickets returns a snapshot of the customer's ticket history.
func (c *Customer) Tickets() []Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Ticket, len(c.tickets))
	copy(out, c.tickets)
	return out
}

// Guest is an anonymous buyer identified only by an alias. Guests
// carry no ticket history, so purchases skip the account append.
type Guest struct {
	alias string
}

// NewGuest validates and builds a Guest.
func NewGuest(alias string) (*Guest, error) {
	a, err := requireText(alias, "alias")
	if err != nil {
		return nil, err
	}
	return &Guest{alias: a}, nil
}

// DisplayName implements Buyer.
func (g *Guest) DisplayName() string {
	return g.alias
}
