package pricing

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kinoplex/multiplex-booking/internal/model"
)

// TicketFactory mints tickets: it resolves the seat through the
// screening's hall to learn its zone, asks the policy for a price
// and assembles an immutable Ticket. It implements
// model.TicketMinter for the purchase flow.
type TicketFactory struct {
	policy Policy
}

// NewTicketFactory builds a factory around a pricing policy.
func NewTicketFactory(policy Policy) (*TicketFactory, error) {
	if policy == nil {
		return nil, fmt.Errorf("%w: pricing policy cannot be nil", model.ErrValidation)
	}
	return &TicketFactory{policy: policy}, nil
}

// CreateTicket implements model.TicketMinter. Seat lookup fails with
// ErrNotFound when the identity is absent from the hall; pricing
// errors propagate unchanged.
func (f *TicketFactory) CreateTicket(buyer model.Buyer, screening *model.Screening, seatID model.SeatID) (model.Ticket, error) {
	if buyer == nil {
		return model.Ticket{}, fmt.Errorf("%w: buyer cannot be nil", model.ErrValidation)
	}
	if screening == nil {
		return model.Ticket{}, fmt.Errorf("%w: screening cannot be nil", model.ErrValidation)
	}
	seat, err := screening.Hall().Seat(seatID)
	if err != nil {
		return model.Ticket{}, err
	}
	price, err := f.policy.PriceFor(screening, seat)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("price seat %s: %w", seatID, err)
	}
	return model.NewTicket(uuid.NewString(), screening, seatID, buyer, price)
}
