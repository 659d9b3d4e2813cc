// Package pricing computes ticket prices and mints tickets for the
// purchase flow. Policies are pure: they never touch seat state, so
// a pricing failure can safely abort a purchase without cleanup.
package pricing

import (
	"fmt"

	"github.com/kinoplex/multiplex-booking/internal/model"
)

// Policy maps a screening and a seat to a price. Implementations
// must be side-effect free; errors propagate to the purchase caller.
type Policy interface {
	PriceFor(screening *model.Screening, seat model.Seat) (model.Money, error)
}

// Zone base prices in cents, plus surcharges for 3D projection and
// VIP screenings.
const (
	baseStandardCents   = 2500
	baseVIPCents        = 3500
	basePromoCents      = 1800
	baseSuperPromoCents = 1200
	threeDSurcharge     = 600
	vipClassSurcharge   = 1000
)

// DefaultPolicy prices a seat from its zone with flat surcharges for
// 3D and VIP screenings.
type DefaultPolicy struct {
	currency string
}

// NewDefaultPolicy builds a DefaultPolicy for the given currency.
// A blank currency falls back to PLN.
func NewDefaultPolicy(currency string) (*DefaultPolicy, error) {
	if currency == "" {
		currency = "PLN"
	}
	// NewMoney validates and normalizes the currency code once here.
	probe, err := model.NewMoney(0, currency)
	if err != nil {
		return nil, err
	}
	return &DefaultPolicy{currency: probe.Currency}, nil
}

// PriceFor implements Policy.
func (p *DefaultPolicy) PriceFor(screening *model.Screening, seat model.Seat) (model.Money, error) {
	if screening == nil {
		return model.Money{}, fmt.Errorf("%w: screening cannot be nil", model.ErrValidation)
	}
	var base int64
	switch seat.Zone {
	case model.ZoneStandard:
		base = baseStandardCents
	case model.ZoneVIP:
		base = baseVIPCents
	case model.ZonePromo:
		base = basePromoCents
	case model.ZoneSuperPromo:
		base = baseSuperPromoCents
	default:
		return model.Money{}, fmt.Errorf("%w: unknown seat zone %q", model.ErrValidation, seat.Zone)
	}
	if screening.Format() == model.FormatThreeD {
		base += threeDSurcharge
	}
	if screening.Class() == model.ClassVIP {
		base += vipClassSurcharge
	}
	return model.NewMoney(base, p.currency)
}
