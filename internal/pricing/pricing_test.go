package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinoplex/multiplex-booking/internal/model"
)

func buildScreening(t *testing.T, format model.ScreeningFormat, class model.ScreeningClass) *model.Screening {
	t.Helper()
	zones := []model.SeatZone{model.ZoneStandard, model.ZoneVIP, model.ZonePromo, model.ZoneSuperPromo}
	seats := make([]model.Seat, 0, len(zones))
	for i, zone := range zones {
		id, err := model.NewSeatID("A", i+1)
		require.NoError(t, err)
		seats = append(seats, model.Seat{ID: id, Zone: zone})
	}
	hall, err := model.NewHall("A", seats)
	require.NoError(t, err)
	movie, err := model.NewMovie("Seksmisja", "Juliusz Machulski", 120, model.LanguageOriginal, nil, model.RatingAge12)
	require.NoError(t, err)
	s, err := model.NewScreening(movie, hall, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), format, class)
	require.NoError(t, err)
	return s
}

func TestDefaultPolicyZoneBases(t *testing.T) {
	policy, err := NewDefaultPolicy("")
	require.NoError(t, err)
	s := buildScreening(t, model.FormatTwoD, model.ClassStandard)

	tests := []struct {
		zone      model.SeatZone
		wantCents int64
	}{
		{model.ZoneStandard, 2500},
		{model.ZoneVIP, 3500},
		{model.ZonePromo, 1800},
		{model.ZoneSuperPromo, 1200},
	}
	for _, tt := range tests {
		t.Run(string(tt.zone), func(t *testing.T) {
			price, err := policy.PriceFor(s, model.Seat{ID: model.SeatID{Row: "A", Number: 1}, Zone: tt.zone})
			require.NoError(t, err)
			assert.Equal(t, tt.wantCents, price.Cents)
			assert.Equal(t, "PLN", price.Currency)
		})
	}
}

func TestDefaultPolicySurcharges(t *testing.T) {
	policy, err := NewDefaultPolicy("pln")
	require.NoError(t, err)
	seat := model.Seat{ID: model.SeatID{Row: "A", Number: 1}, Zone: model.ZoneStandard}

	threeD := buildScreening(t, model.FormatThreeD, model.ClassStandard)
	price, err := policy.PriceFor(threeD, seat)
	require.NoError(t, err)
	assert.Equal(t, int64(3100), price.Cents)

	vipThreeD := buildScreening(t, model.FormatThreeD, model.ClassVIP)
	price, err = policy.PriceFor(vipThreeD, seat)
	require.NoError(t, err)
	assert.Equal(t, int64(4100), price.Cents)
}

func TestDefaultPolicyUnknownZone(t *testing.T) {
	policy, err := NewDefaultPolicy("PLN")
	require.NoError(t, err)
	s := buildScreening(t, model.FormatTwoD, model.ClassStandard)

	_, err = policy.PriceFor(s, model.Seat{ID: model.SeatID{Row: "A", Number: 1}, Zone: "BALCONY"})
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestTicketFactoryMintsPricedTicket(t *testing.T) {
	policy, err := NewDefaultPolicy("PLN")
	require.NoError(t, err)
	factory, err := NewTicketFactory(policy)
	require.NoError(t, err)
	s := buildScreening(t, model.FormatTwoD, model.ClassStandard)
	buyer, err := model.NewGuest("walk-in")
	require.NoError(t, err)

	// Seat A2 sits in the VIP zone of the test hall.
	ticket, err := factory.CreateTicket(buyer, s, model.SeatID{Row: "A", Number: 2})
	require.NoError(t, err)
	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, int64(3500), ticket.Price.Cents)
	assert.Equal(t, s, ticket.Screening)
}

func TestTicketFactoryUnknownSeat(t *testing.T) {
	policy, err := NewDefaultPolicy("PLN")
	require.NoError(t, err)
	factory, err := NewTicketFactory(policy)
	require.NoError(t, err)
	s := buildScreening(t, model.FormatTwoD, model.ClassStandard)
	buyer, err := model.NewGuest("walk-in")
	require.NoError(t, err)

	_, err = factory.CreateTicket(buyer, s, model.SeatID{Row: "Z", Number: 1})
	require.ErrorIs(t, err, model.ErrNotFound)
}

// failingPolicy simulates a pricing backend outage.
type failingPolicy struct{}

func (failingPolicy) PriceFor(*model.Screening, model.Seat) (model.Money, error) {
	return model.Money{}, errors.New("pricing backend down")
}

func TestPurchaseStaysAtomicOnPricingFailure(t *testing.T) {
	factory, err := NewTicketFactory(failingPolicy{})
	require.NoError(t, err)
	s := buildScreening(t, model.FormatTwoD, model.ClassStandard)
	buyer, err := model.NewGuest("walk-in")
	require.NoError(t, err)

	_, err = s.Purchase(buyer, []model.SeatID{{Row: "A", Number: 1}}, factory)
	require.Error(t, err)

	state, err := s.SeatStatus(model.SeatID{Row: "A", Number: 1})
	require.NoError(t, err)
	assert.Equal(t, model.SeatFree, state)
}
