package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kinoplex/multiplex-booking/internal/model"
	"github.com/kinoplex/multiplex-booking/internal/repository"
)

func newOwnerEnv(t *testing.T) (*testEnv, *OwnerHandler, *model.MultiplexNetwork) {
	t.Helper()
	env := newTestEnv(t)
	network := model.NewMultiplexNetwork()
	screenings := repository.NewScreeningRepo()
	return env, NewOwnerHandler(network, screenings), network
}

func TestCreateCinemaAndHall(t *testing.T) {
	env, owner, network := newOwnerEnv(t)

	rec, c := env.call(http.MethodPost, "/v1/cinemas",
		`{"name":"Kinoplex Mokotow","address":"ul. Pulawska 17"}`, "", nil)
	require.NoError(t, owner.CreateCinema(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, c = env.call(http.MethodPost, "/",
		`{"name":"IMAX","seats":[{"row":"a","number":1,"zone":"vip"},{"row":"a","number":2}]}`,
		"", map[string]string{"cinema": "kinoplex mokotow"})
	require.NoError(t, owner.CreateHall(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	cinema, err := network.FindCinema("Kinoplex Mokotow")
	require.NoError(t, err)
	hall, err := cinema.FindHall("IMAX")
	require.NoError(t, err)
	require.Equal(t, 2, hall.SeatCount())

	// Row is normalized, zone defaults to STANDARD when omitted.
	id, err := model.NewSeatID("A", 2)
	require.NoError(t, err)
	seat, err := hall.Seat(id)
	require.NoError(t, err)
	require.Equal(t, model.ZoneStandard, seat.Zone)
}

func TestCreateCinemaRejectsDuplicateName(t *testing.T) {
	env, owner, _ := newOwnerEnv(t)

	_, c := env.call(http.MethodPost, "/", `{"name":"Kinoplex","address":"x"}`, "", nil)
	require.NoError(t, owner.CreateCinema(c))

	rec, c := env.call(http.MethodPost, "/", `{"name":"KINOPLEX","address":"y"}`, "", nil)
	require.NoError(t, owner.CreateCinema(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateHallRejectsUnknownZone(t *testing.T) {
	env, owner, _ := newOwnerEnv(t)

	_, c := env.call(http.MethodPost, "/", `{"name":"Kinoplex","address":"x"}`, "", nil)
	require.NoError(t, owner.CreateCinema(c))

	rec, c := env.call(http.MethodPost, "/",
		`{"name":"1","seats":[{"row":"A","number":1,"zone":"GOLD"}]}`,
		"", map[string]string{"cinema": "Kinoplex"})
	require.NoError(t, owner.CreateHall(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateScreeningDetectsOverlap(t *testing.T) {
	env, owner, _ := newOwnerEnv(t)

	_, c := env.call(http.MethodPost, "/", `{"name":"Kinoplex","address":"x"}`, "", nil)
	require.NoError(t, owner.CreateCinema(c))
	_, c = env.call(http.MethodPost, "/",
		`{"name":"1","seats":[{"row":"A","number":1}]}`,
		"", map[string]string{"cinema": "Kinoplex"})
	require.NoError(t, owner.CreateHall(c))

	first := `{"hall":"1","start":"2026-09-10T18:00:00Z","movie":{"title":"Rejs","director":"Marek Piwowski","duration_min":65}}`
	rec, c := env.call(http.MethodPost, "/", first, "", map[string]string{"cinema": "Kinoplex"})
	require.NoError(t, owner.CreateScreening(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, decode(t, rec)["id"])

	// 18:00 + 65min + cleaning break ends 19:25; 19:00 overlaps.
	overlapping := `{"hall":"1","start":"2026-09-10T19:00:00Z","movie":{"title":"Rejs","director":"Marek Piwowski","duration_min":65}}`
	rec, c = env.call(http.MethodPost, "/", overlapping, "", map[string]string{"cinema": "Kinoplex"})
	require.NoError(t, owner.CreateScreening(c))
	require.Equal(t, http.StatusConflict, rec.Code)

	// 19:25 starts exactly at the derived end and is accepted.
	adjacent := `{"hall":"1","start":"2026-09-10T19:25:00Z","movie":{"title":"Rejs","director":"Marek Piwowski","duration_min":65}}`
	rec, c = env.call(http.MethodPost, "/", adjacent, "", map[string]string{"cinema": "Kinoplex"})
	require.NoError(t, owner.CreateScreening(c))
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateScreeningRequiresRegisteredHall(t *testing.T) {
	env, owner, _ := newOwnerEnv(t)

	_, c := env.call(http.MethodPost, "/", `{"name":"Kinoplex","address":"x"}`, "", nil)
	require.NoError(t, owner.CreateCinema(c))

	body := `{"hall":"9","start":"2026-09-10T18:00:00Z","movie":{"title":"Rejs","director":"Marek Piwowski","duration_min":65}}`
	rec, c := env.call(http.MethodPost, "/", body, "", map[string]string{"cinema": "Kinoplex"})
	require.NoError(t, owner.CreateScreening(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
