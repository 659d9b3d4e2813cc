package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kinoplex/multiplex-booking/internal/model"
)

func programmeCall(env *testEnv, from, to string) (*httptest.ResponseRecorder, error) {
	target := "/v1/cinemas/x/programme"
	if from != "" {
		target += "?from=" + from + "&to=" + to
	}
	rec, c := env.call(http.MethodGet, target, "", "", map[string]string{"cinema": "Kinoplex Test"})
	return rec, env.public.GetProgramme(c)
}

func TestProgrammeFiltersByDate(t *testing.T) {
	env := newTestEnv(t)

	rec, err := programmeCall(env, "2026-09-05", "2026-09-05")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode(t, rec)["programme"], 1)

	rec, err = programmeCall(env, "2026-09-06", "2026-09-07")
	require.NoError(t, err)
	require.Empty(t, decode(t, rec)["programme"])

	rec, err = programmeCall(env, "not-a-date", "2026-09-07")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProgrammeUnknownCinema(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.call(http.MethodGet, "/", "", "", map[string]string{"cinema": "Nowhere"})
	require.NoError(t, env.public.GetProgramme(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchMoviesMatchesDirector(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.call(http.MethodGet, "/v1/cinemas/x/movies?q=piwowski", "", "",
		map[string]string{"cinema": "Kinoplex Test"})
	require.NoError(t, env.public.SearchMovies(c))
	require.Equal(t, http.StatusOK, rec.Code)
	movies := decode(t, rec)["movies"].([]any)
	require.Len(t, movies, 1)
	require.Equal(t, "Rejs", movies[0].(map[string]any)["title"])

	rec, c = env.call(http.MethodGet, "/v1/cinemas/x/movies?q=", "", "",
		map[string]string{"cinema": "Kinoplex Test"})
	require.NoError(t, env.public.SearchMovies(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScreeningSeatSnapshot(t *testing.T) {
	env := newTestEnv(t)

	id, err := model.NewSeatID("A", 1)
	require.NoError(t, err)
	_, err = env.screening.Purchase(env.user.Customer, []model.SeatID{id}, stubFactory{})
	require.NoError(t, err)

	rec, c := env.call(http.MethodGet, "/", "", "", map[string]string{"id": env.screening.ID()})
	require.NoError(t, env.public.GetScreeningSeats(c))
	require.Equal(t, http.StatusOK, rec.Code)

	seats := decode(t, rec)["seats"].([]any)
	require.Len(t, seats, 12)
	first := seats[0].(map[string]any)
	require.Equal(t, "A1", first["label"])
	require.Equal(t, "SOLD", first["state"])
	require.Equal(t, "FREE", seats[1].(map[string]any)["state"])
}

// stubFactory mints zero-priced tickets so seat-map tests don't
// depend on pricing.
type stubFactory struct{}

func (f stubFactory) CreateTicket(buyer model.Buyer, screening *model.Screening, seatID model.SeatID) (model.Ticket, error) {
	return model.NewTicket("t-"+seatID.String(), screening, seatID, buyer, model.PLN(0))
}
