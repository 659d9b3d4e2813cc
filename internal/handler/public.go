package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kinoplex/multiplex-booking/internal/model"
	"github.com/kinoplex/multiplex-booking/internal/repository"
)

// PublicHandler serves the read-only browse endpoints: cinema and
// hall listings, the programme, movie search and seat maps. No
// authentication required.
type PublicHandler struct {
	Network    *model.MultiplexNetwork
	Screenings *repository.ScreeningRepo
}

// NewPublicHandler constructs a PublicHandler.
func NewPublicHandler(network *model.MultiplexNetwork, screenings *repository.ScreeningRepo) *PublicHandler {
	if network == nil || screenings == nil {
		panic("nil dependency passed to NewPublicHandler")
	}
	return &PublicHandler{Network: network, Screenings: screenings}
}

// GetCinemas handles GET /v1/cinemas.
func (h *PublicHandler) GetCinemas(c echo.Context) error {
	cinemas := h.Network.Cinemas()
	out := make([]echo.Map, 0, len(cinemas))
	for _, cinema := range cinemas {
		out = append(out, echo.Map{
			"name":    cinema.Name(),
			"address": cinema.Address(),
			"halls":   len(cinema.Halls()),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"cinemas": out})
}

// GetHalls handles GET /v1/cinemas/:cinema/halls.
func (h *PublicHandler) GetHalls(c echo.Context) error {
	cinema, err := h.Network.FindCinema(c.Param("cinema"))
	if err != nil {
		return domainJSON(c, err)
	}
	halls := cinema.Halls()
	out := make([]echo.Map, 0, len(halls))
	for _, hall := range halls {
		out = append(out, echo.Map{
			"name":  hall.Name(),
			"seats": hall.SeatCount(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"cinema": cinema.Name(), "halls": out})
}

// GetProgramme handles GET /v1/cinemas/:cinema/programme?from&to.
// Dates are YYYY-MM-DD and inclusive on both ends; omitting both
// yields the next seven days.
func (h *PublicHandler) GetProgramme(c echo.Context) error {
	cinema, err := h.Network.FindCinema(c.Param("cinema"))
	if err != nil {
		return domainJSON(c, err)
	}

	var screenings []*model.Screening
	fromStr, toStr := c.QueryParam("from"), c.QueryParam("to")
	if fromStr == "" && toStr == "" {
		screenings = cinema.ProgrammeNextWeek(time.Now().UTC())
	} else {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "from must be YYYY-MM-DD"})
		}
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "to must be YYYY-MM-DD"})
		}
		screenings = cinema.Programme(from, to)
	}

	out := make([]echo.Map, 0, len(screenings))
	for _, s := range screenings {
		out = append(out, screeningJSON(s, cinema))
	}
	return c.JSON(http.StatusOK, echo.Map{"cinema": cinema.Name(), "programme": out})
}

// SearchMovies handles GET /v1/cinemas/:cinema/movies?q=. The query
// matches titles and directors, case-insensitively.
func (h *PublicHandler) SearchMovies(c echo.Context) error {
	cinema, err := h.Network.FindCinema(c.Param("cinema"))
	if err != nil {
		return domainJSON(c, err)
	}
	movies, err := cinema.FindMovie(c.QueryParam("q"))
	if err != nil {
		return domainJSON(c, err)
	}
	out := make([]echo.Map, 0, len(movies))
	for _, m := range movies {
		out = append(out, echo.Map{
			"title":        m.Title,
			"director":     m.Director,
			"duration_min": m.DurationMin,
			"language":     m.Language,
			"themes":       m.Themes,
			"age_rating":   m.AgeRating,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"movies": out})
}

// GetScreeningSeats handles GET /v1/screenings/:id/seats and renders
// the full seat ledger snapshot in hall order.
func (h *PublicHandler) GetScreeningSeats(c echo.Context) error {
	entry, err := h.Screenings.GetByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "screening not found"})
	}
	s := entry.Screening
	states := s.SeatStates()
	out := make([]echo.Map, 0, len(states))
	for _, id := range s.Hall().SeatIDs() {
		out = append(out, echo.Map{
			"row":    id.Row,
			"number": id.Number,
			"label":  id.String(),
			"state":  states[id].String(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"screening_id": s.ID(),
		"hall":         s.Hall().Name(),
		"seats":        out,
	})
}

// GetFreeSeats handles GET /v1/screenings/:id/free-seats.
func (h *PublicHandler) GetFreeSeats(c echo.Context) error {
	entry, err := h.Screenings.GetByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "screening not found"})
	}
	free := entry.Screening.FreeSeats()
	return c.JSON(http.StatusOK, echo.Map{
		"screening_id": entry.Screening.ID(),
		"free_seats":   seatLabels(free),
	})
}
