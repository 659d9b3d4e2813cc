package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kinoplex/multiplex-booking/internal/model"
	"github.com/kinoplex/multiplex-booking/internal/repository"
)

// OwnerHandler exposes the catalog management operations: creating
// cinemas, registering halls and scheduling screenings. All routes
// require the OWNER role.
type OwnerHandler struct {
	Network    *model.MultiplexNetwork
	Screenings *repository.ScreeningRepo
}

// NewOwnerHandler constructs an OwnerHandler.
func NewOwnerHandler(network *model.MultiplexNetwork, screenings *repository.ScreeningRepo) *OwnerHandler {
	if network == nil || screenings == nil {
		panic("nil dependency passed to NewOwnerHandler")
	}
	return &OwnerHandler{Network: network, Screenings: screenings}
}

// CreateCinema handles POST /v1/cinemas.
func (h *OwnerHandler) CreateCinema(c echo.Context) error {
	var body struct {
		Name    string `json:"name"`
		Address string `json:"address"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	cinema, err := model.NewCinema(body.Name, body.Address)
	if err != nil {
		return domainJSON(c, err)
	}
	if err := h.Network.AddCinema(cinema); err != nil {
		return domainJSON(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"name":    cinema.Name(),
		"address": cinema.Address(),
	})
}

// CreateHall handles POST /v1/cinemas/:cinema/halls. The hall's seat
// layout is fixed at creation; every seat carries a pricing zone.
func (h *OwnerHandler) CreateHall(c echo.Context) error {
	var body struct {
		Name  string `json:"name"`
		Seats []struct {
			Row    string `json:"row"`
			Number int    `json:"number"`
			Zone   string `json:"zone"`
		} `json:"seats"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	cinema, err := h.Network.FindCinema(c.Param("cinema"))
	if err != nil {
		return domainJSON(c, err)
	}

	seats := make([]model.Seat, 0, len(body.Seats))
	for _, s := range body.Seats {
		id, err := model.NewSeatID(s.Row, s.Number)
		if err != nil {
			return domainJSON(c, err)
		}
		zone, err := parseZone(s.Zone)
		if err != nil {
			return domainJSON(c, err)
		}
		seats = append(seats, model.Seat{ID: id, Zone: zone})
	}
	hall, err := model.NewHall(body.Name, seats)
	if err != nil {
		return domainJSON(c, err)
	}
	if err := cinema.AddHall(hall); err != nil {
		return domainJSON(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"cinema": cinema.Name(),
		"name":   hall.Name(),
		"seats":  hall.SeatCount(),
	})
}

// CreateScreening handles POST /v1/cinemas/:cinema/screenings. The
// cinema's scheduler enforces the hall-availability rule, so an
// overlapping slot comes back as 409.
func (h *OwnerHandler) CreateScreening(c echo.Context) error {
	var body struct {
		Hall   string `json:"hall"`
		Start  string `json:"start"`
		Format string `json:"format"`
		Class  string `json:"class"`
		Movie  struct {
			Title       string   `json:"title"`
			Director    string   `json:"director"`
			DurationMin int      `json:"duration_min"`
			Language    string   `json:"language"`
			Themes      []string `json:"themes"`
			AgeRating   string   `json:"age_rating"`
		} `json:"movie"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	cinema, err := h.Network.FindCinema(c.Param("cinema"))
	if err != nil {
		return domainJSON(c, err)
	}
	hall, err := cinema.FindHall(body.Hall)
	if err != nil {
		return domainJSON(c, err)
	}
	start, err := time.Parse(time.RFC3339, body.Start)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start must be RFC3339"})
	}
	format := model.ScreeningFormat(body.Format)
	if format == "" {
		format = model.FormatTwoD
	}
	class := model.ScreeningClass(body.Class)
	if class == "" {
		class = model.ClassStandard
	}

	movie, err := model.NewMovie(
		body.Movie.Title,
		body.Movie.Director,
		body.Movie.DurationMin,
		model.LanguageOption(body.Movie.Language),
		body.Movie.Themes,
		model.AgeRating(body.Movie.AgeRating),
	)
	if err != nil {
		return domainJSON(c, err)
	}
	screening, err := model.NewScreening(movie, hall, start, format, class)
	if err != nil {
		return domainJSON(c, err)
	}
	if err := cinema.Schedule(screening); err != nil {
		return domainJSON(c, err)
	}
	h.Screenings.Add(screening, cinema)

	return c.JSON(http.StatusCreated, screeningJSON(screening, cinema))
}

// parseZone maps a wire zone label to a pricing zone. Unknown
// labels are rejected at hall creation so no seat ends up unpriced
// at purchase time. Blank defaults to STANDARD.
func parseZone(zone string) (model.SeatZone, error) {
	switch model.SeatZone(strings.ToUpper(strings.TrimSpace(zone))) {
	case "":
		return model.ZoneStandard, nil
	case model.ZoneStandard:
		return model.ZoneStandard, nil
	case model.ZoneVIP:
		return model.ZoneVIP, nil
	case model.ZonePromo:
		return model.ZonePromo, nil
	case model.ZoneSuperPromo:
		return model.ZoneSuperPromo, nil
	default:
		return "", fmt.Errorf("%w: unknown seat zone %q", model.ErrValidation, zone)
	}
}

// screeningJSON renders one screening for API responses.
func screeningJSON(s *model.Screening, cinema *model.Cinema) echo.Map {
	return echo.Map{
		"id":     s.ID(),
		"cinema": cinema.Name(),
		"hall":   s.Hall().Name(),
		"movie": echo.Map{
			"title":        s.Movie().Title,
			"director":     s.Movie().Director,
			"duration_min": s.Movie().DurationMin,
			"language":     s.Movie().Language,
			"age_rating":   s.Movie().AgeRating,
		},
		"start":  s.Start().Format(time.RFC3339),
		"end":    s.End().Format(time.RFC3339),
		"format": s.Format(),
		"class":  s.Class(),
	}
}
