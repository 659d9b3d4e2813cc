package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/kinoplex/multiplex-booking/internal/config"
	"github.com/kinoplex/multiplex-booking/internal/handler"
	"github.com/kinoplex/multiplex-booking/internal/model"
	"github.com/kinoplex/multiplex-booking/internal/pricing"
	"github.com/kinoplex/multiplex-booking/internal/queue"
	"github.com/kinoplex/multiplex-booking/internal/repository"
	"github.com/kinoplex/multiplex-booking/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, using in-process fallbacks")
	}

	policy, err := pricing.NewDefaultPolicy(cfg.Currency)
	if err != nil {
		log.Fatalf("pricing policy: %v", err)
	}
	factory, err := pricing.NewTicketFactory(policy)
	if err != nil {
		log.Fatalf("ticket factory: %v", err)
	}

	users := repository.NewUserRepo()
	tokens := repository.NewTokenRepo(rdb)
	screenings := repository.NewScreeningRepo()
	reservations := repository.NewReservationRepo()

	network := model.NewMultiplexNetwork()
	if err := seed(network, screenings); err != nil {
		log.Fatalf("seed: %v", err)
	}

	go func() {
		if err := queue.StartOrderConsumer(); err != nil {
			log.Printf("order consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	router.Register(e, router.Deps{
		Auth:      handler.NewAuthHandler(users, tokens, cfg),
		Public:    handler.NewPublicHandler(network, screenings),
		Owner:     handler.NewOwnerHandler(network, screenings),
		Booking:   handler.NewBookingHandler(users, screenings, reservations, factory),
		JWTSecret: cfg.JWTSecret,
		Redis:     rdb,
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, currency=%s)", addr, cfg.Env, cfg.Currency)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// seed builds a small multiplex so the API is browsable right after
// startup: one cinema, two halls with zoned seats and a few
// screenings over the coming days.
func seed(network *model.MultiplexNetwork, screenings *repository.ScreeningRepo) error {
	cinema, err := model.NewCinema("Kinoplex Wola", "ul. Prosta 51, Warszawa")
	if err != nil {
		return err
	}
	if err := network.AddCinema(cinema); err != nil {
		return err
	}

	hallA, err := model.NewHall("A", gridSeats(6, 10, func(row string, num int) model.SeatZone {
		if row == "A" {
			return model.ZonePromo
		}
		if row == "F" {
			return model.ZoneVIP
		}
		return model.ZoneStandard
	}))
	if err != nil {
		return err
	}
	hallB, err := model.NewHall("B", gridSeats(4, 8, func(string, int) model.SeatZone {
		return model.ZoneStandard
	}))
	if err != nil {
		return err
	}
	if err := cinema.AddHall(hallA); err != nil {
		return err
	}
	if err := cinema.AddHall(hallB); err != nil {
		return err
	}

	seksmisja, err := model.NewMovie("Seksmisja", "Juliusz Machulski", 117,
		model.LanguageOriginal, []string{"comedy", "sci-fi"}, model.RatingAge12)
	if err != nil {
		return err
	}
	rejs, err := model.NewMovie("Rejs", "Marek Piwowski", 65,
		model.LanguageOriginal, []string{"comedy"}, model.RatingGeneral)
	if err != nil {
		return err
	}

	today := time.Now().UTC()
	base := time.Date(today.Year(), today.Month(), today.Day(), 18, 0, 0, 0, time.UTC)
	plan := []struct {
		movie  *model.Movie
		hall   *model.Hall
		start  time.Time
		format model.ScreeningFormat
		class  model.ScreeningClass
	}{
		{seksmisja, hallA, base.AddDate(0, 0, 1), model.FormatTwoD, model.ClassStandard},
		{seksmisja, hallA, base.AddDate(0, 0, 2), model.FormatThreeD, model.ClassVIP},
		{rejs, hallB, base.AddDate(0, 0, 1), model.FormatTwoD, model.ClassStandard},
		{rejs, hallB, base.AddDate(0, 0, 1).Add(2 * time.Hour), model.FormatTwoD, model.ClassStandard},
	}
	for _, p := range plan {
		s, err := model.NewScreening(p.movie, p.hall, p.start, p.format, p.class)
		if err != nil {
			return err
		}
		if err := cinema.Schedule(s); err != nil {
			return err
		}
		screenings.Add(s, cinema)
	}
	return nil
}

// gridSeats lays out rows A..(A+rows-1) with numbered seats and a
// per-seat zone chosen by the callback.
func gridSeats(rows, perRow int, zone func(row string, num int) model.SeatZone) []model.Seat {
	seats := make([]model.Seat, 0, rows*perRow)
	for r := 0; r < rows; r++ {
		row := string(rune('A' + r))
		for n := 1; n <= perRow; n++ {
			id, err := model.NewSeatID(row, n)
			if err != nil {
				continue
			}
			seats = append(seats, model.Seat{ID: id, Zone: zone(row, n)})
		}
	}
	return seats
}
