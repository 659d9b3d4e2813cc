package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCinema(t *testing.T) (*Cinema, *Hall) {
	t.Helper()
	cinema, err := NewCinema("Multikino Centrum", "ul. Marszałkowska 1, Warszawa")
	require.NoError(t, err)
	hall := testHall(t)
	require.NoError(t, cinema.AddHall(hall))
	return cinema, hall
}

func scheduleMovie(t *testing.T, cinema *Cinema, hall *Hall, title, director string, durationMin int, start time.Time) *Screening {
	t.Helper()
	movie, err := NewMovie(title, director, durationMin, LanguageOriginal, nil, RatingGeneral)
	require.NoError(t, err)
	s, err := NewScreening(movie, hall, start, FormatTwoD, ClassStandard)
	require.NoError(t, err)
	require.NoError(t, cinema.Schedule(s))
	return s
}

func TestNewCinemaValidation(t *testing.T) {
	_, err := NewCinema("  ", "addr")
	require.ErrorIs(t, err, ErrValidation)
	_, err = NewCinema("Kino", " ")
	require.ErrorIs(t, err, ErrValidation)
}

func TestAddHallRejectsDuplicateNames(t *testing.T) {
	cinema, _ := testCinema(t)
	dup, err := NewHall("a", []Seat{seat(t, "A", 1, ZoneStandard)})
	require.NoError(t, err)
	// Hall names are unique per cinema, ignoring case.
	require.ErrorIs(t, cinema.AddHall(dup), ErrValidation)
}

func TestScheduleRequiresRegisteredHall(t *testing.T) {
	cinema, _ := testCinema(t)
	foreign, err := NewHall("B", []Seat{seat(t, "B", 1, ZoneStandard)})
	require.NoError(t, err)
	movie, err := NewMovie("Rejs", "Marek Piwowski", 65, LanguageOriginal, nil, RatingGeneral)
	require.NoError(t, err)
	s, err := NewScreening(movie, foreign, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), FormatTwoD, ClassStandard)
	require.NoError(t, err)

	require.ErrorIs(t, cinema.Schedule(s), ErrValidation)
	assert.Empty(t, cinema.Screenings())
}

func TestScheduleRejectsOverlap(t *testing.T) {
	cinema, hall := testCinema(t)
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// 120 min runtime + 20 min cleaning: occupies [10:00, 12:20).
	scheduleMovie(t, cinema, hall, "Seksmisja", "Juliusz Machulski", 120, day.Add(10*time.Hour))

	movie, err := NewMovie("Rejs", "Marek Piwowski", 65, LanguageOriginal, nil, RatingGeneral)
	require.NoError(t, err)
	clash, err := NewScreening(movie, hall, day.Add(12*time.Hour), FormatTwoD, ClassStandard)
	require.NoError(t, err)
	require.ErrorIs(t, cinema.Schedule(clash), ErrConflict)
	assert.Len(t, cinema.Screenings(), 1)
}

func TestScheduleAcceptsTouchingIntervals(t *testing.T) {
	cinema, hall := testCinema(t)
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// [10:00, 12:20) then [12:20, ...): touching endpoints do not
	// overlap.
	scheduleMovie(t, cinema, hall, "Seksmisja", "Juliusz Machulski", 120, day.Add(10*time.Hour))
	scheduleMovie(t, cinema, hall, "Rejs", "Marek Piwowski", 80, day.Add(12*time.Hour+20*time.Minute))
	assert.Len(t, cinema.Screenings(), 2)
}

func TestScheduleDifferentHallsMayOverlap(t *testing.T) {
	cinema, hall := testCinema(t)
	other, err := NewHall("B", []Seat{seat(t, "B", 1, ZoneStandard)})
	require.NoError(t, err)
	require.NoError(t, cinema.AddHall(other))

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	scheduleMovie(t, cinema, hall, "Seksmisja", "Juliusz Machulski", 120, start)
	scheduleMovie(t, cinema, other, "Seksmisja", "Juliusz Machulski", 120, start)
	assert.Len(t, cinema.Screenings(), 2)
}

func TestProgrammeRangeAndOrdering(t *testing.T) {
	cinema, hall := testCinema(t)
	hallB, err := NewHall("B", []Seat{seat(t, "B", 1, ZoneStandard)})
	require.NoError(t, err)
	require.NoError(t, cinema.AddHall(hallB))

	day1 := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day3 := day1.AddDate(0, 0, 2)

	late := scheduleMovie(t, cinema, hall, "Seksmisja", "Juliusz Machulski", 100, day2.Add(18*time.Hour))
	// Same start in two halls: hall name breaks the tie.
	inB := scheduleMovie(t, cinema, hallB, "Rejs", "Marek Piwowski", 65, day2.Add(10*time.Hour))
	inA := scheduleMovie(t, cinema, hall, "Rejs", "Marek Piwowski", 65, day2.Add(10*time.Hour))
	outside := scheduleMovie(t, cinema, hall, "Kingsajz", "Juliusz Machulski", 105, day3.Add(10*time.Hour))

	got := cinema.Programme(day1, day2)
	require.Len(t, got, 3)
	assert.Equal(t, inA, got[0])
	assert.Equal(t, inB, got[1])
	assert.Equal(t, late, got[2])
	assert.NotContains(t, got, outside)
}

func TestProgrammeNextWeek(t *testing.T) {
	cinema, hall := testCinema(t)
	today := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	within := scheduleMovie(t, cinema, hall, "Rejs", "Marek Piwowski", 65, today.AddDate(0, 0, 6))
	scheduleMovie(t, cinema, hall, "Kingsajz", "Juliusz Machulski", 105, today.AddDate(0, 0, 9))

	got := cinema.ProgrammeNextWeek(today)
	require.Len(t, got, 1)
	assert.Equal(t, within, got[0])
}

func TestFindMovie(t *testing.T) {
	cinema, hall := testCinema(t)
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	scheduleMovie(t, cinema, hall, "Seksmisja", "Juliusz Machulski", 120, day.Add(10*time.Hour))
	scheduleMovie(t, cinema, hall, "Kingsajz", "Juliusz Machulski", 105, day.Add(14*time.Hour))
	// Second screening of the same movie must not duplicate it.
	scheduleMovie(t, cinema, hall, "Seksmisja", "Juliusz Machulski", 120, day.Add(18*time.Hour))

	byDirector, err := cinema.FindMovie("machulski")
	require.NoError(t, err)
	require.Len(t, byDirector, 2)
	assert.Equal(t, "Seksmisja", byDirector[0].Title)
	assert.Equal(t, "Kingsajz", byDirector[1].Title)

	byTitle, err := cinema.FindMovie("KING")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)

	none, err := cinema.FindMovie("tarantino")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = cinema.FindMovie("   ")
	require.ErrorIs(t, err, ErrValidation)
}
