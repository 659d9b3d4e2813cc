package model

import "fmt"

// LanguageOption describes how a movie is presented to the audience.
type LanguageOption string

const (
	LanguageOriginal  LanguageOption = "ORIGINAL"
	LanguageSubtitles LanguageOption = "SUBTITLES"
	LanguageDubbing   LanguageOption = "DUBBING"
	LanguageVoiceOver LanguageOption = "VOICE_OVER"
)

// AgeRating is the minimum recommended viewer age for a movie.
type AgeRating string

const (
	RatingGeneral AgeRating = "GENERAL"
	RatingAge12   AgeRating = "AGE_12"
	RatingAge16   AgeRating = "AGE_16"
	RatingAge18   AgeRating = "AGE_18"
)

// Movie is the catalog entry a screening shows. It is immutable
// after construction; the duration in minutes feeds the screening's
// derived end time.
type Movie struct {
	Title       string
	Director    string
	DurationMin int
	Language    LanguageOption
	Themes      []string
	AgeRating   AgeRating
}

// NewMovie validates and builds a Movie. Title and director must be
// non-blank and the duration positive. The themes slice is copied so
// callers cannot mutate the movie afterwards.
func NewMovie(title, director string, durationMin int, language LanguageOption, themes []string, rating AgeRating) (*Movie, error) {
	t, err := requireText(title, "title")
	if err != nil {
		return nil, err
	}
	d, err := requireText(director, "director")
	if err != nil {
		return nil, err
	}
	if durationMin <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrValidation)
	}
	copied := make([]string, len(themes))
	copy(copied, themes)
	return &Movie{
		Title:       t,
		Director:    d,
		DurationMin: durationMin,
		Language:    language,
		Themes:      copied,
		AgeRating:   rating,
	}, nil
}
