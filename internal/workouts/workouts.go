package workouts

import (
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("workout session not found")

// intensity levels accepted for a workout session
const (
	IntensityLow    = "low"
	IntensityMedium = "medium"
	IntensityHigh   = "high"
)

func ValidIntensity(intensity string) bool {
	switch intensity {
	case IntensityLow, IntensityMedium, IntensityHigh:
		return true
	}
	return false
}

// Session is a single logged workout.
type Session struct {
	ID              int       `json:"id"`
	UserID          int       `json:"userId"`
	Exercise        string    `json:"exercise"`
	Intensity       string    `json:"intensity"`
	Calories        int       `json:"calories"`
	DurationMinutes int       `json:"durationMinutes"`
	Date            time.Time `json:"date"`
}

type ListParams struct {
	UserID int
	Page   int
	Size   int
}

type SessionsPage struct {
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"`
}
