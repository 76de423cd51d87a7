package weight

import (
	"errors"
	"time"
)

var ErrEntryNotFound = errors.New("weight entry not found")

// Entry is a single body weight measurement, in kilograms.
type Entry struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Kilos     float64   `json:"kilos"`
	Timestamp time.Time `json:"timestamp"`
}
