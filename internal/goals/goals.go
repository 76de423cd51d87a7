package goals

import (
	"errors"
	"time"
)

var ErrGoalNotFound = errors.New("goal not found")

// goal kinds
const (
	KindWorkoutsPerWeek = "workouts_per_week"
	KindTargetWeight    = "target_weight"
	KindMinutesPerWeek  = "minutes_per_week"
	KindCustom          = "custom"
)

func ValidKind(kind string) bool {
	switch kind {
	case KindWorkoutsPerWeek, KindTargetWeight, KindMinutesPerWeek, KindCustom:
		return true
	}
	return false
}

type Goal struct {
	ID          int        `json:"id"`
	UserID      int        `json:"userId"`
	Kind        string     `json:"kind"`
	Description string     `json:"description"`
	Target      float64    `json:"target"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Done        bool       `json:"done"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
