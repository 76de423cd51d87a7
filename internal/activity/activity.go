package activity

import "time"

// activity kinds stored in the activity log
const (
	KindRegistered          = "registered"
	KindLoggedIn            = "logged_in"
	KindLoggedOut           = "logged_out"
	KindWorkoutAdded        = "workout_added"
	KindWorkoutDeleted      = "workout_deleted"
	KindWeightLogged        = "weight_logged"
	KindGoalCreated         = "goal_created"
	KindGoalCompleted       = "goal_completed"
	KindAchievementUnlocked = "achievement_unlocked"
)

type Event struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Kind      string    `json:"kind"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}
