package schedule

import "errors"

var ErrEntryNotFound = errors.New("schedule entry not found")

// Entry is the planned workout for one weekday. Weekday follows time.Weekday,
// 0 is Sunday.
type Entry struct {
	UserID   int    `json:"userId"`
	Weekday  int    `json:"weekday"`
	Exercise string `json:"exercise"`
	// Minutes is the planned duration.
	Minutes int `json:"minutes"`
}

func ValidWeekday(weekday int) bool {
	return weekday >= 0 && weekday <= 6
}
