package achievements

import "time"

// Record is the persisted evaluation result for one user and one
// definition. Achieved is sticky, see Evaluator.
type Record struct {
	ID           string     `json:"id"`
	Achieved     bool       `json:"achieved"`
	AchievedDate *time.Time `json:"achievedDate"`
	Progress     int        `json:"progress"`
}

// Achievement is the merged view returned to clients, catalog metadata
// plus the evaluation result.
type Achievement struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Icon         string     `json:"icon"`
	Criteria     Criteria   `json:"criteria"`
	Achieved     bool       `json:"achieved"`
	AchievedDate *time.Time `json:"achievedDate"`
	Progress     int        `json:"progress"`
}
