package achievements

// CriterionKind tags the rule family of an achievement definition.
type CriterionKind string

const (
	CriterionCount                 CriterionKind = "count"
	CriterionSingleSessionDuration CriterionKind = "single_session_duration"
	CriterionCumulativeDuration    CriterionKind = "cumulative_duration"
	// CriterionStreak is reserved, it always evaluates to not achieved.
	CriterionStreak CriterionKind = "streak"
)

// Criteria is the rule of a single achievement. Threshold is a number of
// sessions for count, and minutes for the duration kinds.
type Criteria struct {
	Kind      CriterionKind `json:"kind"`
	Threshold int           `json:"threshold"`
}

// Definition is one entry of the static achievement catalog.
type Definition struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Criteria    Criteria `json:"criteria"`
}

// DefaultCatalog is the achievement catalog served in production. The
// evaluator itself works with any catalog.
var DefaultCatalog = []Definition{
	{
		ID:          "first-workout",
		Title:       "First Steps",
		Description: "Log your first workout",
		Icon:        "shoe",
		Criteria:    Criteria{Kind: CriterionCount, Threshold: 1},
	},
	{
		ID:          "ten-workouts",
		Title:       "Getting Into It",
		Description: "Log 10 workouts",
		Icon:        "flame",
		Criteria:    Criteria{Kind: CriterionCount, Threshold: 10},
	},
	{
		ID:          "fifty-workouts",
		Title:       "Regular",
		Description: "Log 50 workouts",
		Icon:        "medal",
		Criteria:    Criteria{Kind: CriterionCount, Threshold: 50},
	},
	{
		ID:          "hundred-workouts",
		Title:       "Centurion",
		Description: "Log 100 workouts",
		Icon:        "trophy",
		Criteria:    Criteria{Kind: CriterionCount, Threshold: 100},
	},
	{
		ID:          "hour-session",
		Title:       "Full Hour",
		Description: "Finish a workout of 60 minutes or more",
		Icon:        "clock",
		Criteria:    Criteria{Kind: CriterionSingleSessionDuration, Threshold: 60},
	},
	{
		ID:          "marathon-session",
		Title:       "Marathon Mode",
		Description: "Finish a workout of 90 minutes or more",
		Icon:        "mountain",
		Criteria:    Criteria{Kind: CriterionSingleSessionDuration, Threshold: 90},
	},
	{
		ID:          "thousand-minutes",
		Title:       "Thousand Club",
		Description: "Accumulate 1000 minutes of training",
		Icon:        "star",
		Criteria:    Criteria{Kind: CriterionCumulativeDuration, Threshold: 1000},
	},
	{
		ID:          "week-streak",
		Title:       "Streak Week",
		Description: "Train 7 days in a row",
		Icon:        "calendar",
		Criteria:    Criteria{Kind: CriterionStreak, Threshold: 7},
	},
}
