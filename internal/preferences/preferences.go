package preferences

// allowed preference values
const (
	WeightUnitKilos  = "kg"
	WeightUnitPounds = "lbs"

	DistanceUnitKilometers = "km"
	DistanceUnitMiles      = "mi"

	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

type Preferences struct {
	UserID       int    `json:"userId"`
	WeightUnit   string `json:"weightUnit"`
	DistanceUnit string `json:"distanceUnit"`
	Theme        string `json:"theme"`
}

// Default returns the preferences of a user who never saved any.
func Default(userID int) Preferences {
	return Preferences{
		UserID:       userID,
		WeightUnit:   WeightUnitKilos,
		DistanceUnit: DistanceUnitKilometers,
		Theme:        ThemeSystem,
	}
}

func (p Preferences) Validate() bool {
	switch p.WeightUnit {
	case WeightUnitKilos, WeightUnitPounds:
	default:
		return false
	}
	switch p.DistanceUnit {
	case DistanceUnitKilometers, DistanceUnitMiles:
	default:
		return false
	}
	switch p.Theme {
	case ThemeLight, ThemeDark, ThemeSystem:
	default:
		return false
	}
	return true
}
