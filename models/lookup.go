package models

// Compound is an autocompletion entry for injection compounds.
type Compound struct {
	ID        string `json:"id"`
	ProfileID string `json:"profile_id"`
	Name      string `json:"name" validate:"required,max=128"`
}

// FoodTemplate is a reusable calorie entry with macros.
type FoodTemplate struct {
	ID        string  `json:"id"`
	ProfileID string  `json:"profile_id"`
	Name      string  `json:"name" validate:"required,max=128"`
	Calories  int     `json:"calories" validate:"gte=0"`
	Protein   float64 `json:"protein" validate:"gte=0"`
	Carbs     float64 `json:"carbs" validate:"gte=0"`
	Fat       float64 `json:"fat" validate:"gte=0"`
}

// NirvanaSessionType is an autocompletion entry for nirvana sessions.
type NirvanaSessionType struct {
	ID        string `json:"id"`
	ProfileID string `json:"profile_id"`
	Name      string `json:"name" validate:"required,max=128"`
}

// Settings is the profile-owned settings pair exposed by the settings endpoints.
type Settings struct {
	TrackerSettings JSONMap `json:"tracker_settings"`
	MacroTargets    JSONMap `json:"macro_targets"`
}
