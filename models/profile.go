package models

import "time"

// DefaultBMR is the basal metabolic rate assigned to freshly created profiles.
const DefaultBMR = 2000

// Profile is the identity anchor of a user. Exactly one row exists per
// authenticated subject; it is created lazily on the first authenticated load.
type Profile struct {
	// ID is the backend primary key used by every other table.
	ID string `json:"id"`

	// SubjectID is the external auth-subject identifier (Clerk / Supabase Auth "sub").
	SubjectID string `json:"subject_id"`

	// BMR is the basal metabolic rate in kcal/day.
	BMR int `json:"bmr"`

	// Height in centimetres. Nil until the user sets it.
	Height *float64 `json:"height"`

	// Weight in kilograms. Nil until the user sets it.
	Weight *float64 `json:"weight"`

	// Gender is free text ("male", "female", ...). Nil until the user sets it.
	Gender *string `json:"gender"`

	// TrackerSettings and MacroTargets are opaque blobs owned by the UI.
	TrackerSettings JSONMap `json:"tracker_settings"`
	MacroTargets    JSONMap `json:"macro_targets"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDefaultProfile returns the profile a subject gets on first load.
func NewDefaultProfile(subjectID string) Profile {
	return Profile{
		SubjectID:       subjectID,
		BMR:             DefaultBMR,
		TrackerSettings: JSONMap{},
		MacroTargets:    JSONMap{},
	}
}

// ProfileUpdate is a partial profile update. Only non-nil fields are written.
type ProfileUpdate struct {
	BMR             *int     `json:"bmr,omitempty" validate:"omitempty,gt=0,lt=10000"`
	Height          *float64 `json:"height,omitempty" validate:"omitempty,gt=0,lt=300"`
	Weight          *float64 `json:"weight,omitempty" validate:"omitempty,gt=0,lt=700"`
	Gender          *string  `json:"gender,omitempty" validate:"omitempty,max=32"`
	TrackerSettings JSONMap  `json:"tracker_settings,omitempty"`
	MacroTargets    JSONMap  `json:"macro_targets,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u ProfileUpdate) IsEmpty() bool {
	return u.BMR == nil && u.Height == nil && u.Weight == nil && u.Gender == nil &&
		u.TrackerSettings == nil && u.MacroTargets == nil
}

// Apply returns p with the update applied. Used for optimistic cache writes.
func (u ProfileUpdate) Apply(p Profile) Profile {
	if u.BMR != nil {
		p.BMR = *u.BMR
	}
	if u.Height != nil {
		p.Height = u.Height
	}
	if u.Weight != nil {
		p.Weight = u.Weight
	}
	if u.Gender != nil {
		p.Gender = u.Gender
	}
	if u.TrackerSettings != nil {
		p.TrackerSettings = u.TrackerSettings
	}
	if u.MacroTargets != nil {
		p.MacroTargets = u.MacroTargets
	}
	return p
}

// BMRInput holds the parameters of the Mifflin-St Jeor equation.
type BMRInput struct {
	WeightKg float64 `json:"weight_kg" validate:"gt=0"`
	HeightCm float64 `json:"height_cm" validate:"gt=0"`
	Age      int     `json:"age" validate:"gt=0,lt=130"`
	Gender   string  `json:"gender" validate:"required"`
}
