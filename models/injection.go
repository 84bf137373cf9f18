package models

import "time"

// InjectionEntry is one logged injection. It belongs to a calendar date.
type InjectionEntry struct {
	ID         string    `json:"id"`
	ProfileID  string    `json:"profile_id"`
	Date       string    `json:"date"`
	Compound   string    `json:"compound" validate:"required,max=128"`
	Dosage     float64   `json:"dosage" validate:"gt=0"`
	Unit       string    `json:"unit" validate:"required,max=16"`
	Notes      *string   `json:"notes"`
	InjectedAt time.Time `json:"injected_at"`
}

// InjectionUpdate is a partial update of an injection entry.
type InjectionUpdate struct {
	Compound   *string    `json:"compound,omitempty" validate:"omitempty,min=1,max=128"`
	Dosage     *float64   `json:"dosage,omitempty" validate:"omitempty,gt=0"`
	Unit       *string    `json:"unit,omitempty" validate:"omitempty,min=1,max=16"`
	Notes      *string    `json:"notes,omitempty"`
	InjectedAt *time.Time `json:"injected_at,omitempty"`
}

// Apply returns e with the update applied.
func (u InjectionUpdate) Apply(e InjectionEntry) InjectionEntry {
	if u.Compound != nil {
		e.Compound = *u.Compound
	}
	if u.Dosage != nil {
		e.Dosage = *u.Dosage
	}
	if u.Unit != nil {
		e.Unit = *u.Unit
	}
	if u.Notes != nil {
		e.Notes = u.Notes
	}
	if u.InjectedAt != nil {
		e.InjectedAt = *u.InjectedAt
	}
	return e
}
