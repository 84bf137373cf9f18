package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Objective is one entry of a weekly objectives list.
type Objective struct {
	ID        string `json:"id" validate:"required"`
	Text      string `json:"text" validate:"required,max=512"`
	Completed bool   `json:"completed"`
	Order     int    `json:"order" validate:"gte=0"`
}

// Objectives is the ordered list stored in the weekly_entries.objectives jsonb column.
type Objectives []Objective

// Value implements [driver.Valuer].
func (o Objectives) Value() (driver.Value, error) {
	if o == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Objective(o))
}

// Scan implements [sql.Scanner].
func (o *Objectives) Scan(src any) error {
	raw, err := jsonBytes(src)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		*o = Objectives{}
		return nil
	}

	var out []Objective
	if err = json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("decode objectives: %w", err)
	}
	*o = out
	return nil
}

// Toggle returns a copy of the list with the completed flag of objective id
// flipped. The second result is false when id is not present.
func (o Objectives) Toggle(id string) (Objectives, bool) {
	out := make(Objectives, len(o))
	copy(out, o)
	for i := range out {
		if out[i].ID == id {
			out[i].Completed = !out[i].Completed
			return out, true
		}
	}
	return out, false
}

// WeeklyEntry is the single row per (profile, Monday week start).
type WeeklyEntry struct {
	ID              string     `json:"id"`
	ProfileID       string     `json:"profile_id"`
	WeekStart       string     `json:"week_start"`
	Objectives      Objectives `json:"objectives"`
	WhyImportant    string     `json:"why_important"`
	FridayReview    string     `json:"friday_review"`
	ReviewCompleted bool       `json:"review_completed"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// WeeklyEntryUpdate is a partial update merged onto the (profile, week_start) row.
type WeeklyEntryUpdate struct {
	Objectives      Objectives `json:"objectives,omitempty" validate:"omitempty,dive"`
	WhyImportant    *string    `json:"why_important,omitempty"`
	FridayReview    *string    `json:"friday_review,omitempty"`
	ReviewCompleted *bool      `json:"review_completed,omitempty"`
}

// Apply returns e with the update applied.
func (u WeeklyEntryUpdate) Apply(e WeeklyEntry) WeeklyEntry {
	if u.Objectives != nil {
		e.Objectives = u.Objectives
	}
	if u.WhyImportant != nil {
		e.WhyImportant = *u.WhyImportant
	}
	if u.FridayReview != nil {
		e.FridayReview = *u.FridayReview
	}
	if u.ReviewCompleted != nil {
		e.ReviewCompleted = *u.ReviewCompleted
	}
	return e
}

// WeekStart returns the Monday of the week containing t, truncated to the day.
func WeekStart(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
