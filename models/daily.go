package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date encoding used by every date-keyed entity.
const DateLayout = "2006-01-02"

// ParseDate validates a "YYYY-MM-DD" calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// DailyEntry is the single logical row per (profile, calendar date).
type DailyEntry struct {
	ID                  string    `json:"id"`
	ProfileID           string    `json:"profile_id"`
	Date                string    `json:"date"`
	Weight              *float64  `json:"weight"`
	DeepWorkCompleted   bool      `json:"deep_work_completed"`
	WinnersBibleMorning bool      `json:"winners_bible_morning"`
	WinnersBibleNight   bool      `json:"winners_bible_night"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// DailyEntryUpdate is a partial update of a daily entry, merged onto the
// (profile, date) row by an upsert.
type DailyEntryUpdate struct {
	Weight              *float64 `json:"weight,omitempty" validate:"omitempty,gt=0,lt=700"`
	DeepWorkCompleted   *bool    `json:"deep_work_completed,omitempty"`
	WinnersBibleMorning *bool    `json:"winners_bible_morning,omitempty"`
	WinnersBibleNight   *bool    `json:"winners_bible_night,omitempty"`
}

// Apply returns e with the update applied.
func (u DailyEntryUpdate) Apply(e DailyEntry) DailyEntry {
	if u.Weight != nil {
		e.Weight = u.Weight
	}
	if u.DeepWorkCompleted != nil {
		e.DeepWorkCompleted = *u.DeepWorkCompleted
	}
	if u.WinnersBibleMorning != nil {
		e.WinnersBibleMorning = *u.WinnersBibleMorning
	}
	if u.WinnersBibleNight != nil {
		e.WinnersBibleNight = *u.WinnersBibleNight
	}
	return e
}

// CalorieEntry is one logged food item of a day.
type CalorieEntry struct {
	ID          string    `json:"id"`
	ProfileID   string    `json:"profile_id"`
	Date        string    `json:"date"`
	Description string    `json:"description" validate:"required,max=256"`
	Calories    int       `json:"calories" validate:"gte=0"`
	Protein     float64   `json:"protein" validate:"gte=0"`
	Carbs       float64   `json:"carbs" validate:"gte=0"`
	Fat         float64   `json:"fat" validate:"gte=0"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExerciseEntry is one logged activity of a day.
type ExerciseEntry struct {
	ID              string    `json:"id"`
	ProfileID       string    `json:"profile_id"`
	Date            string    `json:"date"`
	Activity        string    `json:"activity" validate:"required,max=256"`
	DurationMinutes int       `json:"duration_minutes" validate:"gte=0"`
	CaloriesBurned  int       `json:"calories_burned" validate:"gte=0"`
	CreatedAt       time.Time `json:"created_at"`
}

// MIT is a "most important task" of a day.
type MIT struct {
	ID           string `json:"id"`
	ProfileID    string `json:"profile_id"`
	Date         string `json:"date"`
	Task         string `json:"task" validate:"required,max=512"`
	Completed    bool   `json:"completed"`
	DisplayOrder int    `json:"display_order"`
}

// NirvanaSession is one logged mobility/relaxation session.
type NirvanaSession struct {
	ID              string    `json:"id"`
	ProfileID       string    `json:"profile_id"`
	Date            string    `json:"date"`
	SessionType     string    `json:"session_type" validate:"required,max=128"`
	DurationMinutes int       `json:"duration_minutes" validate:"gte=0"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

// Day is the aggregate of a daily entry and every child collection of that date.
// Entry is nil when no daily row exists yet.
type Day struct {
	Date       string           `json:"date"`
	Entry      *DailyEntry      `json:"entry"`
	Calories   []CalorieEntry   `json:"calories"`
	Exercises  []ExerciseEntry  `json:"exercises"`
	Injections []InjectionEntry `json:"injections"`
	MITs       []MIT            `json:"mits"`
	Nirvana    []NirvanaSession `json:"nirvana"`
}

// DaySummary holds the derived energy balance of a day.
type DaySummary struct {
	Date           string  `json:"date"`
	CaloriesIn     int     `json:"calories_in"`
	CaloriesBurned int     `json:"calories_burned"`
	BMR            int     `json:"bmr"`
	Net            int     `json:"net"`
	Protein        float64 `json:"protein"`
	Carbs          float64 `json:"carbs"`
	Fat            float64 `json:"fat"`
	MITsCompleted  int     `json:"mits_completed"`
	MITsTotal      int     `json:"mits_total"`
}
