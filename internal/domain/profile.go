// Package domain contains core domain types for the diabeyes system.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Gender values accepted on a profile.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Profile defaults.
const (
	DefaultAge    = 25
	DefaultGender = GenderFemale
)

// DefaultMedicalHistory is the condition list a new profile starts with.
var DefaultMedicalHistory = []string{"diabetes"}

// HealthProfile is the persisted user health record.
// Height and weight of 0 mean "not yet provided".
type HealthProfile struct {
	ID                      string    `json:"id"`
	Name                    string    `json:"name"`
	Age                     int       `json:"age"`
	Gender                  string    `json:"gender"`
	Height                  float64   `json:"height"` // cm
	Weight                  float64   `json:"weight"` // kg
	ExercisePreferences     []string  `json:"exercisePreferences"`
	DiabetesManagementGoals []string  `json:"diabetesManagementGoals"`
	IsVegetarian            bool      `json:"isVegetarian"`
	MedicalHistory          []string  `json:"medicalHistory"`
	GlucoseLevel            string    `json:"glucoseLevel,omitempty"`
	LastUpdated             time.Time `json:"lastUpdated"`
}

// NewProfileID generates a new opaque profile identifier.
func NewProfileID() string {
	return uuid.NewString()
}

// NewHealthProfile creates a profile with default values and a fresh id.
func NewHealthProfile() *HealthProfile {
	return &HealthProfile{
		ID:                      NewProfileID(),
		Age:                     DefaultAge,
		Gender:                  DefaultGender,
		ExercisePreferences:     []string{},
		DiabetesManagementGoals: []string{},
		MedicalHistory:          append([]string(nil), DefaultMedicalHistory...),
	}
}

// Clone returns a deep copy of the profile.
func (p *HealthProfile) Clone() *HealthProfile {
	c := *p
	c.ExercisePreferences = cloneStrings(p.ExercisePreferences)
	c.DiabetesManagementGoals = cloneStrings(p.DiabetesManagementGoals)
	c.MedicalHistory = cloneStrings(p.MedicalHistory)
	return &c
}

// Touch stamps the profile as updated at t.
func (p *HealthProfile) Touch(t time.Time) {
	p.LastUpdated = t
}

// ToggleExercisePreference adds the exercise if absent, otherwise removes it.
// Insertion order is preserved for display.
func (p *HealthProfile) ToggleExercisePreference(exercise string) {
	p.ExercisePreferences = toggle(p.ExercisePreferences, exercise)
}

// ToggleDiabetesGoal adds the goal if absent, otherwise removes it.
func (p *HealthProfile) ToggleDiabetesGoal(goal string) {
	p.DiabetesManagementGoals = toggle(p.DiabetesManagementGoals, goal)
}

// HasExercisePreference reports whether the exercise is selected.
func (p *HealthProfile) HasExercisePreference(exercise string) bool {
	return contains(p.ExercisePreferences, exercise)
}

// ProfileUpdate is a partial profile. Nil fields are left untouched by Apply.
type ProfileUpdate struct {
	Name                    *string   `json:"name,omitempty"`
	Age                     *int      `json:"age,omitempty"`
	Gender                  *string   `json:"gender,omitempty"`
	Height                  *float64  `json:"height,omitempty"`
	Weight                  *float64  `json:"weight,omitempty"`
	ExercisePreferences     *[]string `json:"exercisePreferences,omitempty"`
	DiabetesManagementGoals *[]string `json:"diabetesManagementGoals,omitempty"`
	IsVegetarian            *bool     `json:"isVegetarian,omitempty"`
	MedicalHistory          *[]string `json:"medicalHistory,omitempty"`
	GlucoseLevel            *string   `json:"glucoseLevel,omitempty"`
}

// AsUpdate returns an update carrying every field of the profile except the
// id and timestamp.
func (p *HealthProfile) AsUpdate() ProfileUpdate {
	exercise := cloneStrings(p.ExercisePreferences)
	goals := cloneStrings(p.DiabetesManagementGoals)
	history := cloneStrings(p.MedicalHistory)
	return ProfileUpdate{
		Name:                    &p.Name,
		Age:                     &p.Age,
		Gender:                  &p.Gender,
		Height:                  &p.Height,
		Weight:                  &p.Weight,
		ExercisePreferences:     &exercise,
		DiabetesManagementGoals: &goals,
		IsVegetarian:            &p.IsVegetarian,
		MedicalHistory:          &history,
		GlucoseLevel:            &p.GlucoseLevel,
	}
}

// IsEmpty reports whether the update carries no fields.
func (u ProfileUpdate) IsEmpty() bool {
	return u == (ProfileUpdate{})
}

// Apply shallow-merges the update over the profile, field by field.
func (p *HealthProfile) Apply(u ProfileUpdate) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.Height != nil {
		p.Height = *u.Height
	}
	if u.Weight != nil {
		p.Weight = *u.Weight
	}
	if u.ExercisePreferences != nil {
		p.ExercisePreferences = cloneStrings(*u.ExercisePreferences)
	}
	if u.DiabetesManagementGoals != nil {
		p.DiabetesManagementGoals = cloneStrings(*u.DiabetesManagementGoals)
	}
	if u.IsVegetarian != nil {
		p.IsVegetarian = *u.IsVegetarian
	}
	if u.MedicalHistory != nil {
		p.MedicalHistory = cloneStrings(*u.MedicalHistory)
	}
	if u.GlucoseLevel != nil {
		p.GlucoseLevel = *u.GlucoseLevel
	}
}

func toggle(list []string, value string) []string {
	out := make([]string, 0, len(list)+1)
	found := false
	for _, v := range list {
		if v == value {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, value)
	}
	return out
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
