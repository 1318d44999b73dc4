package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestNewHealthProfile(t *testing.T) {
	p := NewHealthProfile()

	assert.NotEmpty(t, p.ID)
	assert.Empty(t, p.Name)
	assert.Equal(t, 25, p.Age)
	assert.Equal(t, "female", p.Gender)
	assert.Zero(t, p.Height)
	assert.Zero(t, p.Weight)
	assert.Empty(t, p.ExercisePreferences)
	assert.Empty(t, p.DiabetesManagementGoals)
	assert.False(t, p.IsVegetarian)
	assert.Equal(t, []string{"diabetes"}, p.MedicalHistory)
	assert.Empty(t, p.GlucoseLevel)
	assert.True(t, p.LastUpdated.IsZero())
}

func TestNewHealthProfileUniqueIDs(t *testing.T) {
	assert.NotEqual(t, NewHealthProfile().ID, NewHealthProfile().ID)
}

func TestNewHealthProfileDoesNotShareDefaults(t *testing.T) {
	p := NewHealthProfile()
	p.MedicalHistory[0] = "hypertension"

	assert.Equal(t, []string{"diabetes"}, DefaultMedicalHistory)
}

func TestApplyMergesPresentFields(t *testing.T) {
	p := NewHealthProfile()
	id := p.ID

	p.Apply(ProfileUpdate{
		Name:   strPtr("Jo"),
		Height: floatPtr(170),
	})

	assert.Equal(t, id, p.ID)
	assert.Equal(t, "Jo", p.Name)
	assert.Equal(t, 170.0, p.Height)
	assert.Equal(t, 25, p.Age)
	assert.Equal(t, []string{"diabetes"}, p.MedicalHistory)
}

func TestApplyReplacesSlices(t *testing.T) {
	p := NewHealthProfile()
	prefs := []string{"Walking", "Yoga"}

	p.Apply(ProfileUpdate{ExercisePreferences: &prefs})
	prefs[0] = "Running"

	assert.Equal(t, []string{"Walking", "Yoga"}, p.ExercisePreferences)
}

func TestProfileUpdateIsEmpty(t *testing.T) {
	assert.True(t, ProfileUpdate{}.IsEmpty())
	assert.False(t, ProfileUpdate{Name: strPtr("")}.IsEmpty())
}

func TestProfileUpdateFromJSON(t *testing.T) {
	var u ProfileUpdate
	err := json.Unmarshal([]byte(`{"weight": 62.5, "isVegetarian": true}`), &u)
	require.NoError(t, err)

	require.NotNil(t, u.Weight)
	assert.Equal(t, 62.5, *u.Weight)
	require.NotNil(t, u.IsVegetarian)
	assert.True(t, *u.IsVegetarian)
	assert.Nil(t, u.Name)
	assert.Nil(t, u.MedicalHistory)
}

func TestToggleExercisePreference(t *testing.T) {
	p := NewHealthProfile()

	p.ToggleExercisePreference("Swimming")
	p.ToggleExercisePreference("Walking")
	assert.Equal(t, []string{"Swimming", "Walking"}, p.ExercisePreferences)
	assert.True(t, p.HasExercisePreference("Walking"))

	p.ToggleExercisePreference("Swimming")
	assert.Equal(t, []string{"Walking"}, p.ExercisePreferences)
	assert.False(t, p.HasExercisePreference("Swimming"))
}

func TestToggleDiabetesGoal(t *testing.T) {
	p := NewHealthProfile()

	p.ToggleDiabetesGoal("Blood Sugar Control")
	assert.Equal(t, []string{"Blood Sugar Control"}, p.DiabetesManagementGoals)

	p.ToggleDiabetesGoal("Blood Sugar Control")
	assert.Empty(t, p.DiabetesManagementGoals)
}

func TestClone(t *testing.T) {
	p := NewHealthProfile()
	p.ExercisePreferences = []string{"Hiking"}

	c := p.Clone()
	c.ExercisePreferences[0] = "Dancing"
	c.MedicalHistory = append(c.MedicalHistory, "asthma")

	assert.Equal(t, []string{"Hiking"}, p.ExercisePreferences)
	assert.Equal(t, []string{"diabetes"}, p.MedicalHistory)
	assert.Equal(t, p.ID, c.ID)
}

func TestTouch(t *testing.T) {
	p := NewHealthProfile()
	now := time.Date(2026, 1, 22, 10, 30, 0, 0, time.UTC)

	p.Touch(now)

	assert.Equal(t, now, p.LastUpdated)
}

func TestHealthProfileJSONFieldNames(t *testing.T) {
	p := NewHealthProfile()
	p.Name = "Jo"
	p.GlucoseLevel = "130"

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{
		"id", "name", "age", "gender", "height", "weight", "exercisePreferences",
		"diabetesManagementGoals", "isVegetarian", "medicalHistory", "glucoseLevel", "lastUpdated",
	} {
		assert.Contains(t, raw, key)
	}
}

func TestCatalogs(t *testing.T) {
	assert.True(t, IsExerciseType("High-Intensity Interval Training (HIIT)"))
	assert.False(t, IsExerciseType("Chess"))
	assert.True(t, IsDiabetesGoal("Insulin Sensitivity"))
	assert.False(t, IsDiabetesGoal("Sleep"))
	assert.True(t, IsGender("other"))
	assert.False(t, IsGender("Female"))
	assert.Len(t, ExerciseTypes, 10)
	assert.Len(t, DiabetesGoals, 6)
}
