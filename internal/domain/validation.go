package domain

import (
	"errors"
	"strings"

	"github.com/jwulff/diabeyes-go/internal/bloodsugar"
)

// Profile field names used in validation errors.
const (
	FieldName   = "name"
	FieldHeight = "height"
	FieldWeight = "weight"

	FieldAge                     = "age"
	FieldGender                  = "gender"
	FieldExercisePreferences     = "exercisePreferences"
	FieldDiabetesManagementGoals = "diabetesManagementGoals"
	FieldGlucoseLevel            = "glucoseLevel"
)

// ValidationError is returned when a profile is missing required fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing or invalid profile fields: " + strings.Join(e.Fields, ", ")
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// Validate checks the fields required before a profile can be saved.
func (p *HealthProfile) Validate() error {
	var fields []string
	if strings.TrimSpace(p.Name) == "" {
		fields = append(fields, FieldName)
	}
	if !(p.Height > 0) {
		fields = append(fields, FieldHeight)
	}
	if !(p.Weight > 0) {
		fields = append(fields, FieldWeight)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Validate checks the fields present on the update against the profile data
// model. Absent fields are not checked. Height and weight of 0 are allowed,
// as is an empty glucoseLevel.
func (u ProfileUpdate) Validate() error {
	var fields []string
	if u.Age != nil && *u.Age <= 0 {
		fields = append(fields, FieldAge)
	}
	if u.Gender != nil && !IsGender(*u.Gender) {
		fields = append(fields, FieldGender)
	}
	if u.Height != nil && *u.Height < 0 {
		fields = append(fields, FieldHeight)
	}
	if u.Weight != nil && *u.Weight < 0 {
		fields = append(fields, FieldWeight)
	}
	if u.ExercisePreferences != nil && !allIn(*u.ExercisePreferences, IsExerciseType) {
		fields = append(fields, FieldExercisePreferences)
	}
	if u.DiabetesManagementGoals != nil && !allIn(*u.DiabetesManagementGoals, IsDiabetesGoal) {
		fields = append(fields, FieldDiabetesManagementGoals)
	}
	if u.GlucoseLevel != nil && *u.GlucoseLevel != "" {
		if _, err := bloodsugar.ParseReading(*u.GlucoseLevel); err != nil {
			fields = append(fields, FieldGlucoseLevel)
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateAll runs Validate and then checks every value on the profile
// against the data model. Each field is reported once.
func (p *HealthProfile) ValidateAll() error {
	var fields []string
	var verr *ValidationError
	if errors.As(p.Validate(), &verr) {
		fields = append(fields, verr.Fields...)
	}
	if errors.As(p.AsUpdate().Validate(), &verr) {
		for _, f := range verr.Fields {
			if !contains(fields, f) {
				fields = append(fields, f)
			}
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func allIn(values []string, ok func(string) bool) bool {
	for _, v := range values {
		if !ok(v) {
			return false
		}
	}
	return true
}
