// Package advisor turns a glucose reading into guidance: a category, a
// severity tag, recommendations, a daily calorie target and an exercise tier.
// Every function here is pure.
package advisor

import (
	"github.com/jwulff/diabeyes-go/internal/bloodsugar"
)

// Daily calorie targets in kcal.
const (
	CalorieTargetDefault  = 2000
	CalorieTargetElevated = 1800
)

// Result is the full classification of a single reading.
type Result struct {
	Level             float64             `json:"level"`
	Profile           bloodsugar.Profile  `json:"profile"`
	Category          bloodsugar.Category `json:"category"`
	Severity          bloodsugar.Severity `json:"severity"`
	Recommendations   []string            `json:"recommendations"`
	DietCalorieTarget int                 `json:"dietCalorieTarget"`
	ExerciseIntensity Intensity           `json:"exerciseIntensity"`
}

// Classify maps a reading to a Result under the selected profile.
func Classify(level float64, profile bloodsugar.Profile) (Result, error) {
	category, err := profile.Classify(level)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Level:             level,
		Profile:           profile,
		Category:          category,
		Severity:          profile.Severity(category),
		Recommendations:   Recommendations(category),
		DietCalorieTarget: CalorieTarget(category),
		ExerciseIntensity: IntensityFor(level),
	}, nil
}

// CalorieTarget returns the daily calorie target for a category.
func CalorieTarget(c bloodsugar.Category) int {
	if c.IsElevated() {
		return CalorieTargetElevated
	}
	return CalorieTargetDefault
}
