package advisor

import "github.com/jwulff/diabeyes-go/internal/bloodsugar"

// Intensity is an exercise tier.
type Intensity string

const (
	IntensityLow      Intensity = "Low"
	IntensityModerate Intensity = "Moderate"
	IntensityHigh     Intensity = "High"
)

// Exercise tier boundaries in mg/dL.
const (
	IntensityModerateFrom = 100
	IntensityHighFrom     = 125
)

// Exercise is a catalog entry within a tier.
type Exercise struct {
	Name        string `json:"name"`
	Duration    int    `json:"duration"` // minutes
	Description string `json:"description"`
}

// ExercisePlanResult is the tier chosen for a reading and its catalog.
type ExercisePlanResult struct {
	Level     float64    `json:"level"`
	Intensity Intensity  `json:"intensity"`
	Exercises []Exercise `json:"exercises"`
}

var exerciseCatalog = map[Intensity][]Exercise{
	IntensityLow: {
		{Name: "Walking", Duration: 30, Description: "Easy-paced walk to gently raise heart rate and improve insulin sensitivity"},
		{Name: "Light Yoga", Duration: 20, Description: "Gentle poses and breathing to improve flexibility and reduce stress"},
		{Name: "Stretching", Duration: 15, Description: "Full-body stretching routine to loosen muscles and aid circulation"},
	},
	IntensityModerate: {
		{Name: "Brisk Walking", Duration: 30, Description: "Steady, fast-paced walk that keeps you slightly out of breath"},
		{Name: "Cycling", Duration: 25, Description: "Moderate cycling outdoors or on a stationary bike"},
		{Name: "Resistance Training", Duration: 20, Description: "Bodyweight or light-weight exercises targeting major muscle groups"},
	},
	IntensityHigh: {
		{Name: "High-Intensity Interval Training (HIIT)", Duration: 20, Description: "Short bursts of intense effort alternating with recovery periods"},
		{Name: "Swimming", Duration: 30, Description: "Continuous laps to work the whole body with low joint impact"},
		{Name: "Circuit Training", Duration: 25, Description: "Rotating strength and cardio stations with minimal rest"},
	},
}

// IntensityFor returns the exercise tier for a reading.
func IntensityFor(level float64) Intensity {
	if level < IntensityModerateFrom {
		return IntensityLow
	}
	if level < IntensityHighFrom {
		return IntensityModerate
	}
	return IntensityHigh
}

// Exercises returns a copy of a tier's catalog.
func Exercises(i Intensity) []Exercise {
	src := exerciseCatalog[i]
	out := make([]Exercise, len(src))
	copy(out, src)
	return out
}

// ExercisePlan validates a reading and returns its tier with the exercise catalog.
func ExercisePlan(level float64) (ExercisePlanResult, error) {
	if err := bloodsugar.ValidateReading(level); err != nil {
		return ExercisePlanResult{}, err
	}
	intensity := IntensityFor(level)
	return ExercisePlanResult{
		Level:     level,
		Intensity: intensity,
		Exercises: Exercises(intensity),
	}, nil
}
