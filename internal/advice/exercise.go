package advice

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jwulff/diabeyes-go/internal/domain"
)

// ExerciseSuggestionsPath is the collaborator route for exercise suggestions.
const ExerciseSuggestionsPath = "/api/exercise-suggestions"

// Fallbacks used when the profile is missing a value.
const (
	fallbackName   = "User"
	fallbackAge    = 30
	fallbackWeight = 70
)

// ExerciseCategories are the session types the suggestion service accepts.
var ExerciseCategories = []string{
	"cardio",
	"strength",
	"flexibility",
	"balance",
	"high-intensity",
}

// ExerciseRequest is the payload sent to the suggestion service.
type ExerciseRequest struct {
	Name            string  `json:"Name"`
	Age             int     `json:"Age"`
	Weight          float64 `json:"weight"`
	ExercisesType   string  `json:"exercisesType"`
	SessionDuration string  `json:"sessionDuration"`
}

// ExerciseSuggestion is a single suggested exercise.
type ExerciseSuggestion struct {
	Name           string `json:"name"`
	CaloriesBurned int    `json:"caloriesBurned"`
	Duration       int    `json:"duration"`
}

type exerciseSuggestionsResponse struct {
	SuggestedExercises []ExerciseSuggestion `json:"suggestedExercises"`
}

// NewExerciseRequest builds the payload from a profile. A nil profile, or
// one with missing fields, falls back to generic values.
func NewExerciseRequest(p *domain.HealthProfile, exerciseType string, minutes int) (ExerciseRequest, error) {
	if !isExerciseCategory(exerciseType) {
		return ExerciseRequest{}, fmt.Errorf("unknown exercise type: %q", exerciseType)
	}
	if minutes <= 0 {
		return ExerciseRequest{}, fmt.Errorf("session duration must be positive, got %d", minutes)
	}

	req := ExerciseRequest{
		Name:            fallbackName,
		Age:             fallbackAge,
		Weight:          fallbackWeight,
		ExercisesType:   exerciseType,
		SessionDuration: strconv.Itoa(minutes),
	}
	if p != nil {
		if p.Name != "" {
			req.Name = p.Name
		}
		if p.Age > 0 {
			req.Age = p.Age
		}
		if p.Weight > 0 {
			req.Weight = p.Weight
		}
	}
	return req, nil
}

// SuggestExercises asks the collaborator for exercises matching the profile.
func SuggestExercises(ctx context.Context, f Fetcher, p *domain.HealthProfile, exerciseType string, minutes int) ([]ExerciseSuggestion, error) {
	payload, err := NewExerciseRequest(p, exerciseType, minutes)
	if err != nil {
		return nil, err
	}

	resp, err := f.FetchAdvice(ctx, Request{Path: ExerciseSuggestionsPath, Payload: payload})
	if err != nil {
		return nil, err
	}

	var decoded exerciseSuggestionsResponse
	if err := resp.Decode(&decoded); err != nil {
		return nil, err
	}
	return decoded.SuggestedExercises, nil
}

func isExerciseCategory(name string) bool {
	for _, c := range ExerciseCategories {
		if c == name {
			return true
		}
	}
	return false
}
