package advisor

import (
	"strings"

	"github.com/jwulff/diabeyes-go/internal/bloodsugar"
)

var (
	lowRecommendations = []string{
		"Consume fast-acting carbohydrates",
		"Monitor blood sugar frequently",
		"Have a balanced meal soon",
		"Consult healthcare provider if symptoms persist",
	}

	prediabetesRecommendations = []string{
		"Consult with a healthcare professional",
		"Improve diet and exercise habits",
		"Regular blood sugar monitoring",
		"Consider lifestyle modifications",
	}

	highRecommendations = []string{
		"Consult your doctor immediately",
		"Follow prescribed medication",
		"Maintain a strict diet",
		"Increase physical activity",
		"Monitor blood sugar levels closely",
	}

	veryHighRecommendations = []string{
		"Seek immediate medical attention",
		"Follow emergency diabetes management plan",
		"Strict blood sugar control",
		"Avoid strenuous activities",
		"Hydrate and monitor for ketones",
	}

	normalRecommendations = []string{
		"Maintain current healthy lifestyle",
		"Regular exercise",
		"Balanced diet",
		"Routine health check-ups",
	}
)

// Recommendations returns the ordered advice for a category. Unknown categories
// get the same advice as Normal. The returned slice is a copy.
func Recommendations(c bloodsugar.Category) []string {
	return clone(recommendationSet(c))
}

func recommendationSet(c bloodsugar.Category) []string {
	switch c {
	case bloodsugar.CategoryLow:
		return lowRecommendations
	case bloodsugar.CategoryPrediabetes:
		return prediabetesRecommendations
	case bloodsugar.CategoryHigh:
		return highRecommendations
	case bloodsugar.CategoryVeryHigh:
		return veryHighRecommendations
	default:
		return normalRecommendations
	}
}

// Finding is a retinal image classifier label.
type Finding string

const (
	FindingNone        Finding = "No_DR"
	FindingMild        Finding = "Mild"
	FindingModerate    Finding = "Moderate"
	FindingSevere      Finding = "Severe"
	FindingProliferate Finding = "Proliferate_DR"
)

// FindingRecommendations maps a classifier finding onto the glucose advice
// sets. Moderate, Severe and Proliferate escalate; anything else gets the
// routine advice.
func FindingRecommendations(f Finding) []string {
	switch ParseFinding(string(f)) {
	case FindingModerate:
		return clone(prediabetesRecommendations)
	case FindingSevere:
		return clone(highRecommendations)
	case FindingProliferate:
		return clone(veryHighRecommendations)
	default:
		return clone(normalRecommendations)
	}
}

// ParseFinding resolves a classifier label, ignoring case and surrounding
// space. Unrecognised labels resolve to FindingNone.
func ParseFinding(label string) Finding {
	s := strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.HasPrefix(s, "proliferat"):
		return FindingProliferate
	case s == "severe":
		return FindingSevere
	case s == "moderate":
		return FindingModerate
	case s == "mild":
		return FindingMild
	}
	return FindingNone
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
