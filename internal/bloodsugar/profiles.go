package bloodsugar

import (
	"fmt"
	"strings"
)

// Profile selects one of the threshold schemes used to classify a reading.
type Profile string

const (
	// DietProfile is the coarse scheme used for meal planning:
	// Low < 70 <= Normal <= 140 < High <= 200 < Very High.
	DietProfile Profile = "diet"

	// InsightProfile is the finer scheme used for health insights:
	// Low < 70 <= Normal < 100 <= Prediabetes < 125 <= High < 200 <= Very High.
	InsightProfile Profile = "insight"
)

// Profiles lists every selectable classification profile.
var Profiles = []Profile{DietProfile, InsightProfile}

// ParseProfile resolves a profile by name. An empty name selects DietProfile.
func ParseProfile(name string) (Profile, error) {
	switch Profile(strings.ToLower(strings.TrimSpace(name))) {
	case "", DietProfile:
		return DietProfile, nil
	case InsightProfile:
		return InsightProfile, nil
	}
	return "", fmt.Errorf("unknown classification profile: %q", name)
}

// Categories returns the categories a profile can produce, lowest first.
func (p Profile) Categories() []Category {
	if p == InsightProfile {
		return []Category{CategoryLow, CategoryNormal, CategoryPrediabetes, CategoryHigh, CategoryVeryHigh}
	}
	return []Category{CategoryLow, CategoryNormal, CategoryHigh, CategoryVeryHigh}
}

// Classify determines the category for a validated reading. The first matching band wins.
func (p Profile) Classify(mgdl float64) (Category, error) {
	if err := ValidateReading(mgdl); err != nil {
		return "", err
	}
	switch p {
	case DietProfile:
		return classifyDiet(mgdl), nil
	case InsightProfile:
		return classifyInsight(mgdl), nil
	}
	return "", fmt.Errorf("unknown classification profile: %q", string(p))
}

// Severity returns the display tag for a category under this profile.
func (p Profile) Severity(c Category) Severity {
	switch c {
	case CategoryNormal:
		return SeveritySuccess
	case CategoryPrediabetes:
		return SeverityWarning
	case CategoryHigh:
		if p == InsightProfile {
			return SeverityDanger
		}
		return SeverityWarning
	}
	// Low and Very High are both urgent.
	return SeverityDanger
}

func classifyDiet(mgdl float64) Category {
	if mgdl < ThresholdLow {
		return CategoryLow
	}
	if mgdl <= ThresholdDietHigh {
		return CategoryNormal
	}
	if mgdl <= ThresholdDietVeryHigh {
		return CategoryHigh
	}
	return CategoryVeryHigh
}

func classifyInsight(mgdl float64) Category {
	if mgdl < ThresholdLow {
		return CategoryLow
	}
	if mgdl < ThresholdInsightPrediabetes {
		return CategoryNormal
	}
	if mgdl < ThresholdInsightHigh {
		return CategoryPrediabetes
	}
	if mgdl < ThresholdInsightVeryHigh {
		return CategoryHigh
	}
	return CategoryVeryHigh
}

// IsElevated reports whether a category calls for the reduced-carbohydrate plan.
func (c Category) IsElevated() bool {
	return c == CategoryHigh || c == CategoryVeryHigh
}
