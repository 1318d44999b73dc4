package advisor

import (
	"github.com/jwulff/diabeyes-go/internal/bloodsugar"
)

// DefaultDietLevel is used when no reading has been recorded yet.
const DefaultDietLevel = 130

// Impact is the expected glucose impact of a meal.
type Impact string

const (
	ImpactLow      Impact = "Low"
	ImpactModerate Impact = "Moderate"
	ImpactHigh     Impact = "High"
)

// Meal is one slot of a daily diet plan.
type Meal struct {
	MealType      string   `json:"mealType"`
	Time          string   `json:"time"`
	Items         []string `json:"items"`
	Calories      int      `json:"calories"`
	GlucoseImpact Impact   `json:"glucoseImpact"`
}

// Plan is a daily diet plan derived from a reading.
type Plan struct {
	GlucoseLevel    float64             `json:"glucoseLevel"`
	Category        bloodsugar.Category `json:"category"`
	Severity        bloodsugar.Severity `json:"severity"`
	TotalCalories   int                 `json:"totalCalories"`
	Meals           []Meal              `json:"meals"`
	Recommendations []string            `json:"recommendations"`
}

type mealSlot struct {
	mealType      string
	time          string
	calories      int
	impact        Impact
	standardItems []string
	elevatedItems []string
}

// Impact labels are fixed per slot and do not depend on the reading.
var mealSlots = []mealSlot{
	{
		mealType:      "Breakfast",
		time:          "8:00 AM",
		calories:      400,
		impact:        ImpactLow,
		standardItems: []string{"Whole grain toast", "Scrambled eggs", "Fresh fruit"},
		elevatedItems: []string{"Oatmeal with berries", "Sugar-free yogurt", "Green tea"},
	},
	{
		mealType:      "Lunch",
		time:          "1:00 PM",
		calories:      500,
		impact:        ImpactModerate,
		standardItems: []string{"Turkey sandwich", "Mixed salad", "Apple"},
		elevatedItems: []string{"Grilled chicken salad", "Quinoa", "Steamed vegetables"},
	},
	{
		mealType:      "Dinner",
		time:          "7:00 PM",
		calories:      600,
		impact:        ImpactModerate,
		standardItems: []string{"Grilled chicken", "Sweet potato", "Green beans"},
		elevatedItems: []string{"Baked fish", "Brown rice", "Roasted vegetables"},
	},
}

var (
	standardDietTips = []string{
		"Maintain balanced meals",
		"Include protein with each meal",
		"Stay hydrated",
		"Monitor portion sizes",
	}

	elevatedDietTips = []string{
		"Limit carbohydrate intake",
		"Increase fiber-rich foods",
		"Avoid sugary drinks",
		"Eat smaller portions more frequently",
	}
)

// MealImpact returns the static glucose impact label for a meal slot.
func MealImpact(mealType string) (Impact, bool) {
	for _, slot := range mealSlots {
		if slot.mealType == mealType {
			return slot.impact, true
		}
	}
	return "", false
}

// DietPlan builds the daily meal plan for a reading under the given profile.
func DietPlan(level float64, profile bloodsugar.Profile) (Plan, error) {
	category, err := profile.Classify(level)
	if err != nil {
		return Plan{}, err
	}

	elevated := category.IsElevated()
	meals := make([]Meal, 0, len(mealSlots))
	for _, slot := range mealSlots {
		items := slot.standardItems
		if elevated {
			items = slot.elevatedItems
		}
		meals = append(meals, Meal{
			MealType:      slot.mealType,
			Time:          slot.time,
			Items:         clone(items),
			Calories:      slot.calories,
			GlucoseImpact: slot.impact,
		})
	}

	tips := standardDietTips
	if elevated {
		tips = elevatedDietTips
	}

	return Plan{
		GlucoseLevel:    level,
		Category:        category,
		Severity:        profile.Severity(category),
		TotalCalories:   CalorieTarget(category),
		Meals:           meals,
		Recommendations: clone(tips),
	}, nil
}
