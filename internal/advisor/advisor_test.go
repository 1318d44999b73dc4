package advisor

import (
	"math"
	"testing"

	"github.com/jwulff/diabeyes-go/internal/bloodsugar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyDietProfile(t *testing.T) {
	tests := []struct {
		level    float64
		category bloodsugar.Category
		severity bloodsugar.Severity
		calories int
	}{
		{69.9, bloodsugar.CategoryLow, bloodsugar.SeverityDanger, 2000},
		{70, bloodsugar.CategoryNormal, bloodsugar.SeveritySuccess, 2000},
		{140, bloodsugar.CategoryNormal, bloodsugar.SeveritySuccess, 2000},
		{140.1, bloodsugar.CategoryHigh, bloodsugar.SeverityWarning, 1800},
		{200, bloodsugar.CategoryHigh, bloodsugar.SeverityWarning, 1800},
		{200.1, bloodsugar.CategoryVeryHigh, bloodsugar.SeverityDanger, 1800},
	}

	for _, tt := range tests {
		result, err := Classify(tt.level, bloodsugar.DietProfile)
		require.NoError(t, err)

		assert.Equal(t, tt.category, result.Category, "level %v", tt.level)
		assert.Equal(t, tt.severity, result.Severity, "level %v", tt.level)
		assert.Equal(t, tt.calories, result.DietCalorieTarget, "level %v", tt.level)
		assert.Equal(t, bloodsugar.DietProfile, result.Profile)
		assert.Equal(t, tt.level, result.Level)
	}
}

func TestClassifyInsightProfile(t *testing.T) {
	tests := []struct {
		level    float64
		category bloodsugar.Category
	}{
		{99.9, bloodsugar.CategoryNormal},
		{100, bloodsugar.CategoryPrediabetes},
		{124.9, bloodsugar.CategoryPrediabetes},
		{125, bloodsugar.CategoryHigh},
		{250, bloodsugar.CategoryVeryHigh},
	}

	for _, tt := range tests {
		result, err := Classify(tt.level, bloodsugar.InsightProfile)
		require.NoError(t, err)
		assert.Equal(t, tt.category, result.Category, "level %v", tt.level)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	for _, p := range bloodsugar.Profiles {
		for level := 0.0; level <= 400; level += 7.5 {
			first, err := Classify(level, p)
			require.NoError(t, err)
			second, err := Classify(level, p)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		}
	}
}

func TestClassifyInvalidReading(t *testing.T) {
	for _, level := range []float64{-0.5, math.NaN(), math.Inf(1)} {
		_, err := Classify(level, bloodsugar.DietProfile)
		assert.True(t, bloodsugar.IsInvalidReading(err), "level %v", level)
	}
}

func TestClassifyRecommendations(t *testing.T) {
	low, err := Classify(50, bloodsugar.InsightProfile)
	require.NoError(t, err)
	assert.Equal(t, "Consume fast-acting carbohydrates", low.Recommendations[0])
	assert.Len(t, low.Recommendations, 4)

	pre, err := Classify(110, bloodsugar.InsightProfile)
	require.NoError(t, err)
	assert.Equal(t, "Consult with a healthcare professional", pre.Recommendations[0])

	high, err := Classify(150, bloodsugar.InsightProfile)
	require.NoError(t, err)
	assert.Len(t, high.Recommendations, 5)
	assert.Equal(t, "Monitor blood sugar levels closely", high.Recommendations[4])

	veryHigh, err := Classify(320, bloodsugar.DietProfile)
	require.NoError(t, err)
	assert.Equal(t, "Seek immediate medical attention", veryHigh.Recommendations[0])

	normal, err := Classify(90, bloodsugar.DietProfile)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Maintain current healthy lifestyle",
		"Regular exercise",
		"Balanced diet",
		"Routine health check-ups",
	}, normal.Recommendations)
}

func TestRecommendationsReturnsCopy(t *testing.T) {
	recs := Recommendations(bloodsugar.CategoryLow)
	recs[0] = "changed"

	assert.Equal(t, "Consume fast-acting carbohydrates", Recommendations(bloodsugar.CategoryLow)[0])
}

func TestRecommendationsUnknownCategory(t *testing.T) {
	assert.Equal(t, Recommendations(bloodsugar.CategoryNormal), Recommendations(bloodsugar.Category("Unknown")))
}

func TestFindingRecommendations(t *testing.T) {
	tests := []struct {
		finding  Finding
		category bloodsugar.Category
	}{
		{FindingModerate, bloodsugar.CategoryPrediabetes},
		{FindingSevere, bloodsugar.CategoryHigh},
		{FindingProliferate, bloodsugar.CategoryVeryHigh},
		{"proliferative", bloodsugar.CategoryVeryHigh},
		{FindingNone, bloodsugar.CategoryNormal},
		{FindingMild, bloodsugar.CategoryNormal},
		{"", bloodsugar.CategoryNormal},
	}

	for _, tt := range tests {
		assert.Equal(t, Recommendations(tt.category), FindingRecommendations(tt.finding), "finding %q", tt.finding)
	}
}

func TestCalorieTarget(t *testing.T) {
	assert.Equal(t, 2000, CalorieTarget(bloodsugar.CategoryLow))
	assert.Equal(t, 2000, CalorieTarget(bloodsugar.CategoryNormal))
	assert.Equal(t, 2000, CalorieTarget(bloodsugar.CategoryPrediabetes))
	assert.Equal(t, 1800, CalorieTarget(bloodsugar.CategoryHigh))
	assert.Equal(t, 1800, CalorieTarget(bloodsugar.CategoryVeryHigh))
}

func TestParseFinding(t *testing.T) {
	assert.Equal(t, FindingSevere, ParseFinding(" SEVERE "))
	assert.Equal(t, FindingProliferate, ParseFinding("Proliferate_DR"))
	assert.Equal(t, FindingMild, ParseFinding("mild"))
	assert.Equal(t, FindingModerate, ParseFinding("Moderate"))
	assert.Equal(t, FindingNone, ParseFinding("No_DR"))
	assert.Equal(t, FindingNone, ParseFinding("cataract"))
}
