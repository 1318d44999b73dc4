package bloodsugar

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDietProfileClassify(t *testing.T) {
	tests := []struct {
		mgdl     float64
		expected Category
	}{
		{0, CategoryLow},
		{40, CategoryLow},
		{69.9, CategoryLow},
		{70, CategoryNormal},
		{100, CategoryNormal},
		{140, CategoryNormal},
		{140.1, CategoryHigh},
		{200, CategoryHigh},
		{200.1, CategoryVeryHigh},
		{400, CategoryVeryHigh},
	}

	for _, tt := range tests {
		result, err := DietProfile.Classify(tt.mgdl)
		require.NoError(t, err)
		if result != tt.expected {
			t.Errorf("DietProfile.Classify(%v) = %s, want %s", tt.mgdl, result, tt.expected)
		}
	}
}

func TestInsightProfileClassify(t *testing.T) {
	tests := []struct {
		mgdl     float64
		expected Category
	}{
		{69.9, CategoryLow},
		{70, CategoryNormal},
		{99.9, CategoryNormal},
		{100, CategoryPrediabetes},
		{124.9, CategoryPrediabetes},
		{125, CategoryHigh},
		{199.9, CategoryHigh},
		{200, CategoryVeryHigh},
	}

	for _, tt := range tests {
		result, err := InsightProfile.Classify(tt.mgdl)
		require.NoError(t, err)
		if result != tt.expected {
			t.Errorf("InsightProfile.Classify(%v) = %s, want %s", tt.mgdl, result, tt.expected)
		}
	}
}

func TestClassifyRejectsInvalidReadings(t *testing.T) {
	inputs := []float64{-1, -0.1, math.NaN(), math.Inf(1), math.Inf(-1)}

	for _, p := range Profiles {
		for _, v := range inputs {
			_, err := p.Classify(v)
			assert.True(t, errors.Is(err, ErrInvalidReading), "profile %s, value %v", p, v)
			assert.True(t, IsInvalidReading(err))
		}
	}
}

func TestClassifyUnknownProfile(t *testing.T) {
	_, err := Profile("strict").Classify(100)
	require.Error(t, err)
	assert.False(t, IsInvalidReading(err))
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name     string
		expected Profile
		wantErr  bool
	}{
		{"", DietProfile, false},
		{"diet", DietProfile, false},
		{"Insight", InsightProfile, false},
		{" insight ", InsightProfile, false},
		{"strict", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseProfile(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestProfileSeverity(t *testing.T) {
	assert.Equal(t, SeverityDanger, DietProfile.Severity(CategoryLow))
	assert.Equal(t, SeveritySuccess, DietProfile.Severity(CategoryNormal))
	assert.Equal(t, SeverityWarning, DietProfile.Severity(CategoryHigh))
	assert.Equal(t, SeverityDanger, DietProfile.Severity(CategoryVeryHigh))

	assert.Equal(t, SeverityDanger, InsightProfile.Severity(CategoryLow))
	assert.Equal(t, SeveritySuccess, InsightProfile.Severity(CategoryNormal))
	assert.Equal(t, SeverityWarning, InsightProfile.Severity(CategoryPrediabetes))
	assert.Equal(t, SeverityDanger, InsightProfile.Severity(CategoryHigh))
	assert.Equal(t, SeverityDanger, InsightProfile.Severity(CategoryVeryHigh))
}

func TestProfileCategories(t *testing.T) {
	assert.NotContains(t, DietProfile.Categories(), CategoryPrediabetes)
	assert.Contains(t, InsightProfile.Categories(), CategoryPrediabetes)
	assert.Len(t, InsightProfile.Categories(), 5)
}

func TestParseReading(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
		wantErr  bool
	}{
		{"130", 130, false},
		{" 98.6 ", 98.6, false},
		{"0", 0, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-5", 0, true},
		{"NaN", 0, true},
		{"+Inf", 0, true},
	}

	for _, tt := range tests {
		result, err := ParseReading(tt.raw)
		if tt.wantErr {
			assert.True(t, IsInvalidReading(err), "ParseReading(%q)", tt.raw)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.expected, result)
	}
}

func TestFormatReading(t *testing.T) {
	assert.Equal(t, "130", FormatReading(130))
	assert.Equal(t, "98.6", FormatReading(98.6))
}

func TestInvalidReadingErrorMessage(t *testing.T) {
	assert.Equal(t, "invalid glucose reading: -3", (&InvalidReadingError{Value: -3}).Error())
	assert.Equal(t, `invalid glucose reading: "abc"`, (&InvalidReadingError{Raw: "abc"}).Error())
}

func TestMgdlToMmol(t *testing.T) {
	tests := []struct {
		mgdl     float64
		expected float64
	}{
		{100, 5.5},
		{180, 10.0},
		{70, 3.9},
		{250, 13.9},
	}

	for _, tt := range tests {
		result := MgdlToMmol(tt.mgdl)
		if result != tt.expected {
			t.Errorf("MgdlToMmol(%v) = %.1f, want %.1f", tt.mgdl, result, tt.expected)
		}
	}
}
