package bloodsugar

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Category is the named glucose band a reading falls into.
type Category string

const (
	CategoryLow         Category = "Low"
	CategoryNormal      Category = "Normal"
	CategoryPrediabetes Category = "Prediabetes"
	CategoryHigh        Category = "High"
	CategoryVeryHigh    Category = "Very High"
)

// Severity is the display tag attached to a category.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Shared glucose thresholds in mg/dL.
const (
	ThresholdLow = 70

	// Diet planning bands.
	ThresholdDietHigh     = 140
	ThresholdDietVeryHigh = 200

	// Health insight bands.
	ThresholdInsightPrediabetes = 100
	ThresholdInsightHigh        = 125
	ThresholdInsightVeryHigh    = 200
)

// ErrInvalidReading matches any reading that is negative or not a finite number.
var ErrInvalidReading = errors.New("invalid glucose reading")

// InvalidReadingError describes a rejected reading.
type InvalidReadingError struct {
	Value float64
	Raw   string
}

func (e *InvalidReadingError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("invalid glucose reading: %q", e.Raw)
	}
	return fmt.Sprintf("invalid glucose reading: %v", e.Value)
}

func (e *InvalidReadingError) Is(target error) bool {
	return target == ErrInvalidReading
}

// IsInvalidReading checks if an error is an invalid reading error.
func IsInvalidReading(err error) bool {
	return errors.Is(err, ErrInvalidReading)
}

// ValidateReading rejects negative and non-finite mg/dL values.
func ValidateReading(mgdl float64) error {
	if math.IsNaN(mgdl) || math.IsInf(mgdl, 0) || mgdl < 0 {
		return &InvalidReadingError{Value: mgdl}
	}
	return nil
}

// ParseReading converts a stored string reading (e.g. "130" or "130.5") to mg/dL.
func ParseReading(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &InvalidReadingError{Raw: raw}
	}
	if err := ValidateReading(v); err != nil {
		return 0, err
	}
	return v, nil
}

// FormatReading renders a reading the way it is stored on a profile.
func FormatReading(mgdl float64) string {
	return strconv.FormatFloat(mgdl, 'f', -1, 64)
}

// MgdlToMmol converts mg/dL to mmol/L.
func MgdlToMmol(mgdl float64) float64 {
	return math.Round(mgdl/18.0182*10) / 10.0
}
