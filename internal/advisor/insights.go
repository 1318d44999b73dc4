package advisor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jwulff/diabeyes-go/internal/bloodsugar"
)

// Intraocular pressure bands in mmHg.
const (
	PressureLow  = 12
	PressureHigh = 22
)

// PressureStatus is the band an intraocular pressure reading falls into.
type PressureStatus string

const (
	PressureStatusLow    PressureStatus = "Low"
	PressureStatusNormal PressureStatus = "Normal"
	PressureStatusHigh   PressureStatus = "High"
)

// ErrInvalidPressure matches a negative or non-finite pressure reading.
var ErrInvalidPressure = errors.New("invalid intraocular pressure")

// Pressure is a classified intraocular pressure reading.
type Pressure struct {
	Value    float64             `json:"value"`
	Status   PressureStatus      `json:"status"`
	Severity bloodsugar.Severity `json:"severity"`
}

// Nephropathy reports whether diabetic nephropathy was detected.
type Nephropathy struct {
	Detected bool                `json:"detected"`
	Severity bloodsugar.Severity `json:"severity"`
}

// Insights is the health-insights view of a reading. The eye and kidney
// indicators are present only when supplied.
type Insights struct {
	Glucose             Result       `json:"glucose"`
	IntraocularPressure *Pressure    `json:"intraocularPressure,omitempty"`
	DiabeticNephropathy *Nephropathy `json:"diabeticNephropathy,omitempty"`
}

// ClassifyPressure bands a pressure reading: below 12 is Low, above 22 is High.
func ClassifyPressure(mmHg float64) (Pressure, error) {
	if math.IsNaN(mmHg) || math.IsInf(mmHg, 0) || mmHg < 0 {
		return Pressure{}, fmt.Errorf("%w: %v", ErrInvalidPressure, mmHg)
	}

	p := Pressure{Value: mmHg, Status: PressureStatusNormal, Severity: bloodsugar.SeveritySuccess}
	switch {
	case mmHg < PressureLow:
		p.Status, p.Severity = PressureStatusLow, bloodsugar.SeverityWarning
	case mmHg > PressureHigh:
		p.Status, p.Severity = PressureStatusHigh, bloodsugar.SeverityDanger
	}
	return p, nil
}

// ParsePressure converts a string such as "15.5" to mmHg.
func ParsePressure(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPressure, raw)
	}
	return v, nil
}

// HealthInsights classifies the reading under the insight profile and adds
// whichever indicators are non-nil.
func HealthInsights(level float64, pressure *float64, nephropathy *bool) (Insights, error) {
	glucose, err := Classify(level, bloodsugar.InsightProfile)
	if err != nil {
		return Insights{}, err
	}

	out := Insights{Glucose: glucose}
	if pressure != nil {
		p, err := ClassifyPressure(*pressure)
		if err != nil {
			return Insights{}, err
		}
		out.IntraocularPressure = &p
	}
	if nephropathy != nil {
		n := Nephropathy{Detected: *nephropathy, Severity: bloodsugar.SeveritySuccess}
		if n.Detected {
			n.Severity = bloodsugar.SeverityDanger
		}
		out.DiabeticNephropathy = &n
	}
	return out, nil
}
