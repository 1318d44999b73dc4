// Package render formats advisor output for the terminal.
package render

import (
	"fmt"

	"github.com/jwulff/diabeyes-go/internal/advisor"
	"github.com/jwulff/diabeyes-go/internal/bloodsugar"
)

// RGB represents an RGB color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// NewRGB creates a new RGB color.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// String returns a string representation of the RGB color.
func (c RGB) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ANSI returns the 24-bit foreground escape sequence for the color.
func (c RGB) ANSI() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

const ansiReset = "\x1b[0m"

// Common colors.
var (
	ColorBlack = NewRGB(0, 0, 0)
	ColorWhite = NewRGB(255, 255, 255)
	ColorGray  = NewRGB(128, 128, 128)

	// Severity colors
	ColorSuccess = NewRGB(40, 167, 69)  // Green
	ColorWarning = NewRGB(255, 193, 7)  // Amber
	ColorDanger  = NewRGB(220, 53, 69)  // Red
	ColorInfo    = NewRGB(23, 162, 184) // Teal, used for unknown severities

	// Meal impact colors
	ColorImpactLow      = ColorSuccess
	ColorImpactModerate = ColorWarning
	ColorImpactHigh     = ColorDanger
)

// SeverityColor returns the display color for a severity tag.
func SeverityColor(s bloodsugar.Severity) RGB {
	switch s {
	case bloodsugar.SeveritySuccess:
		return ColorSuccess
	case bloodsugar.SeverityWarning:
		return ColorWarning
	case bloodsugar.SeverityDanger:
		return ColorDanger
	default:
		return ColorInfo
	}
}

// ImpactColor returns the display color for a meal's glucose impact.
func ImpactColor(i advisor.Impact) RGB {
	switch i {
	case advisor.ImpactLow:
		return ColorImpactLow
	case advisor.ImpactModerate:
		return ColorImpactModerate
	case advisor.ImpactHigh:
		return ColorImpactHigh
	default:
		return ColorInfo
	}
}

// DimColor reduces the brightness of a color by a factor (0-1).
func DimColor(c RGB, factor float64) RGB {
	if factor <= 0 {
		return ColorBlack
	}
	if factor >= 1 {
		return c
	}
	return NewRGB(
		uint8(float64(c.R)*factor),
		uint8(float64(c.G)*factor),
		uint8(float64(c.B)*factor),
	)
}
