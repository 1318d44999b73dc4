package render

import (
	"fmt"
	"strings"

	"github.com/jwulff/diabeyes-go/internal/advisor"
	"github.com/jwulff/diabeyes-go/internal/bloodsugar"
	"github.com/jwulff/diabeyes-go/internal/domain"
)

// mutedFactor dims secondary lines such as recommendation bullets.
const mutedFactor = 0.75

// Text renders advisor output as plain or ANSI-colored terminal text.
type Text struct {
	Color bool
}

// NewText creates a text renderer.
func NewText(color bool) *Text {
	return &Text{Color: color}
}

func (t *Text) paint(s string, c RGB) string {
	if !t.Color {
		return s
	}
	return c.ANSI() + s + ansiReset
}

func (t *Text) muted(s string) string {
	return t.paint(s, DimColor(ColorWhite, mutedFactor))
}

// Reading formats a reading in both units, e.g. "130 mg/dL (7.2 mmol/L)".
func Reading(mgdl float64) string {
	return fmt.Sprintf("%s mg/dL (%.1f mmol/L)", bloodsugar.FormatReading(mgdl), bloodsugar.MgdlToMmol(mgdl))
}

// Result formats a classification.
func (t *Text) Result(r advisor.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", Reading(r.Level), t.paint(string(r.Category), SeverityColor(r.Severity)))
	fmt.Fprintf(&b, "Profile: %s  Severity: %s\n", r.Profile, r.Severity)
	fmt.Fprintf(&b, "Daily calories: %d kcal  Exercise intensity: %s\n", r.DietCalorieTarget, r.ExerciseIntensity)
	b.WriteString("Recommendations:\n")
	for _, rec := range r.Recommendations {
		b.WriteString(t.muted("  - "+rec) + "\n")
	}
	return b.String()
}

// DietPlan formats a daily meal plan.
func (t *Text) DietPlan(p advisor.Plan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Diet plan for %s  %s\n", Reading(p.GlucoseLevel), t.paint(string(p.Category), SeverityColor(p.Severity)))
	fmt.Fprintf(&b, "Total calories: %d kcal\n", p.TotalCalories)
	for _, m := range p.Meals {
		fmt.Fprintf(&b, "\n%s (%s) %d kcal, impact %s\n", m.MealType, m.Time, m.Calories,
			t.paint(string(m.GlucoseImpact), ImpactColor(m.GlucoseImpact)))
		for _, item := range m.Items {
			b.WriteString("  - " + item + "\n")
		}
	}
	b.WriteString("\nTips:\n")
	for _, tip := range p.Recommendations {
		b.WriteString(t.muted("  - "+tip) + "\n")
	}
	return b.String()
}

// ExercisePlan formats an exercise tier and its catalog.
func (t *Text) ExercisePlan(p advisor.ExercisePlanResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Exercise plan for %s  intensity %s\n", Reading(p.Level), p.Intensity)
	for _, e := range p.Exercises {
		fmt.Fprintf(&b, "  %-40s %3d min\n", e.Name, e.Duration)
		if e.Description != "" {
			b.WriteString(t.muted("    "+e.Description) + "\n")
		}
	}
	return b.String()
}

// Insights formats the health-insights view.
func (t *Text) Insights(in advisor.Insights) string {
	var b strings.Builder

	g := in.Glucose
	fmt.Fprintf(&b, "Glucose: %s  %s\n", Reading(g.Level), t.paint(string(g.Category), SeverityColor(g.Severity)))
	if p := in.IntraocularPressure; p != nil {
		fmt.Fprintf(&b, "Intraocular pressure: %s mmHg  %s\n", bloodsugar.FormatReading(p.Value), t.paint(string(p.Status), SeverityColor(p.Severity)))
	}
	if n := in.DiabeticNephropathy; n != nil {
		answer := "No"
		if n.Detected {
			answer = "Yes"
		}
		fmt.Fprintf(&b, "Diabetic nephropathy: %s\n", t.paint(answer, SeverityColor(n.Severity)))
	}
	b.WriteString("Recommendations:\n")
	for _, rec := range g.Recommendations {
		b.WriteString(t.muted("  - "+rec) + "\n")
	}
	return b.String()
}

// Finding formats the advice for a retinal classifier finding.
func (t *Text) Finding(f advisor.Finding, recs []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Finding: %s\n", f)
	for _, rec := range recs {
		b.WriteString(t.muted("  - "+rec) + "\n")
	}
	return b.String()
}

// Profile formats a health profile. A nil profile renders a hint.
func (t *Text) Profile(p *domain.HealthProfile) string {
	if p == nil {
		return "No profile stored. Use 'profile set <field> <value>' to create one.\n"
	}

	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%-20s %s\n", label+":", value)
	}

	line("ID", p.ID)
	line("Name", orDash(p.Name))
	line("Age", fmt.Sprintf("%d", p.Age))
	line("Gender", p.Gender)
	line("Height", measure(p.Height, "cm"))
	line("Weight", measure(p.Weight, "kg"))
	line("Vegetarian", fmt.Sprintf("%t", p.IsVegetarian))
	line("Exercise", orDash(strings.Join(p.ExercisePreferences, ", ")))
	line("Goals", orDash(strings.Join(p.DiabetesManagementGoals, ", ")))
	line("Medical history", orDash(strings.Join(p.MedicalHistory, ", ")))
	if p.GlucoseLevel != "" {
		line("Glucose", p.GlucoseLevel+" mg/dL")
	} else {
		line("Glucose", "-")
	}
	if !p.LastUpdated.IsZero() {
		line("Last updated", p.LastUpdated.Format("2006-01-02 15:04:05 MST"))
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func measure(v float64, unit string) string {
	if v <= 0 {
		return "-"
	}
	return bloodsugar.FormatReading(v) + " " + unit
}
