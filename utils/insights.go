package utils

import (
	"fmt"

	"github.com/edulizanay/voice-food-logger/models"
)

// WarningSeverity categorizes how serious a finding is.
type WarningSeverity string

const (
	Info    WarningSeverity = "info"
	Caution WarningSeverity = "caution"
	High    WarningSeverity = "high"
)

// Warning is a structured finding the UI can show next to a day's totals.
type Warning struct {
	Code           string          `json:"code"`
	Severity       WarningSeverity `json:"severity"`
	Message        string          `json:"message"`
	Metric         string          `json:"metric,omitempty"`
	Value          float64         `json:"value,omitempty"`
	Limit          float64         `json:"limit,omitempty"`
	PercentOfLimit float64         `json:"percent_of_limit,omitempty"`
}

// Daily reference values used when no personal target is configured
// (DGA-style 2000 kcal reference day).
const (
	referenceCalories = 2000.0
	referenceFatG     = 78.0
	referenceCarbsG   = 275.0
	referenceProteinG = 50.0
)

// AssessDailyMacros is a rule-based check over a day's running totals.
// It is an estimator over mock reference data, so everything it emits is
// advisory; it only speaks when a value is actually present.
func AssessDailyMacros(m models.Macros) []Warning {
	warnings := []Warning{}

	if m.Calories > referenceCalories {
		warnings = append(warnings, Warning{
			Code:           "calories_over_reference",
			Severity:       Caution,
			Message:        fmt.Sprintf("Daily calories (%.0f) exceed the 2000 kcal reference day", m.Calories),
			Metric:         "calories",
			Value:          m.Calories,
			Limit:          referenceCalories,
			PercentOfLimit: pct(m.Calories, referenceCalories),
		})
	}
	if m.FatG > referenceFatG {
		warnings = append(warnings, Warning{
			Code:           "fat_over_reference",
			Severity:       Caution,
			Message:        fmt.Sprintf("Daily fat (%.1f g) exceeds the %.0f g reference value", m.FatG, referenceFatG),
			Metric:         "fat_g",
			Value:          m.FatG,
			Limit:          referenceFatG,
			PercentOfLimit: pct(m.FatG, referenceFatG),
		})
	}
	if m.CarbsG > referenceCarbsG {
		warnings = append(warnings, Warning{
			Code:           "carbs_over_reference",
			Severity:       Info,
			Message:        fmt.Sprintf("Daily carbs (%.1f g) exceed the %.0f g reference value", m.CarbsG, referenceCarbsG),
			Metric:         "carbs_g",
			Value:          m.CarbsG,
			Limit:          referenceCarbsG,
			PercentOfLimit: pct(m.CarbsG, referenceCarbsG),
		})
	}
	if m.Calories > 0 && m.ProteinG > 0 && m.ProteinG < referenceProteinG/2 {
		warnings = append(warnings, Warning{
			Code:     "protein_low",
			Severity: Info,
			Message:  fmt.Sprintf("Daily protein (%.1f g) is well under the %.0f g reference value", m.ProteinG, referenceProteinG),
			Metric:   "protein_g",
			Value:    m.ProteinG,
			Limit:    referenceProteinG,
		})
	}
	return warnings
}

func pct(value, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return value / limit * 100
}
