package services

import "github.com/edulizanay/voice-food-logger/models"

// ScaleMacros scales a reference entry's per-100g macros linearly to the
// given mass. Full precision; the storage rounding policy is applied by the
// caller exactly once, via Macros.Rounded.
func ScaleMacros(per100g models.Macros, grams float64) models.Macros {
	factor := grams / 100
	return models.Macros{
		Calories: per100g.Calories * factor,
		ProteinG: per100g.ProteinG * factor,
		CarbsG:   per100g.CarbsG * factor,
		FatG:     per100g.FatG * factor,
	}
}
