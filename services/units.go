package services

import "github.com/edulizanay/voice-food-logger/models"

// Fixed conversion ratios. Mass units go straight to grams, volume units go
// to milliliters first and need the food's density to reach grams.
var massToGrams = map[models.Unit]float64{
	models.UnitGram:     1,
	models.UnitKilogram: 1000,
	models.UnitOunce:    28.3495,
}

var volumeToML = map[models.Unit]float64{
	models.UnitCup:        236.588,
	models.UnitTablespoon: 14.787,
	models.UnitTeaspoon:   4.929,
}

// minAmount is the clamp floor for non-positive spoken amounts. Clamping is
// a data-quality flag on the item, never a hard failure.
const minAmount = 0.001

type Conversion struct {
	Grams   float64
	OK      bool
	Clamped bool
}

// ToGrams derives a mass equivalent for a quantity against a reference
// entry. Count quantities fall back to the entry's default serving mass;
// unknown units and densityless volume conversions report not-OK so the
// caller can flag the item as unscalable instead of silently zeroing it.
func ToGrams(q models.Quantity, entry *models.NutritionEntry) Conversion {
	amount := q.Amount
	clamped := false
	if amount <= 0 {
		amount = minAmount
		clamped = true
	}

	if factor, ok := massToGrams[q.Unit]; ok {
		return Conversion{Grams: amount * factor, OK: true, Clamped: clamped}
	}
	if ml, ok := volumeToML[q.Unit]; ok {
		if entry == nil || entry.DensityGPerML <= 0 {
			return Conversion{Clamped: clamped}
		}
		return Conversion{Grams: amount * ml * entry.DensityGPerML, OK: true, Clamped: clamped}
	}
	if q.Unit == models.UnitCount {
		if entry == nil || entry.DefaultServingG <= 0 {
			return Conversion{Clamped: clamped}
		}
		return Conversion{Grams: amount * entry.DefaultServingG, OK: true, Clamped: clamped}
	}
	return Conversion{Clamped: clamped}
}
