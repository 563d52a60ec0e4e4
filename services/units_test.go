package services

import (
	"math"
	"testing"

	"github.com/edulizanay/voice-food-logger/models"
)

func TestToGramsMassUnits(t *testing.T) {
	t.Parallel()

	conv := ToGrams(models.Quantity{Amount: 0.5, Unit: models.UnitKilogram}, nil)
	if !conv.OK || conv.Grams != 500 {
		t.Fatalf("0.5 kg: got %+v, want 500 g", conv)
	}
	conv = ToGrams(models.Quantity{Amount: 2, Unit: models.UnitOunce}, nil)
	if !conv.OK || math.Abs(conv.Grams-56.699) > 0.001 {
		t.Fatalf("2 oz: got %+v, want ~56.699 g", conv)
	}
}

func TestToGramsVolumeNeedsDensity(t *testing.T) {
	t.Parallel()

	entry := &models.NutritionEntry{DensityGPerML: 1.0}
	conv := ToGrams(models.Quantity{Amount: 1, Unit: models.UnitCup}, entry)
	if !conv.OK || math.Abs(conv.Grams-236.588) > 0.001 {
		t.Fatalf("1 cup at density 1.0: got %+v, want 236.588 g", conv)
	}

	conv = ToGrams(models.Quantity{Amount: 1, Unit: models.UnitCup}, &models.NutritionEntry{})
	if conv.OK {
		t.Fatalf("cup without density should not convert, got %+v", conv)
	}
}

func TestToGramsCountFallsBackToServing(t *testing.T) {
	t.Parallel()

	entry := &models.NutritionEntry{DefaultServingG: 50}
	conv := ToGrams(models.Quantity{Amount: 3, Unit: models.UnitCount}, entry)
	if !conv.OK || conv.Grams != 150 {
		t.Fatalf("3 count at 50 g serving: got %+v, want 150 g", conv)
	}

	conv = ToGrams(models.Quantity{Amount: 3, Unit: models.UnitCount}, &models.NutritionEntry{})
	if conv.OK {
		t.Fatalf("count without default serving should not convert, got %+v", conv)
	}
}

func TestToGramsUnknownUnit(t *testing.T) {
	t.Parallel()

	conv := ToGrams(models.Quantity{Amount: 1, Unit: models.UnitUnknown}, &models.NutritionEntry{DefaultServingG: 50})
	if conv.OK {
		t.Fatalf("unknown unit should not convert, got %+v", conv)
	}
}

func TestToGramsClampsNonPositiveAmounts(t *testing.T) {
	t.Parallel()

	conv := ToGrams(models.Quantity{Amount: -2, Unit: models.UnitGram}, nil)
	if !conv.OK || !conv.Clamped {
		t.Fatalf("negative amount should clamp and flag, got %+v", conv)
	}
	if conv.Grams <= 0 {
		t.Fatalf("clamped conversion must stay positive, got %v", conv.Grams)
	}
}
