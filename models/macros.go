package models

import "math"

// Macros is the nutrition snapshot shape used everywhere: per 100 g on a
// reference entry, per item once scaled, and as the daily running total.
type Macros struct {
	Calories float64 `json:"calories" yaml:"calories"`
	ProteinG float64 `json:"protein_g" yaml:"protein_g"`
	CarbsG   float64 `json:"carbs_g" yaml:"carbs_g"`
	FatG     float64 `json:"fat_g" yaml:"fat_g"`
}

func (m Macros) Add(other Macros) Macros {
	return Macros{
		Calories: m.Calories + other.Calories,
		ProteinG: m.ProteinG + other.ProteinG,
		CarbsG:   m.CarbsG + other.CarbsG,
		FatG:     m.FatG + other.FatG,
	}
}

// Rounded applies the storage rounding policy: calories to the nearest
// integer, gram macros to one decimal place. Applied once when a value is
// stored or displayed, never during accumulation.
func (m Macros) Rounded() Macros {
	return Macros{
		Calories: math.Round(m.Calories),
		ProteinG: round1(m.ProteinG),
		CarbsG:   round1(m.CarbsG),
		FatG:     round1(m.FatG),
	}
}

func (m Macros) IsZero() bool {
	return m.Calories == 0 && m.ProteinG == 0 && m.CarbsG == 0 && m.FatG == 0
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
