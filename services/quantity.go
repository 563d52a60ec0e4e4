package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/edulizanay/voice-food-logger/models"
)

// fraction and article words the parser understands, e.g. "half a cup".
var fractionWords = map[string]float64{
	"half":    0.5,
	"quarter": 0.25,
	"a":       1,
	"an":      1,
}

// spelled-out counts as speech-to-text usually produces them.
var numberWords = map[string]float64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "dozen": 12,
}

var unitWords = map[string]models.Unit{
	"g": models.UnitGram, "gram": models.UnitGram, "grams": models.UnitGram,
	"kg": models.UnitKilogram, "kilo": models.UnitKilogram, "kilos": models.UnitKilogram,
	"kilogram": models.UnitKilogram, "kilograms": models.UnitKilogram,
	"cup": models.UnitCup, "cups": models.UnitCup,
	"tbsp": models.UnitTablespoon, "tablespoon": models.UnitTablespoon, "tablespoons": models.UnitTablespoon,
	"tsp": models.UnitTeaspoon, "teaspoon": models.UnitTeaspoon, "teaspoons": models.UnitTeaspoon,
	"oz": models.UnitOunce, "ounce": models.UnitOunce, "ounces": models.UnitOunce,
}

// trace quantities ("a pinch of salt") map to a small fixed mass instead of
// failing or zeroing out.
var traceWords = map[string]float64{
	"pinch": 0.36,
	"dash":  0.6,
}

// speech transcripts sometimes glue the number to the unit ("150g").
var gluedQuantity = regexp.MustCompile(`^(\d+(?:\.\d+)?)([a-z]+)$`)

// ParseQuantity turns a free-text quantity expression into a normalized
// Quantity. It never fails: with no number the amount defaults to 1, with no
// recognizable unit the item is COUNT (a number was spoken) or UNKNOWN
// (nothing usable at all) and downstream treats it accordingly.
func ParseQuantity(text string) models.Quantity {
	amount := 0.0
	haveAmount := false
	unit := models.UnitUnknown

	for _, tok := range strings.Fields(strings.ToLower(strings.TrimSpace(text))) {
		tok = strings.Trim(tok, ".,;:!?()")
		if tok == "" {
			continue
		}

		if m := gluedQuantity.FindStringSubmatch(tok); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil && !haveAmount {
				amount = v
				haveAmount = true
			}
			tok = m[2]
		}

		if v, err := strconv.ParseFloat(tok, 64); err == nil {
			if !haveAmount {
				amount = v
				haveAmount = true
			}
			continue
		}
		if v, ok := numberWords[tok]; ok {
			if !haveAmount {
				amount = v
				haveAmount = true
			}
			continue
		}
		if v, ok := fractionWords[tok]; ok {
			// "half a kilo": the article after a fraction is filler,
			// the fraction already fixed the amount.
			if !haveAmount {
				amount = v
				haveAmount = true
			}
			continue
		}
		if g, ok := traceWords[tok]; ok {
			if unit == models.UnitUnknown {
				unit = models.UnitGram
			}
			amount = g
			haveAmount = true
			continue
		}
		if u, ok := unitWords[tok]; ok && unit == models.UnitUnknown {
			unit = u
		}
	}

	if !haveAmount {
		amount = 1
	}
	if unit == models.UnitUnknown && haveAmount {
		unit = models.UnitCount
	}
	return models.Quantity{Amount: amount, Unit: unit}
}
