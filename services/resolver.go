package services

import (
	"github.com/edulizanay/voice-food-logger/models"
	"github.com/edulizanay/voice-food-logger/utils"
)

// ParsedFood is one (food, quantity) pair as produced by the language-model
// parsing step. Quantity may be empty; the parser defaults it.
type ParsedFood struct {
	Food     string `json:"food"`
	Quantity string `json:"quantity"`
}

// Resolver runs each parsed pair through quantity parsing, food matching,
// unit conversion and macro scaling, producing one FoodItem per pair in
// input order. Unmatched foods and unscalable quantities come back as items
// with nil macros and an explanatory flag, never as errors.
type Resolver struct {
	table *ReferenceTable
	log   *utils.Logger
}

func NewResolver(table *ReferenceTable, log *utils.Logger) *Resolver {
	return &Resolver{table: table, log: log.With("service", "Resolver")}
}

func (r *Resolver) Resolve(pairs []ParsedFood) []models.FoodItem {
	items := make([]models.FoodItem, 0, len(pairs))
	for _, p := range pairs {
		items = append(items, r.resolveOne(p))
	}
	return items
}

func (r *Resolver) resolveOne(p ParsedFood) models.FoodItem {
	item := models.FoodItem{Food: p.Food, Quantity: p.Quantity}

	match, ok := r.table.Match(p.Food)
	if !ok {
		item.Flag = models.FlagFoodUnmatched
		r.log.Debug("food not matched", "food", p.Food)
		return item
	}
	item.Matched = match.Entry.CanonicalName

	q := ParseQuantity(p.Quantity)
	conv := ToGrams(q, match.Entry)
	if !conv.OK {
		item.Flag = models.FlagUnitUnrecognized
		r.log.Debug("quantity not scalable",
			"food", p.Food, "quantity", p.Quantity, "unit", string(q.Unit))
		return item
	}
	if conv.Clamped {
		item.Flag = models.FlagAmountClamped
		r.log.Warn("non-positive amount clamped", "food", p.Food, "quantity", p.Quantity)
	}

	scaled := ScaleMacros(match.Entry.Per100g, conv.Grams).Rounded()
	item.Macros = &scaled
	return item
}
