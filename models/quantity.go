package models

// Unit is the closed set of units the quantity parser can produce.
type Unit string

const (
	UnitGram       Unit = "gram"
	UnitKilogram   Unit = "kilogram"
	UnitCup        Unit = "cup"
	UnitTablespoon Unit = "tablespoon"
	UnitTeaspoon   Unit = "teaspoon"
	UnitOunce      Unit = "ounce"
	UnitCount      Unit = "count"
	UnitUnknown    Unit = "unknown"
)

// Quantity is a normalized spoken amount. Immutable once constructed; the
// parser never fails, worst case is (1, UnitUnknown).
type Quantity struct {
	Amount float64
	Unit   Unit
}
