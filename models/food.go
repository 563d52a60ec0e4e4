package models

// NutritionEntry is one record of the static reference table. Loaded once at
// startup and shared read-only across requests.
type NutritionEntry struct {
	CanonicalName string   `yaml:"name"`
	Aliases       []string `yaml:"aliases"`
	Per100g       Macros   `yaml:"macros_per_100g"`
	// DensityGPerML enables volume to mass conversion. Zero means unknown,
	// and volume quantities for this food are treated as unscalable.
	DensityGPerML float64 `yaml:"density_g_per_ml"`
	// DefaultServingG is the fallback mass for count-based quantities
	// ("two eggs"). Zero means no per-unit mass is known.
	DefaultServingG float64 `yaml:"default_serving_g"`
}

// ItemFlag explains why an item carries null macros. Flags are valid terminal
// outcomes, not errors.
type ItemFlag string

const (
	FlagUnitUnrecognized ItemFlag = "unit_unrecognized"
	FlagFoodUnmatched    ItemFlag = "food_unmatched"
	// FlagAmountClamped marks a non-positive spoken amount that was clamped
	// to a minimum instead of failing.
	FlagAmountClamped ItemFlag = "amount_clamped"
)

// FoodItem is one resolved line of a logging event. The json tags are the
// storage file contract; matched/flag are omitted when unset so the core
// shape round-trips unchanged.
type FoodItem struct {
	Food     string   `json:"food"`
	Quantity string   `json:"quantity"`
	Macros   *Macros  `json:"macros"`
	Matched  string   `json:"matched,omitempty"`
	Flag     ItemFlag `json:"flag,omitempty"`
}
