package models

import "gorm.io/gorm"

// DailyProgress is the per-day history row kept in SQLite. It is a derived
// snapshot of the day's JSON log, upserted after every successful append, so
// it can always be rebuilt from the log files.
type DailyProgress struct {
	gorm.Model
	Date string `gorm:"uniqueIndex;not null" json:"date"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`

	Entries int `json:"entries"`
	Items   int `json:"items"`
}
