package models

import "time"

// Entry is one logging event (one voice submission). Immutable after
// creation.
type Entry struct {
	Timestamp time.Time  `json:"timestamp"`
	Items     []FoodItem `json:"items"`
}

// DailyLog is the persisted record for one calendar day. DailyMacros is
// derived: it always equals the element-wise sum of every non-nil item macros
// across all entries, recomputed on every append.
type DailyLog struct {
	Date        string  `json:"-"`
	Entries     []Entry `json:"entries"`
	DailyMacros Macros  `json:"daily_macros"`
}

// DateKey is the storage key format for daily logs.
const DateKey = "2006-01-02"
