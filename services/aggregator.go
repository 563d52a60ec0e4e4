package services

import "github.com/edulizanay/voice-food-logger/models"

// AppendEntry adds one logging event to a day's record and recomputes the
// daily totals. Totals are always rebuilt from the full entry list, so the
// incremental value and a from-scratch recomputation cannot drift apart.
func AppendEntry(log *models.DailyLog, entry models.Entry) {
	log.Entries = append(log.Entries, entry)
	log.DailyMacros = SumDailyMacros(log.Entries)
}

// SumDailyMacros folds every item's macros across all entries. Items with
// nil macros contribute nothing; they are valid outcomes, not errors.
func SumDailyMacros(entries []models.Entry) models.Macros {
	var total models.Macros
	for _, e := range entries {
		for _, it := range e.Items {
			if it.Macros == nil {
				continue
			}
			total = total.Add(*it.Macros)
		}
	}
	// item macros are stored rounded, so the sum only needs float-dust
	// cleanup to stay re-derivable from disk
	return total.Rounded()
}
