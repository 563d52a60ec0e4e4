package services

import (
	"errors"

	"github.com/edulizanay/voice-food-logger/models"

	"gorm.io/gorm"
)

// UpsertProgress snapshots a day record into the SQLite history table.
// Called after every successful append; the row is derived from the JSON log
// and can always be rebuilt from it.
func UpsertProgress(db *gorm.DB, day *models.DailyLog) error {
	items := 0
	for _, e := range day.Entries {
		items += len(e.Items)
	}
	dp := models.DailyProgress{
		Date:     day.Date,
		Calories: day.DailyMacros.Calories,
		Protein:  day.DailyMacros.ProteinG,
		Carbs:    day.DailyMacros.CarbsG,
		Fat:      day.DailyMacros.FatG,
		Entries:  len(day.Entries),
		Items:    items,
	}

	var existing models.DailyProgress
	err := db.Where("date = ?", day.Date).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(&dp).Error
	}
	if err != nil {
		return err
	}

	existing.Calories = dp.Calories
	existing.Protein = dp.Protein
	existing.Carbs = dp.Carbs
	existing.Fat = dp.Fat
	existing.Entries = dp.Entries
	existing.Items = dp.Items
	return db.Save(&existing).Error
}

// ListProgress returns the daily history, newest first.
func ListProgress(db *gorm.DB) ([]models.DailyProgress, error) {
	var rows []models.DailyProgress
	err := db.Order("date desc").Find(&rows).Error
	return rows, err
}

// ProgressForDate fetches one day's snapshot, nil when the day has no row.
func ProgressForDate(db *gorm.DB, date string) (*models.DailyProgress, error) {
	var row models.DailyProgress
	err := db.Where("date = ?", date).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
