package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/edulizanay/voice-food-logger/models"
	"github.com/edulizanay/voice-food-logger/utils"
)

// DayStore persists one JSON document per calendar day. The document layout
// is the storage contract consumed by the UI:
//
//	{"entries":[{"timestamp":..., "items":[...]}], "daily_macros":{...}}
//
// Appends are serialized per date and written atomically, so a failed append
// never leaves a partial or inconsistent daily total on disk.
type DayStore struct {
	dir string
	log *utils.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewDayStore(dir string, log *utils.Logger) (*DayStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return &DayStore{
		dir:   dir,
		log:   log.With("service", "DayStore"),
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// Append adds an entry to the given date's log, creating the day record on
// first use, and returns the updated record.
func (s *DayStore) Append(date string, entry models.Entry) (*models.DailyLog, error) {
	lock := s.dateLock(date)
	lock.Lock()
	defer lock.Unlock()

	day, err := s.readDay(date)
	if err != nil {
		return nil, err
	}
	AppendEntry(day, entry)

	if err := s.writeDay(date, day); err != nil {
		return nil, err
	}
	s.log.Info("appended entry",
		"date", date, "items", len(entry.Items), "entries", len(day.Entries))
	return day, nil
}

// Day returns the record for a date. A day with no entries yet is an empty
// record with zero totals, not an error.
func (s *DayStore) Day(date string) (*models.DailyLog, error) {
	lock := s.dateLock(date)
	lock.Lock()
	defer lock.Unlock()
	return s.readDay(date)
}

func (s *DayStore) dateLock(date string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[date]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[date] = lock
	}
	return lock
}

func (s *DayStore) path(date string) string {
	return filepath.Join(s.dir, date+".json")
}

func (s *DayStore) readDay(date string) (*models.DailyLog, error) {
	raw, err := os.ReadFile(s.path(date))
	if errors.Is(err, fs.ErrNotExist) {
		return &models.DailyLog{Date: date, Entries: []models.Entry{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read day log %s: %w", date, err)
	}
	day := &models.DailyLog{Date: date}
	if err := json.Unmarshal(raw, day); err != nil {
		return nil, fmt.Errorf("parse day log %s: %w", date, err)
	}
	return day, nil
}

// writeDay writes to a temp file in the same directory and renames it over
// the target, so readers never observe a half-written day.
func (s *DayStore) writeDay(date string, day *models.DailyLog) error {
	raw, err := json.MarshalIndent(day, "", "  ")
	if err != nil {
		return fmt.Errorf("encode day log %s: %w", date, err)
	}
	tmp, err := os.CreateTemp(s.dir, date+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp day log: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write day log %s: %w", date, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close day log %s: %w", date, err)
	}
	if err := os.Rename(tmp.Name(), s.path(date)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace day log %s: %w", date, err)
	}
	return nil
}
