package services

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/edulizanay/voice-food-logger/models"

	"gopkg.in/yaml.v3"
)

// ReferenceTable is the static nutrition lookup table. Loaded once at
// startup, read-only for the process lifetime, shared across requests
// without locking.
type ReferenceTable struct {
	entries []*models.NutritionEntry
	// byName indexes normalized canonical names and aliases for O(1)
	// exact lookup before falling back to fuzzy scoring.
	byName map[string]*models.NutritionEntry
}

type referenceFile struct {
	Foods []*models.NutritionEntry `yaml:"foods"`
}

// LoadReferenceTable reads and validates the mock reference table. Malformed
// entries fail the load, not the later lookups.
func LoadReferenceTable(path string) (*ReferenceTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference table: %w", err)
	}

	var file referenceFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse reference table: %w", err)
	}
	if len(file.Foods) == 0 {
		return nil, fmt.Errorf("reference table %s contains no foods", path)
	}

	t := &ReferenceTable{byName: make(map[string]*models.NutritionEntry)}
	for i, e := range file.Foods {
		if err := validateEntry(e); err != nil {
			return nil, fmt.Errorf("reference table entry %d: %w", i, err)
		}
		t.entries = append(t.entries, e)
		t.byName[normalizeFoodName(e.CanonicalName)] = e
		for _, a := range e.Aliases {
			key := normalizeFoodName(a)
			if _, taken := t.byName[key]; !taken {
				t.byName[key] = e
			}
		}
	}

	// deterministic iteration order for fuzzy scoring
	sort.Slice(t.entries, func(i, j int) bool {
		return t.entries[i].CanonicalName < t.entries[j].CanonicalName
	})
	return t, nil
}

func validateEntry(e *models.NutritionEntry) error {
	if e == nil {
		return fmt.Errorf("empty entry")
	}
	if strings.TrimSpace(e.CanonicalName) == "" {
		return fmt.Errorf("missing name")
	}
	m := e.Per100g
	if m.Calories < 0 || m.ProteinG < 0 || m.CarbsG < 0 || m.FatG < 0 {
		return fmt.Errorf("%s: negative macro values", e.CanonicalName)
	}
	if e.DensityGPerML < 0 {
		return fmt.Errorf("%s: negative density", e.CanonicalName)
	}
	if e.DefaultServingG < 0 {
		return fmt.Errorf("%s: negative default serving", e.CanonicalName)
	}
	return nil
}

// Len reports the number of loaded foods.
func (t *ReferenceTable) Len() int {
	return len(t.entries)
}
