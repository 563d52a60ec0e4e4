package services

import "testing"

func TestMatchExactAndAlias(t *testing.T) {
	t.Parallel()
	table := testTable(t)

	m, ok := table.Match("chicken breast")
	if !ok || m.Entry.CanonicalName != "chicken breast" || m.Confidence != 1 {
		t.Fatalf("exact match: got %+v ok=%v", m, ok)
	}

	m, ok = table.Match("protein powder")
	if !ok || m.Entry.CanonicalName != "whey protein" {
		t.Fatalf("alias match: got %+v ok=%v", m, ok)
	}

	// plural normalization hits the index
	m, ok = table.Match("Bananas")
	if !ok || m.Entry.CanonicalName != "banana" {
		t.Fatalf("plural match: got %+v ok=%v", m, ok)
	}
}

func TestMatchFuzzyMisspelling(t *testing.T) {
	t.Parallel()
	table := testTable(t)

	m, ok := table.Match("chiken")
	if !ok {
		t.Fatalf("misspelled chicken should still match")
	}
	if m.Entry.CanonicalName != "chicken breast" {
		t.Fatalf("expected chicken breast, got %s", m.Entry.CanonicalName)
	}
	if m.Confidence < MatchConfidenceFloor {
		t.Fatalf("confidence %.3f below floor", m.Confidence)
	}
}

func TestMatchRejectsBelowFloor(t *testing.T) {
	t.Parallel()
	table := testTable(t)

	if m, ok := table.Match("unobtainium"); ok {
		t.Fatalf("expected no match, got %s (%.3f)", m.Entry.CanonicalName, m.Confidence)
	}
	if _, ok := table.Match(""); ok {
		t.Fatalf("empty input should not match")
	}
}

func TestMatchDeterministic(t *testing.T) {
	t.Parallel()
	table := testTable(t)

	first, ok1 := table.Match("chiken brest")
	for i := 0; i < 10; i++ {
		again, ok2 := table.Match("chiken brest")
		if ok1 != ok2 || again.Entry != first.Entry || again.Confidence != first.Confidence {
			t.Fatalf("match is not deterministic: %+v vs %+v", first, again)
		}
	}
}

func TestMatchTieBreakPrefersCloserLength(t *testing.T) {
	t.Parallel()

	const yaml = `
foods:
  - name: green tea leaf
    macros_per_100g: {calories: 1, protein_g: 0, carbs_g: 0, fat_g: 0}
  - name: green tea extract powder blend
    macros_per_100g: {calories: 2, protein_g: 0, carbs_g: 0, fat_g: 0}
`
	table, err := LoadReferenceTable(writeReferenceFile(t, yaml))
	if err != nil {
		t.Fatalf("load table: %v", err)
	}

	// both names contain every query token (overlap 1.0); the shorter
	// canonical name is closer in length to the input and must win
	m, ok := table.Match("green tea")
	if !ok || m.Entry.CanonicalName != "green tea leaf" {
		t.Fatalf("tie-break: got %+v ok=%v", m, ok)
	}
}
