package services

import (
	"os"
	"path/filepath"
	"testing"
)

// testReferenceYAML mirrors the shipped mock table closely enough for the
// pipeline tests, including the README example foods.
const testReferenceYAML = `
foods:
  - name: chicken breast
    aliases: [chicken, grilled chicken]
    macros_per_100g: {calories: 165, protein_g: 31.0, carbs_g: 0.0, fat_g: 3.6}
    default_serving_g: 120
  - name: whey protein
    aliases: [protein powder, whey]
    macros_per_100g: {calories: 120, protein_g: 24.0, carbs_g: 3.0, fat_g: 1.5}
    default_serving_g: 30
  - name: brown rice
    macros_per_100g: {calories: 112, protein_g: 2.6, carbs_g: 23.5, fat_g: 0.9}
    density_g_per_ml: 0.42
    default_serving_g: 150
  - name: egg
    aliases: [eggs]
    macros_per_100g: {calories: 155, protein_g: 13.0, carbs_g: 1.1, fat_g: 11.0}
    default_serving_g: 50
  - name: banana
    macros_per_100g: {calories: 89, protein_g: 1.1, carbs_g: 22.8, fat_g: 0.3}
    default_serving_g: 118
  - name: almonds
    macros_per_100g: {calories: 579, protein_g: 21.2, carbs_g: 21.6, fat_g: 49.9}
`

func writeReferenceFile(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foods.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write reference file: %v", err)
	}
	return path
}

func testTable(t *testing.T) *ReferenceTable {
	t.Helper()
	table, err := LoadReferenceTable(writeReferenceFile(t, testReferenceYAML))
	if err != nil {
		t.Fatalf("load reference table: %v", err)
	}
	return table
}
