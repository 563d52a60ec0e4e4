package services

import (
	"strings"

	"github.com/edulizanay/voice-food-logger/models"
)

// MatchConfidenceFloor is the minimum similarity score for a fuzzy match to
// be accepted. Below it the matcher reports no match, which is a valid
// terminal outcome, not an error.
const MatchConfidenceFloor = 0.6

type FoodMatch struct {
	Entry      *models.NutritionEntry
	Confidence float64
}

// Match resolves free-text food input to a reference entry. Exact lookups on
// the normalized name index win immediately; otherwise every entry is scored
// against the input and the best score above the floor is returned. Ties
// prefer the entry whose canonical name is closest in length to the input.
func (t *ReferenceTable) Match(foodText string) (FoodMatch, bool) {
	query := normalizeFoodName(foodText)
	if query == "" {
		return FoodMatch{}, false
	}

	if entry, ok := t.byName[query]; ok {
		return FoodMatch{Entry: entry, Confidence: 1}, true
	}

	var (
		best     *models.NutritionEntry
		bestSim  float64
		bestDiff int
	)
	for _, entry := range t.entries {
		sim := entrySimilarity(query, entry)
		diff := lengthDiff(query, normalizeFoodName(entry.CanonicalName))
		if best == nil || sim > bestSim || (sim == bestSim && diff < bestDiff) {
			best = entry
			bestSim = sim
			bestDiff = diff
		}
	}
	if best == nil || bestSim < MatchConfidenceFloor {
		return FoodMatch{}, false
	}
	return FoodMatch{Entry: best, Confidence: bestSim}, true
}

// entrySimilarity scores the query against the canonical name and every
// alias, keeping the best of edit similarity and token overlap per name.
func entrySimilarity(query string, entry *models.NutritionEntry) float64 {
	best := nameSimilarity(query, normalizeFoodName(entry.CanonicalName))
	for _, alias := range entry.Aliases {
		if s := nameSimilarity(query, normalizeFoodName(alias)); s > best {
			best = s
		}
	}
	return best
}

func nameSimilarity(query, name string) float64 {
	if name == "" {
		return 0
	}
	edit := editSimilarity(query, name)
	overlap := tokenOverlap(query, name)
	if overlap > edit {
		return overlap
	}
	return edit
}

// editSimilarity is 1 - levenshtein/maxlen, in [0,1].
func editSimilarity(a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein(a, b))/float64(longest)
}

// tokenOverlap is the share of query tokens present in the candidate name.
func tokenOverlap(query, name string) float64 {
	queryTokens := strings.Fields(query)
	if len(queryTokens) == 0 {
		return 0
	}
	nameSet := map[string]bool{}
	for _, tok := range strings.Fields(name) {
		nameSet[tok] = true
	}
	matched := 0
	for _, tok := range queryTokens {
		if nameSet[tok] {
			matched++
		}
	}
	return float64(matched) / float64(len(queryTokens))
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func lengthDiff(a, b string) int {
	d := len(a) - len(b)
	if d < 0 {
		d = -d
	}
	return d
}

// normalizeFoodName lowercases, trims, collapses whitespace and strips
// trailing plurals token by token, so "Eggs" and "egg" hit the same index
// slot.
func normalizeFoodName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	tokens := strings.Fields(s)
	for i, tok := range tokens {
		tokens[i] = singularize(tok)
	}
	return strings.Join(tokens, " ")
}

func singularize(tok string) string {
	switch {
	case len(tok) > 3 && strings.HasSuffix(tok, "ies"):
		return tok[:len(tok)-3] + "y"
	case len(tok) > 3 && strings.HasSuffix(tok, "s") && !strings.HasSuffix(tok, "ss"):
		return tok[:len(tok)-1]
	default:
		return tok
	}
}
