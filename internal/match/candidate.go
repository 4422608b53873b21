package match

import (
	"sort"
)

// Confidence thresholds for suggestions.
const (
	// DefaultMinScore is the minimum similarity for a value to be suggested.
	DefaultMinScore = 0.5
	// DefaultMaxDistance accepts short values whose score is low but whose
	// edit distance is still small ("pub" vs "public").
	DefaultMaxDistance = 2
)

// Candidate is an accepted value scored against an unrecognised input.
type Candidate struct {
	Value string
	// Score is the normalized similarity (0-1).
	Score float64
	// Distance is the edit distance between normalized forms.
	Distance int
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every accepted value against input.
// Returns candidates sorted by score (descending).
func Rank(input string, values []string) CandidateList {
	norm := NormalizeIdent(input)
	candidates := make(CandidateList, 0, len(values))

	for _, v := range values {
		normV := NormalizeIdent(v)
		candidates = append(candidates, Candidate{
			Value:    v,
			Score:    LevenshteinNormalized(norm, normV),
			Distance: Levenshtein(norm, normV),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns the accepted value closest to input, if any is close
// enough to be a plausible typo.
func Suggest(input string, values []string) (string, bool) {
	best := Rank(input, values).Best()
	if best == nil {
		return "", false
	}

	if best.Score < DefaultMinScore && best.Distance > DefaultMaxDistance {
		return "", false
	}

	return best.Value, true
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by value for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Value < c[j].Value
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}
