// Package matching provides the fuzzy term matching primitive shared by
// the signal scorers and the keyword deep-search pass.
package matching

import (
	"strings"
	"unicode"

	"github.com/xrash/smetrics"
)

// Edit distance thresholds by term length. Short terms get no fuzz at
// all; "go" must not match "to".
const (
	minFuzzyTermLen   = 3
	shortTermMaxLen   = 6
	shortTermDistance = 1
	longTermDistance  = 2
)

// Result reports which query terms were found in a text and what
// fraction of the requested terms that represents.
type Result struct {
	MatchedTerms []string
	Coverage     float64
}

// Match finds occurrences of terms inside text. A term matches when it
// appears as a substring of the lower-cased text, or when it is within a
// small edit distance of a token of the text (distance 1 for terms up to
// six characters, 2 for longer terms). Coverage is |matched| / |terms|,
// 0 when terms is empty. Identical inputs always produce identical
// output.
func Match(text string, terms []string) Result {
	if len(terms) == 0 {
		return Result{}
	}

	lowered := strings.ToLower(text)
	tokens := tokenize(lowered)

	matched := make([]string, 0, len(terms))
	seen := make(map[string]bool, len(terms))
	total := 0
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		total++
		if matchesTerm(lowered, tokens, term) {
			matched = append(matched, term)
		}
	}

	if total == 0 {
		return Result{}
	}
	return Result{
		MatchedTerms: matched,
		Coverage:     float64(len(matched)) / float64(total),
	}
}

// matchesTerm checks one normalized term against the text and its tokens.
func matchesTerm(lowered string, tokens []string, term string) bool {
	if strings.Contains(lowered, term) {
		return true
	}

	threshold := fuzzyThreshold(term)
	if threshold == 0 {
		return false
	}
	for _, token := range tokens {
		// A token wildly longer or shorter than the term can never be
		// within the threshold; skip the distance computation.
		if abs(len(token)-len(term)) > threshold {
			continue
		}
		if smetrics.WagnerFischer(token, term, 1, 1, 1) <= threshold {
			return true
		}
	}
	return false
}

// fuzzyThreshold returns the allowed edit distance for a term, scaled to
// its length.
func fuzzyThreshold(term string) int {
	switch {
	case len(term) < minFuzzyTermLen:
		return 0
	case len(term) <= shortTermMaxLen:
		return shortTermDistance
	default:
		return longTermDistance
	}
}

// tokenize splits already lower-cased text on any non-letter,
// non-digit rune.
func tokenize(lowered string) []string {
	return strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
