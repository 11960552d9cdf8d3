package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch_EmptyTerms(t *testing.T) {
	res := Match("some text about react and go", nil)
	assert.Empty(t, res.MatchedTerms)
	assert.Equal(t, 0.0, res.Coverage)
}

func TestMatch_CaseInsensitiveSubstring(t *testing.T) {
	res := Match("Built a React dashboard with TypeScript", []string{"react", "typescript"})
	assert.ElementsMatch(t, []string{"react", "typescript"}, res.MatchedTerms)
	assert.Equal(t, 1.0, res.Coverage)
}

func TestMatch_PartialCoverage(t *testing.T) {
	res := Match("Built a React dashboard", []string{"react", "kubernetes"})
	assert.Equal(t, []string{"react"}, res.MatchedTerms)
	assert.Equal(t, 0.5, res.Coverage)
}

func TestMatch_FuzzyTolerance(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		term    string
		matched bool
	}{
		{"one typo in short term", "experienced with reactt framework", "react", true},
		{"one dropped letter in token", "wrote pythn scripts", "python", true},
		{"two edits in long term", "knows javscrip well", "javascript", true},
		{"unrelated term", "worked with vue", "react", false},
		{"short terms get no fuzz", "went to the store", "go", false},
		{"exact short term", "writes go services", "go", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Match(tt.text, []string{tt.term})
			if tt.matched {
				assert.Equal(t, []string{tt.term}, res.MatchedTerms)
			} else {
				assert.Empty(t, res.MatchedTerms)
			}
		})
	}
}

func TestMatch_DuplicateTermsCountOnce(t *testing.T) {
	res := Match("react react react", []string{"react", "React", " REACT "})
	assert.Equal(t, []string{"react"}, res.MatchedTerms)
	assert.Equal(t, 1.0, res.Coverage)
}

func TestMatch_Deterministic(t *testing.T) {
	text := "senior backend engineer, Go and PostgreSQL, some Kafka"
	terms := []string{"go", "postgresql", "kafka", "redis"}

	first := Match(text, terms)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Match(text, terms))
	}
}

func TestFuzzyThreshold(t *testing.T) {
	assert.Equal(t, 0, fuzzyThreshold("go"))
	assert.Equal(t, 1, fuzzyThreshold("react"))
	assert.Equal(t, 1, fuzzyThreshold("golang"))
	assert.Equal(t, 2, fuzzyThreshold("javascript"))
}
