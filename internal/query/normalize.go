// Package query validates and canonicalizes raw filter input into a
// typed SearchQuery. It is the only entry point past which untyped
// request data may travel.
package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/talent-search/internal/types"
)

// Defaults and bounds applied during normalization.
const (
	DefaultLimit   = 20
	DefaultPage    = 1
	MaxLimit       = 100
	maxScore       = 100
	maxAgeCeiling  = 120
	maxIntMonths   = 1200
	maxProjectsCap = 100
)

// Normalizer canonicalizes raw search queries.
type Normalizer struct {
	maxLimit int
}

// NewNormalizer creates a Normalizer. maxLimit bounds the page size; a
// non-positive value falls back to MaxLimit.
func NewNormalizer(maxLimit int) *Normalizer {
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	return &Normalizer{maxLimit: maxLimit}
}

// Normalize validates raw and returns the canonical SearchQuery.
// Failures are *types.ValidationError naming the offending field.
// Normalize has no side effects.
func (n *Normalizer) Normalize(raw *types.RawSearchQuery) (*types.SearchQuery, error) {
	if raw == nil {
		raw = &types.RawSearchQuery{}
	}

	// Canonicalize enum casing before validation so "Junior" and
	// "junior" are the same request.
	canonical := *raw
	canonical.EducationLevel = normalizeString(raw.EducationLevel)
	canonical.Position = normalizeString(raw.Position)
	canonical.Seniority = normalizeString(raw.Seniority)
	canonical.SortBy = normalizeString(raw.SortBy)
	raw = &canonical

	if err := raw.Validate(); err != nil {
		return nil, &types.ValidationError{Field: enumField(err), Message: err.Error()}
	}

	q := &types.SearchQuery{
		Skills:         normalizeSet(raw.Skills),
		Keywords:       normalizeSet(raw.Keywords),
		Languages:      normalizeSet(raw.Languages),
		City:           normalizeString(raw.City),
		EducationLevel: normalizeString(raw.EducationLevel),
		Department:     normalizeString(raw.Department),
		WorkType:       normalizeString(raw.WorkType),
		Position:       types.Position(normalizeString(raw.Position)),
		Seniority:      types.Seniority(normalizeString(raw.Seniority)),
		SortBy:         types.SortField(normalizeString(raw.SortBy)),
		HasGithub:      raw.HasGithub,
		HasLinkedin:    raw.HasLinkedin,
	}

	if q.Seniority == "" {
		q.Seniority = types.SeniorityJunior
	}
	if q.SortBy == "" {
		q.SortBy = types.SortByRelevance
	}

	var err error
	if q.MinExperienceMonths, err = coerceInt(raw.MinExperienceMonths, "min_experience_months", 0, maxIntMonths); err != nil {
		return nil, err
	}
	if q.MinProjectCount, err = coerceInt(raw.MinProjectCount, "min_project_count", 0, maxProjectsCap); err != nil {
		return nil, err
	}
	if q.MinAge, err = coerceInt(raw.MinAge, "min_age", 0, maxAgeCeiling); err != nil {
		return nil, err
	}
	if q.MaxAge, err = coerceInt(raw.MaxAge, "max_age", 0, maxAgeCeiling); err != nil {
		return nil, err
	}
	if q.MinScore, err = coerceInt(raw.MinScore, "min_score", 0, maxScore); err != nil {
		return nil, err
	}
	if q.Page, err = coerceNonNegative(raw.Page, "page"); err != nil {
		return nil, err
	}
	if q.Limit, err = coerceNonNegative(raw.Limit, "limit"); err != nil {
		return nil, err
	}

	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > n.maxLimit {
		q.Limit = n.maxLimit
	}

	if q.MinAge > 0 && q.MaxAge > 0 && q.MinAge > q.MaxAge {
		return nil, &types.ValidationError{
			Field:   "min_age",
			Message: fmt.Sprintf("min_age %d exceeds max_age %d", q.MinAge, q.MaxAge),
		}
	}

	return q, nil
}

// coerceInt converts a string-or-number JSON value to an int clamped to
// [low, high]. Empty values yield zero; non-numeric input is a
// validation failure on the named field.
func coerceInt(n json.Number, field string, low, high int) (int, error) {
	s := strings.TrimSpace(n.String())
	if s == "" {
		return 0, nil
	}
	f, err := json.Number(s).Float64()
	if err != nil {
		return 0, &types.ValidationError{Field: field, Message: fmt.Sprintf("not a number: %q", s)}
	}
	v := int(f)
	if v < low {
		v = low
	}
	if v > high {
		v = high
	}
	return v, nil
}

// coerceNonNegative converts a string-or-number JSON value to an int and
// rejects negatives outright. Unlike the clamped range fields, a negative
// page or limit is a malformed request, not a value to silently repair.
func coerceNonNegative(n json.Number, field string) (int, error) {
	s := strings.TrimSpace(n.String())
	if s == "" {
		return 0, nil
	}
	f, err := json.Number(s).Float64()
	if err != nil {
		return 0, &types.ValidationError{Field: field, Message: fmt.Sprintf("not a number: %q", s)}
	}
	if f < 0 {
		return 0, &types.ValidationError{Field: field, Message: fmt.Sprintf("must not be negative, got %v", f)}
	}
	return int(f), nil
}

// normalizeString trims and lower-cases a scalar filter value; empty
// strings mean unset.
func normalizeString(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeSet trims, lower-cases, and deduplicates a string set while
// preserving first-seen order.
func normalizeSet(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = normalizeString(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// enumField extracts the offending field name from a validator error so
// callers see a stable, lower-cased field identifier.
func enumField(err error) string {
	msg := err.Error()
	for _, field := range []string{"EducationLevel", "Position", "Seniority", "SortBy"} {
		if strings.Contains(msg, field) {
			switch field {
			case "EducationLevel":
				return "education_level"
			case "SortBy":
				return "sort_by"
			default:
				return strings.ToLower(field)
			}
		}
	}
	return "query"
}
