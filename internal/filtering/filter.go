// Package filtering applies the hard boolean constraints of a search
// query, shrinking the candidate universe before the scoring pass.
//
// Only cheap, exact constraints live here. Skills, keywords, department,
// and languages are soft signals: partial matches still carry relevance,
// so they are scored, never filtered.
package filtering

import (
	"strings"
	"time"

	"github.com/jonathan/talent-search/internal/types"
)

// Apply returns the candidates surviving every hard constraint of q.
// Output order is unspecified. now anchors experience span computation
// for current positions.
func Apply(q *types.SearchQuery, candidates []types.CandidateProfile, now time.Time) []types.CandidateProfile {
	pool := make([]types.CandidateProfile, 0, len(candidates))
	for i := range candidates {
		if survives(q, &candidates[i], now) {
			pool = append(pool, candidates[i])
		}
	}
	return pool
}

func survives(q *types.SearchQuery, c *types.CandidateProfile, now time.Time) bool {
	if q.City != "" && !strings.EqualFold(q.City, c.City) {
		return false
	}
	if q.EducationLevel != "" && !strings.EqualFold(q.EducationLevel, c.EducationLevel) {
		return false
	}
	if q.MinAge > 0 && c.Age < q.MinAge {
		return false
	}
	if q.MaxAge > 0 && c.Age > q.MaxAge {
		return false
	}
	if q.HasGithub && !c.HasGithub() {
		return false
	}
	if q.HasLinkedin && !c.HasLinkedin() {
		return false
	}
	if q.MinProjectCount > 0 && len(c.Projects) < q.MinProjectCount {
		return false
	}
	if q.MinExperienceMonths > 0 && c.TotalExperienceMonths(now) < q.MinExperienceMonths {
		return false
	}
	if q.WorkType != "" && !hasWorkType(c, q.WorkType) {
		return false
	}
	return true
}

// hasWorkType reports whether any work experience entry carries the
// requested work type.
func hasWorkType(c *types.CandidateProfile, workType string) bool {
	for i := range c.Experiences {
		if strings.EqualFold(c.Experiences[i].WorkType, workType) {
			return true
		}
	}
	return false
}
