// Package ranking sorts, paginates, and summarizes scored candidates.
package ranking

import (
	"sort"
	"time"

	"github.com/jonathan/talent-search/internal/types"
)

// educationRank orders education levels for the education sort.
var educationRank = map[string]int{
	"doctorate":   4,
	"masters":     3,
	"university":  2,
	"high_school": 1,
}

// Rank sorts scored according to the query's sort field, computes stats
// over the full set, and cuts the requested page. now anchors experience
// spans for the experience sort and stats.
func Rank(q *types.SearchQuery, scored []types.ScoredCandidate, now time.Time) *types.SearchResult {
	sortCandidates(q.SortBy, scored, now)

	stats := computeStats(scored, now)
	page, pagination := paginate(scored, q.Page, q.Limit)

	return &types.SearchResult{
		Talents:    page,
		Stats:      stats,
		Pagination: pagination,
	}
}

// sortCandidates orders the full scored set by the requested field.
// Relevance ties break on profile completeness so equally scored
// candidates with richer profiles surface first.
func sortCandidates(by types.SortField, scored []types.ScoredCandidate, now time.Time) {
	less := func(i, j int) bool {
		a, b := &scored[i], &scored[j]
		switch by {
		case types.SortByExperience:
			return a.Candidate.TotalExperienceMonths(now) > b.Candidate.TotalExperienceMonths(now)
		case types.SortByProjects:
			return len(a.Candidate.Projects) > len(b.Candidate.Projects)
		case types.SortByEducation:
			return educationRank[a.Candidate.EducationLevel] > educationRank[b.Candidate.EducationLevel]
		case types.SortByNewest:
			return a.Candidate.RegisteredAt.After(b.Candidate.RegisteredAt)
		default: // relevance
			if a.RelevanceScore != b.RelevanceScore {
				return a.RelevanceScore > b.RelevanceScore
			}
			return a.Candidate.ProfileCompleteness > b.Candidate.ProfileCompleteness
		}
	}
	sort.SliceStable(scored, less)
}

// paginate cuts one page out of the full set. A page past the end yields
// an empty slice with HasNext false, not an error.
func paginate(scored []types.ScoredCandidate, page, limit int) ([]types.ScoredCandidate, types.Pagination) {
	total := len(scored)
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return scored[start:end], types.Pagination{
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
		HasPrev:    page > 1,
		HasNext:    page*limit < total,
	}
}

// computeStats summarizes the full scored set: count, average relevance,
// average experience months, and the label distribution.
func computeStats(scored []types.ScoredCandidate, now time.Time) types.SearchStats {
	stats := types.SearchStats{
		Total:             len(scored),
		ScoreDistribution: make(map[types.MatchLabel]int),
	}
	if len(scored) == 0 {
		return stats
	}

	scoreSum := 0
	expSum := 0
	for i := range scored {
		scoreSum += scored[i].RelevanceScore
		expSum += scored[i].Candidate.TotalExperienceMonths(now)
		stats.ScoreDistribution[scored[i].MatchLabel]++
	}
	stats.AverageScore = float64(scoreSum) / float64(len(scored))
	stats.AverageExperience = float64(expSum) / float64(len(scored))
	return stats
}
