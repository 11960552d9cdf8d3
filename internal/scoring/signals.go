// Package scoring computes the per-candidate relevance signals and
// blends them into a final 0-100 score with match evidence.
package scoring

import (
	"math"
	"strings"
	"time"

	"github.com/jonathan/talent-search/internal/matching"
	"github.com/jonathan/talent-search/internal/types"
)

// Signal scoring parameters. The exact curves are configuration: the
// contract fixes shape (monotonic, bounded, position-sensitive) but not
// coefficients.
const (
	// projectCountCap is the project count at which the count component
	// of projectQuality saturates at 100.
	projectCountCap = 6

	// Relative weights of the two projectQuality components.
	projectCountWeight   = 0.6
	projectOverlapWeight = 0.4

	// Profile boosts for linked accounts, applied on top of the stored
	// completeness percentage and capped at 100.
	githubBoost   = 5
	linkedinBoost = 5
)

// expectedMonths maps a seniority band to the experience span, in
// months, at which the experience signal reaches its ceiling.
var expectedMonths = map[types.Seniority]int{
	types.SeniorityIntern: 6,
	types.SeniorityJunior: 24,
	types.SeniorityMid:    60,
	types.SenioritySenior: 120,
}

// SkillMatch scores the overlap between the requested skills and the
// candidate's skill set as a percentage. With no skills requested the
// signal is not applicable and reports 100; the aggregator excludes its
// weight rather than rewarding it.
func SkillMatch(q *types.SearchQuery, c *types.CandidateProfile) float64 {
	if !q.HasSkills() {
		return 100
	}
	res := matching.Match(strings.Join(c.Skills, " "), q.Skills)
	return res.Coverage * 100
}

// ExperienceFit maps the candidate's total experience months onto the
// requested seniority band. The curve rises with diminishing returns
// toward the band ceiling and is capped at 100, so over-qualification is
// never penalized.
func ExperienceFit(q *types.SearchQuery, c *types.CandidateProfile, now time.Time) float64 {
	ceiling := expectedMonths[q.Seniority]
	if ceiling <= 0 {
		ceiling = expectedMonths[types.SeniorityJunior]
	}
	months := c.TotalExperienceMonths(now)
	ratio := float64(months) / float64(ceiling)
	if ratio >= 1 {
		return 100
	}
	return 100 * math.Sqrt(ratio)
}

// ProjectQuality combines project count, saturating at projectCountCap,
// with the fraction of projects whose technologies intersect the
// requested skills. The overlap component is 0 when no skills were
// requested.
func ProjectQuality(q *types.SearchQuery, c *types.CandidateProfile) float64 {
	count := float64(len(c.Projects)) / projectCountCap
	if count > 1 {
		count = 1
	}

	overlap := 0.0
	if q.HasSkills() && len(c.Projects) > 0 {
		hits := 0
		for i := range c.Projects {
			techText := strings.Join(c.Projects[i].Technologies, " ")
			if res := matching.Match(techText, q.Skills); len(res.MatchedTerms) > 0 {
				hits++
			}
		}
		overlap = float64(hits) / float64(len(c.Projects))
	}

	return (projectCountWeight*count + projectOverlapWeight*overlap) * 100
}

// ProfileQuality is the stored completeness percentage boosted by fixed
// increments for linked GitHub and LinkedIn accounts, capped at 100.
func ProfileQuality(c *types.CandidateProfile) float64 {
	score := float64(c.ProfileCompleteness)
	if c.HasGithub() {
		score += githubBoost
	}
	if c.HasLinkedin() {
		score += linkedinBoost
	}
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// Signals computes the four independent sub-scores for one candidate.
// It has no side effects.
func Signals(q *types.SearchQuery, c *types.CandidateProfile, now time.Time) types.ScoreBreakdown {
	return types.ScoreBreakdown{
		SkillMatch:     SkillMatch(q, c),
		Experience:     ExperienceFit(q, c, now),
		ProjectQuality: ProjectQuality(q, c),
		ProfileQuality: ProfileQuality(c),
	}
}
