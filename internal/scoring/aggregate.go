package scoring

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/talent-search/internal/matching"
	"github.com/jonathan/talent-search/internal/types"
)

// maxHighlights caps the project and experience highlight lists.
const maxHighlights = 3

// Score blends the candidate's signals into a ScoredCandidate. The
// second return value is false when the final score falls below the
// query's minimum and the candidate must be dropped.
func Score(q *types.SearchQuery, c *types.CandidateProfile, now time.Time) (types.ScoredCandidate, bool) {
	breakdown := Signals(q, c, now)
	scores, highlights := keywordPass(q, c)
	scores.Skills = breakdown.SkillMatch
	scores.Department = departmentScore(q, c)

	weights := WeightsFor(q.Position)
	relevance := blend(q, weights, breakdown, scores, languageCoverage(q, c))
	score := int(math.Round(relevance))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	scored := types.ScoredCandidate{
		Candidate:       *c,
		ScoreBreakdown:  breakdown,
		MatchScores:     scores,
		MatchHighlights: highlights,
		RelevanceScore:  score,
		MatchLabel:      types.LabelForScore(score),
	}
	if q.Position != "" {
		scored.PositionRelevance = &types.PositionRelevance{Overall: relevance}
	}

	return scored, score >= q.MinScore
}

// blend computes the weighted sum of the signals that apply to this
// query. Signals with no input to measure (skill match without requested
// skills, keyword fields without keywords) contribute neither value nor
// weight; the remaining weights are renormalized so the result still
// spans the full 0-100 range.
//
// Requested languages are a soft signal with no slot of their own in the
// output schema: their coverage shares the skill-match weight, split
// evenly when both skills and languages were requested.
func blend(q *types.SearchQuery, w WeightVector, breakdown types.ScoreBreakdown, scores types.MatchScores, langScore float64) float64 {
	type contribution struct {
		weight float64
		value  float64
	}
	contributions := []contribution{
		{w.Experience, breakdown.Experience},
		{w.ProjectQuality, breakdown.ProjectQuality},
		{w.ProfileQuality, breakdown.ProfileQuality},
	}
	hasLanguages := len(q.Languages) > 0
	switch {
	case q.HasSkills() && hasLanguages:
		contributions = append(contributions,
			contribution{w.SkillMatch / 2, breakdown.SkillMatch},
			contribution{w.SkillMatch / 2, langScore})
	case q.HasSkills():
		contributions = append(contributions, contribution{w.SkillMatch, breakdown.SkillMatch})
	case hasLanguages:
		contributions = append(contributions, contribution{w.SkillMatch, langScore})
	}
	if q.HasKeywords() {
		contributions = append(contributions,
			contribution{w.BioKeyword, scores.Bio},
			contribution{w.ProjectKeyword, scores.Projects},
			contribution{w.ExperienceKeyword, scores.WorkExperiences},
		)
	}

	totalWeight := 0.0
	weighted := 0.0
	for _, c := range contributions {
		totalWeight += c.weight
		weighted += c.weight * c.value
	}
	if totalWeight <= 0 {
		return 0
	}
	return weighted / totalWeight
}

// languageCoverage scores the requested languages against the
// candidate's language set, 0-100. Zero when no languages were requested.
func languageCoverage(q *types.SearchQuery, c *types.CandidateProfile) float64 {
	if len(q.Languages) == 0 {
		return 0
	}
	res := matching.Match(strings.Join(c.Languages, " "), q.Languages)
	return res.Coverage * 100
}

// departmentScore is 100 on a case-insensitive department match, 0
// otherwise or when no department was requested.
func departmentScore(q *types.SearchQuery, c *types.CandidateProfile) float64 {
	if q.Department == "" {
		return 0
	}
	if strings.EqualFold(q.Department, c.Department) {
		return 100
	}
	return 0
}

// keywordPass runs the deep keyword search over bio, projects, and work
// experiences, producing both the per-field match scores and the
// human-readable highlight payload. All outputs are zero when the query
// has no keywords.
func keywordPass(q *types.SearchQuery, c *types.CandidateProfile) (types.MatchScores, types.MatchHighlights) {
	var scores types.MatchScores
	var highlights types.MatchHighlights
	if !q.HasKeywords() {
		return scores, highlights
	}

	bio := matching.Match(c.Bio, q.Keywords)
	scores.Bio = bio.Coverage * 100
	for _, term := range bio.MatchedTerms {
		highlights.BioMatches = append(highlights.BioMatches, types.BioMatch{Keyword: term})
	}

	scores.Projects, highlights.TopProjects = projectKeywords(q, c)
	scores.WorkExperiences, highlights.TopExperiences = experienceKeywords(q, c)
	return scores, highlights
}

// projectKeywords matches keywords against each project's title,
// description, and technologies. The field score is the best per-project
// coverage; the highlights are the top matching projects.
func projectKeywords(q *types.SearchQuery, c *types.CandidateProfile) (float64, []types.ProjectHighlight) {
	type hit struct {
		title    string
		coverage float64
	}
	hits := make([]hit, 0, len(c.Projects))
	best := 0.0
	for i := range c.Projects {
		p := &c.Projects[i]
		text := p.Title + " " + p.Description + " " + strings.Join(p.Technologies, " ")
		res := matching.Match(text, q.Keywords)
		if res.Coverage > best {
			best = res.Coverage
		}
		if res.Coverage > 0 {
			hits = append(hits, hit{title: p.Title, coverage: res.Coverage})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].coverage > hits[j].coverage })
	if len(hits) > maxHighlights {
		hits = hits[:maxHighlights]
	}
	top := make([]types.ProjectHighlight, 0, len(hits))
	for _, h := range hits {
		top = append(top, types.ProjectHighlight{ProjectTitle: h.title})
	}
	return best * 100, top
}

// experienceKeywords matches keywords against each experience's
// position, company, and description.
func experienceKeywords(q *types.SearchQuery, c *types.CandidateProfile) (float64, []types.ExperienceHighlight) {
	type hit struct {
		position string
		company  string
		coverage float64
	}
	hits := make([]hit, 0, len(c.Experiences))
	best := 0.0
	for i := range c.Experiences {
		e := &c.Experiences[i]
		text := e.Position + " " + e.CompanyName + " " + e.Description
		res := matching.Match(text, q.Keywords)
		if res.Coverage > best {
			best = res.Coverage
		}
		if res.Coverage > 0 {
			hits = append(hits, hit{position: e.Position, company: e.CompanyName, coverage: res.Coverage})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].coverage > hits[j].coverage })
	if len(hits) > maxHighlights {
		hits = hits[:maxHighlights]
	}
	top := make([]types.ExperienceHighlight, 0, len(hits))
	for _, h := range hits {
		top = append(top, types.ExperienceHighlight{Position: h.position, Company: h.company})
	}
	return best * 100, top
}
