package types

// MatchLabel is the discrete relevance tier derived from the final score.
type MatchLabel string

// Relevance tiers.
const (
	LabelExcellent MatchLabel = "excellent"
	LabelVeryGood  MatchLabel = "veryGood"
	LabelGood      MatchLabel = "good"
	LabelFair      MatchLabel = "fair"
	LabelWeak      MatchLabel = "weak"
)

// Label thresholds (inclusive lower bounds).
const (
	thresholdExcellent = 85
	thresholdVeryGood  = 70
	thresholdGood      = 55
	thresholdFair      = 40
)

// LabelForScore maps a relevance score to its match label.
func LabelForScore(score int) MatchLabel {
	switch {
	case score >= thresholdExcellent:
		return LabelExcellent
	case score >= thresholdVeryGood:
		return LabelVeryGood
	case score >= thresholdGood:
		return LabelGood
	case score >= thresholdFair:
		return LabelFair
	default:
		return LabelWeak
	}
}

// ScoreBreakdown holds the four independent signal sub-scores, each 0-100.
type ScoreBreakdown struct {
	SkillMatch     float64 `json:"skill_match"`
	Experience     float64 `json:"experience"`
	ProjectQuality float64 `json:"project_quality"`
	ProfileQuality float64 `json:"profile_quality"`
}

// MatchScores holds the per-field keyword match contributions, each 0-100.
// All keyword fields are 0 when the query supplied no keywords.
type MatchScores struct {
	Bio             float64 `json:"bio"`
	Skills          float64 `json:"skills"`
	Department      float64 `json:"department"`
	Projects        float64 `json:"projects"`
	WorkExperiences float64 `json:"work_experiences"`
}

// BioMatch records one keyword found in the candidate's bio.
type BioMatch struct {
	Keyword string `json:"keyword"`
}

// ProjectHighlight names a project that matched query keywords.
type ProjectHighlight struct {
	ProjectTitle string `json:"project_title"`
}

// ExperienceHighlight names a work experience that matched query keywords.
type ExperienceHighlight struct {
	Position string `json:"position"`
	Company  string `json:"company"`
}

// MatchHighlights is the human-readable evidence for why a candidate matched.
type MatchHighlights struct {
	BioMatches     []BioMatch            `json:"bio_matches,omitempty"`
	TopProjects    []ProjectHighlight    `json:"top_projects,omitempty"`
	TopExperiences []ExperienceHighlight `json:"top_experiences,omitempty"`
}

// PositionRelevance reports how well a candidate fits the requested
// target position. Present only when the query named a position.
type PositionRelevance struct {
	Overall float64 `json:"overall"`
}

// ScoredCandidate is one ranked search hit. Constructed fresh per
// request and immutable once returned.
type ScoredCandidate struct {
	Candidate         CandidateProfile   `json:"candidate"`
	ScoreBreakdown    ScoreBreakdown     `json:"score_breakdown"`
	MatchScores       MatchScores        `json:"match_scores"`
	MatchHighlights   MatchHighlights    `json:"match_highlights"`
	PositionRelevance *PositionRelevance `json:"position_relevance,omitempty"`
	RelevanceScore    int                `json:"relevance_score"`
	MatchLabel        MatchLabel         `json:"match_label"`
}

// SearchStats summarizes the full scored set, not just the current page.
type SearchStats struct {
	Total             int                `json:"total"`
	AverageScore      float64            `json:"average_score"`
	AverageExperience float64            `json:"average_experience"`
	ScoreDistribution map[MatchLabel]int `json:"score_distribution"`
}

// Pagination describes the requested page within the full result set.
type Pagination struct {
	Page       int  `json:"page"`
	TotalPages int  `json:"total_pages"`
	Total      int  `json:"total"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// SearchResult is the engine's response to one search request.
type SearchResult struct {
	Talents    []ScoredCandidate `json:"talents"`
	Stats      SearchStats       `json:"stats"`
	Pagination Pagination        `json:"pagination"`
}

// FilterOptions lists the distinct known values for the filterable
// categorical fields, for populating client-side selectors.
type FilterOptions struct {
	Cities          []string `json:"cities"`
	EducationLevels []string `json:"education_levels"`
	Departments     []string `json:"departments"`
	Languages       []string `json:"languages"`
	WorkTypes       []string `json:"work_types"`
	Positions       []string `json:"positions"`
}
