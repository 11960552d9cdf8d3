package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// Seniority identifies the experience band a search targets.
type Seniority string

// Seniority bands, ordered from least to most experienced.
const (
	SeniorityIntern Seniority = "intern"
	SeniorityJunior Seniority = "junior"
	SeniorityMid    Seniority = "mid"
	SenioritySenior Seniority = "senior"
)

// Position identifies a target role used to pick a scoring weight profile.
type Position string

// Known target positions.
const (
	PositionBackend     Position = "backend"
	PositionFrontend    Position = "frontend"
	PositionFullstack   Position = "fullstack"
	PositionMobile      Position = "mobile"
	PositionDataScience Position = "data-science"
	PositionDevops      Position = "devops"
	PositionUIUX        Position = "ui-ux"
)

// SortField selects the ordering of search results.
type SortField string

// Supported sort orders.
const (
	SortByRelevance  SortField = "relevance"
	SortByExperience SortField = "experience"
	SortByProjects   SortField = "projects"
	SortByEducation  SortField = "education"
	SortByNewest     SortField = "newest"
)

// RawSearchQuery is the untyped request body as clients send it.
// Numeric fields accept both JSON numbers and numeric strings; the
// normalizer coerces and clamps them. Nothing past the normalizer ever
// sees this type.
type RawSearchQuery struct {
	Skills              []string    `json:"skills,omitempty"`
	Keywords            []string    `json:"keywords,omitempty"`
	City                string      `json:"city,omitempty"`
	EducationLevel      string      `json:"education_level,omitempty" validate:"omitempty,oneof=high_school university masters doctorate"`
	Department          string      `json:"department,omitempty"`
	Languages           []string    `json:"languages,omitempty"`
	Position            string      `json:"position,omitempty" validate:"omitempty,oneof=backend frontend fullstack mobile data-science devops ui-ux"`
	Seniority           string      `json:"seniority,omitempty" validate:"omitempty,oneof=intern junior mid senior"`
	WorkType            string      `json:"work_type,omitempty"`
	MinExperienceMonths json.Number `json:"min_experience_months,omitempty"`
	MinProjectCount     json.Number `json:"min_project_count,omitempty"`
	MinAge              json.Number `json:"min_age,omitempty"`
	MaxAge              json.Number `json:"max_age,omitempty"`
	HasGithub           bool        `json:"has_github,omitempty"`
	HasLinkedin         bool        `json:"has_linkedin,omitempty"`
	MinScore            json.Number `json:"min_score,omitempty"`
	SortBy              string      `json:"sort_by,omitempty" validate:"omitempty,oneof=relevance experience projects education newest"`
	Page                json.Number `json:"page,omitempty"`
	Limit               json.Number `json:"limit,omitempty"`
}

// Validate validates the RawSearchQuery enums using the validator.
func (r *RawSearchQuery) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SearchQuery is the canonical, validated form of a search request.
// String sets are trimmed, lower-cased, and deduplicated; keyword order
// is preserved. Zero values mean "unset" for optional fields.
type SearchQuery struct {
	Skills              []string
	Keywords            []string
	City                string
	EducationLevel      string
	Department          string
	Languages           []string
	Position            Position // empty when no target position
	Seniority           Seniority
	WorkType            string
	MinExperienceMonths int
	MinProjectCount     int
	MinAge              int // 0 = unset
	MaxAge              int // 0 = unset
	HasGithub           bool
	HasLinkedin         bool
	MinScore            int
	SortBy              SortField
	Page                int
	Limit               int
}

// HasSkills reports whether the query requests any skills.
func (q *SearchQuery) HasSkills() bool { return len(q.Skills) > 0 }

// HasKeywords reports whether the query carries free-text keywords.
func (q *SearchQuery) HasKeywords() bool { return len(q.Keywords) > 0 }
