// Package types provides type definitions for structured data used throughout the talent search system.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a single portfolio project on a candidate profile.
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URLs         []string `json:"urls,omitempty"`
}

// WorkExperience represents one employment entry on a candidate profile.
// Invariant: IsCurrent implies EndDate is nil.
type WorkExperience struct {
	CompanyName string     `json:"company_name"`
	Position    string     `json:"position"`
	Description string     `json:"description,omitempty"`
	WorkType    string     `json:"work_type,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsCurrent   bool       `json:"is_current"`
}

// Months returns the length of the experience in whole months, using now
// as the end for current positions. Never negative.
func (w *WorkExperience) Months(now time.Time) int {
	end := now
	if !w.IsCurrent && w.EndDate != nil {
		end = *w.EndDate
	}
	if end.Before(w.StartDate) {
		return 0
	}
	years := end.Year() - w.StartDate.Year()
	months := int(end.Month()) - int(w.StartDate.Month())
	total := years*12 + months
	if total < 0 {
		return 0
	}
	return total
}

// CandidateProfile is the read-only input record the engine scores.
// Skills and Languages are canonical sets by the time a profile reaches
// the engine; any delimited-string storage format is the loader's concern.
type CandidateProfile struct {
	ID                  uuid.UUID        `json:"id"`
	Name                string           `json:"name"`
	Email               string           `json:"email"`
	City                string           `json:"city,omitempty"`
	Age                 int              `json:"age,omitempty"`
	GithubURL           string           `json:"github_url,omitempty"`
	LinkedinURL         string           `json:"linkedin_url,omitempty"`
	School              string           `json:"school,omitempty"`
	Department          string           `json:"department,omitempty"`
	EducationLevel      string           `json:"education_level,omitempty"`
	Bio                 string           `json:"bio,omitempty"`
	Skills              []string         `json:"skills,omitempty"`
	Languages           []string         `json:"languages,omitempty"`
	ProfileCompleteness int              `json:"profile_completeness"`
	Projects            []Project        `json:"projects,omitempty"`
	Experiences         []WorkExperience `json:"work_experiences,omitempty"`
	RegisteredAt        time.Time        `json:"registered_at"`
}

// HasGithub reports whether the profile links a GitHub account.
func (c *CandidateProfile) HasGithub() bool {
	return c.GithubURL != ""
}

// HasLinkedin reports whether the profile links a LinkedIn account.
func (c *CandidateProfile) HasLinkedin() bool {
	return c.LinkedinURL != ""
}

// TotalExperienceMonths sums the span of every work experience entry,
// using now for entries still in progress.
func (c *CandidateProfile) TotalExperienceMonths(now time.Time) int {
	total := 0
	for i := range c.Experiences {
		total += c.Experiences[i].Months(now)
	}
	return total
}
