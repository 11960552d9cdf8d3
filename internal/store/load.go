package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/talent-search/internal/schemas"
	"github.com/jonathan/talent-search/internal/types"
)

// Accepted date layouts in dataset files, tried in order.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// jsonCandidate is the wire shape of one dataset record. Dates arrive as
// strings and are parsed during conversion; everything else maps onto
// the domain profile directly.
type jsonCandidate struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	Email               string           `json:"email"`
	City                string           `json:"city"`
	Age                 int              `json:"age"`
	GithubURL           string           `json:"github_url"`
	LinkedinURL         string           `json:"linkedin_url"`
	School              string           `json:"school"`
	Department          string           `json:"department"`
	EducationLevel      string           `json:"education_level"`
	Bio                 string           `json:"bio"`
	Skills              []string         `json:"skills"`
	Languages           []string         `json:"languages"`
	ProfileCompleteness int              `json:"profile_completeness"`
	RegisteredAt        string           `json:"registered_at"`
	Projects            []types.Project  `json:"projects"`
	Experiences         []jsonExperience `json:"work_experiences"`
}

type jsonExperience struct {
	CompanyName string `json:"company_name"`
	Position    string `json:"position"`
	Description string `json:"description"`
	WorkType    string `json:"work_type"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsCurrent   bool   `json:"is_current"`
}

// LoadFile reads, schema-validates, and converts a candidate dataset
// file into a Snapshot.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	return LoadBytes(data)
}

// LoadBytes validates and converts raw dataset JSON into a Snapshot.
func LoadBytes(data []byte) (*Snapshot, error) {
	if err := schemas.ValidateCandidates(data); err != nil {
		return nil, err
	}

	var records []jsonCandidate
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse dataset JSON: %w", err)
	}

	candidates := make([]types.CandidateProfile, 0, len(records))
	for i, rec := range records {
		candidate, err := rec.toProfile()
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, rec.Name, err)
		}
		candidates = append(candidates, candidate)
	}
	return NewSnapshot(candidates), nil
}

func (r *jsonCandidate) toProfile() (types.CandidateProfile, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return types.CandidateProfile{}, fmt.Errorf("invalid id %q: %w", r.ID, err)
	}

	registeredAt := time.Time{}
	if r.RegisteredAt != "" {
		registeredAt, err = parseDate(r.RegisteredAt)
		if err != nil {
			return types.CandidateProfile{}, fmt.Errorf("invalid registered_at: %w", err)
		}
	}

	experiences := make([]types.WorkExperience, 0, len(r.Experiences))
	for _, e := range r.Experiences {
		exp, err := e.toExperience()
		if err != nil {
			return types.CandidateProfile{}, err
		}
		experiences = append(experiences, exp)
	}

	return types.CandidateProfile{
		ID:                  id,
		Name:                r.Name,
		Email:               r.Email,
		City:                r.City,
		Age:                 r.Age,
		GithubURL:           r.GithubURL,
		LinkedinURL:         r.LinkedinURL,
		School:              r.School,
		Department:          r.Department,
		EducationLevel:      r.EducationLevel,
		Bio:                 r.Bio,
		Skills:              r.Skills,
		Languages:           r.Languages,
		ProfileCompleteness: r.ProfileCompleteness,
		Projects:            r.Projects,
		Experiences:         experiences,
		RegisteredAt:        registeredAt,
	}, nil
}

func (e *jsonExperience) toExperience() (types.WorkExperience, error) {
	start, err := parseDate(e.StartDate)
	if err != nil {
		return types.WorkExperience{}, fmt.Errorf("invalid start_date in %q: %w", e.CompanyName, err)
	}

	exp := types.WorkExperience{
		CompanyName: e.CompanyName,
		Position:    e.Position,
		Description: e.Description,
		WorkType:    e.WorkType,
		StartDate:   start,
		IsCurrent:   e.IsCurrent,
	}
	// A current position cannot carry an end date; the flag wins.
	if !e.IsCurrent && e.EndDate != "" {
		end, err := parseDate(e.EndDate)
		if err != nil {
			return types.WorkExperience{}, fmt.Errorf("invalid end_date in %q: %w", e.CompanyName, err)
		}
		exp.EndDate = &end
	}
	return exp, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
