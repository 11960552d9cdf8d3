package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-search/internal/types"
)

// Loader bulk-reads candidate profiles from PostgreSQL into a Snapshot.
// It is a read-only ingestion boundary; the engine never touches the
// database during a search.
type Loader struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Loader, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Loader{pool: pool}, nil
}

// Close closes the connection pool.
func (l *Loader) Close() {
	if l.pool != nil {
		l.pool.Close()
	}
}

// Load reads all candidate profiles with their projects and work
// experiences. The three tables are fetched concurrently and joined in
// memory by candidate id.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	var (
		profiles    []types.CandidateProfile
		projects    map[uuid.UUID][]types.Project
		experiences map[uuid.UUID][]types.WorkExperience
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profiles, err = l.loadProfiles(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = l.loadProjects(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		experiences, err = l.loadExperiences(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range profiles {
		profiles[i].Projects = projects[profiles[i].ID]
		profiles[i].Experiences = experiences[profiles[i].ID]
	}
	return NewSnapshot(profiles), nil
}

func (l *Loader) loadProfiles(ctx context.Context) ([]types.CandidateProfile, error) {
	rows, err := l.pool.Query(ctx,
		`SELECT id, name, email, COALESCE(city, ''), COALESCE(age, 0),
		        COALESCE(github_url, ''), COALESCE(linkedin_url, ''),
		        COALESCE(school, ''), COALESCE(department, ''),
		        COALESCE(education_level, ''), COALESCE(bio, ''),
		        COALESCE(skills, '{}'), COALESCE(languages, '{}'),
		        COALESCE(profile_completeness, 0), created_at
		 FROM candidates`)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	var profiles []types.CandidateProfile
	for rows.Next() {
		var c types.CandidateProfile
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.City, &c.Age,
			&c.GithubURL, &c.LinkedinURL, &c.School, &c.Department,
			&c.EducationLevel, &c.Bio, &c.Skills, &c.Languages,
			&c.ProfileCompleteness, &c.RegisteredAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		profiles = append(profiles, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return profiles, nil
}

func (l *Loader) loadProjects(ctx context.Context) (map[uuid.UUID][]types.Project, error) {
	rows, err := l.pool.Query(ctx,
		`SELECT candidate_id, title, COALESCE(description, ''),
		        COALESCE(technologies, '{}'), COALESCE(urls, '{}')
		 FROM projects
		 ORDER BY candidate_id, created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := make(map[uuid.UUID][]types.Project)
	for rows.Next() {
		var candidateID uuid.UUID
		var p types.Project
		if err := rows.Scan(&candidateID, &p.Title, &p.Description, &p.Technologies, &p.URLs); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects[candidateID] = append(projects[candidateID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}
	return projects, nil
}

func (l *Loader) loadExperiences(ctx context.Context) (map[uuid.UUID][]types.WorkExperience, error) {
	rows, err := l.pool.Query(ctx,
		`SELECT candidate_id, company_name, position, COALESCE(description, ''),
		        COALESCE(work_type, ''), start_date, end_date, is_current
		 FROM work_experiences
		 ORDER BY candidate_id, start_date`)
	if err != nil {
		return nil, fmt.Errorf("failed to query work experiences: %w", err)
	}
	defer rows.Close()

	experiences := make(map[uuid.UUID][]types.WorkExperience)
	for rows.Next() {
		var candidateID uuid.UUID
		var e types.WorkExperience
		var endDate *time.Time
		if err := rows.Scan(&candidateID, &e.CompanyName, &e.Position, &e.Description,
			&e.WorkType, &e.StartDate, &endDate, &e.IsCurrent); err != nil {
			return nil, fmt.Errorf("failed to scan work experience: %w", err)
		}
		if !e.IsCurrent {
			e.EndDate = endDate
		}
		experiences[candidateID] = append(experiences[candidateID], e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read work experiences: %w", err)
	}
	return experiences, nil
}
