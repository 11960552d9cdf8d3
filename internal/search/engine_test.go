package search

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-search/internal/store"
	"github.com/jonathan/talent-search/internal/types"
)

func testSnapshot() *store.Snapshot {
	start := time.Now().AddDate(-4, 0, 0)
	return store.NewSnapshot([]types.CandidateProfile{
		{
			ID:                  uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Name:                "Ada Gopher",
			Email:               "ada@example.com",
			City:                "istanbul",
			Age:                 29,
			GithubURL:           "https://github.com/ada",
			Department:          "computer engineering",
			EducationLevel:      "masters",
			Bio:                 "Backend engineer building distributed systems in Go",
			Skills:              []string{"go", "postgresql", "docker"},
			Languages:           []string{"english", "turkish"},
			ProfileCompleteness: 90,
			Projects: []types.Project{
				{Title: "Order Service", Technologies: []string{"go", "postgresql"}},
			},
			Experiences: []types.WorkExperience{
				{CompanyName: "Acme", Position: "Backend Developer", Description: "Built Go microservices", WorkType: "remote", StartDate: start, IsCurrent: true},
			},
			RegisteredAt: time.Now().AddDate(-1, 0, 0),
		},
		{
			ID:                  uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Name:                "Berk Frontend",
			Email:               "berk@example.com",
			City:                "ankara",
			Age:                 24,
			EducationLevel:      "university",
			Bio:                 "Frontend developer working with React",
			Skills:              []string{"javascript", "react", "css"},
			Languages:           []string{"turkish"},
			ProfileCompleteness: 55,
			RegisteredAt:        time.Now().AddDate(0, -2, 0),
		},
	})
}

func testEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	engine, err := New(testSnapshot(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(engine.Close)
	return engine
}

func TestSearch_RanksByRelevance(t *testing.T) {
	engine := testEngine(t, Config{MaxLimit: 100})

	result, err := engine.Search(context.Background(), &types.RawSearchQuery{
		Skills: []string{"go", "postgresql"},
	})
	require.NoError(t, err)

	require.Len(t, result.Talents, 2)
	assert.Equal(t, "Ada Gopher", result.Talents[0].Candidate.Name)
	assert.Greater(t, result.Talents[0].RelevanceScore, result.Talents[1].RelevanceScore)
	assert.Equal(t, 2, result.Stats.Total)
	assert.Equal(t, 1, result.Pagination.Page)
}

func TestSearch_HardFiltersNarrowThePool(t *testing.T) {
	engine := testEngine(t, Config{MaxLimit: 100})

	result, err := engine.Search(context.Background(), &types.RawSearchQuery{
		City: "istanbul",
	})
	require.NoError(t, err)

	require.Len(t, result.Talents, 1)
	assert.Equal(t, "Ada Gopher", result.Talents[0].Candidate.Name)
}

// Raising minScore can only shrink the result set, never grow it.
func TestSearch_MinScoreMonotonicity(t *testing.T) {
	engine := testEngine(t, Config{MaxLimit: 100})

	prev := -1
	for _, minScore := range []string{"0", "25", "50", "75", "100"} {
		result, err := engine.Search(context.Background(), &types.RawSearchQuery{
			Skills:   []string{"go"},
			MinScore: json.Number(minScore),
		})
		require.NoError(t, err)
		if prev >= 0 {
			assert.LessOrEqual(t, result.Stats.Total, prev, "min_score=%s", minScore)
		}
		prev = result.Stats.Total
	}
}

func TestSearch_InvalidQueryRejected(t *testing.T) {
	engine := testEngine(t, Config{MaxLimit: 100})

	_, err := engine.Search(context.Background(), &types.RawSearchQuery{
		Seniority: "principal",
	})

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "seniority", verr.Field)
}

func TestSearch_Deterministic(t *testing.T) {
	engine := testEngine(t, Config{MaxLimit: 100, PoolSize: 4})

	raw := &types.RawSearchQuery{
		Skills:   []string{"go", "react"},
		Keywords: []string{"microservices"},
	}
	first, err := engine.Search(context.Background(), raw)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		result, err := engine.Search(context.Background(), raw)
		require.NoError(t, err)
		require.Len(t, result.Talents, len(first.Talents))
		for j := range result.Talents {
			assert.Equal(t, first.Talents[j].Candidate.ID, result.Talents[j].Candidate.ID)
			assert.Equal(t, first.Talents[j].RelevanceScore, result.Talents[j].RelevanceScore)
		}
	}
}

func TestCandidateDetail(t *testing.T) {
	engine := testEngine(t, Config{MaxLimit: 100})

	c, err := engine.CandidateDetail(context.Background(), uuid.MustParse("11111111-1111-1111-1111-111111111111"))
	require.NoError(t, err)
	assert.Equal(t, "Ada Gopher", c.Name)

	_, err = engine.CandidateDetail(context.Background(), uuid.New())
	var nferr *types.NotFoundError
	assert.ErrorAs(t, err, &nferr)
}

func TestFilterOptions(t *testing.T) {
	engine := testEngine(t, Config{MaxLimit: 100})

	opts, err := engine.FilterOptions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"ankara", "istanbul"}, opts.Cities)
	assert.Equal(t, []string{"masters", "university"}, opts.EducationLevels)
	assert.Equal(t, []string{"computer engineering"}, opts.Departments)
	assert.Equal(t, []string{"english", "turkish"}, opts.Languages)
	assert.Equal(t, []string{"remote"}, opts.WorkTypes)
	assert.Contains(t, opts.Positions, "backend")
}

func TestFilterOptions_Cached(t *testing.T) {
	engine := testEngine(t, Config{MaxLimit: 100, FilterCacheTTL: time.Hour})

	first, err := engine.FilterOptions(context.Background())
	require.NoError(t, err)
	second, err := engine.FilterOptions(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestSearch_CanceledContext(t *testing.T) {
	engine := testEngine(t, Config{MaxLimit: 100})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Search(ctx, &types.RawSearchQuery{Skills: []string{"go"}})
	var terr *types.TimeoutError
	assert.ErrorAs(t, err, &terr)
}

func TestCandidateCount(t *testing.T) {
	engine := testEngine(t, Config{MaxLimit: 100})
	assert.Equal(t, 2, engine.CandidateCount())
}
