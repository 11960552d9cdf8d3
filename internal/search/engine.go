// Package search orchestrates the full search pipeline: normalize,
// filter, score in parallel, aggregate, and rank.
package search

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/jonathan/talent-search/internal/filtering"
	"github.com/jonathan/talent-search/internal/query"
	"github.com/jonathan/talent-search/internal/ranking"
	"github.com/jonathan/talent-search/internal/scoring"
	"github.com/jonathan/talent-search/internal/store"
	"github.com/jonathan/talent-search/internal/types"
)

// Defaults for engine construction.
const (
	DefaultTimeout        = 5 * time.Second
	DefaultFilterCacheTTL = 5 * time.Minute
)

// Config tunes one Engine instance.
type Config struct {
	// PoolSize bounds the scoring worker pool. Zero means NumCPU.
	PoolSize int
	// Timeout is the per-request scoring budget.
	Timeout time.Duration
	// MaxLimit caps the page size a query may request.
	MaxLimit int
	// FilterCacheTTL bounds how stale cached filter options may get.
	FilterCacheTTL time.Duration
}

// Engine executes search requests against a candidate snapshot. Each
// request is independent and stateless; the only mutable state is the
// time-boxed filter options cache.
type Engine struct {
	snapshot   *store.Snapshot
	normalizer *query.Normalizer
	pool       *ants.Pool
	logger     *zap.Logger
	timeout    time.Duration
	cacheTTL   time.Duration

	mu           sync.Mutex
	cachedOpts   *types.FilterOptions
	cacheExpires time.Time
}

// New creates an Engine over the given snapshot.
func New(snapshot *store.Snapshot, cfg Config, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	size := cfg.PoolSize
	if size <= 0 {
		size = runtime.NumCPU()
	}
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	cacheTTL := cfg.FilterCacheTTL
	if cacheTTL <= 0 {
		cacheTTL = DefaultFilterCacheTTL
	}

	return &Engine{
		snapshot:   snapshot,
		normalizer: query.NewNormalizer(cfg.MaxLimit),
		pool:       pool,
		logger:     logger,
		timeout:    timeout,
		cacheTTL:   cacheTTL,
	}, nil
}

// Close releases the scoring worker pool.
func (e *Engine) Close() {
	e.pool.Release()
}

// Search runs the full pipeline for one raw query. Errors are
// *types.ValidationError or *types.TimeoutError; no partial results are
// returned on error.
func (e *Engine) Search(ctx context.Context, raw *types.RawSearchQuery) (*types.SearchResult, error) {
	q, err := e.normalizer.Normalize(raw)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	pool := filtering.Apply(q, e.snapshot.All(), now)

	scored, err := e.scoreAll(ctx, q, pool, now)
	if err != nil {
		return nil, err
	}

	return ranking.Rank(q, scored, now), nil
}

// scoreAll fans the surviving pool out over the worker pool and joins
// before ranking. Scoring different candidates has no data dependency,
// and the matcher is deterministic, so execution order never affects the
// output. A candidate whose scoring panics is logged and skipped rather
// than failing the request.
func (e *Engine) scoreAll(ctx context.Context, q *types.SearchQuery, pool []types.CandidateProfile, now time.Time) ([]types.ScoredCandidate, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	results := make([]*types.ScoredCandidate, len(pool))
	var wg sync.WaitGroup
	for i := range pool {
		if ctx.Err() != nil {
			break
		}
		i := i
		wg.Add(1)
		submitErr := e.pool.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					e.logger.Warn("candidate scoring failed, skipping",
						zap.String("candidate_id", pool[i].ID.String()),
						zap.Any("panic", r))
				}
			}()
			if ctx.Err() != nil {
				return
			}
			if sc, ok := scoring.Score(q, &pool[i], now); ok {
				results[i] = &sc
			}
		})
		if submitErr != nil {
			wg.Done()
			e.logger.Warn("failed to submit scoring task", zap.Error(submitErr))
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return nil, &types.TimeoutError{Budget: e.timeout}
	}
	if ctx.Err() != nil {
		return nil, &types.TimeoutError{Budget: e.timeout}
	}

	scored := make([]types.ScoredCandidate, 0, len(pool))
	for _, r := range results {
		if r != nil {
			scored = append(scored, *r)
		}
	}
	return scored, nil
}

// CandidateDetail returns the full profile for one candidate,
// independent of any search context. Scoring fields are query-relative
// and never exposed here.
func (e *Engine) CandidateDetail(_ context.Context, id uuid.UUID) (*types.CandidateProfile, error) {
	c, ok := e.snapshot.Get(id)
	if !ok {
		return nil, &types.NotFoundError{ID: id}
	}
	return c, nil
}

// FilterOptions returns the distinct known values for the filterable
// categorical fields. The result is computed from the snapshot, cached
// with a TTL, and safe to cache client-side as well.
func (e *Engine) FilterOptions(_ context.Context) (*types.FilterOptions, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cachedOpts != nil && time.Now().Before(e.cacheExpires) {
		return e.cachedOpts, nil
	}

	opts := e.collectOptions()
	e.cachedOpts = opts
	e.cacheExpires = time.Now().Add(e.cacheTTL)
	return opts, nil
}

func (e *Engine) collectOptions() *types.FilterOptions {
	cities := make(map[string]bool)
	levels := make(map[string]bool)
	departments := make(map[string]bool)
	languages := make(map[string]bool)
	workTypes := make(map[string]bool)

	for _, c := range e.snapshot.All() {
		addDistinct(cities, c.City)
		addDistinct(levels, c.EducationLevel)
		addDistinct(departments, c.Department)
		for _, l := range c.Languages {
			addDistinct(languages, l)
		}
		for i := range c.Experiences {
			addDistinct(workTypes, c.Experiences[i].WorkType)
		}
	}

	return &types.FilterOptions{
		Cities:          sortedKeys(cities),
		EducationLevels: sortedKeys(levels),
		Departments:     sortedKeys(departments),
		Languages:       sortedKeys(languages),
		WorkTypes:       sortedKeys(workTypes),
		Positions:       scoring.Positions(),
	}
}

func addDistinct(set map[string]bool, value string) {
	if value != "" {
		set[value] = true
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CandidateCount reports the snapshot size, for health reporting.
func (e *Engine) CandidateCount() int {
	return e.snapshot.Len()
}
