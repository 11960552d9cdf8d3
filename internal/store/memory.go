// Package store materializes candidate profiles into the in-memory
// snapshot the search engine scores against. Persistence lives with an
// external collaborator; this package only loads and indexes.
package store

import (
	"github.com/google/uuid"

	"github.com/jonathan/talent-search/internal/types"
)

// Snapshot is an immutable, fully materialized candidate set. All
// searches against one Snapshot see the same data; swapping datasets
// means building a new Snapshot.
type Snapshot struct {
	candidates []types.CandidateProfile
	byID       map[uuid.UUID]int
}

// NewSnapshot indexes the given profiles. The slice is retained;
// callers must not mutate it afterwards.
func NewSnapshot(candidates []types.CandidateProfile) *Snapshot {
	byID := make(map[uuid.UUID]int, len(candidates))
	for i := range candidates {
		byID[candidates[i].ID] = i
	}
	return &Snapshot{candidates: candidates, byID: byID}
}

// All returns every profile in the snapshot. Callers treat the result as
// read-only.
func (s *Snapshot) All() []types.CandidateProfile {
	return s.candidates
}

// Get returns the profile with the given id, or false when unknown.
func (s *Snapshot) Get(id uuid.UUID) (*types.CandidateProfile, bool) {
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &s.candidates[i], true
}

// Len returns the number of profiles in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.candidates)
}
