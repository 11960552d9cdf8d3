package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/talent-search/internal/types"
)

// handleSearch runs one search request.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var raw types.RawSearchQuery
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := s.engine.Search(r.Context(), &raw)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleFilterOptions returns the distinct filterable values. The
// payload is snapshot-derived and safe to cache briefly client-side.
func (s *Server) handleFilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := s.engine.FilterOptions(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=300")
	s.jsonResponse(w, http.StatusOK, opts)
}

// handleCandidateDetail returns one full candidate profile. Scoring
// fields are query-relative and never part of this payload.
func (s *Server) handleCandidateDetail(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid candidate id format")
		return
	}

	candidate, err := s.engine.CandidateDetail(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleHealth returns server health and the snapshot size.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"candidates": s.engine.CandidateCount(),
	})
}
