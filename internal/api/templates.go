package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deckforge/deckforge/pkg/brand"
	"github.com/deckforge/deckforge/pkg/color"
	"github.com/deckforge/deckforge/pkg/errors"
)

// handleCreateTemplate stores a new template. A body without an ID gets the
// hard-coded defaults merged in via brand.NewState before the overrides are
// applied; a full state document is stored as-is after validation.
func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	state, err := decodeState(r, brand.NewState())
	if err != nil {
		writeError(w, err)
		return
	}
	if issues := brand.Validate(state); brand.HasErrors(issues) {
		writeValidationIssues(w, issues)
		return
	}
	if err := s.templates.Put(r.Context(), state); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, state)
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	all, err := s.templates.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if all == nil {
		all = []brand.State{}
	}
	writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	state, err := s.templates.Get(r.Context(), chi.URLParam(r, "templateID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// handleUpdateTemplate replaces a stored template wholesale. The body is
// decoded over the stored state so partial documents only override what they
// name.
func (s *Server) handleUpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "templateID")
	current, err := s.templates.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	state, err := decodeState(r, current)
	if err != nil {
		writeError(w, err)
		return
	}
	state.ID = id
	if issues := brand.Validate(state); brand.HasErrors(issues) {
		writeValidationIssues(w, issues)
		return
	}
	if err := s.templates.Put(r.Context(), state); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := s.templates.Delete(r.Context(), chi.URLParam(r, "templateID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// paletteRequest is the body of POST /palette.
type paletteRequest struct {
	Harmony color.Harmony  `json:"harmony"`
	Mood    color.Mood     `json:"mood,omitempty"`
	Seed    string         `json:"seed,omitempty"`
	Current *color.Palette `json:"current,omitempty"`
	Locked  color.Locks    `json:"locked,omitempty"`
}

// handlePalette generates a harmony palette. With a seed color the palette
// hues derive from the seed; otherwise the base hue is random within the
// mood band.
func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	var req paletteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode palette request"))
		return
	}
	opts := color.Options{
		Harmony: req.Harmony,
		Mood:    req.Mood,
		Current: req.Current,
		Locked:  req.Locked,
	}
	var (
		p   color.Palette
		err error
	)
	if req.Seed != "" {
		p, err = color.GenerateFromSeed(req.Seed, opts)
	} else {
		p, err = color.Generate(opts)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func decodeState(r *http.Request, base brand.State) (brand.State, error) {
	state := base
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		return brand.State{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode template")
	}
	return state, nil
}

func writeValidationIssues(w http.ResponseWriter, issues []brand.Issue) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error": map[string]any{
			"code":    string(errors.ErrCodeValidation),
			"message": "template failed validation",
			"issues":  issues,
		},
	})
}
