package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/teakeeper/internal/common"
	"github.com/dmitrijs2005/teakeeper/internal/server/models"
)

type teaRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type teaResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func toTeaResponse(tea *models.Tea) teaResponse {
	return teaResponse{ID: tea.ID, Name: tea.Name, Price: tea.Price}
}

// writeTeaError maps tea service failures to responses. Not-found covers
// both a missing item and someone else's item; the body never tells which.
func (s *Server) writeTeaError(w http.ResponseWriter, req *http.Request, err error) {
	if errors.Is(err, common.ErrorNotFound) {
		respondError(w, http.StatusNotFound, "tea not found")
		return
	}
	s.logger.Error(req.Context(), "tea operation failed", "error", err)
	respondError(w, http.StatusInternalServerError, "server error")
}

func (s *Server) handleCreateTea(w http.ResponseWriter, req *http.Request) {

	principalID, ok := PrincipalID(req.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body teaRequest
	if err := decodeJSON(req, &body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	tea, err := s.teas.CreateTea(req.Context(), principalID, body.Name, body.Price)
	if err != nil {
		s.writeTeaError(w, req, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTeaResponse(tea))
}

func (s *Server) handleListTeas(w http.ResponseWriter, req *http.Request) {

	principalID, ok := PrincipalID(req.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	teas, err := s.teas.ListTeas(req.Context(), principalID)
	if err != nil {
		s.writeTeaError(w, req, err)
		return
	}

	result := make([]teaResponse, 0, len(teas))
	for _, tea := range teas {
		result = append(result, toTeaResponse(tea))
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetTea(w http.ResponseWriter, req *http.Request) {

	principalID, ok := PrincipalID(req.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	tea, err := s.teas.GetTea(req.Context(), chi.URLParam(req, "id"), principalID)
	if err != nil {
		s.writeTeaError(w, req, err)
		return
	}

	writeJSON(w, http.StatusOK, toTeaResponse(tea))
}

func (s *Server) handleUpdateTea(w http.ResponseWriter, req *http.Request) {

	principalID, ok := PrincipalID(req.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body teaRequest
	if err := decodeJSON(req, &body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	tea, err := s.teas.UpdateTea(req.Context(), chi.URLParam(req, "id"), principalID, body.Name, body.Price)
	if err != nil {
		s.writeTeaError(w, req, err)
		return
	}

	writeJSON(w, http.StatusOK, toTeaResponse(tea))
}

func (s *Server) handleDeleteTea(w http.ResponseWriter, req *http.Request) {

	principalID, ok := PrincipalID(req.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	tea, err := s.teas.DeleteTea(req.Context(), chi.URLParam(req, "id"), principalID)
	if err != nil {
		s.writeTeaError(w, req, err)
		return
	}

	writeJSON(w, http.StatusOK, toTeaResponse(tea))
}
