package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"ciencia-backend-go/internal/models"
	"ciencia-backend-go/internal/repo"
	"ciencia-backend-go/internal/services"
)

type ExperimentRequest struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Materials      string  `json:"materials"`
	CoverImage     *string `json:"coverImage"`
	ExplainerVideo *string `json:"explainerVideo"`
}

func (s *Server) AdminListExperiments(w http.ResponseWriter, r *http.Request) {
	items, err := repo.GetAllExperiments(s.DB)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]ExperimentDTO{"items": toExperimentDTOs(items)})
}

func (s *Server) AdminExperimentDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "experimentId"))
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	exp, err := repo.GetExperimentByID(s.DB, id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if exp == nil {
		WriteError(w, http.StatusNotFound, "Experimento não encontrado.")
		return
	}
	WriteJSON(w, http.StatusOK, toExperimentDTO(*exp))
}

func (s *Server) CreateExperiment(w http.ResponseWriter, r *http.Request) {
	var req ExperimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	materials := strings.TrimSpace(req.Materials)
	if title == "" || description == "" || materials == "" {
		WriteError(w, http.StatusBadRequest, "Título, descrição e materiais são obrigatórios.")
		return
	}
	exists, err := repo.ExperimentTitleExists(s.DB, title, 0)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if exists {
		WriteError(w, http.StatusBadRequest, "Já existe um experimento com este título.")
		return
	}
	exp := models.Experiment{
		Title:          title,
		Description:    description,
		Materials:      materials,
		CoverImage:     optionalValue(req.CoverImage),
		ExplainerVideo: optionalValue(req.ExplainerVideo),
	}
	id, err := repo.InsertExperiment(s.DB, exp)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	exp.ID = id
	WriteJSON(w, http.StatusCreated, toExperimentDTO(exp))
}

func (s *Server) UpdateExperiment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "experimentId"))
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req ExperimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	materials := strings.TrimSpace(req.Materials)
	if title == "" || description == "" || materials == "" {
		WriteError(w, http.StatusBadRequest, "Título, descrição e materiais são obrigatórios.")
		return
	}
	existing, err := repo.GetExperimentByID(s.DB, id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if existing == nil {
		WriteError(w, http.StatusNotFound, "Experimento não encontrado.")
		return
	}
	taken, err := repo.ExperimentTitleExists(s.DB, title, id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if taken {
		WriteError(w, http.StatusBadRequest, "Já existe um experimento com este título.")
		return
	}

	cover := resolveOptional(req.CoverImage, existing.CoverImage)
	video := resolveOptional(req.ExplainerVideo, existing.ExplainerVideo)
	if referenceChanged(existing.CoverImage, cover) {
		services.RemoveUpload(s.Config.MediaStoragePath, existing.CoverImage)
	}

	updated := models.Experiment{
		ID:             id,
		Title:          title,
		Description:    description,
		Materials:      materials,
		CoverImage:     cover,
		ExplainerVideo: video,
	}
	ok, err = repo.UpdateExperiment(s.DB, updated)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !ok {
		WriteError(w, http.StatusNotFound, "Experimento não encontrado.")
		return
	}
	WriteJSON(w, http.StatusOK, toExperimentDTO(updated))
}

func (s *Server) DeleteExperiment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "experimentId"))
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	existing, err := repo.GetExperimentByID(s.DB, id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if existing == nil {
		WriteError(w, http.StatusNotFound, "Experimento não encontrado.")
		return
	}
	services.RemoveUpload(s.Config.MediaStoragePath, existing.CoverImage)
	if _, err := repo.DeleteExperiment(s.DB, id); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// optionalValue trims an optional field on create: missing and blank both
// mean unset.
func optionalValue(raw *string) *string {
	if raw == nil {
		return nil
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil
	}
	return &value
}

// resolveOptional implements the update contract for optional references:
// a missing field keeps the stored value, an empty string clears it, and
// anything else replaces it.
func resolveOptional(raw *string, current *string) *string {
	if raw == nil {
		return current
	}
	return optionalValue(raw)
}

func referenceChanged(old, next *string) bool {
	if old == nil {
		return false
	}
	return next == nil || *next != *old
}
