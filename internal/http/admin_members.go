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

type TeamMemberRequest struct {
	Name        string  `json:"name"`
	Cohort      string  `json:"cohort"`
	Role        string  `json:"role"`
	Photo       *string `json:"photo"`
	SocialLinks *string `json:"socialLinks"`
}

func (s *Server) AdminListTeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := repo.GetAllTeamMembers(s.DB)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]TeamMemberDTO{"items": toTeamMemberDTOs(members)})
}

func (s *Server) AdminTeamMemberDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "memberId"))
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	member, err := repo.GetTeamMemberByID(s.DB, id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if member == nil {
		WriteError(w, http.StatusNotFound, "Integrante não encontrado.")
		return
	}
	WriteJSON(w, http.StatusOK, toTeamMemberDTO(*member))
}

func (s *Server) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req TeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	name := strings.TrimSpace(req.Name)
	cohort := strings.TrimSpace(req.Cohort)
	role := strings.TrimSpace(req.Role)
	if name == "" || cohort == "" || role == "" {
		WriteError(w, http.StatusBadRequest, "Nome, turma e função são obrigatórios.")
		return
	}
	exists, err := repo.TeamMemberNameExists(s.DB, name, 0)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if exists {
		WriteError(w, http.StatusBadRequest, "Já existe um integrante com este nome.")
		return
	}
	member := models.TeamMember{
		Name:        name,
		Cohort:      cohort,
		Role:        role,
		Photo:       optionalValue(req.Photo),
		SocialLinks: optionalValue(req.SocialLinks),
	}
	id, err := repo.InsertTeamMember(s.DB, member)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	member.ID = id
	WriteJSON(w, http.StatusCreated, toTeamMemberDTO(member))
}

func (s *Server) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "memberId"))
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req TeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	name := strings.TrimSpace(req.Name)
	cohort := strings.TrimSpace(req.Cohort)
	role := strings.TrimSpace(req.Role)
	if name == "" || cohort == "" || role == "" {
		WriteError(w, http.StatusBadRequest, "Nome, turma e função são obrigatórios.")
		return
	}
	existing, err := repo.GetTeamMemberByID(s.DB, id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if existing == nil {
		WriteError(w, http.StatusNotFound, "Integrante não encontrado.")
		return
	}
	taken, err := repo.TeamMemberNameExists(s.DB, name, id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if taken {
		WriteError(w, http.StatusBadRequest, "Já existe um integrante com este nome.")
		return
	}

	photo := resolveOptional(req.Photo, existing.Photo)
	if referenceChanged(existing.Photo, photo) {
		services.RemoveUpload(s.Config.MediaStoragePath, existing.Photo)
	}

	updated := models.TeamMember{
		ID:          id,
		Name:        name,
		Cohort:      cohort,
		Role:        role,
		Photo:       photo,
		SocialLinks: resolveOptional(req.SocialLinks, existing.SocialLinks),
	}
	ok, err = repo.UpdateTeamMember(s.DB, updated)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !ok {
		WriteError(w, http.StatusNotFound, "Integrante não encontrado.")
		return
	}
	WriteJSON(w, http.StatusOK, toTeamMemberDTO(updated))
}

func (s *Server) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "memberId"))
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	existing, err := repo.GetTeamMemberByID(s.DB, id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if existing == nil {
		WriteError(w, http.StatusNotFound, "Integrante não encontrado.")
		return
	}
	services.RemoveUpload(s.Config.MediaStoragePath, existing.Photo)
	if _, err := repo.DeleteTeamMember(s.DB, id); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
