package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"ciencia-backend-go/internal/models"
	"ciencia-backend-go/internal/repo"
)

type AdministratorCreateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdministratorUpdateRequest struct {
	Email    string  `json:"email"`
	Password *string `json:"password"`
}

func (s *Server) ListAdministrators(w http.ResponseWriter, r *http.Request) {
	admins, err := repo.GetAllAdministrators(s.DB)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]AdministratorDTO{"items": toAdministratorDTOs(admins)})
}

func (s *Server) CreateAdministrator(w http.ResponseWriter, r *http.Request) {
	var req AdministratorCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || strings.TrimSpace(req.Password) == "" {
		WriteError(w, http.StatusBadRequest, "Email e senha são obrigatórios.")
		return
	}
	exists, err := repo.AdministratorEmailExists(s.DB, email, 0)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if exists {
		WriteError(w, http.StatusBadRequest, "Este email já está cadastrado.")
		return
	}
	hash, err := s.Tokens.HashPassword(req.Password)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	id, err := repo.InsertAdministrator(s.DB, models.Administrator{Email: email, Password: hash})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusCreated, AdministratorDTO{ID: id, Email: email})
}

func (s *Server) UpdateAdministrator(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "adminId"))
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req AdministratorUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		WriteError(w, http.StatusBadRequest, "Email é obrigatório.")
		return
	}
	existing, err := repo.GetAdministratorByID(s.DB, id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if existing == nil {
		WriteError(w, http.StatusNotFound, "Administrador não encontrado.")
		return
	}
	taken, err := repo.AdministratorEmailExists(s.DB, email, id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if taken {
		WriteError(w, http.StatusBadRequest, "Este email já está cadastrado.")
		return
	}

	// A missing password means "keep the current one"; the repository
	// always writes the full record.
	hash := existing.Password
	if req.Password != nil && strings.TrimSpace(*req.Password) != "" {
		hash, err = s.Tokens.HashPassword(*req.Password)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
	}
	updated := models.Administrator{ID: id, Email: email, Password: hash}
	ok, err = repo.UpdateAdministrator(s.DB, updated)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !ok {
		WriteError(w, http.StatusNotFound, "Administrador não encontrado.")
		return
	}
	WriteJSON(w, http.StatusOK, toAdministratorDTO(updated))
}

func (s *Server) DeleteAdministrator(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "adminId"))
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if id == CurrentAdminID(r) {
		WriteError(w, http.StatusBadRequest, "Não é possível excluir o próprio administrador.")
		return
	}
	ok, err := repo.DeleteAdministrator(s.DB, id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !ok {
		WriteError(w, http.StatusNotFound, "Administrador não encontrado.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
