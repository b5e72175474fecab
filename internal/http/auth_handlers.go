package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"ciencia-backend-go/internal/models"
	"ciencia-backend-go/internal/repo"
	"ciencia-backend-go/internal/services"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
	ExpiresAt    int64            `json:"expiresAt"`
	Admin        AdministratorDTO `json:"admin"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || strings.TrimSpace(req.Password) == "" {
		WriteError(w, http.StatusBadRequest, "Email e senha são obrigatórios.")
		return
	}
	admin, err := repo.GetAdministratorByEmail(s.DB, email)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if admin == nil || !s.Tokens.VerifyPassword(req.Password, admin.Password) {
		WriteError(w, http.StatusUnauthorized, "Email ou senha inválidos.")
		return
	}
	s.writeTokenPair(w, *admin)
}

func (s *Server) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	token, claims, err := s.Tokens.ParseToken(strings.TrimSpace(req.RefreshToken))
	if err != nil || !token.Valid || claims["typ"] != "refresh" {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	adminID, ok := services.SubjectID(claims)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	admin, err := repo.GetAdministratorByID(s.DB, adminID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if admin == nil {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	s.writeTokenPair(w, *admin)
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	admin, err := repo.GetAdministratorByID(s.DB, CurrentAdminID(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if admin == nil {
		WriteError(w, http.StatusNotFound, "Administrador não encontrado.")
		return
	}
	WriteJSON(w, http.StatusOK, toAdministratorDTO(*admin))
}

func (s *Server) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if strings.TrimSpace(req.NewPassword) == "" {
		WriteError(w, http.StatusBadRequest, "A nova senha é obrigatória.")
		return
	}
	admin, err := repo.GetAdministratorByID(s.DB, CurrentAdminID(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if admin == nil {
		WriteError(w, http.StatusNotFound, "Administrador não encontrado.")
		return
	}
	if !s.Tokens.VerifyPassword(req.CurrentPassword, admin.Password) {
		WriteError(w, http.StatusBadRequest, "Senha atual incorreta.")
		return
	}
	hash, err := s.Tokens.HashPassword(req.NewPassword)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	updated := models.Administrator{ID: admin.ID, Email: admin.Email, Password: hash}
	ok, err := repo.UpdateAdministrator(s.DB, updated)
	if err != nil || !ok {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeTokenPair(w http.ResponseWriter, admin models.Administrator) {
	access, expiresAt, err := s.Tokens.CreateAccessToken(admin.ID, admin.Email)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	refresh, err := s.Tokens.CreateRefreshToken(admin.ID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
		Admin:        toAdministratorDTO(admin),
	})
}
