package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"ciencia-backend-go/internal/repo"
)

type VisitRequest struct {
	Path     *string `json:"path"`
	Referrer *string `json:"referrer"`
}

type VisitCountResponse struct {
	Total int `json:"total"`
}

func (s *Server) PublicExperiments(w http.ResponseWriter, r *http.Request) {
	items, err := repo.GetAllExperiments(s.DB)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]ExperimentDTO{"items": toExperimentDTOs(items)})
}

func (s *Server) PublicExperimentDetail(w http.ResponseWriter, r *http.Request) {
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

// SearchExperiments serves both public search boxes: ?material= matches the
// materials list, ?q= matches description or title. Blank terms return an
// empty result set rather than everything.
func (s *Server) SearchExperiments(w http.ResponseWriter, r *http.Request) {
	material := strings.TrimSpace(r.URL.Query().Get("material"))
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	switch {
	case material != "":
		items, err := repo.SearchExperimentsByMaterial(s.DB, material)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		WriteJSON(w, http.StatusOK, map[string][]ExperimentDTO{"items": toExperimentDTOs(items)})
	case term != "":
		items, err := repo.SearchExperimentsByDescription(s.DB, term)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		WriteJSON(w, http.StatusOK, map[string][]ExperimentDTO{"items": toExperimentDTOs(items)})
	default:
		WriteJSON(w, http.StatusOK, map[string][]ExperimentDTO{"items": {}})
	}
}

func (s *Server) PublicTeam(w http.ResponseWriter, r *http.Request) {
	cohort := strings.TrimSpace(r.URL.Query().Get("cohort"))
	role := strings.TrimSpace(r.URL.Query().Get("role"))
	switch {
	case cohort != "":
		items, err := repo.GetTeamMembersByCohort(s.DB, cohort)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		WriteJSON(w, http.StatusOK, map[string][]TeamMemberDTO{"items": toTeamMemberDTOs(items)})
	case role != "":
		items, err := repo.GetTeamMembersByRole(s.DB, role)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		WriteJSON(w, http.StatusOK, map[string][]TeamMemberDTO{"items": toTeamMemberDTOs(items)})
	default:
		items, err := repo.GetAllTeamMembers(s.DB)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		WriteJSON(w, http.StatusOK, map[string][]TeamMemberDTO{"items": toTeamMemberDTOs(items)})
	}
}

func (s *Server) PublicTeamMemberDetail(w http.ResponseWriter, r *http.Request) {
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

func (s *Server) TrackVisit(w http.ResponseWriter, r *http.Request) {
	var req VisitRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	ip := resolveClientIP(r)
	ua := trimString(r.Header.Get("User-Agent"), 512)
	path := trimString(ptrToString(req.Path), 255)
	ref := trimString(ptrToString(req.Referrer), 512)
	// Visit tracking is best effort: a failed insert is logged but never
	// turns a page view into an error.
	if _, err := s.DB.Exec(s.DB.Rebind(`
INSERT INTO site_visits (id, ip_address, user_agent, path, referrer, created_at)
VALUES (?,?,?,?,?,?)
`), uuid.NewString(), nullIfEmpty(ip), nullIfEmpty(ua), nullIfEmpty(path), nullIfEmpty(ref), time.Now().UTC()); err != nil {
		log.Printf("record visit: %v", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) VisitCount(w http.ResponseWriter, r *http.Request) {
	var total int
	if err := s.DB.Get(&total, `SELECT count(*) FROM site_visits`); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, VisitCountResponse{Total: total})
}

func resolveClientIP(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	return r.RemoteAddr
}

// trimString caps a header value at maxLen bytes without splitting a rune,
// so what reaches the store is always valid UTF-8.
func trimString(value string, maxLen int) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) <= maxLen {
		return trimmed
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(trimmed[cut]) {
		cut--
	}
	return trimmed[:cut]
}

func nullIfEmpty(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

func ptrToString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
