package httpapi

import (
	"net/http"
	"strconv"

	"ciencia-backend-go/internal/models"
	"ciencia-backend-go/internal/services"
)

type AdministratorDTO struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type ExperimentDTO struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Materials      string  `json:"materials"`
	CoverImage     *string `json:"coverImage,omitempty"`
	ExplainerVideo *string `json:"explainerVideo,omitempty"`
}

type TeamMemberDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Cohort      string  `json:"cohort"`
	Role        string  `json:"role"`
	Photo       *string `json:"photo,omitempty"`
	SocialLinks *string `json:"socialLinks,omitempty"`
}

func toAdministratorDTO(admin models.Administrator) AdministratorDTO {
	// The password hash never leaves the server.
	return AdministratorDTO{ID: admin.ID, Email: admin.Email}
}

func toAdministratorDTOs(admins []models.Administrator) []AdministratorDTO {
	items := make([]AdministratorDTO, 0, len(admins))
	for _, admin := range admins {
		items = append(items, toAdministratorDTO(admin))
	}
	return items
}

func toExperimentDTO(exp models.Experiment) ExperimentDTO {
	return ExperimentDTO{
		ID:             exp.ID,
		Title:          exp.Title,
		Description:    exp.Description,
		Materials:      exp.Materials,
		CoverImage:     exp.CoverImage,
		ExplainerVideo: exp.ExplainerVideo,
	}
}

func toExperimentDTOs(exps []models.Experiment) []ExperimentDTO {
	items := make([]ExperimentDTO, 0, len(exps))
	for _, exp := range exps {
		items = append(items, toExperimentDTO(exp))
	}
	return items
}

func toTeamMemberDTO(member models.TeamMember) TeamMemberDTO {
	return TeamMemberDTO{
		ID:          member.ID,
		Name:        member.Name,
		Cohort:      member.Cohort,
		Role:        member.Role,
		Photo:       member.Photo,
		SocialLinks: member.SocialLinks,
	}
}

func toTeamMemberDTOs(members []models.TeamMember) []TeamMemberDTO {
	items := make([]TeamMemberDTO, 0, len(members))
	for _, member := range members {
		items = append(items, toTeamMemberDTO(member))
	}
	return items
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func parseInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func mapServiceError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	if serr, ok := err.(services.ServiceError); ok {
		WriteError(w, serr.Status, serr.Message)
		return true
	}
	return false
}
