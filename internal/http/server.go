package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"

	"ciencia-backend-go/internal/config"
	"ciencia-backend-go/internal/services"
)

type Server struct {
	DB         *sqlx.DB
	Config     config.Config
	Tokens     services.TokenService
	MetricsHub *services.MetricsHub
}

func NewServer(db *sqlx.DB, cfg config.Config, hub *services.MetricsHub) *Server {
	tokens := services.TokenService{
		Secret:     []byte(cfg.JWTSecret),
		Issuer:     cfg.JWTIssuer,
		AccessTTL:  time.Duration(cfg.AccessTTLSeconds) * time.Second,
		RefreshTTL: time.Duration(cfg.RefreshTTLSeconds) * time.Second,
	}
	return &Server{
		DB:         db,
		Config:     cfg,
		Tokens:     tokens,
		MetricsHub: hub,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", s.Login)
		api.Post("/auth/refresh", s.Refresh)

		api.Route("/me", func(me chi.Router) {
			me.Use(WithAuth(s.Tokens))
			me.Get("/", s.Me)
			me.Put("/password", s.ChangePassword)
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(WithAuth(s.Tokens))
			admin.Get("/metrics/history", s.MetricsHistory)

			admin.Route("/administrators", func(admins chi.Router) {
				admins.Get("/", s.ListAdministrators)
				admins.Post("/", s.CreateAdministrator)
				admins.Put("/{adminId}", s.UpdateAdministrator)
				admins.Delete("/{adminId}", s.DeleteAdministrator)
			})

			admin.Route("/experiments", func(experiments chi.Router) {
				experiments.Get("/", s.AdminListExperiments)
				experiments.Post("/", s.CreateExperiment)
				experiments.Get("/{experimentId}", s.AdminExperimentDetail)
				experiments.Put("/{experimentId}", s.UpdateExperiment)
				experiments.Delete("/{experimentId}", s.DeleteExperiment)
			})

			admin.Route("/team", func(team chi.Router) {
				team.Get("/", s.AdminListTeamMembers)
				team.Post("/", s.CreateTeamMember)
				team.Get("/{memberId}", s.AdminTeamMemberDetail)
				team.Put("/{memberId}", s.UpdateTeamMember)
				team.Delete("/{memberId}", s.DeleteTeamMember)
			})
		})

		api.Route("/public", func(pub chi.Router) {
			pub.Get("/experiments", s.PublicExperiments)
			pub.Get("/experiments/search", s.SearchExperiments)
			pub.Get("/experiments/{experimentId}", s.PublicExperimentDetail)
			pub.Get("/team", s.PublicTeam)
			pub.Get("/team/{memberId}", s.PublicTeamMemberDetail)
			pub.Post("/visits", s.TrackVisit)
			pub.Get("/visits/count", s.VisitCount)
		})

		api.Route("/media", func(media chi.Router) {
			media.Use(WithAuth(s.Tokens))
			media.Post("/uploads/cover", s.UploadCover)
			media.Post("/uploads/photo", s.UploadPhoto)
		})
	})

	r.Get("/ws/metrics", s.MetricsSocket)

	fileServer := http.StripPrefix("/media/", http.FileServer(http.Dir(s.Config.MediaStoragePath)))
	r.Get("/media/*", fileServer.ServeHTTP)

	return r
}
