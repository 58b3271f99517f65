package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"

	"badgecv_api/internal/api/handler"
	"badgecv_api/internal/app/service"
	"badgecv_api/internal/common"
	"badgecv_api/internal/common/security"
)

func NewRouter(
	jwt *security.JWT,
	authService *service.AuthService,
	badgeService *service.BadgeService,
	resumeService *service.ResumeService,
	analyticsService *service.AnalyticsService,
	recommendationService *service.RecommendationService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Parses "Authorization: Bearer T" and puts claims in context.
	// Enforcement happens per-route via middleware.Authenticator.
	r.Use(jwtauth.Verifier(jwt.TokenAuth()))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(api chi.Router) {
		api.Get("/", func(w http.ResponseWriter, r *http.Request) {
			common.RespondWithJSON(w, http.StatusOK, map[string]string{
				"message": "BadgeCV API v1.0 - Credential Intelligence Platform",
			})
		})

		authHandler := handler.NewAuthHandler(authService)
		api.Route("/auth", authHandler.RegisterRoutes)

		badgeHandler := handler.NewBadgeHandler(badgeService)
		api.Route("/badges", badgeHandler.RegisterRoutes)

		resumeHandler := handler.NewResumeHandler(resumeService)
		api.Route("/resumes", resumeHandler.RegisterRoutes)

		analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
		api.Route("/analytics", analyticsHandler.RegisterRoutes)

		recommendationHandler := handler.NewRecommendationHandler(recommendationService)
		api.Route("/recommendations", recommendationHandler.RegisterRoutes)

		publicHandler := handler.NewPublicHandler(badgeService)
		api.Route("/public", publicHandler.RegisterRoutes)
	})

	return r
}
