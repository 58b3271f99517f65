package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"badgecv_api/internal/app/service"
	"badgecv_api/internal/common"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/skill-gap/{userID}", h.skillGap)
	r.Get("/badge-performance/{userID}", h.badgePerformance)
}

func (h *AnalyticsHandler) skillGap(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	jobTitle := r.URL.Query().Get("job_title")

	analysis, err := h.analyticsService.AnalyzeSkillGap(r.Context(), userID, jobTitle)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, analysis)
}

func (h *AnalyticsHandler) badgePerformance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	summary, err := h.analyticsService.GetBadgeAnalytics(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, summary)
}
