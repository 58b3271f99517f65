package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"badgecv_api/internal/app/service"
	"badgecv_api/internal/common"
)

type RecommendationHandler struct {
	recommendationService *service.RecommendationService
}

func NewRecommendationHandler(recommendationService *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

func (h *RecommendationHandler) RegisterRoutes(r chi.Router) {
	r.Get("/badges/{userID}", h.badgeRecommendations)
}

func (h *RecommendationHandler) badgeRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	recommendations, err := h.recommendationService.GetBadgeRecommendations(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, recommendations)
}
