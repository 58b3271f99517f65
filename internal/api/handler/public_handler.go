package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"badgecv_api/internal/app/service"
	"badgecv_api/internal/common"
)

// PublicHandler serves the unauthenticated badge pages linked from
// resumes and profiles.
type PublicHandler struct {
	badgeService *service.BadgeService
}

func NewPublicHandler(badgeService *service.BadgeService) *PublicHandler {
	return &PublicHandler{badgeService: badgeService}
}

func (h *PublicHandler) RegisterRoutes(r chi.Router) {
	r.Get("/badge/{badgeID}", h.publicBadge)
}

func (h *PublicHandler) publicBadge(w http.ResponseWriter, r *http.Request) {
	badgeID := chi.URLParam(r, "badgeID")

	badge, err := h.badgeService.GetPublicBadge(r.Context(), badgeID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, badge)
}
