package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"badgecv_api/internal/app/service"
	"badgecv_api/internal/common"
)

type BadgeHandler struct {
	badgeService *service.BadgeService
}

func NewBadgeHandler(badgeService *service.BadgeService) *BadgeHandler {
	return &BadgeHandler{badgeService: badgeService}
}

func (h *BadgeHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.createBadge)
	// The static /verify segment wins over the {userID} match below.
	r.Get("/verify/{badgeID}", h.verifyBadge)
	r.Get("/{userID}", h.listBadges)
}

func (h *BadgeHandler) createBadge(w http.ResponseWriter, r *http.Request) {
	var req service.CreateBadgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	badge, err := h.badgeService.CreateBadge(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, badge)
}

func (h *BadgeHandler) listBadges(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	badges, err := h.badgeService.ListBadges(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, badges)
}

func (h *BadgeHandler) verifyBadge(w http.ResponseWriter, r *http.Request) {
	badgeID := chi.URLParam(r, "badgeID")

	result, err := h.badgeService.VerifyBadge(r.Context(), badgeID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, result)
}
