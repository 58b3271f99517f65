package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"badgecv_api/internal/app/service"
	"badgecv_api/internal/common"
)

type ResumeHandler struct {
	resumeService *service.ResumeService
}

func NewResumeHandler(resumeService *service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

func (h *ResumeHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.createResume)
	r.Get("/{userID}", h.listResumes)
}

func (h *ResumeHandler) createResume(w http.ResponseWriter, r *http.Request) {
	var req service.CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resume, err := h.resumeService.CreateResume(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, resume)
}

func (h *ResumeHandler) listResumes(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	resumes, err := h.resumeService.ListResumes(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resumes)
}
