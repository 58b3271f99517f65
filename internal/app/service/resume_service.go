package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"badgecv_api/internal/common"
	"badgecv_api/internal/domain/model"
	"badgecv_api/internal/domain/repository"
)

const resumeListLimit = 100

type ResumeService struct {
	resumeRepo repository.ResumeRepository
}

func NewResumeService(resumeRepo repository.ResumeRepository) *ResumeService {
	return &ResumeService{resumeRepo: resumeRepo}
}

type CreateResumeRequest struct {
	UserID     string              `json:"user_id"`
	Name       string              `json:"name"`
	TemplateID string              `json:"template_id"`
	Content    model.ResumeContent `json:"content"`
	IsPublic   bool                `json:"is_public"`
}

func (s *ResumeService) CreateResume(ctx context.Context, req CreateResumeRequest) (*model.Resume, error) {
	if req.UserID == "" || req.Name == "" {
		return nil, common.Errorf("missing required fields for resume creation: %w", common.ErrBadRequest)
	}

	now := time.Now().UTC()
	resume := &model.Resume{
		ID:         uuid.NewString(),
		UserID:     req.UserID,
		Name:       req.Name,
		TemplateID: req.TemplateID,
		Content:    req.Content,
		CreatedAt:  now,
		UpdatedAt:  now,
		IsPublic:   req.IsPublic,
	}
	if resume.Content == nil {
		resume.Content = model.ResumeContent{}
	}

	if err := s.resumeRepo.Create(ctx, resume); err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return resume, nil
}

func (s *ResumeService) ListResumes(ctx context.Context, userID string) ([]model.Resume, error) {
	resumes, err := s.resumeRepo.FindByUserID(ctx, userID, resumeListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	return resumes, nil
}
