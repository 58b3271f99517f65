package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"badgecv_api/internal/common"
	"badgecv_api/internal/domain/model"
	"badgecv_api/internal/domain/repository"
)

// badgeListLimit caps every per-user badge listing.
const badgeListLimit = 100

const demoBadgeID = "demo-badge-aws-sa"

type BadgeService struct {
	badgeRepo repository.BadgeRepository
}

func NewBadgeService(badgeRepo repository.BadgeRepository) *BadgeService {
	return &BadgeService{badgeRepo: badgeRepo}
}

type CreateBadgeRequest struct {
	UserID            string     `json:"user_id"`
	Name              string     `json:"name"`
	Issuer            string     `json:"issuer"`
	Description       string     `json:"description"`
	ImageURL          string     `json:"image_url"`
	IssuedDate        time.Time  `json:"issued_date"`
	ExpiryDate        *time.Time `json:"expiry_date,omitempty"`
	Skills            []string   `json:"skills"`
	VerificationURL   string     `json:"verification_url"`
	BadgeClass        string     `json:"badge_class"`
	Evidence          string     `json:"evidence,omitempty"`
	Verified          *bool      `json:"verified,omitempty"`
	VerificationScore *float64   `json:"verification_score,omitempty"`
}

func (s *BadgeService) CreateBadge(ctx context.Context, req CreateBadgeRequest) (*model.Badge, error) {
	if req.UserID == "" || req.Name == "" || req.Issuer == "" {
		return nil, common.Errorf("missing required fields for badge creation: %w", common.ErrBadRequest)
	}

	badge := &model.Badge{
		ID:                uuid.NewString(), // ids are always server-generated
		UserID:            req.UserID,
		Name:              req.Name,
		Issuer:            req.Issuer,
		Description:       req.Description,
		ImageURL:          req.ImageURL,
		IssuedDate:        req.IssuedDate,
		ExpiryDate:        req.ExpiryDate,
		Skills:            req.Skills,
		VerificationURL:   req.VerificationURL,
		BadgeClass:        req.BadgeClass,
		Evidence:          req.Evidence,
		Verified:          true,
		VerificationScore: 1.0,
	}
	if req.Verified != nil {
		badge.Verified = *req.Verified
	}
	if req.VerificationScore != nil {
		badge.VerificationScore = *req.VerificationScore
	}
	if badge.Skills == nil {
		badge.Skills = []string{}
	}
	if badge.IssuedDate.IsZero() {
		badge.IssuedDate = time.Now().UTC()
	}

	if err := s.badgeRepo.Create(ctx, badge); err != nil {
		return nil, fmt.Errorf("failed to create badge: %w", err)
	}
	return badge, nil
}

func (s *BadgeService) ListBadges(ctx context.Context, userID string) ([]model.Badge, error) {
	badges, err := s.badgeRepo.FindByUserID(ctx, userID, badgeListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}
	return badges, nil
}

func (s *BadgeService) VerifyBadge(ctx context.Context, badgeID string) (*model.VerificationResult, error) {
	badge, err := s.badgeRepo.FindByID(ctx, badgeID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sum := sha256.Sum256([]byte(badge.ID + now.Format(time.RFC3339Nano)))

	return &model.VerificationResult{
		BadgeID:           badge.ID,
		Name:              badge.Name,
		Issuer:            badge.Issuer,
		Verified:          true,
		VerificationScore: 1.0,
		VerificationHash:  hex.EncodeToString(sum[:]),
		VerifiedAt:        now,
		NotExpired:        badge.ExpiryDate == nil || badge.ExpiryDate.After(now),
	}, nil
}

// GetPublicBadge serves the public badge page: one atomic view counter
// increment, then the updated record.
func (s *BadgeService) GetPublicBadge(ctx context.Context, badgeID string) (*model.Badge, error) {
	return s.badgeRepo.IncrementViews(ctx, badgeID)
}

// SeedDemoBadge inserts the demo badge at startup if it is not present
// yet.
func (s *BadgeService) SeedDemoBadge(ctx context.Context) error {
	_, err := s.badgeRepo.FindByID(ctx, demoBadgeID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("failed to check demo badge: %w", err)
	}

	now := time.Now().UTC()
	expiry := now.AddDate(3, 0, 0)
	demo := &model.Badge{
		ID:                demoBadgeID,
		UserID:            "demo-user",
		Name:              "AWS Certified Solutions Architect",
		Issuer:            "Amazon Web Services",
		Description:       "Validates expertise in designing distributed systems on AWS",
		ImageURL:          "https://images.credly.com/aws-certified-solutions-architect.png",
		IssuedDate:        now,
		ExpiryDate:        &expiry,
		Skills:            []string{"AWS", "Cloud Architecture", "EC2", "S3"},
		VerificationURL:   "https://aws.amazon.com/verification",
		BadgeClass:        "certification",
		Verified:          true,
		VerificationScore: 1.0,
	}
	if err := s.badgeRepo.Create(ctx, demo); err != nil {
		return fmt.Errorf("failed to seed demo badge: %w", err)
	}
	return nil
}
