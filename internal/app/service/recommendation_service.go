package service

import (
	"context"
	"fmt"

	"badgecv_api/internal/domain/model"
	"badgecv_api/internal/domain/repository"
)

var defaultRelatedSkills = []string{"Programming", "Problem Solving"}

type RecommendationService struct {
	badgeRepo repository.BadgeRepository
}

func NewRecommendationService(badgeRepo repository.BadgeRepository) *RecommendationService {
	return &RecommendationService{badgeRepo: badgeRepo}
}

// GetBadgeRecommendations returns the fixed recommendation list; the
// first entry relates to up to two of the user's existing skills.
func (s *RecommendationService) GetBadgeRecommendations(ctx context.Context, userID string) ([]model.Recommendation, error) {
	badges, err := s.badgeRepo.FindByUserID(ctx, userID, badgeListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load badges: %w", err)
	}

	related := firstSkills(badges, 2)
	if len(related) == 0 {
		related = defaultRelatedSkills
	}

	return []model.Recommendation{
		{
			BadgeName:      "Kubernetes Administrator",
			Issuer:         "Cloud Native Computing Foundation",
			Reason:         "Builds on your existing credentials",
			Priority:       "High",
			RelatedTo:      related,
			EstimatedHours: 40,
		},
		{
			BadgeName:      "Terraform Associate",
			Issuer:         "HashiCorp",
			Reason:         "High demand in infrastructure roles",
			Priority:       "Medium",
			RelatedTo:      []string{"Infrastructure as Code"},
			EstimatedHours: 25,
		},
		{
			BadgeName:      "Machine Learning Specialty",
			Issuer:         "Amazon Web Services",
			Reason:         "Fast-growing skill area",
			Priority:       "Medium",
			RelatedTo:      []string{"Machine Learning"},
			EstimatedHours: 60,
		},
	}, nil
}

func firstSkills(badges []model.Badge, max int) []string {
	skills := []string{}
	for _, badge := range badges {
		for _, skill := range badge.Skills {
			skills = append(skills, skill)
			if len(skills) == max {
				return skills
			}
		}
	}
	return skills
}
