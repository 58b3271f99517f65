package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badgecv_api/internal/domain/model"
)

func TestGetBadgeRecommendations_EchoesUserSkills(t *testing.T) {
	badgeRepo := newFakeBadgeRepo()
	svc := NewRecommendationService(badgeRepo)

	require.NoError(t, badgeRepo.Create(context.Background(), &model.Badge{
		ID: "b1", UserID: "user-1", Skills: []string{"Go", "Docker", "AWS"},
	}))

	recommendations, err := svc.GetBadgeRecommendations(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, recommendations, 3)

	// The first recommendation relates to up to two existing skills.
	assert.Equal(t, []string{"Go", "Docker"}, recommendations[0].RelatedTo)
	assert.NotEmpty(t, recommendations[0].BadgeName)
	assert.NotEmpty(t, recommendations[1].BadgeName)
	assert.NotEmpty(t, recommendations[2].BadgeName)
}

func TestGetBadgeRecommendations_DefaultRelatedSkills(t *testing.T) {
	svc := NewRecommendationService(newFakeBadgeRepo())

	recommendations, err := svc.GetBadgeRecommendations(context.Background(), "user-without-badges")
	require.NoError(t, err)
	require.Len(t, recommendations, 3)
	assert.Equal(t, defaultRelatedSkills, recommendations[0].RelatedTo)
}

func TestGetBadgeRecommendations_SingleSkill(t *testing.T) {
	badgeRepo := newFakeBadgeRepo()
	svc := NewRecommendationService(badgeRepo)

	require.NoError(t, badgeRepo.Create(context.Background(), &model.Badge{
		ID: "b1", UserID: "user-1", Skills: []string{"Terraform"},
	}))

	recommendations, err := svc.GetBadgeRecommendations(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Terraform"}, recommendations[0].RelatedTo)
}
