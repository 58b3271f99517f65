package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badgecv_api/internal/common"
)

func TestCreateBadge_ThenListIncludesItOnce(t *testing.T) {
	svc := NewBadgeService(newFakeBadgeRepo())

	badge, err := svc.CreateBadge(context.Background(), CreateBadgeRequest{
		UserID: "user-1",
		Name:   "AWS Certified Developer",
		Issuer: "Amazon Web Services",
		Skills: []string{"AWS", "Lambda"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, badge.ID)

	badges, err := svc.ListBadges(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, badge.ID, badges[0].ID)

	others, err := svc.ListBadges(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestCreateBadge_Defaults(t *testing.T) {
	svc := NewBadgeService(newFakeBadgeRepo())

	badge, err := svc.CreateBadge(context.Background(), CreateBadgeRequest{
		UserID: "user-1",
		Name:   "Docker Essentials",
		Issuer: "Docker Inc",
	})
	require.NoError(t, err)

	assert.True(t, badge.Verified)
	assert.Equal(t, 1.0, badge.VerificationScore)
	assert.NotNil(t, badge.Skills)
	assert.False(t, badge.IssuedDate.IsZero())
	assert.Zero(t, badge.Views)
}

func TestCreateBadge_ExplicitVerificationFields(t *testing.T) {
	svc := NewBadgeService(newFakeBadgeRepo())

	verified := false
	score := 0.4
	badge, err := svc.CreateBadge(context.Background(), CreateBadgeRequest{
		UserID:            "user-1",
		Name:              "Self Reported Skill",
		Issuer:            "Self",
		Verified:          &verified,
		VerificationScore: &score,
	})
	require.NoError(t, err)
	assert.False(t, badge.Verified)
	assert.Equal(t, 0.4, badge.VerificationScore)
}

func TestCreateBadge_MissingFields(t *testing.T) {
	svc := NewBadgeService(newFakeBadgeRepo())

	_, err := svc.CreateBadge(context.Background(), CreateBadgeRequest{UserID: "user-1"})
	require.ErrorIs(t, err, common.ErrBadRequest)
}

func TestVerifyBadge(t *testing.T) {
	svc := NewBadgeService(newFakeBadgeRepo())

	badge, err := svc.CreateBadge(context.Background(), CreateBadgeRequest{
		UserID: "user-1",
		Name:   "Kubernetes Administrator",
		Issuer: "CNCF",
	})
	require.NoError(t, err)

	result, err := svc.VerifyBadge(context.Background(), badge.ID)
	require.NoError(t, err)
	assert.Equal(t, badge.ID, result.BadgeID)
	assert.True(t, result.Verified)
	assert.Equal(t, 1.0, result.VerificationScore)
	assert.NotEmpty(t, result.VerificationHash)
	assert.WithinDuration(t, time.Now().UTC(), result.VerifiedAt, 5*time.Second)
	assert.True(t, result.NotExpired) // no expiry date set

	_, err = svc.VerifyBadge(context.Background(), "never-created")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestVerifyBadge_ExpiryFlag(t *testing.T) {
	svc := NewBadgeService(newFakeBadgeRepo())

	past := time.Now().UTC().Add(-24 * time.Hour)
	expired, err := svc.CreateBadge(context.Background(), CreateBadgeRequest{
		UserID: "user-1", Name: "Old Cert", Issuer: "Acme", ExpiryDate: &past,
	})
	require.NoError(t, err)

	future := time.Now().UTC().Add(24 * time.Hour)
	current, err := svc.CreateBadge(context.Background(), CreateBadgeRequest{
		UserID: "user-1", Name: "Fresh Cert", Issuer: "Acme", ExpiryDate: &future,
	})
	require.NoError(t, err)

	result, err := svc.VerifyBadge(context.Background(), expired.ID)
	require.NoError(t, err)
	assert.False(t, result.NotExpired)

	result, err = svc.VerifyBadge(context.Background(), current.ID)
	require.NoError(t, err)
	assert.True(t, result.NotExpired)
}

func TestGetPublicBadge_IncrementsViews(t *testing.T) {
	svc := NewBadgeService(newFakeBadgeRepo())

	badge, err := svc.CreateBadge(context.Background(), CreateBadgeRequest{
		UserID: "user-1", Name: "Public Cert", Issuer: "Acme",
	})
	require.NoError(t, err)

	first, err := svc.GetPublicBadge(context.Background(), badge.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Views)

	second, err := svc.GetPublicBadge(context.Background(), badge.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Views)

	_, err = svc.GetPublicBadge(context.Background(), "never-created")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestSeedDemoBadge_Idempotent(t *testing.T) {
	repo := newFakeBadgeRepo()
	svc := NewBadgeService(repo)

	require.NoError(t, svc.SeedDemoBadge(context.Background()))
	require.NoError(t, svc.SeedDemoBadge(context.Background()))

	badges, err := repo.FindByUserID(context.Background(), "demo-user", badgeListLimit)
	require.NoError(t, err)
	assert.Len(t, badges, 1)
	assert.True(t, badges[0].Verified)
}
