package service

import (
	"context"
	"fmt"

	"badgecv_api/internal/domain/model"
	"badgecv_api/internal/domain/repository"
)

const defaultJobTitle = "Software Developer"

// skillRequirements maps a target job title to its required skills.
// Unknown titles fall back to the Software Developer list.
var skillRequirements = map[string][]string{
	"Software Developer": {"JavaScript", "React", "Node.js", "Python", "Docker", "AWS"},
	"Data Scientist":     {"Python", "Machine Learning", "SQL", "Statistics", "Tableau"},
	"DevOps Engineer":    {"Docker", "Kubernetes", "AWS", "CI/CD", "Linux", "Terraform", "Monitoring"},
}

// Importance weights and demand labels are fixed placeholder data, not
// derived from any market signal.
var highImportanceSkills = map[string]bool{
	"AWS":              true,
	"Python":           true,
	"Docker":           true,
	"Kubernetes":       true,
	"Machine Learning": true,
	"React":            true,
}

var highDemandSkills = map[string]bool{
	"AWS":              true,
	"Kubernetes":       true,
	"Python":           true,
	"Machine Learning": true,
	"React":            true,
	"Terraform":        true,
}

// Illustrative analytics figures; these do not depend on the user's
// data.
var topPerformingBadges = []model.BadgePerformance{
	{Name: "AWS Certified", InterviewCallbacks: 12, Views: 89},
	{Name: "React Developer", InterviewCallbacks: 8, Views: 67},
}

var skillDemandTrends = []model.SkillTrend{
	{Skill: "AWS", Demand: "High", Growth: "+18%"},
	{Skill: "Kubernetes", Demand: "High", Growth: "+24%"},
	{Skill: "Python", Demand: "High", Growth: "+12%"},
}

const industryPercentile = 78

type AnalyticsService struct {
	badgeRepo  repository.BadgeRepository
	resumeRepo repository.ResumeRepository
}

func NewAnalyticsService(badgeRepo repository.BadgeRepository, resumeRepo repository.ResumeRepository) *AnalyticsService {
	return &AnalyticsService{badgeRepo: badgeRepo, resumeRepo: resumeRepo}
}

// AnalyzeSkillGap compares the skills across the user's badges with
// the required-skill list for the target job title.
func (s *AnalyticsService) AnalyzeSkillGap(ctx context.Context, userID, jobTitle string) (*model.JobAnalysis, error) {
	badges, err := s.badgeRepo.FindByUserID(ctx, userID, badgeListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load badges: %w", err)
	}

	// Repeats are kept: a skill backed by two badges appears twice.
	userSkills := []string{}
	for _, badge := range badges {
		userSkills = append(userSkills, badge.Skills...)
	}

	target := jobTitle
	if target == "" {
		target = defaultJobTitle
	}
	required, ok := skillRequirements[target]
	if !ok {
		required = skillRequirements[defaultJobTitle]
	}

	gaps := make([]model.SkillGap, 0, len(required))
	covered := 0
	for _, skill := range required {
		has := containsSkill(userSkills, skill)
		gap := model.SkillGap{
			Skill:         skill,
			Importance:    skillImportance(skill),
			HasCredential: has,
			MarketDemand:  marketDemand(skill),
		}
		if has {
			covered++
		} else {
			gap.RecommendedBadges = []string{
				skill + " Fundamentals",
				"Certified " + skill + " Professional",
			}
		}
		gaps = append(gaps, gap)
	}

	strength := 0.0
	if len(required) > 0 {
		strength = float64(covered) / float64(len(required))
	}
	competitiveness := "Needs Improvement"
	if strength > 0.7 {
		competitiveness = "Strong"
	}

	return &model.JobAnalysis{
		JobTitle:              target,
		RequiredSkills:        required,
		SkillGaps:             gaps,
		CredentialStrength:    strength,
		MarketCompetitiveness: competitiveness,
	}, nil
}

// GetBadgeAnalytics counts the user's badges and resume traffic and
// attaches the static benchmark figures.
func (s *AnalyticsService) GetBadgeAnalytics(ctx context.Context, userID string) (*model.AnalyticsSummary, error) {
	badges, err := s.badgeRepo.FindByUserID(ctx, userID, badgeListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load badges: %w", err)
	}
	resumes, err := s.resumeRepo.FindByUserID(ctx, userID, resumeListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load resumes: %w", err)
	}

	verified := 0
	for _, badge := range badges {
		if badge.Verified {
			verified++
		}
	}

	var views, downloads int64
	for _, resume := range resumes {
		views += resume.Views
		downloads += resume.Downloads
	}

	return &model.AnalyticsSummary{
		TotalBadges:         len(badges),
		VerifiedBadges:      verified,
		ResumeViews:         views,
		ResumeDownloads:     downloads,
		TopPerformingBadges: topPerformingBadges,
		SkillDemandTrends:   skillDemandTrends,
		IndustryPercentile:  industryPercentile,
	}, nil
}

func containsSkill(skills []string, skill string) bool {
	for _, s := range skills {
		if s == skill {
			return true
		}
	}
	return false
}

func skillImportance(skill string) float64 {
	if highImportanceSkills[skill] {
		return 0.9
	}
	return 0.7
}

func marketDemand(skill string) string {
	if highDemandSkills[skill] {
		return "High"
	}
	return "Medium"
}
