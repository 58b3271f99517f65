package model

// SkillGap reports a single required skill against the user's
// credentials.
type SkillGap struct {
	Skill             string   `json:"skill"`
	Importance        float64  `json:"importance"`
	HasCredential     bool     `json:"has_credential"`
	MarketDemand      string   `json:"market_demand"`
	RecommendedBadges []string `json:"recommended_badges,omitempty"`
}

// JobAnalysis is the skill-gap analysis for one user and target job
// title.
type JobAnalysis struct {
	JobTitle              string     `json:"job_title"`
	RequiredSkills        []string   `json:"required_skills"`
	SkillGaps             []SkillGap `json:"skill_gaps"`
	CredentialStrength    float64    `json:"credential_strength"`
	MarketCompetitiveness string     `json:"market_competitiveness"`
}

type BadgePerformance struct {
	Name               string `json:"name"`
	InterviewCallbacks int    `json:"interview_callbacks"`
	Views              int    `json:"views"`
}

type SkillTrend struct {
	Skill  string `json:"skill"`
	Demand string `json:"demand"`
	Growth string `json:"growth"`
}

type AnalyticsSummary struct {
	TotalBadges         int                `json:"total_badges"`
	VerifiedBadges      int                `json:"verified_badges"`
	ResumeViews         int64              `json:"resume_views"`
	ResumeDownloads     int64              `json:"resume_downloads"`
	TopPerformingBadges []BadgePerformance `json:"top_performing_badges"`
	SkillDemandTrends   []SkillTrend       `json:"skill_demand_trends"`
	IndustryPercentile  int                `json:"industry_percentile"`
}

type Recommendation struct {
	BadgeName      string   `json:"badge_name"`
	Issuer         string   `json:"issuer"`
	Reason         string   `json:"reason"`
	Priority       string   `json:"priority"`
	RelatedTo      []string `json:"related_to"`
	EstimatedHours int      `json:"estimated_hours"`
}
