package models

// OverallStatus grades a site's AI readiness.
type OverallStatus string

const (
	StatusGood     OverallStatus = "good"
	StatusWarning  OverallStatus = "warning"
	StatusCritical OverallStatus = "critical"
)

// PlatformRecommendation suggests registering the site with a platform that
// feeds AI answer engines.
type PlatformRecommendation struct {
	Platform    string `json:"platform"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Applicable  bool   `json:"applicable"`
	Reason      string `json:"reason"`
}

// AIReadinessAnalysis combines the robots.txt verdicts and structured-data
// presence into an overall judgment.
type AIReadinessAnalysis struct {
	RobotsTxt               RobotsTxtAnalysis        `json:"robotsTxt"`
	PlatformRecommendations []PlatformRecommendation `json:"platformRecommendations"`
	IsEcommerce             bool                     `json:"isEcommerce"`
	OverallStatus           OverallStatus            `json:"overallStatus"`
	Issues                  []string                 `json:"issues"`
}
