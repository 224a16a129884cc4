package dto

import (
	"github.com/botadmin/models"
)

// StatusCount is one bucket of a grouped count
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// NamedCount is one bucket of a count grouped by display name
type NamedCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// DashboardResponse is the landing-page summary: live entity counts,
// project status distribution and recent activity
type DashboardResponse struct {
	Companies        int64                `json:"companies"`
	Projects         int64                `json:"projects"`
	Tools            int64                `json:"tools"`
	Blueprints       int64                `json:"blueprints"`
	ProjectsByStatus []StatusCount        `json:"projectsByStatus"`
	RecentProgress   []models.ProgressLog `json:"recentProgress"`
	RecentCompanies  []models.Company     `json:"recentCompanies"`
	RecentProjects   []ProjectRow         `json:"recentProjects"`
}

// AnalyticsResponse aggregates catalog and delivery distributions
type AnalyticsResponse struct {
	ProjectsByCompanyStatus []StatusCount `json:"projectsByCompanyStatus"`
	ProjectsByIndustry      []NamedCount  `json:"projectsByIndustry"`
	TopTools                []NamedCount  `json:"topTools"`
	ProjectStatusBreakdown  []StatusCount `json:"projectStatusBreakdown"`
}
