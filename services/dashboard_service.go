package services

import (
	"github.com/botadmin/database"
	"github.com/botadmin/dto"
	"github.com/botadmin/models"
	"github.com/botadmin/repositories"
)

// DashboardService assembles the aggregate views over the whole store
type DashboardService struct {
	statsRepo    *repositories.StatsRepository
	progressRepo *repositories.ProgressRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(db *database.Database) *DashboardService {
	return &DashboardService{
		statsRepo:    repositories.NewStatsRepository(db.DB),
		progressRepo: repositories.NewProgressRepository(db.DB),
	}
}

// Dashboard builds the landing-page summary: live entity counts,
// the project status distribution and recent activity
func (s *DashboardService) Dashboard() (*dto.DashboardResponse, error) {
	resp := dto.DashboardResponse{}
	var err error

	if resp.Companies, err = s.statsRepo.CountLive(&models.Company{}); err != nil {
		return nil, err
	}
	if resp.Projects, err = s.statsRepo.CountLive(&models.Project{}); err != nil {
		return nil, err
	}
	if resp.Tools, err = s.statsRepo.CountLive(&models.Tool{}); err != nil {
		return nil, err
	}
	if resp.Blueprints, err = s.statsRepo.CountLive(&models.Blueprint{}); err != nil {
		return nil, err
	}
	if resp.ProjectsByStatus, err = s.statsRepo.ProjectsByStatus(); err != nil {
		return nil, err
	}
	if resp.RecentProgress, err = s.progressRepo.Recent(10); err != nil {
		return nil, err
	}
	if resp.RecentCompanies, err = s.statsRepo.RecentCompanies(5); err != nil {
		return nil, err
	}
	if resp.RecentProjects, err = s.statsRepo.RecentProjects(5); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Analytics builds the distribution views over catalog and delivery
func (s *DashboardService) Analytics() (*dto.AnalyticsResponse, error) {
	resp := dto.AnalyticsResponse{}
	var err error

	if resp.ProjectsByCompanyStatus, err = s.statsRepo.ProjectsByCompanyStatus(); err != nil {
		return nil, err
	}
	if resp.ProjectsByIndustry, err = s.statsRepo.ProjectsByIndustry(); err != nil {
		return nil, err
	}
	if resp.TopTools, err = s.statsRepo.TopTools(10); err != nil {
		return nil, err
	}
	if resp.ProjectStatusBreakdown, err = s.statsRepo.ProjectsByStatus(); err != nil {
		return nil, err
	}
	return &resp, nil
}
