package repositories

import (
	"github.com/botadmin/dto"
	"github.com/botadmin/models"
	"gorm.io/gorm"
)

// StatsRepository runs the aggregate queries behind the dashboard and
// analytics pages
type StatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository instance
func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// CountLive counts the non-deleted rows of the given model
func (r *StatsRepository) CountLive(model interface{}) (int64, error) {
	var count int64
	err := r.db.Model(model).Count(&count).Error
	return count, err
}

// ProjectsByStatus groups live projects by their own status
func (r *StatsRepository) ProjectsByStatus() ([]dto.StatusCount, error) {
	var rows []dto.StatusCount
	err := r.db.Model(&models.Project{}).
		Select("status AS status, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// ProjectsByCompanyStatus groups live projects by the status of their
// owning company
func (r *StatsRepository) ProjectsByCompanyStatus() ([]dto.StatusCount, error) {
	var rows []dto.StatusCount
	err := r.db.Model(&models.Project{}).
		Select("companies.status AS status, COUNT(*) AS count").
		Joins("JOIN companies ON companies.id = projects.company_id").
		Where("companies.deleted_at IS NULL").
		Group("companies.status").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// ProjectsByIndustry groups live projects by the industries their
// owning companies are assigned to
func (r *StatsRepository) ProjectsByIndustry() ([]dto.NamedCount, error) {
	var rows []dto.NamedCount
	err := r.db.Model(&models.Project{}).
		Select("industries.name AS name, COUNT(projects.id) AS count").
		Joins("JOIN company_industries ON company_industries.company_id = projects.company_id").
		Joins("JOIN industries ON industries.id = company_industries.industry_id").
		Where("industries.deleted_at IS NULL").
		Group("industries.name").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// TopTools ranks live tools by how many assignments they have on live
// projects
func (r *StatsRepository) TopTools(limit int) ([]dto.NamedCount, error) {
	var rows []dto.NamedCount
	err := r.db.Model(&models.Tool{}).
		Select("tools.name AS name, COUNT(project_tools.id) AS count").
		Joins("JOIN project_tools ON project_tools.tool_id = tools.id").
		Joins("JOIN projects ON projects.id = project_tools.project_id").
		Where("projects.deleted_at IS NULL").
		Group("tools.name").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// RecentCompanies retrieves the latest live companies
func (r *StatsRepository) RecentCompanies(limit int) ([]models.Company, error) {
	var companies []models.Company
	result := r.db.Order("created_at DESC").Limit(limit).Find(&companies)
	return companies, result.Error
}

// RecentProjects retrieves the latest live projects with company names
func (r *StatsRepository) RecentProjects(limit int) ([]dto.ProjectRow, error) {
	var rows []dto.ProjectRow
	err := r.db.Model(&models.Project{}).
		Select(projectRowSelect).
		Joins("LEFT JOIN companies ON companies.id = projects.company_id").
		Order("projects.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
