package repositories

import (
	"github.com/botadmin/dto"
	"github.com/botadmin/models"
	"gorm.io/gorm"
)

const projectRowSelect = "projects.id AS id, projects.company_id AS company_id, companies.name AS company_name, " +
	"projects.name AS name, projects.description AS description, projects.status AS status, " +
	"projects.start_date AS start_date, projects.target_date AS target_date, projects.completed_date AS completed_date, " +
	"projects.created_at AS created_at, projects.updated_at AS updated_at"

// ProjectRepository handles database operations for projects and
// their tool assignments
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindAll retrieves live projects joined with the owning company's
// name, ordered by creation time
func (r *ProjectRepository) FindAll(filter dto.ProjectFilter) ([]dto.ProjectRow, error) {
	q := r.db.Model(&models.Project{}).
		Select(projectRowSelect).
		Joins("LEFT JOIN companies ON companies.id = projects.company_id")

	if filter.CompanyID != "" {
		q = q.Where("projects.company_id = ?", filter.CompanyID)
	}
	if filter.Status != "" {
		q = q.Where("projects.status = ?", filter.Status)
	}
	if filter.Search != "" {
		pat := searchPattern(filter.Search)
		q = q.Where("LOWER(projects.name) LIKE ? OR LOWER(projects.description) LIKE ?", pat, pat)
	}

	var rows []dto.ProjectRow
	err := q.Order("projects.created_at").Scan(&rows).Error
	return rows, err
}

// FindByID retrieves one live project joined with its company name
func (r *ProjectRepository) FindByID(id string) (*dto.ProjectRow, error) {
	var rows []dto.ProjectRow
	err := r.db.Model(&models.Project{}).
		Select(projectRowSelect).
		Joins("LEFT JOIN companies ON companies.id = projects.company_id").
		Where("projects.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// Create inserts a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update applies the given column updates. GORM touches updated_at on
// every call. Returns false when no live row matched.
func (r *ProjectRepository) Update(id string, updates map[string]interface{}) (bool, error) {
	result := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete soft-deletes a project. Idempotent.
func (r *ProjectRepository) Delete(id string) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

// AssignTool inserts one tool assignment row. No duplicate check: the
// same tool may be assigned to a project more than once.
func (r *ProjectRepository) AssignTool(row *models.ProjectTool) error {
	return r.db.Create(row).Error
}

// Tools retrieves the project's tool assignments joined with the
// tool registry
func (r *ProjectRepository) Tools(projectID string) ([]dto.ProjectToolRow, error) {
	var rows []dto.ProjectToolRow
	err := r.db.Model(&models.ProjectTool{}).
		Select("project_tools.id AS id, tools.id AS tool_id, tools.name AS tool_name, tools.category AS tool_category, "+
			"project_tools.config_json AS config_json, project_tools.notes AS notes, project_tools.created_at AS created_at").
		Joins("JOIN tools ON tools.id = project_tools.tool_id").
		Where("project_tools.project_id = ?", projectID).
		Scan(&rows).Error
	return rows, err
}
