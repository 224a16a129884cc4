package repositories

import (
	"github.com/botadmin/dto"
	"github.com/botadmin/models"
	"gorm.io/gorm"
)

// ToolRepository handles database operations for the tool registry
type ToolRepository struct {
	db *gorm.DB
}

// NewToolRepository creates a new tool repository instance
func NewToolRepository(db *gorm.DB) *ToolRepository {
	return &ToolRepository{db: db}
}

// FindAll retrieves live tools filtered by category and search term,
// ordered by name
func (r *ToolRepository) FindAll(filter dto.ToolFilter) ([]models.Tool, error) {
	q := r.db.Model(&models.Tool{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pat := searchPattern(filter.Search)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pat, pat)
	}

	var tools []models.Tool
	result := q.Order("name").Find(&tools)
	return tools, result.Error
}

// FindByIDOrName resolves a tool by id, falling back to exact name
func (r *ToolRepository) FindByIDOrName(ref string) (*models.Tool, error) {
	return findByIDOrName[models.Tool](r.db, ref)
}

// Create inserts a new tool
func (r *ToolRepository) Create(tool *models.Tool) error {
	return r.db.Create(tool).Error
}

// Delete soft-deletes a tool. Idempotent.
func (r *ToolRepository) Delete(id string) error {
	return r.db.Delete(&models.Tool{}, "id = ?", id).Error
}
