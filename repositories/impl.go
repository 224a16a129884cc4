package repositories

import (
	"errors"

	"github.com/botadmin/dto"
	"github.com/botadmin/models"
	"gorm.io/gorm"
)

// ImplRepository handles database operations for implementation
// details
type ImplRepository struct {
	db *gorm.DB
}

// NewImplRepository creates a new implementation detail repository
// instance
func NewImplRepository(db *gorm.DB) *ImplRepository {
	return &ImplRepository{db: db}
}

// Create inserts a new implementation detail
func (r *ImplRepository) Create(detail *models.ImplementationDetail) error {
	return r.db.Create(detail).Error
}

// FindAll retrieves a project's live details, ordered by sort order
// then creation time
func (r *ImplRepository) FindAll(filter dto.ImplFilter) ([]models.ImplementationDetail, error) {
	q := r.db.Where("project_id = ?", filter.ProjectID)
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	var details []models.ImplementationDetail
	result := q.Order("sort_order").Order("created_at").Find(&details)
	return details, result.Error
}

// FindByID retrieves one live detail by id
func (r *ImplRepository) FindByID(id string) (*models.ImplementationDetail, error) {
	var detail models.ImplementationDetail
	err := r.db.First(&detail, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// Update applies the given column updates and reloads the row.
// GORM touches updated_at on every call.
func (r *ImplRepository) Update(id string, updates map[string]interface{}) (*models.ImplementationDetail, error) {
	result := r.db.Model(&models.ImplementationDetail{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

// Delete soft-deletes an implementation detail. Idempotent.
func (r *ImplRepository) Delete(id string) error {
	return r.db.Delete(&models.ImplementationDetail{}, "id = ?", id).Error
}
