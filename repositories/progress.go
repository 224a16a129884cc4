package repositories

import (
	"github.com/botadmin/models"
	"gorm.io/gorm"
)

// ProgressRepository handles database operations for the append-only
// project timeline
type ProgressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new progress repository instance
func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Create appends one timeline entry. There is no update or delete.
func (r *ProgressRepository) Create(entry *models.ProgressLog) error {
	return r.db.Create(entry).Error
}

// Timeline retrieves a project's entries, newest first
func (r *ProgressRepository) Timeline(projectID string) ([]models.ProgressLog, error) {
	var entries []models.ProgressLog
	result := r.db.Where("project_id = ?", projectID).Order("logged_at DESC").Find(&entries)
	return entries, result.Error
}

// Recent retrieves the latest entries across all projects
func (r *ProgressRepository) Recent(limit int) ([]models.ProgressLog, error) {
	var entries []models.ProgressLog
	result := r.db.Order("logged_at DESC").Limit(limit).Find(&entries)
	return entries, result.Error
}
