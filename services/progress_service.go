package services

import (
	"time"

	"github.com/botadmin/database"
	"github.com/botadmin/dto"
	"github.com/botadmin/models"
	"github.com/botadmin/repositories"
	"github.com/botadmin/utils"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ProgressService handles the append-only project timeline
type ProgressService struct {
	progressRepo *repositories.ProgressRepository
}

// NewProgressService creates a new progress service instance
func NewProgressService(db *database.Database) *ProgressService {
	return &ProgressService{
		progressRepo: repositories.NewProgressRepository(db.DB),
	}
}

// Log appends one timeline entry. Status defaults to in_progress and
// the logged-at instant defaults to now.
func (s *ProgressService) Log(req dto.CreateProgressRequest) (*models.ProgressLog, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.ProjectID, validation.Required),
		validation.Field(&req.Phase, validation.Required, validation.In(enumValues(models.ProgressPhases)...)),
		validation.Field(&req.Status, validation.In(enumValues(models.ProgressStatuses)...)),
	)
	if err != nil {
		return nil, err
	}

	status := models.ProgressStatus(req.Status)
	if status == "" {
		status = models.ProgressInProgress
	}

	entry := models.ProgressLog{
		ID:        utils.GenerateID(utils.EntityProgress),
		ProjectID: req.ProjectID,
		Phase:     models.ProgressPhase(req.Phase),
		Status:    status,
		Note:      req.Note,
		LoggedBy:  req.LoggedBy,
		LoggedAt:  time.Now(),
	}
	if err := s.progressRepo.Create(&entry); err != nil {
		return nil, translateWriteError("progress log", "", err)
	}
	return &entry, nil
}

// Timeline retrieves a project's entries, newest first
func (s *ProgressService) Timeline(projectID string) ([]models.ProgressLog, error) {
	return s.progressRepo.Timeline(projectID)
}
