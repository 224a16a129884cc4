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

// advanceFinalReason is returned whenever advance cannot move the
// project forward, including for on_hold and cancelled projects.
const advanceFinalReason = "Already at final status"

// ProjectService handles business logic for client projects
type ProjectService struct {
	projectRepo  *repositories.ProjectRepository
	toolRepo     *repositories.ToolRepository
	implRepo     *repositories.ImplRepository
	progressRepo *repositories.ProgressRepository
}

// NewProjectService creates a new project service instance
func NewProjectService(db *database.Database) *ProjectService {
	return &ProjectService{
		projectRepo:  repositories.NewProjectRepository(db.DB),
		toolRepo:     repositories.NewToolRepository(db.DB),
		implRepo:     repositories.NewImplRepository(db.DB),
		progressRepo: repositories.NewProgressRepository(db.DB),
	}
}

// Create validates and inserts a new project. The caller resolves the
// company reference beforehand; the FK rejects dangling ids.
func (s *ProjectService) Create(req dto.CreateProjectRequest) (*dto.ProjectRow, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.CompanyID, validation.Required),
		validation.Field(&req.Name, validation.Required),
	)
	if err != nil {
		return nil, err
	}

	project := models.Project{
		ID:          utils.GenerateID(utils.EntityProject),
		CompanyID:   req.CompanyID,
		Name:        req.Name,
		Description: req.Description,
		Status:      models.ProjectStatusPlanning,
		StartDate:   req.StartDate,
		TargetDate:  req.TargetDate,
	}
	if err := s.projectRepo.Create(&project); err != nil {
		return nil, translateWriteError("project", req.Name, err)
	}
	return s.projectRepo.FindByID(project.ID)
}

// List retrieves live projects with company names, ordered by
// creation time
func (s *ProjectService) List(filter dto.ProjectFilter) ([]dto.ProjectRow, error) {
	return s.projectRepo.FindAll(filter)
}

// Get retrieves a project with its tool assignments, implementation
// details and progress timeline. Returns nil when nothing matches.
func (s *ProjectService) Get(id string) (*dto.ProjectDetail, error) {
	row, err := s.projectRepo.FindByID(id)
	if err != nil || row == nil {
		return nil, err
	}

	detail := dto.ProjectDetail{ProjectRow: *row}
	if detail.Tools, err = s.projectRepo.Tools(id); err != nil {
		return nil, err
	}
	if detail.Details, err = s.implRepo.FindAll(dto.ImplFilter{ProjectID: id}); err != nil {
		return nil, err
	}
	if detail.Timeline, err = s.progressRepo.Timeline(id); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Update applies a partial update. CompanyID is immutable and not
// accepted here.
func (s *ProjectService) Update(id string, req dto.UpdateProjectRequest) (*dto.ProjectRow, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.NilOrNotEmpty),
		validation.Field(&req.Status, validation.In(enumValues(models.ProjectStatuses)...)),
	)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.TargetDate != nil {
		updates["target_date"] = *req.TargetDate
	}
	if req.CompletedDate != nil {
		updates["completed_date"] = *req.CompletedDate
	}
	if len(updates) == 0 {
		return nil, validation.Errors{
			"update": validation.NewError("empty_update", "no fields to update"),
		}
	}

	matched, err := s.projectRepo.Update(id, updates)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, ErrNotFound
	}
	return s.projectRepo.FindByID(id)
}

// Advance moves the project one step along planning → in_progress →
// review → completed. Projects outside that order (on_hold,
// cancelled) and projects already completed are left untouched.
// Reaching completed stamps the completion date.
func (s *ProjectService) Advance(id string) (*dto.AdvanceResult, error) {
	row, err := s.projectRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}

	idx := -1
	for i, status := range models.AdvanceOrder {
		if status == row.Status {
			idx = i
			break
		}
	}
	if idx == -1 || idx >= len(models.AdvanceOrder)-1 {
		return &dto.AdvanceResult{Project: row, Advanced: false, Reason: advanceFinalReason}, nil
	}

	next := models.AdvanceOrder[idx+1]
	updates := map[string]interface{}{"status": string(next)}
	if next == models.ProjectStatusCompleted {
		updates["completed_date"] = time.Now().Format("2006-01-02")
	}
	if _, err := s.projectRepo.Update(id, updates); err != nil {
		return nil, err
	}

	updated, err := s.projectRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &dto.AdvanceResult{Project: updated, Advanced: true, NewStatus: next}, nil
}

// SetStatus assigns any legal status directly, with no ordering check
func (s *ProjectService) SetStatus(id string, status string) (*dto.ProjectRow, error) {
	if err := validation.Validate(status, validation.Required, validation.In(enumValues(models.ProjectStatuses)...)); err != nil {
		return nil, validation.Errors{"status": validation.NewError("invalid_status", err.Error())}
	}

	matched, err := s.projectRepo.Update(id, map[string]interface{}{"status": status})
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, ErrNotFound
	}
	return s.projectRepo.FindByID(id)
}

// AssignTool links a tool to the project, resolving the tool by id or
// name. Duplicate assignments create duplicate rows.
func (s *ProjectService) AssignTool(projectID string, req dto.AssignToolRequest) (*models.ProjectTool, error) {
	tool, err := s.toolRepo.FindByIDOrName(req.ToolRef)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, ErrNotFound
	}

	row := models.ProjectTool{
		ID:         utils.GenerateID(utils.EntityProjectTool),
		ProjectID:  projectID,
		ToolID:     tool.ID,
		ConfigJSON: req.ConfigJSON,
		Notes:      req.Notes,
	}
	if err := s.projectRepo.AssignTool(&row); err != nil {
		return nil, translateWriteError("project tool", tool.Name, err)
	}
	return &row, nil
}

// Tools retrieves the project's tool assignments
func (s *ProjectService) Tools(projectID string) ([]dto.ProjectToolRow, error) {
	return s.projectRepo.Tools(projectID)
}

// Delete soft-deletes a project
func (s *ProjectService) Delete(id string) error {
	return s.projectRepo.Delete(id)
}
