package services

import (
	"github.com/botadmin/database"
	"github.com/botadmin/dto"
	"github.com/botadmin/models"
	"github.com/botadmin/repositories"
	"github.com/botadmin/utils"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ImplService handles implementation artifacts attached to projects
type ImplService struct {
	implRepo *repositories.ImplRepository
}

// NewImplService creates a new implementation detail service instance
func NewImplService(db *database.Database) *ImplService {
	return &ImplService{
		implRepo: repositories.NewImplRepository(db.DB),
	}
}

// Create validates and inserts a new implementation detail
func (s *ImplService) Create(req dto.CreateImplRequest) (*models.ImplementationDetail, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.ProjectID, validation.Required),
		validation.Field(&req.Type, validation.Required, validation.In(enumValues(models.DetailTypes)...)),
		validation.Field(&req.Title, validation.Required),
		validation.Field(&req.Content, validation.Required),
		validation.Field(&req.SortOrder, validation.Min(0)),
	)
	if err != nil {
		return nil, err
	}

	detail := models.ImplementationDetail{
		ID:           utils.GenerateID(utils.EntityImpl),
		ProjectID:    req.ProjectID,
		Type:         models.DetailType(req.Type),
		Title:        req.Title,
		Content:      req.Content,
		MetadataJSON: req.MetadataJSON,
		SortOrder:    req.SortOrder,
	}
	if err := s.implRepo.Create(&detail); err != nil {
		return nil, translateWriteError("implementation detail", req.Title, err)
	}
	return &detail, nil
}

// List retrieves a project's live details ordered by sort order then
// creation time
func (s *ImplService) List(filter dto.ImplFilter) ([]models.ImplementationDetail, error) {
	if err := validation.Validate(filter.ProjectID, validation.Required); err != nil {
		return nil, validation.Errors{"projectId": validation.NewError("required", "cannot be blank")}
	}
	return s.implRepo.FindAll(filter)
}

// Get retrieves one live detail by id. Returns nil when nothing
// matches.
func (s *ImplService) Get(id string) (*models.ImplementationDetail, error) {
	return s.implRepo.FindByID(id)
}

// Update applies a partial update
func (s *ImplService) Update(id string, req dto.UpdateImplRequest) (*models.ImplementationDetail, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Type, validation.In(enumValues(models.DetailTypes)...)),
		validation.Field(&req.Title, validation.NilOrNotEmpty),
		validation.Field(&req.Content, validation.NilOrNotEmpty),
		validation.Field(&req.SortOrder, validation.Min(0)),
	)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.MetadataJSON != nil {
		updates["metadata_json"] = *req.MetadataJSON
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if len(updates) == 0 {
		return nil, validation.Errors{
			"update": validation.NewError("empty_update", "no fields to update"),
		}
	}

	detail, err := s.implRepo.Update(id, updates)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrNotFound
	}
	return detail, nil
}

// Delete soft-deletes an implementation detail
func (s *ImplService) Delete(id string) error {
	return s.implRepo.Delete(id)
}
