package services

import (
	"github.com/botadmin/database"
	"github.com/botadmin/dto"
	"github.com/botadmin/models"
	"github.com/botadmin/repositories"
	"github.com/botadmin/utils"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ToolService handles business logic for the tool registry
type ToolService struct {
	toolRepo *repositories.ToolRepository
}

// NewToolService creates a new tool service instance
func NewToolService(db *database.Database) *ToolService {
	return &ToolService{
		toolRepo: repositories.NewToolRepository(db.DB),
	}
}

// Create validates and inserts a new tool
func (s *ToolService) Create(req dto.CreateToolRequest) (*models.Tool, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Category, validation.In(enumValues(models.ToolCategories)...)),
		validation.Field(&req.URL, is.URL),
	)
	if err != nil {
		return nil, err
	}

	tool := models.Tool{
		ID:          utils.GenerateID(utils.EntityTool),
		Name:        req.Name,
		Category:    models.ToolCategory(req.Category),
		URL:         req.URL,
		Description: req.Description,
	}
	if err := s.toolRepo.Create(&tool); err != nil {
		return nil, translateWriteError("tool", req.Name, err)
	}
	return &tool, nil
}

// List retrieves live tools matching the filter
func (s *ToolService) List(filter dto.ToolFilter) ([]models.Tool, error) {
	return s.toolRepo.FindAll(filter)
}

// Get resolves a tool by id or exact name. Returns nil when nothing
// matches.
func (s *ToolService) Get(ref string) (*models.Tool, error) {
	return s.toolRepo.FindByIDOrName(ref)
}

// Delete soft-deletes a tool
func (s *ToolService) Delete(id string) error {
	return s.toolRepo.Delete(id)
}
