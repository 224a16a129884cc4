package services

import (
	"github.com/botadmin/database"
	"github.com/botadmin/dto"
	"github.com/botadmin/models"
	"github.com/botadmin/repositories"
	"github.com/botadmin/utils"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// IndustryService handles business logic for the industry catalog
type IndustryService struct {
	industryRepo *repositories.IndustryRepository
}

// NewIndustryService creates a new industry service instance
func NewIndustryService(db *database.Database) *IndustryService {
	return &IndustryService{
		industryRepo: repositories.NewIndustryRepository(db.DB),
	}
}

// Create validates and inserts a new industry
func (s *IndustryService) Create(req dto.CreateIndustryRequest) (*models.Industry, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required),
	)
	if err != nil {
		return nil, err
	}

	industry := models.Industry{
		ID:          utils.GenerateID(utils.EntityIndustry),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.industryRepo.Create(&industry); err != nil {
		return nil, translateWriteError("industry", req.Name, err)
	}
	return &industry, nil
}

// List retrieves live industries matching the filter
func (s *IndustryService) List(filter dto.CatalogFilter) ([]models.Industry, error) {
	return s.industryRepo.FindAll(filter.Search)
}

// Get resolves an industry by id or exact name. Returns nil when
// nothing matches.
func (s *IndustryService) Get(ref string) (*models.Industry, error) {
	return s.industryRepo.FindByIDOrName(ref)
}

// Delete soft-deletes an industry and cascades to its live niches
func (s *IndustryService) Delete(id string) error {
	return s.industryRepo.Delete(id)
}
