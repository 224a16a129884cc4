package services

import (
	"github.com/botadmin/database"
	"github.com/botadmin/dto"
	"github.com/botadmin/models"
	"github.com/botadmin/repositories"
	"github.com/botadmin/utils"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ServiceService handles business logic for the service catalog
type ServiceService struct {
	serviceRepo *repositories.ServiceRepository
}

// NewServiceService creates a new service catalog service instance
func NewServiceService(db *database.Database) *ServiceService {
	return &ServiceService{
		serviceRepo: repositories.NewServiceRepository(db.DB),
	}
}

// Create validates and inserts a new service
func (s *ServiceService) Create(req dto.CreateServiceRequest) (*models.Service, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required),
	)
	if err != nil {
		return nil, err
	}

	service := models.Service{
		ID:          utils.GenerateID(utils.EntityService),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.serviceRepo.Create(&service); err != nil {
		return nil, translateWriteError("service", req.Name, err)
	}
	return &service, nil
}

// List retrieves live services matching the filter
func (s *ServiceService) List(filter dto.CatalogFilter) ([]models.Service, error) {
	return s.serviceRepo.FindAll(filter.Search)
}

// Get resolves a service by id or exact name. Returns nil when
// nothing matches.
func (s *ServiceService) Get(ref string) (*models.Service, error) {
	return s.serviceRepo.FindByIDOrName(ref)
}

// Delete soft-deletes a service
func (s *ServiceService) Delete(id string) error {
	return s.serviceRepo.Delete(id)
}
