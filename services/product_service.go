package services

import (
	"github.com/botadmin/database"
	"github.com/botadmin/dto"
	"github.com/botadmin/models"
	"github.com/botadmin/repositories"
	"github.com/botadmin/utils"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ProductService handles business logic for the product catalog
type ProductService struct {
	productRepo *repositories.ProductRepository
}

// NewProductService creates a new product service instance
func NewProductService(db *database.Database) *ProductService {
	return &ProductService{
		productRepo: repositories.NewProductRepository(db.DB),
	}
}

// Create validates and inserts a new product
func (s *ProductService) Create(req dto.CreateProductRequest) (*models.Product, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required),
	)
	if err != nil {
		return nil, err
	}

	product := models.Product{
		ID:          utils.GenerateID(utils.EntityProduct),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.productRepo.Create(&product); err != nil {
		return nil, translateWriteError("product", req.Name, err)
	}
	return &product, nil
}

// List retrieves live products matching the filter
func (s *ProductService) List(filter dto.CatalogFilter) ([]models.Product, error) {
	return s.productRepo.FindAll(filter.Search)
}

// Get resolves a product by id or exact name. Returns nil when
// nothing matches.
func (s *ProductService) Get(ref string) (*models.Product, error) {
	return s.productRepo.FindByIDOrName(ref)
}

// Delete soft-deletes a product
func (s *ProductService) Delete(id string) error {
	return s.productRepo.Delete(id)
}
