package repositories

import (
	"errors"

	"github.com/botadmin/models"
	"gorm.io/gorm"
)

// IndustryRepository handles database operations for industries
type IndustryRepository struct {
	db *gorm.DB
}

// NewIndustryRepository creates a new industry repository instance
func NewIndustryRepository(db *gorm.DB) *IndustryRepository {
	return &IndustryRepository{db: db}
}

// FindAll retrieves all live industries, optionally filtered by a
// case-insensitive substring match on name or description
func (r *IndustryRepository) FindAll(search string) ([]models.Industry, error) {
	q := r.db.Model(&models.Industry{})
	if search != "" {
		pat := searchPattern(search)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pat, pat)
	}

	var industries []models.Industry
	result := q.Order("name").Find(&industries)
	return industries, result.Error
}

// FindByIDOrName resolves an industry by id, falling back to exact name
func (r *IndustryRepository) FindByIDOrName(ref string) (*models.Industry, error) {
	return findByIDOrName[models.Industry](r.db, ref)
}

// FindByID retrieves a live industry by id
func (r *IndustryRepository) FindByID(id string) (*models.Industry, error) {
	var industry models.Industry
	err := r.db.First(&industry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &industry, nil
}

// Create inserts a new industry
func (r *IndustryRepository) Create(industry *models.Industry) error {
	return r.db.Create(industry).Error
}

// Delete soft-deletes an industry and cascades to its live niches so
// no niche is left pointing at a removed parent. Idempotent.
func (r *IndustryRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("industry_id = ?", id).Delete(&models.Niche{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Industry{}, "id = ?", id).Error
	})
}

// NicheRepository handles database operations for niches
type NicheRepository struct {
	db *gorm.DB
}

// NewNicheRepository creates a new niche repository instance
func NewNicheRepository(db *gorm.DB) *NicheRepository {
	return &NicheRepository{db: db}
}

// FindAll retrieves live niches with their parent industry loaded,
// optionally restricted to one industry and a search term
func (r *NicheRepository) FindAll(industryID, search string) ([]models.Niche, error) {
	q := r.db.Model(&models.Niche{}).Preload("Industry")
	if industryID != "" {
		q = q.Where("industry_id = ?", industryID)
	}
	if search != "" {
		pat := searchPattern(search)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pat, pat)
	}

	var niches []models.Niche
	result := q.Order("name").Find(&niches)
	return niches, result.Error
}

// FindByIDOrName resolves a niche by id, falling back to exact name
func (r *NicheRepository) FindByIDOrName(ref string) (*models.Niche, error) {
	return findByIDOrName[models.Niche](r.db.Preload("Industry"), ref)
}

// Create inserts a new niche
func (r *NicheRepository) Create(niche *models.Niche) error {
	return r.db.Create(niche).Error
}

// Delete soft-deletes a niche. Idempotent.
func (r *NicheRepository) Delete(id string) error {
	return r.db.Delete(&models.Niche{}, "id = ?", id).Error
}

// ProductRepository handles database operations for products
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindAll retrieves all live products matching an optional search term
func (r *ProductRepository) FindAll(search string) ([]models.Product, error) {
	q := r.db.Model(&models.Product{})
	if search != "" {
		pat := searchPattern(search)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pat, pat)
	}

	var products []models.Product
	result := q.Order("name").Find(&products)
	return products, result.Error
}

// FindByIDOrName resolves a product by id, falling back to exact name
func (r *ProductRepository) FindByIDOrName(ref string) (*models.Product, error) {
	return findByIDOrName[models.Product](r.db, ref)
}

// Create inserts a new product
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Delete soft-deletes a product. Idempotent.
func (r *ProductRepository) Delete(id string) error {
	return r.db.Delete(&models.Product{}, "id = ?", id).Error
}

// ServiceRepository handles database operations for services
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository instance
func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// FindAll retrieves all live services matching an optional search term
func (r *ServiceRepository) FindAll(search string) ([]models.Service, error) {
	q := r.db.Model(&models.Service{})
	if search != "" {
		pat := searchPattern(search)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pat, pat)
	}

	var services []models.Service
	result := q.Order("name").Find(&services)
	return services, result.Error
}

// FindByIDOrName resolves a service by id, falling back to exact name
func (r *ServiceRepository) FindByIDOrName(ref string) (*models.Service, error) {
	return findByIDOrName[models.Service](r.db, ref)
}

// Create inserts a new service
func (r *ServiceRepository) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

// Delete soft-deletes a service. Idempotent.
func (r *ServiceRepository) Delete(id string) error {
	return r.db.Delete(&models.Service{}, "id = ?", id).Error
}
