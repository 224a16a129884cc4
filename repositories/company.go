package repositories

import (
	"github.com/botadmin/dto"
	"github.com/botadmin/models"
	"gorm.io/gorm"
)

// CompanyRepository handles database operations for companies and
// their catalog associations
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository instance
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// FindAll retrieves live companies filtered by status and a
// case-insensitive name search, ordered by name
func (r *CompanyRepository) FindAll(filter dto.CompanyFilter) ([]models.Company, error) {
	q := r.db.Model(&models.Company{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", searchPattern(filter.Search))
	}

	var companies []models.Company
	result := q.Order("name").Find(&companies)
	return companies, result.Error
}

// FindByIDOrName resolves a company by id, falling back to exact name
func (r *CompanyRepository) FindByIDOrName(ref string) (*models.Company, error) {
	return findByIDOrName[models.Company](r.db, ref)
}

// Create inserts a new company
func (r *CompanyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

// Update applies the given column updates and reloads the row.
// GORM touches updated_at on every call.
func (r *CompanyRepository) Update(id string, updates map[string]interface{}) (*models.Company, error) {
	result := r.db.Model(&models.Company{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var company models.Company
	if err := r.db.First(&company, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// Delete soft-deletes a company. Idempotent.
func (r *CompanyRepository) Delete(id string) error {
	return r.db.Delete(&models.Company{}, "id = ?", id).Error
}

// Projects retrieves the company's live projects, newest change first
func (r *CompanyRepository) Projects(companyID string) ([]models.Project, error) {
	var projects []models.Project
	result := r.db.Where("company_id = ?", companyID).Order("updated_at DESC").Find(&projects)
	return projects, result.Error
}

// Industries retrieves the company's industry associations joined
// with the industry names
func (r *CompanyRepository) Industries(companyID string) ([]dto.AssignedIndustry, error) {
	var rows []dto.AssignedIndustry
	err := r.db.Model(&models.CompanyIndustry{}).
		Select("company_industries.id AS id, industries.id AS industry_id, industries.name AS industry_name").
		Joins("JOIN industries ON industries.id = company_industries.industry_id").
		Where("company_industries.company_id = ?", companyID).
		Scan(&rows).Error
	return rows, err
}

// Niches retrieves the company's niche associations joined with the
// niche and parent industry names
func (r *CompanyRepository) Niches(companyID string) ([]dto.AssignedNiche, error) {
	var rows []dto.AssignedNiche
	err := r.db.Model(&models.CompanyNiche{}).
		Select("company_niches.id AS id, niches.id AS niche_id, niches.name AS niche_name, industries.name AS industry_name").
		Joins("JOIN niches ON niches.id = company_niches.niche_id").
		Joins("JOIN industries ON industries.id = niches.industry_id").
		Where("company_niches.company_id = ?", companyID).
		Scan(&rows).Error
	return rows, err
}

// Products retrieves the company's product associations joined with
// the product names
func (r *CompanyRepository) Products(companyID string) ([]dto.AssignedProduct, error) {
	var rows []dto.AssignedProduct
	err := r.db.Model(&models.CompanyProduct{}).
		Select("company_products.id AS id, products.id AS product_id, products.name AS product_name, company_products.notes AS notes").
		Joins("JOIN products ON products.id = company_products.product_id").
		Where("company_products.company_id = ?", companyID).
		Scan(&rows).Error
	return rows, err
}

// Services retrieves the company's service associations joined with
// the service names
func (r *CompanyRepository) Services(companyID string) ([]dto.AssignedService, error) {
	var rows []dto.AssignedService
	err := r.db.Model(&models.CompanyService{}).
		Select("company_services.id AS id, services.id AS service_id, services.name AS service_name, company_services.notes AS notes").
		Joins("JOIN services ON services.id = company_services.service_id").
		Where("company_services.company_id = ?", companyID).
		Scan(&rows).Error
	return rows, err
}

// AssignIndustry inserts one industry association row. No duplicate
// check: assigning twice creates two rows.
func (r *CompanyRepository) AssignIndustry(row *models.CompanyIndustry) error {
	return r.db.Create(row).Error
}

// AssignNiche inserts one niche association row
func (r *CompanyRepository) AssignNiche(row *models.CompanyNiche) error {
	return r.db.Create(row).Error
}

// AssignProduct inserts one product association row
func (r *CompanyRepository) AssignProduct(row *models.CompanyProduct) error {
	return r.db.Create(row).Error
}

// AssignService inserts one service association row
func (r *CompanyRepository) AssignService(row *models.CompanyService) error {
	return r.db.Create(row).Error
}

// ReplaceIndustries atomically deletes every industry association for
// the company and inserts the given replacement rows
func (r *CompanyRepository) ReplaceIndustries(companyID string, rows []models.CompanyIndustry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", companyID).Delete(&models.CompanyIndustry{}).Error; err != nil {
			return err
		}
		for i := range rows {
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceNiches atomically replaces the company's niche associations
func (r *CompanyRepository) ReplaceNiches(companyID string, rows []models.CompanyNiche) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", companyID).Delete(&models.CompanyNiche{}).Error; err != nil {
			return err
		}
		for i := range rows {
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceProducts atomically replaces the company's product associations
func (r *CompanyRepository) ReplaceProducts(companyID string, rows []models.CompanyProduct) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", companyID).Delete(&models.CompanyProduct{}).Error; err != nil {
			return err
		}
		for i := range rows {
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceServices atomically replaces the company's service associations
func (r *CompanyRepository) ReplaceServices(companyID string, rows []models.CompanyService) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", companyID).Delete(&models.CompanyService{}).Error; err != nil {
			return err
		}
		for i := range rows {
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
