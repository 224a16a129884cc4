package services

import (
	"fmt"

	"github.com/botadmin/database"
	"github.com/botadmin/dto"
	"github.com/botadmin/models"
	"github.com/botadmin/repositories"
	"github.com/botadmin/utils"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CompanyService handles business logic for client companies and
// their catalog associations
type CompanyService struct {
	companyRepo  *repositories.CompanyRepository
	industryRepo *repositories.IndustryRepository
	nicheRepo    *repositories.NicheRepository
	productRepo  *repositories.ProductRepository
	serviceRepo  *repositories.ServiceRepository
}

// NewCompanyService creates a new company service instance
func NewCompanyService(db *database.Database) *CompanyService {
	return &CompanyService{
		companyRepo:  repositories.NewCompanyRepository(db.DB),
		industryRepo: repositories.NewIndustryRepository(db.DB),
		nicheRepo:    repositories.NewNicheRepository(db.DB),
		productRepo:  repositories.NewProductRepository(db.DB),
		serviceRepo:  repositories.NewServiceRepository(db.DB),
	}
}

// Create validates and inserts a new company. Optional contact fields
// are only checked for shape when present.
func (s *CompanyService) Create(req dto.CreateCompanyRequest) (*models.Company, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.ContactEmail, is.EmailFormat),
		validation.Field(&req.Website, is.URL),
	)
	if err != nil {
		return nil, err
	}

	company := models.Company{
		ID:           utils.GenerateID(utils.EntityCompany),
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Website:      req.Website,
		Notes:        req.Notes,
		Status:       models.CompanyStatusActive,
	}
	if err := s.companyRepo.Create(&company); err != nil {
		return nil, translateWriteError("company", req.Name, err)
	}
	return &company, nil
}

// List retrieves live companies matching the filter
func (s *CompanyService) List(filter dto.CompanyFilter) ([]models.Company, error) {
	return s.companyRepo.FindAll(filter)
}

// Get resolves a company by id or exact name and eagerly loads its
// catalog associations and live projects. Returns nil when nothing
// matches.
func (s *CompanyService) Get(ref string) (*dto.CompanyDetail, error) {
	company, err := s.companyRepo.FindByIDOrName(ref)
	if err != nil || company == nil {
		return nil, err
	}

	detail := dto.CompanyDetail{Company: *company}
	if detail.Industries, err = s.companyRepo.Industries(company.ID); err != nil {
		return nil, err
	}
	if detail.Niches, err = s.companyRepo.Niches(company.ID); err != nil {
		return nil, err
	}
	if detail.Products, err = s.companyRepo.Products(company.ID); err != nil {
		return nil, err
	}
	if detail.Services, err = s.companyRepo.Services(company.ID); err != nil {
		return nil, err
	}
	if detail.Projects, err = s.companyRepo.Projects(company.ID); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Update applies a partial update. Status moves freely between enum
// values; there is no state machine on companies.
func (s *CompanyService) Update(id string, req dto.UpdateCompanyRequest) (*models.Company, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.NilOrNotEmpty),
		validation.Field(&req.ContactEmail, is.EmailFormat),
		validation.Field(&req.Website, is.URL),
		validation.Field(&req.Status, validation.In(enumValues(models.CompanyStatuses)...)),
	)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.ContactName != nil {
		updates["contact_name"] = *req.ContactName
	}
	if req.ContactEmail != nil {
		updates["contact_email"] = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		updates["contact_phone"] = *req.ContactPhone
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) == 0 {
		return nil, validation.Errors{
			"update": validation.NewError("empty_update", "no fields to update"),
		}
	}

	name := ""
	if req.Name != nil {
		name = *req.Name
	}
	company, err := s.companyRepo.Update(id, updates)
	if err != nil {
		return nil, translateWriteError("company", name, err)
	}
	if company == nil {
		return nil, ErrNotFound
	}
	return company, nil
}

// Delete soft-deletes a company
func (s *CompanyService) Delete(id string) error {
	return s.companyRepo.Delete(id)
}

// AssignIndustry adds one industry association, resolving the catalog
// reference by id or name. Duplicate assignments create duplicate rows.
func (s *CompanyService) AssignIndustry(companyID string, req dto.AssignCatalogRequest) (*models.CompanyIndustry, error) {
	industry, err := s.industryRepo.FindByIDOrName(req.Ref)
	if err != nil {
		return nil, err
	}
	if industry == nil {
		return nil, ErrNotFound
	}

	row := models.CompanyIndustry{
		ID:         utils.GenerateID(utils.EntityCompanyIndustry),
		CompanyID:  companyID,
		IndustryID: industry.ID,
	}
	if err := s.companyRepo.AssignIndustry(&row); err != nil {
		return nil, translateWriteError("company industry", industry.Name, err)
	}
	return &row, nil
}

// AssignNiche adds one niche association
func (s *CompanyService) AssignNiche(companyID string, req dto.AssignCatalogRequest) (*models.CompanyNiche, error) {
	niche, err := s.nicheRepo.FindByIDOrName(req.Ref)
	if err != nil {
		return nil, err
	}
	if niche == nil {
		return nil, ErrNotFound
	}

	row := models.CompanyNiche{
		ID:        utils.GenerateID(utils.EntityCompanyNiche),
		CompanyID: companyID,
		NicheID:   niche.ID,
	}
	if err := s.companyRepo.AssignNiche(&row); err != nil {
		return nil, translateWriteError("company niche", niche.Name, err)
	}
	return &row, nil
}

// AssignProduct adds one product association with optional notes
func (s *CompanyService) AssignProduct(companyID string, req dto.AssignCatalogRequest) (*models.CompanyProduct, error) {
	product, err := s.productRepo.FindByIDOrName(req.Ref)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	row := models.CompanyProduct{
		ID:        utils.GenerateID(utils.EntityCompanyProduct),
		CompanyID: companyID,
		ProductID: product.ID,
		Notes:     req.Notes,
	}
	if err := s.companyRepo.AssignProduct(&row); err != nil {
		return nil, translateWriteError("company product", product.Name, err)
	}
	return &row, nil
}

// AssignService adds one service association with optional notes
func (s *CompanyService) AssignService(companyID string, req dto.AssignCatalogRequest) (*models.CompanyService, error) {
	service, err := s.serviceRepo.FindByIDOrName(req.Ref)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrNotFound
	}

	row := models.CompanyService{
		ID:        utils.GenerateID(utils.EntityCompanyService),
		CompanyID: companyID,
		ServiceID: service.ID,
		Notes:     req.Notes,
	}
	if err := s.companyRepo.AssignService(&row); err != nil {
		return nil, translateWriteError("company service", service.Name, err)
	}
	return &row, nil
}

// ReplaceAssignments atomically supersedes every association of the
// given type with the supplied id set. An empty set clears the type.
func (s *CompanyService) ReplaceAssignments(companyID string, req dto.ReplaceAssignmentsRequest) error {
	switch req.Type {
	case "industry":
		rows := make([]models.CompanyIndustry, 0, len(req.IDs))
		for _, id := range req.IDs {
			rows = append(rows, models.CompanyIndustry{
				ID:         utils.GenerateID(utils.EntityCompanyIndustry),
				CompanyID:  companyID,
				IndustryID: id,
			})
		}
		return s.companyRepo.ReplaceIndustries(companyID, rows)
	case "niche":
		rows := make([]models.CompanyNiche, 0, len(req.IDs))
		for _, id := range req.IDs {
			rows = append(rows, models.CompanyNiche{
				ID:        utils.GenerateID(utils.EntityCompanyNiche),
				CompanyID: companyID,
				NicheID:   id,
			})
		}
		return s.companyRepo.ReplaceNiches(companyID, rows)
	case "product":
		rows := make([]models.CompanyProduct, 0, len(req.IDs))
		for _, id := range req.IDs {
			rows = append(rows, models.CompanyProduct{
				ID:        utils.GenerateID(utils.EntityCompanyProduct),
				CompanyID: companyID,
				ProductID: id,
			})
		}
		return s.companyRepo.ReplaceProducts(companyID, rows)
	case "service":
		rows := make([]models.CompanyService, 0, len(req.IDs))
		for _, id := range req.IDs {
			rows = append(rows, models.CompanyService{
				ID:        utils.GenerateID(utils.EntityCompanyService),
				CompanyID: companyID,
				ServiceID: id,
			})
		}
		return s.companyRepo.ReplaceServices(companyID, rows)
	default:
		return validation.Errors{
			"type": validation.NewError("invalid_type", fmt.Sprintf("unknown assignment type %q", req.Type)),
		}
	}
}
