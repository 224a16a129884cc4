package v1

import (
	"net/http"

	"github.com/botadmin/database"
	"github.com/botadmin/dto"
	"github.com/botadmin/services"
	"github.com/gin-gonic/gin"
)

// CompanyController handles company endpoints, including the catalog
// assignment sub-resources
type CompanyController struct {
	companyService *services.CompanyService
}

// NewCompanyController creates a new company controller
func NewCompanyController(db *database.Database) *CompanyController {
	return &CompanyController{
		companyService: services.NewCompanyService(db),
	}
}

// RegisterRoutes registers company routes
func (c *CompanyController) RegisterRoutes(router *gin.RouterGroup) {
	companies := router.Group("/companies")
	{
		companies.GET("", c.ListCompanies)
		companies.POST("", c.CreateCompany)
		companies.GET("/:id", c.GetCompany)
		companies.PUT("/:id", c.UpdateCompany)
		companies.DELETE("/:id", c.DeleteCompany)

		companies.POST("/:id/industries", c.AssignIndustry)
		companies.POST("/:id/niches", c.AssignNiche)
		companies.POST("/:id/products", c.AssignProduct)
		companies.POST("/:id/services", c.AssignService)
		companies.PUT("/:id/assignments", c.ReplaceAssignments)
	}
}

// resolveCompany maps an id-or-name path reference to a live company,
// writing the 404 response itself when nothing matches
func (c *CompanyController) resolveCompany(ctx *gin.Context) *dto.CompanyDetail {
	company, err := c.companyService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return nil
	}
	if company == nil {
		respondNotFound(ctx, "company")
		return nil
	}
	return company
}

// ListCompanies retrieves companies matching the query filter
func (c *CompanyController) ListCompanies(ctx *gin.Context) {
	var filter dto.CompanyFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	companies, err := c.companyService.List(filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, companies)
}

// CreateCompany creates a new company
func (c *CompanyController) CreateCompany(ctx *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	company, err := c.companyService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, company)
}

// GetCompany resolves a company by id or exact name with its catalog
// assignments and projects
func (c *CompanyController) GetCompany(ctx *gin.Context) {
	company := c.resolveCompany(ctx)
	if company == nil {
		return
	}
	respondData(ctx, http.StatusOK, company)
}

// UpdateCompany applies a partial update to a company
func (c *CompanyController) UpdateCompany(ctx *gin.Context) {
	company := c.resolveCompany(ctx)
	if company == nil {
		return
	}

	var req dto.UpdateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	updated, err := c.companyService.Update(company.ID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, updated)
}

// DeleteCompany soft-deletes a company
func (c *CompanyController) DeleteCompany(ctx *gin.Context) {
	company := c.resolveCompany(ctx)
	if company == nil {
		return
	}
	if err := c.companyService.Delete(company.ID); err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, gin.H{"deleted": company.ID})
}

// AssignIndustry adds an industry association to a company
func (c *CompanyController) AssignIndustry(ctx *gin.Context) {
	company := c.resolveCompany(ctx)
	if company == nil {
		return
	}

	var req dto.AssignCatalogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	link, err := c.companyService.AssignIndustry(company.ID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, link)
}

// AssignNiche adds a niche association to a company
func (c *CompanyController) AssignNiche(ctx *gin.Context) {
	company := c.resolveCompany(ctx)
	if company == nil {
		return
	}

	var req dto.AssignCatalogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	link, err := c.companyService.AssignNiche(company.ID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, link)
}

// AssignProduct adds a product association to a company
func (c *CompanyController) AssignProduct(ctx *gin.Context) {
	company := c.resolveCompany(ctx)
	if company == nil {
		return
	}

	var req dto.AssignCatalogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	link, err := c.companyService.AssignProduct(company.ID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, link)
}

// AssignService adds a service association to a company
func (c *CompanyController) AssignService(ctx *gin.Context) {
	company := c.resolveCompany(ctx)
	if company == nil {
		return
	}

	var req dto.AssignCatalogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	link, err := c.companyService.AssignService(company.ID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, link)
}

// ReplaceAssignments swaps every association of one catalog type for
// the supplied id set in a single transaction
func (c *CompanyController) ReplaceAssignments(ctx *gin.Context) {
	company := c.resolveCompany(ctx)
	if company == nil {
		return
	}

	var req dto.ReplaceAssignmentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	if err := c.companyService.ReplaceAssignments(company.ID, req); err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, gin.H{
		"companyId": company.ID,
		"type":      req.Type,
		"count":     len(req.IDs),
	})
}
