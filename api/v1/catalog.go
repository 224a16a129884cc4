package v1

import (
	"net/http"

	"github.com/botadmin/database"
	"github.com/botadmin/dto"
	"github.com/botadmin/services"
	"github.com/gin-gonic/gin"
)

// CatalogController handles the industry, niche, product and service
// catalog endpoints
type CatalogController struct {
	industryService *services.IndustryService
	nicheService    *services.NicheService
	productService  *services.ProductService
	serviceService  *services.ServiceService
}

// NewCatalogController creates a new catalog controller
func NewCatalogController(db *database.Database) *CatalogController {
	return &CatalogController{
		industryService: services.NewIndustryService(db),
		nicheService:    services.NewNicheService(db),
		productService:  services.NewProductService(db),
		serviceService:  services.NewServiceService(db),
	}
}

// RegisterRoutes registers catalog routes
func (c *CatalogController) RegisterRoutes(router *gin.RouterGroup) {
	industries := router.Group("/industries")
	{
		industries.GET("", c.ListIndustries)
		industries.POST("", c.CreateIndustry)
		industries.GET("/:id", c.GetIndustry)
		industries.DELETE("/:id", c.DeleteIndustry)
	}

	niches := router.Group("/niches")
	{
		niches.GET("", c.ListNiches)
		niches.POST("", c.CreateNiche)
		niches.GET("/:id", c.GetNiche)
		niches.DELETE("/:id", c.DeleteNiche)
	}

	products := router.Group("/products")
	{
		products.GET("", c.ListProducts)
		products.POST("", c.CreateProduct)
		products.GET("/:id", c.GetProduct)
		products.DELETE("/:id", c.DeleteProduct)
	}

	catalogServices := router.Group("/services")
	{
		catalogServices.GET("", c.ListServices)
		catalogServices.POST("", c.CreateService)
		catalogServices.GET("/:id", c.GetService)
		catalogServices.DELETE("/:id", c.DeleteService)
	}
}

// ListIndustries retrieves industries matching the query filter
func (c *CatalogController) ListIndustries(ctx *gin.Context) {
	var filter dto.CatalogFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	industries, err := c.industryService.List(filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, industries)
}

// CreateIndustry creates a new industry
func (c *CatalogController) CreateIndustry(ctx *gin.Context) {
	var req dto.CreateIndustryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	industry, err := c.industryService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, industry)
}

// GetIndustry resolves an industry by id or exact name
func (c *CatalogController) GetIndustry(ctx *gin.Context) {
	industry, err := c.industryService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if industry == nil {
		respondNotFound(ctx, "industry")
		return
	}
	respondData(ctx, http.StatusOK, industry)
}

// DeleteIndustry soft-deletes an industry and its niches
func (c *CatalogController) DeleteIndustry(ctx *gin.Context) {
	industry, err := c.industryService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if industry == nil {
		respondNotFound(ctx, "industry")
		return
	}
	if err := c.industryService.Delete(industry.ID); err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, gin.H{"deleted": industry.ID})
}

// ListNiches retrieves niches, optionally narrowed to one industry
func (c *CatalogController) ListNiches(ctx *gin.Context) {
	var filter dto.NicheFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	niches, err := c.nicheService.List(filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, niches)
}

// CreateNiche creates a new niche under an industry
func (c *CatalogController) CreateNiche(ctx *gin.Context) {
	var req dto.CreateNicheRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	niche, err := c.nicheService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, niche)
}

// GetNiche resolves a niche by id or exact name
func (c *CatalogController) GetNiche(ctx *gin.Context) {
	niche, err := c.nicheService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if niche == nil {
		respondNotFound(ctx, "niche")
		return
	}
	respondData(ctx, http.StatusOK, niche)
}

// DeleteNiche soft-deletes a niche
func (c *CatalogController) DeleteNiche(ctx *gin.Context) {
	niche, err := c.nicheService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if niche == nil {
		respondNotFound(ctx, "niche")
		return
	}
	if err := c.nicheService.Delete(niche.ID); err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, gin.H{"deleted": niche.ID})
}

// ListProducts retrieves products matching the query filter
func (c *CatalogController) ListProducts(ctx *gin.Context) {
	var filter dto.CatalogFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	products, err := c.productService.List(filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, products)
}

// CreateProduct creates a new product
func (c *CatalogController) CreateProduct(ctx *gin.Context) {
	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	product, err := c.productService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, product)
}

// GetProduct resolves a product by id or exact name
func (c *CatalogController) GetProduct(ctx *gin.Context) {
	product, err := c.productService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if product == nil {
		respondNotFound(ctx, "product")
		return
	}
	respondData(ctx, http.StatusOK, product)
}

// DeleteProduct soft-deletes a product
func (c *CatalogController) DeleteProduct(ctx *gin.Context) {
	product, err := c.productService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if product == nil {
		respondNotFound(ctx, "product")
		return
	}
	if err := c.productService.Delete(product.ID); err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, gin.H{"deleted": product.ID})
}

// ListServices retrieves services matching the query filter
func (c *CatalogController) ListServices(ctx *gin.Context) {
	var filter dto.CatalogFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	catalogServices, err := c.serviceService.List(filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, catalogServices)
}

// CreateService creates a new service
func (c *CatalogController) CreateService(ctx *gin.Context) {
	var req dto.CreateServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	service, err := c.serviceService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, service)
}

// GetService resolves a service by id or exact name
func (c *CatalogController) GetService(ctx *gin.Context) {
	service, err := c.serviceService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if service == nil {
		respondNotFound(ctx, "service")
		return
	}
	respondData(ctx, http.StatusOK, service)
}

// DeleteService soft-deletes a service
func (c *CatalogController) DeleteService(ctx *gin.Context) {
	service, err := c.serviceService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if service == nil {
		respondNotFound(ctx, "service")
		return
	}
	if err := c.serviceService.Delete(service.ID); err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, gin.H{"deleted": service.ID})
}
