package v1

import (
	"net/http"

	"github.com/botadmin/database"
	"github.com/botadmin/dto"
	"github.com/botadmin/services"
	"github.com/gin-gonic/gin"
)

// ImplController handles implementation detail endpoints: the prompts,
// configs, API references and notes attached to projects
type ImplController struct {
	implService *services.ImplService
}

// NewImplController creates a new implementation detail controller
func NewImplController(db *database.Database) *ImplController {
	return &ImplController{
		implService: services.NewImplService(db),
	}
}

// RegisterRoutes registers implementation detail routes
func (c *ImplController) RegisterRoutes(router *gin.RouterGroup) {
	details := router.Group("/details")
	{
		details.GET("", c.ListDetails)
		details.POST("", c.CreateDetail)
		details.GET("/:id", c.GetDetail)
		details.PUT("/:id", c.UpdateDetail)
		details.DELETE("/:id", c.DeleteDetail)
	}
}

// ListDetails retrieves the implementation details of one project,
// optionally narrowed to one artifact type
func (c *ImplController) ListDetails(ctx *gin.Context) {
	var filter dto.ImplFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	details, err := c.implService.List(filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, details)
}

// CreateDetail attaches an implementation artifact to a project
func (c *ImplController) CreateDetail(ctx *gin.Context) {
	var req dto.CreateImplRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	detail, err := c.implService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, detail)
}

// GetDetail retrieves one implementation detail by id
func (c *ImplController) GetDetail(ctx *gin.Context) {
	detail, err := c.implService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if detail == nil {
		respondNotFound(ctx, "implementation detail")
		return
	}
	respondData(ctx, http.StatusOK, detail)
}

// UpdateDetail applies a partial update to an implementation detail
func (c *ImplController) UpdateDetail(ctx *gin.Context) {
	var req dto.UpdateImplRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	detail, err := c.implService.Update(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, detail)
}

// DeleteDetail soft-deletes an implementation detail
func (c *ImplController) DeleteDetail(ctx *gin.Context) {
	id := ctx.Param("id")
	detail, err := c.implService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if detail == nil {
		respondNotFound(ctx, "implementation detail")
		return
	}
	if err := c.implService.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, gin.H{"deleted": id})
}
