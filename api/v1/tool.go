package v1

import (
	"net/http"

	"github.com/botadmin/database"
	"github.com/botadmin/dto"
	"github.com/botadmin/services"
	"github.com/gin-gonic/gin"
)

// ToolController handles tool registry endpoints
type ToolController struct {
	toolService *services.ToolService
}

// NewToolController creates a new tool controller
func NewToolController(db *database.Database) *ToolController {
	return &ToolController{
		toolService: services.NewToolService(db),
	}
}

// RegisterRoutes registers tool routes
func (c *ToolController) RegisterRoutes(router *gin.RouterGroup) {
	tools := router.Group("/tools")
	{
		tools.GET("", c.ListTools)
		tools.POST("", c.CreateTool)
		tools.GET("/:id", c.GetTool)
		tools.DELETE("/:id", c.DeleteTool)
	}
}

// ListTools retrieves tools matching the query filter
func (c *ToolController) ListTools(ctx *gin.Context) {
	var filter dto.ToolFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	tools, err := c.toolService.List(filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, tools)
}

// CreateTool registers a new tool
func (c *ToolController) CreateTool(ctx *gin.Context) {
	var req dto.CreateToolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	tool, err := c.toolService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, tool)
}

// GetTool resolves a tool by id or exact name
func (c *ToolController) GetTool(ctx *gin.Context) {
	tool, err := c.toolService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if tool == nil {
		respondNotFound(ctx, "tool")
		return
	}
	respondData(ctx, http.StatusOK, tool)
}

// DeleteTool soft-deletes a tool
func (c *ToolController) DeleteTool(ctx *gin.Context) {
	tool, err := c.toolService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if tool == nil {
		respondNotFound(ctx, "tool")
		return
	}
	if err := c.toolService.Delete(tool.ID); err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, gin.H{"deleted": tool.ID})
}
