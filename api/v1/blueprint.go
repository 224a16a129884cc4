package v1

import (
	"net/http"

	"github.com/botadmin/database"
	"github.com/botadmin/dto"
	"github.com/botadmin/services"
	"github.com/gin-gonic/gin"
)

// BlueprintController handles blueprint endpoints, including the apply
// operation that instantiates a blueprint into a project
type BlueprintController struct {
	blueprintService *services.BlueprintService
}

// NewBlueprintController creates a new blueprint controller
func NewBlueprintController(db *database.Database) *BlueprintController {
	return &BlueprintController{
		blueprintService: services.NewBlueprintService(db),
	}
}

// RegisterRoutes registers blueprint routes
func (c *BlueprintController) RegisterRoutes(router *gin.RouterGroup) {
	blueprints := router.Group("/blueprints")
	{
		blueprints.GET("", c.ListBlueprints)
		blueprints.POST("", c.CreateBlueprint)
		blueprints.GET("/:id", c.GetBlueprint)
		blueprints.DELETE("/:id", c.DeleteBlueprint)

		blueprints.POST("/:id/steps", c.AddStep)
		blueprints.POST("/:id/tools", c.AddTool)
		blueprints.POST("/:id/industries", c.AssignIndustry)
		blueprints.DELETE("/:id/industries/:industryId", c.RemoveIndustry)
		blueprints.POST("/:id/niches", c.AssignNiche)
		blueprints.DELETE("/:id/niches/:nicheId", c.RemoveNiche)

		blueprints.POST("/:id/apply", c.ApplyBlueprint)
	}
}

// resolveBlueprint maps an id-or-name path reference to a live
// blueprint, writing the 404 response itself when nothing matches
func (c *BlueprintController) resolveBlueprint(ctx *gin.Context) *dto.BlueprintDetail {
	blueprint, err := c.blueprintService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return nil
	}
	if blueprint == nil {
		respondNotFound(ctx, "blueprint")
		return nil
	}
	return blueprint
}

// ListBlueprints retrieves blueprints matching the query filter
func (c *BlueprintController) ListBlueprints(ctx *gin.Context) {
	var filter dto.BlueprintFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	blueprints, err := c.blueprintService.List(filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, blueprints)
}

// CreateBlueprint creates a new blueprint
func (c *BlueprintController) CreateBlueprint(ctx *gin.Context) {
	var req dto.CreateBlueprintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	blueprint, err := c.blueprintService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, blueprint)
}

// GetBlueprint resolves a blueprint by id or exact name with its
// steps, tools and catalog tags
func (c *BlueprintController) GetBlueprint(ctx *gin.Context) {
	blueprint := c.resolveBlueprint(ctx)
	if blueprint == nil {
		return
	}
	respondData(ctx, http.StatusOK, blueprint)
}

// DeleteBlueprint soft-deletes a blueprint
func (c *BlueprintController) DeleteBlueprint(ctx *gin.Context) {
	blueprint := c.resolveBlueprint(ctx)
	if blueprint == nil {
		return
	}
	if err := c.blueprintService.Delete(blueprint.ID); err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, gin.H{"deleted": blueprint.ID})
}

// AddStep appends a step to a blueprint
func (c *BlueprintController) AddStep(ctx *gin.Context) {
	blueprint := c.resolveBlueprint(ctx)
	if blueprint == nil {
		return
	}

	var req dto.AddStepRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	step, err := c.blueprintService.AddStep(blueprint.ID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, step)
}

// AddTool links a tool to a blueprint
func (c *BlueprintController) AddTool(ctx *gin.Context) {
	blueprint := c.resolveBlueprint(ctx)
	if blueprint == nil {
		return
	}

	var req dto.AddBlueprintToolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	link, err := c.blueprintService.AddTool(blueprint.ID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, link)
}

// AssignIndustry tags a blueprint with an industry
func (c *BlueprintController) AssignIndustry(ctx *gin.Context) {
	blueprint := c.resolveBlueprint(ctx)
	if blueprint == nil {
		return
	}

	var req dto.AssignCatalogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	tag, err := c.blueprintService.AssignIndustry(blueprint.ID, req.Ref)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, tag)
}

// RemoveIndustry drops an industry tag from a blueprint
func (c *BlueprintController) RemoveIndustry(ctx *gin.Context) {
	blueprint := c.resolveBlueprint(ctx)
	if blueprint == nil {
		return
	}

	if err := c.blueprintService.RemoveIndustry(blueprint.ID, ctx.Param("industryId")); err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, gin.H{"removed": ctx.Param("industryId")})
}

// AssignNiche tags a blueprint with a niche
func (c *BlueprintController) AssignNiche(ctx *gin.Context) {
	blueprint := c.resolveBlueprint(ctx)
	if blueprint == nil {
		return
	}

	var req dto.AssignCatalogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	tag, err := c.blueprintService.AssignNiche(blueprint.ID, req.Ref)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, tag)
}

// RemoveNiche drops a niche tag from a blueprint
func (c *BlueprintController) RemoveNiche(ctx *gin.Context) {
	blueprint := c.resolveBlueprint(ctx)
	if blueprint == nil {
		return
	}

	if err := c.blueprintService.RemoveNiche(blueprint.ID, ctx.Param("nicheId")); err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, gin.H{"removed": ctx.Param("nicheId")})
}

// ApplyBlueprint instantiates a blueprint as a new project for a
// company, copying the blueprint tools onto the project
func (c *BlueprintController) ApplyBlueprint(ctx *gin.Context) {
	var req dto.ApplyBlueprintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	result, err := c.blueprintService.Apply(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, result)
}
