package v1

import (
	"net/http"

	"github.com/botadmin/database"
	"github.com/botadmin/dto"
	"github.com/botadmin/services"
	"github.com/gin-gonic/gin"
)

// ProjectController handles project endpoints: CRUD, the status
// progression, tool assignments and the progress timeline
type ProjectController struct {
	projectService  *services.ProjectService
	progressService *services.ProgressService
}

// NewProjectController creates a new project controller
func NewProjectController(db *database.Database) *ProjectController {
	return &ProjectController{
		projectService:  services.NewProjectService(db),
		progressService: services.NewProgressService(db),
	}
}

// RegisterRoutes registers project routes
func (c *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", c.ListProjects)
		projects.POST("", c.CreateProject)
		projects.GET("/:id", c.GetProject)
		projects.PUT("/:id", c.UpdateProject)
		projects.DELETE("/:id", c.DeleteProject)

		projects.PUT("/:id/advance", c.AdvanceProject)
		projects.PUT("/:id/status", c.SetProjectStatus)

		projects.GET("/:id/tools", c.ListProjectTools)
		projects.POST("/:id/tools", c.AssignProjectTool)

		projects.GET("/:id/progress", c.GetProjectTimeline)
		projects.POST("/:id/progress", c.LogProjectProgress)
	}
}

// ListProjects retrieves projects matching the query filter
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	var filter dto.ProjectFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	projects, err := c.projectService.List(filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, projects)
}

// CreateProject creates a new project for a company
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	project, err := c.projectService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, project)
}

// GetProject retrieves one project with tools, implementation details
// and its timeline
func (c *ProjectController) GetProject(ctx *gin.Context) {
	project, err := c.projectService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if project == nil {
		respondNotFound(ctx, "project")
		return
	}
	respondData(ctx, http.StatusOK, project)
}

// UpdateProject applies a partial update to a project
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	project, err := c.projectService.Update(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, project)
}

// DeleteProject soft-deletes a project
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	id := ctx.Param("id")
	project, err := c.projectService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if project == nil {
		respondNotFound(ctx, "project")
		return
	}
	if err := c.projectService.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, gin.H{"deleted": id})
}

// AdvanceProject moves a project one step along the linear status
// progression; completed and off-track projects are reported as-is
func (c *ProjectController) AdvanceProject(ctx *gin.Context) {
	result, err := c.projectService.Advance(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, result)
}

// SetProjectStatus jumps a project to an explicit status
func (c *ProjectController) SetProjectStatus(ctx *gin.Context) {
	var req dto.SetStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	project, err := c.projectService.SetStatus(ctx.Param("id"), req.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, project)
}

// ListProjectTools retrieves the tools assigned to a project
func (c *ProjectController) ListProjectTools(ctx *gin.Context) {
	tools, err := c.projectService.Tools(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, tools)
}

// AssignProjectTool links a tool to a project
func (c *ProjectController) AssignProjectTool(ctx *gin.Context) {
	id := ctx.Param("id")
	project, err := c.projectService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if project == nil {
		respondNotFound(ctx, "project")
		return
	}

	var req dto.AssignToolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	link, err := c.projectService.AssignTool(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, link)
}

// GetProjectTimeline retrieves the progress log for a project, newest
// first
func (c *ProjectController) GetProjectTimeline(ctx *gin.Context) {
	timeline, err := c.progressService.Timeline(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, timeline)
}

// LogProjectProgress appends a timeline entry to a project
func (c *ProjectController) LogProjectProgress(ctx *gin.Context) {
	id := ctx.Param("id")
	project, err := c.projectService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if project == nil {
		respondNotFound(ctx, "project")
		return
	}

	var req dto.CreateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}
	req.ProjectID = id

	entry, err := c.progressService.Log(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, entry)
}
