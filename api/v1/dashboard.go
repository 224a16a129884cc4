package v1

import (
	"net/http"

	"github.com/botadmin/database"
	"github.com/botadmin/services"
	"github.com/gin-gonic/gin"
)

// DashboardController handles the aggregate dashboard and analytics
// endpoints
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(db *database.Database) *DashboardController {
	return &DashboardController{
		dashboardService: services.NewDashboardService(db),
	}
}

// RegisterRoutes registers dashboard routes
func (c *DashboardController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", c.GetDashboard)
	router.GET("/analytics", c.GetAnalytics)
}

// GetDashboard retrieves the landing-page summary
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.dashboardService.Dashboard()
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, dashboard)
}

// GetAnalytics retrieves the catalog and delivery distributions
func (c *DashboardController) GetAnalytics(ctx *gin.Context) {
	analytics, err := c.dashboardService.Analytics()
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, analytics)
}
