package v1

import (
	"github.com/botadmin/database"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, db *database.Database) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	NewCatalogController(db).RegisterRoutes(router)
	NewCompanyController(db).RegisterRoutes(router)
	NewToolController(db).RegisterRoutes(router)
	NewProjectController(db).RegisterRoutes(router)
	NewBlueprintController(db).RegisterRoutes(router)
	NewImplController(db).RegisterRoutes(router)
	NewDashboardController(db).RegisterRoutes(router)
}
