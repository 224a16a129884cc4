package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/botadmin/api/v1"
	"github.com/botadmin/config"
	"github.com/botadmin/database"
)

func main() {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Load environment from .env when present
	config.LoadEnv()

	// Connect and migrate the store
	db, err := database.New(config.DatabaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Mount the v1 API
	apiV1 := router.Group("/api/v1")
	v1.RegisterRoutes(apiV1, db)

	// Start server
	port := config.Port()
	log.Printf("botadmin API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
