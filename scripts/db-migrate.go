package main

import (
	"log"

	"github.com/botadmin/config"
	"github.com/botadmin/database"
)

func main() {
	log.Println("Starting database migration...")

	config.LoadEnv()

	db, err := database.New(config.DatabaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Database migration completed successfully!")
}
