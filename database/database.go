package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/botadmin/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is the shared store handle, constructed once at process
// start and injected into every service.
type Database struct {
	DB *gorm.DB
}

// Models lists every persisted entity and junction, in FK-safe
// migration order.
func Models() []interface{} {
	return []interface{}{
		&models.Industry{},
		&models.Niche{},
		&models.Product{},
		&models.Service{},
		&models.Company{},
		&models.Tool{},
		&models.Project{},
		&models.ProjectTool{},
		&models.ImplementationDetail{},
		&models.ProgressLog{},
		&models.Blueprint{},
		&models.BlueprintStep{},
		&models.BlueprintTool{},
		&models.CompanyIndustry{},
		&models.CompanyNiche{},
		&models.CompanyProduct{},
		&models.CompanyService{},
		&models.BlueprintIndustry{},
		&models.BlueprintNiche{},
	}
}

// New opens a GORM connection to the given Postgres URL
func New(dbURL string) (*Database, error) {
	if dbURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
		},
	)

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// Connection pool settings. One connection is plenty for CLI use;
	// the web server benefits from the idle pool.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %v", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Database{DB: db}, nil
}

// Migrate migrates the database schema
func (d *Database) Migrate() error {
	if err := d.DB.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %v", err)
	}
	return nil
}
