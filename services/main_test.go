package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/botadmin/database"
	"github.com/botadmin/dto"
	"github.com/botadmin/models"
)

// newTestDatabase opens an isolated in-memory store migrated with the
// production models
func newTestDatabase(t *testing.T) *database.Database {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(database.Models()...))

	return &database.Database{DB: gdb}
}

func createTestCompany(t *testing.T, db *database.Database, name string) *models.Company {
	t.Helper()
	company, err := NewCompanyService(db).Create(dto.CreateCompanyRequest{Name: name})
	require.NoError(t, err)
	return company
}

func createTestIndustry(t *testing.T, db *database.Database, name string) *models.Industry {
	t.Helper()
	industry, err := NewIndustryService(db).Create(dto.CreateIndustryRequest{Name: name})
	require.NoError(t, err)
	return industry
}

func createTestTool(t *testing.T, db *database.Database, name string) *models.Tool {
	t.Helper()
	tool, err := NewToolService(db).Create(dto.CreateToolRequest{Name: name, Category: "api"})
	require.NoError(t, err)
	return tool
}

func createTestProject(t *testing.T, db *database.Database, companyID, name string) *dto.ProjectRow {
	t.Helper()
	project, err := NewProjectService(db).Create(dto.CreateProjectRequest{CompanyID: companyID, Name: name})
	require.NoError(t, err)
	return project
}
