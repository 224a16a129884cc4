package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botadmin/dto"
)

func TestDashboardCounts(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewDashboardService(db)

	company := createTestCompany(t, db, "Acme Corp")
	deleted := createTestCompany(t, db, "Bravo Studio")
	require.NoError(t, NewCompanyService(db).Delete(deleted.ID))

	createTestProject(t, db, company.ID, "Intake Bot")
	second := createTestProject(t, db, company.ID, "Support Bot")
	_, err := NewProjectService(db).SetStatus(second.ID, "in_progress")
	require.NoError(t, err)

	createTestTool(t, db, "Twilio")
	_, err = NewBlueprintService(db).Create(dto.CreateBlueprintRequest{Name: "Dental Intake"})
	require.NoError(t, err)
	_, err = NewProgressService(db).Log(dto.CreateProgressRequest{ProjectID: second.ID, Phase: "build"})
	require.NoError(t, err)

	dashboard, err := svc.Dashboard()
	require.NoError(t, err)
	assert.EqualValues(t, 1, dashboard.Companies)
	assert.EqualValues(t, 2, dashboard.Projects)
	assert.EqualValues(t, 1, dashboard.Tools)
	assert.EqualValues(t, 1, dashboard.Blueprints)
	assert.Len(t, dashboard.ProjectsByStatus, 2)
	assert.Len(t, dashboard.RecentProgress, 1)
	assert.Len(t, dashboard.RecentCompanies, 1)
	assert.Len(t, dashboard.RecentProjects, 2)
}

func TestAnalyticsDistributions(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewDashboardService(db)
	companySvc := NewCompanyService(db)
	projectSvc := NewProjectService(db)

	company := createTestCompany(t, db, "Acme Corp")
	industry := createTestIndustry(t, db, "Healthcare")
	_, err := companySvc.AssignIndustry(company.ID, dto.AssignCatalogRequest{Ref: industry.ID})
	require.NoError(t, err)

	project := createTestProject(t, db, company.ID, "Intake Bot")
	createTestProject(t, db, company.ID, "Support Bot")
	createTestTool(t, db, "Twilio")
	_, err = projectSvc.AssignTool(project.ID, dto.AssignToolRequest{ToolRef: "Twilio"})
	require.NoError(t, err)

	analytics, err := svc.Analytics()
	require.NoError(t, err)

	require.Len(t, analytics.ProjectsByCompanyStatus, 1)
	assert.Equal(t, "active", analytics.ProjectsByCompanyStatus[0].Status)
	assert.EqualValues(t, 2, analytics.ProjectsByCompanyStatus[0].Count)

	require.Len(t, analytics.ProjectsByIndustry, 1)
	assert.Equal(t, "Healthcare", analytics.ProjectsByIndustry[0].Name)
	assert.EqualValues(t, 2, analytics.ProjectsByIndustry[0].Count)

	require.Len(t, analytics.TopTools, 1)
	assert.Equal(t, "Twilio", analytics.TopTools[0].Name)
	assert.EqualValues(t, 1, analytics.TopTools[0].Count)

	require.Len(t, analytics.ProjectStatusBreakdown, 1)
	assert.Equal(t, "planning", analytics.ProjectStatusBreakdown[0].Status)
}

func TestTopToolsIgnoresDeletedProjects(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewDashboardService(db)
	projectSvc := NewProjectService(db)

	company := createTestCompany(t, db, "Acme Corp")
	kept := createTestProject(t, db, company.ID, "Intake Bot")
	dropped := createTestProject(t, db, company.ID, "Support Bot")
	createTestTool(t, db, "Twilio")
	createTestTool(t, db, "Stripe")

	_, err := projectSvc.AssignTool(kept.ID, dto.AssignToolRequest{ToolRef: "Twilio"})
	require.NoError(t, err)
	_, err = projectSvc.AssignTool(dropped.ID, dto.AssignToolRequest{ToolRef: "Twilio"})
	require.NoError(t, err)
	_, err = projectSvc.AssignTool(dropped.ID, dto.AssignToolRequest{ToolRef: "Stripe"})
	require.NoError(t, err)

	require.NoError(t, projectSvc.Delete(dropped.ID))

	analytics, err := svc.Analytics()
	require.NoError(t, err)

	require.Len(t, analytics.TopTools, 1)
	assert.Equal(t, "Twilio", analytics.TopTools[0].Name)
	assert.EqualValues(t, 1, analytics.TopTools[0].Count)
}
