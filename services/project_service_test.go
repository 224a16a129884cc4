package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botadmin/dto"
	"github.com/botadmin/models"
)

func TestProjectCreateStartsInPlanning(t *testing.T) {
	db := newTestDatabase(t)
	company := createTestCompany(t, db, "Acme Corp")

	project, err := NewProjectService(db).Create(dto.CreateProjectRequest{
		CompanyID:  company.ID,
		Name:       "Intake Bot",
		TargetDate: "2026-10-01",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusPlanning, project.Status)
	assert.Equal(t, "Acme Corp", project.CompanyName)
	assert.Empty(t, project.CompletedDate)
}

func TestProjectCreateRequiresCompanyAndName(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewProjectService(db)

	_, err := svc.Create(dto.CreateProjectRequest{Name: "Intake Bot"})
	assert.True(t, IsValidationError(err))

	company := createTestCompany(t, db, "Acme Corp")
	_, err = svc.Create(dto.CreateProjectRequest{CompanyID: company.ID})
	assert.True(t, IsValidationError(err))
}

func TestProjectAdvanceWalksTheOrder(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewProjectService(db)
	company := createTestCompany(t, db, "Acme Corp")
	project := createTestProject(t, db, company.ID, "Intake Bot")

	expected := []models.ProjectStatus{
		models.ProjectStatusInProgress,
		models.ProjectStatusReview,
		models.ProjectStatusCompleted,
	}
	for _, want := range expected {
		result, err := svc.Advance(project.ID)
		require.NoError(t, err)
		assert.True(t, result.Advanced)
		assert.Equal(t, want, result.NewStatus)
		assert.Equal(t, want, result.Project.Status)
	}

	// Completion stamps today's date
	final, err := svc.Get(project.ID)
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), final.CompletedDate)
}

func TestProjectAdvanceIsIdempotentAtCompleted(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewProjectService(db)
	company := createTestCompany(t, db, "Acme Corp")
	project := createTestProject(t, db, company.ID, "Intake Bot")

	for i := 0; i < 3; i++ {
		_, err := svc.Advance(project.ID)
		require.NoError(t, err)
	}

	result, err := svc.Advance(project.ID)
	require.NoError(t, err)
	assert.False(t, result.Advanced)
	assert.Equal(t, "Already at final status", result.Reason)
	assert.Equal(t, models.ProjectStatusCompleted, result.Project.Status)
}

func TestProjectAdvanceSkipsOffTrackStatuses(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewProjectService(db)
	company := createTestCompany(t, db, "Acme Corp")
	project := createTestProject(t, db, company.ID, "Intake Bot")

	_, err := svc.SetStatus(project.ID, "on_hold")
	require.NoError(t, err)

	result, err := svc.Advance(project.ID)
	require.NoError(t, err)
	assert.False(t, result.Advanced)
	assert.Equal(t, models.ProjectStatusOnHold, result.Project.Status)
}

func TestProjectAdvanceMissingProject(t *testing.T) {
	db := newTestDatabase(t)

	_, err := NewProjectService(db).Advance("pj_000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectSetStatus(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewProjectService(db)
	company := createTestCompany(t, db, "Acme Corp")
	project := createTestProject(t, db, company.ID, "Intake Bot")

	updated, err := svc.SetStatus(project.ID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusCancelled, updated.Status)

	_, err = svc.SetStatus(project.ID, "abandoned")
	assert.True(t, IsValidationError(err))

	_, err = svc.SetStatus("pj_000000000000", "review")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectAssignToolAllowsDuplicates(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewProjectService(db)
	company := createTestCompany(t, db, "Acme Corp")
	project := createTestProject(t, db, company.ID, "Intake Bot")
	tool := createTestTool(t, db, "Twilio")

	_, err := svc.AssignTool(project.ID, dto.AssignToolRequest{ToolRef: "Twilio", Notes: "sms"})
	require.NoError(t, err)
	_, err = svc.AssignTool(project.ID, dto.AssignToolRequest{ToolRef: tool.ID})
	require.NoError(t, err)

	tools, err := svc.Tools(project.ID)
	require.NoError(t, err)
	require.Len(t, tools, 2)
	assert.Equal(t, "Twilio", tools[0].ToolName)
	assert.Equal(t, "api", tools[0].ToolCategory)

	_, err = svc.AssignTool(project.ID, dto.AssignToolRequest{ToolRef: "Stripe"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectListFilters(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewProjectService(db)
	acme := createTestCompany(t, db, "Acme Corp")
	bravo := createTestCompany(t, db, "Bravo Studio")

	createTestProject(t, db, acme.ID, "Intake Bot")
	second := createTestProject(t, db, bravo.ID, "Support Bot")
	_, err := svc.SetStatus(second.ID, "in_progress")
	require.NoError(t, err)

	byCompany, err := svc.List(dto.ProjectFilter{CompanyID: acme.ID})
	require.NoError(t, err)
	require.Len(t, byCompany, 1)
	assert.Equal(t, "Intake Bot", byCompany[0].Name)

	byStatus, err := svc.List(dto.ProjectFilter{Status: "in_progress"})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Support Bot", byStatus[0].Name)

	bySearch, err := svc.List(dto.ProjectFilter{Search: "support"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Support Bot", bySearch[0].Name)
}

func TestProjectUpdatePartial(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewProjectService(db)
	company := createTestCompany(t, db, "Acme Corp")
	project := createTestProject(t, db, company.ID, "Intake Bot")

	target := "2026-12-01"
	updated, err := svc.Update(project.ID, dto.UpdateProjectRequest{TargetDate: &target})
	require.NoError(t, err)
	assert.Equal(t, "Intake Bot", updated.Name)
	assert.Equal(t, target, updated.TargetDate)

	_, err = svc.Update(project.ID, dto.UpdateProjectRequest{})
	assert.True(t, IsValidationError(err))

	name := "Renamed"
	_, err = svc.Update("pj_000000000000", dto.UpdateProjectRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectDetailAggregates(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewProjectService(db)
	company := createTestCompany(t, db, "Acme Corp")
	project := createTestProject(t, db, company.ID, "Intake Bot")
	createTestTool(t, db, "Twilio")

	_, err := svc.AssignTool(project.ID, dto.AssignToolRequest{ToolRef: "Twilio"})
	require.NoError(t, err)
	_, err = NewProgressService(db).Log(dto.CreateProgressRequest{ProjectID: project.ID, Phase: "discovery"})
	require.NoError(t, err)
	_, err = NewImplService(db).Create(dto.CreateImplRequest{
		ProjectID: project.ID,
		Type:      "prompt",
		Title:     "System prompt",
		Content:   "You are a helpful intake assistant.",
	})
	require.NoError(t, err)

	detail, err := svc.Get(project.ID)
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Len(t, detail.Tools, 1)
	assert.Len(t, detail.Details, 1)
	assert.Len(t, detail.Timeline, 1)
}

func TestProjectSoftDelete(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewProjectService(db)
	company := createTestCompany(t, db, "Acme Corp")
	project := createTestProject(t, db, company.ID, "Intake Bot")

	require.NoError(t, svc.Delete(project.ID))

	projects, err := svc.List(dto.ProjectFilter{})
	require.NoError(t, err)
	assert.Empty(t, projects)

	gone, err := svc.Get(project.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
