package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botadmin/dto"
	"github.com/botadmin/models"
)

func TestBlueprintNameUnique(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewBlueprintService(db)

	_, err := svc.Create(dto.CreateBlueprintRequest{Name: "Dental Intake"})
	require.NoError(t, err)
	_, err = svc.Create(dto.CreateBlueprintRequest{Name: "Dental Intake"})
	require.Error(t, err)
	assert.True(t, IsConflictError(err))
}

func TestBlueprintStepsKeepOrder(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewBlueprintService(db)

	blueprint, err := svc.Create(dto.CreateBlueprintRequest{Name: "Dental Intake"})
	require.NoError(t, err)

	// Insert out of order; the detail view sorts by step order
	_, err = svc.AddStep(blueprint.ID, dto.AddStepRequest{StepOrder: 2, Title: "Build flows"})
	require.NoError(t, err)
	_, err = svc.AddStep(blueprint.ID, dto.AddStepRequest{StepOrder: 1, Title: "Collect FAQs"})
	require.NoError(t, err)

	detail, err := svc.Get(blueprint.ID)
	require.NoError(t, err)
	require.Len(t, detail.Steps, 2)
	assert.Equal(t, "Collect FAQs", detail.Steps[0].Title)
	assert.Equal(t, "Build flows", detail.Steps[1].Title)

	// Order below 1 and missing titles are rejected
	_, err = svc.AddStep(blueprint.ID, dto.AddStepRequest{StepOrder: 0, Title: "x"})
	assert.True(t, IsValidationError(err))
	_, err = svc.AddStep(blueprint.ID, dto.AddStepRequest{StepOrder: 3})
	assert.True(t, IsValidationError(err))
}

func TestBlueprintToolsAndTags(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewBlueprintService(db)

	blueprint, err := svc.Create(dto.CreateBlueprintRequest{Name: "Dental Intake"})
	require.NoError(t, err)
	createTestTool(t, db, "Twilio")
	industry := createTestIndustry(t, db, "Healthcare")
	niche, err := NewNicheService(db).Create(dto.CreateNicheRequest{IndustryID: industry.ID, Name: "Dental"})
	require.NoError(t, err)

	_, err = svc.AddTool(blueprint.ID, dto.AddBlueprintToolRequest{ToolRef: "Twilio", RoleInBlueprint: "sms channel"})
	require.NoError(t, err)
	_, err = svc.AssignIndustry(blueprint.ID, "Healthcare")
	require.NoError(t, err)
	_, err = svc.AssignNiche(blueprint.ID, niche.ID)
	require.NoError(t, err)

	detail, err := svc.Get("Dental Intake")
	require.NoError(t, err)
	require.Len(t, detail.Tools, 1)
	assert.Equal(t, "Twilio", detail.Tools[0].ToolName)
	assert.Equal(t, "sms channel", detail.Tools[0].RoleInBlueprint)
	require.Len(t, detail.Industries, 1)
	assert.Equal(t, "Healthcare", detail.Industries[0].IndustryName)
	require.Len(t, detail.Niches, 1)
	assert.Equal(t, "Dental", detail.Niches[0].NicheName)

	// Removal by name works too
	require.NoError(t, svc.RemoveIndustry(blueprint.ID, "Healthcare"))
	detail, err = svc.Get(blueprint.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Industries)

	_, err = svc.AddTool(blueprint.ID, dto.AddBlueprintToolRequest{ToolRef: "Stripe"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlueprintApplyCreatesProjectWithTools(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewBlueprintService(db)

	blueprint, err := svc.Create(dto.CreateBlueprintRequest{
		Name:        "Dental Intake",
		Description: "Standard intake assistant rollout",
	})
	require.NoError(t, err)
	createTestTool(t, db, "Twilio")
	createTestTool(t, db, "OpenAI")
	company := createTestCompany(t, db, "Acme Dental")

	_, err = svc.AddTool(blueprint.ID, dto.AddBlueprintToolRequest{ToolRef: "Twilio", RoleInBlueprint: "sms channel", Notes: "use messaging service"})
	require.NoError(t, err)
	_, err = svc.AddTool(blueprint.ID, dto.AddBlueprintToolRequest{ToolRef: "OpenAI"})
	require.NoError(t, err)

	result, err := svc.Apply(blueprint.ID, dto.ApplyBlueprintRequest{CompanyRef: "Acme Dental"})
	require.NoError(t, err)
	assert.Equal(t, "Dental Intake (from blueprint)", result.Project.Name)
	assert.Equal(t, "Standard intake assistant rollout", result.Project.Description)
	assert.Equal(t, models.ProjectStatusPlanning, result.Project.Status)
	assert.Equal(t, company.ID, result.Project.CompanyID)

	// Tool links carry notes but not the blueprint role
	tools, err := NewProjectService(db).Tools(result.Project.ID)
	require.NoError(t, err)
	require.Len(t, tools, 2)
	notes := []string{tools[0].Notes, tools[1].Notes}
	assert.Contains(t, notes, "use messaging service")
}

func TestBlueprintApplyHonorsNameOverride(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewBlueprintService(db)

	blueprint, err := svc.Create(dto.CreateBlueprintRequest{Name: "Dental Intake"})
	require.NoError(t, err)
	createTestCompany(t, db, "Acme Dental")

	result, err := svc.Apply(blueprint.ID, dto.ApplyBlueprintRequest{
		CompanyRef:  "Acme Dental",
		ProjectName: "Acme Intake Rollout",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Intake Rollout", result.Project.Name)
}

func TestBlueprintApplyMissingRefs(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewBlueprintService(db)

	createTestCompany(t, db, "Acme Dental")

	_, err := svc.Apply("bp_000000000000", dto.ApplyBlueprintRequest{CompanyRef: "Acme Dental"})
	assert.ErrorIs(t, err, ErrNotFound)

	blueprint, err := svc.Create(dto.CreateBlueprintRequest{Name: "Dental Intake"})
	require.NoError(t, err)

	_, err = svc.Apply(blueprint.ID, dto.ApplyBlueprintRequest{CompanyRef: "Bravo Clinic"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Apply(blueprint.ID, dto.ApplyBlueprintRequest{})
	assert.True(t, IsValidationError(err))
}

func TestBlueprintSoftDelete(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewBlueprintService(db)

	blueprint, err := svc.Create(dto.CreateBlueprintRequest{Name: "Dental Intake"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(blueprint.ID))

	blueprints, err := svc.List(dto.BlueprintFilter{})
	require.NoError(t, err)
	assert.Empty(t, blueprints)

	gone, err := svc.Get(blueprint.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
