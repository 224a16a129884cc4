package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botadmin/dto"
	"github.com/botadmin/models"
)

// TestClientOnboardingWorkflow exercises the whole system the way an
// operator would: catalog setup, company intake, project delivery and
// blueprint reuse against one shared store.
func TestClientOnboardingWorkflow(t *testing.T) {
	db := newTestDatabase(t)
	companySvc := NewCompanyService(db)
	projectSvc := NewProjectService(db)
	blueprintSvc := NewBlueprintService(db)

	industry := createTestIndustry(t, db, "Healthcare")
	niche, err := NewNicheService(db).Create(dto.CreateNicheRequest{
		IndustryID: industry.ID,
		Name:       "Dental Clinics",
	})
	require.NoError(t, err)

	company, err := companySvc.Create(dto.CreateCompanyRequest{Name: "Acme Dental"})
	require.NoError(t, err)
	_, err = companySvc.AssignNiche(company.ID, dto.AssignCatalogRequest{Ref: niche.ID})
	require.NoError(t, err)

	first, err := projectSvc.Create(dto.CreateProjectRequest{CompanyID: company.ID, Name: "Support Bot"})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusPlanning, first.Status)

	_, err = NewProgressService(db).Log(dto.CreateProgressRequest{ProjectID: first.ID, Phase: "discovery"})
	require.NoError(t, err)

	advanced, err := projectSvc.Advance(first.ID)
	require.NoError(t, err)
	assert.True(t, advanced.Advanced)
	assert.Equal(t, models.ProjectStatusInProgress, advanced.NewStatus)

	twilio := createTestTool(t, db, "Twilio")
	blueprint, err := blueprintSvc.Create(dto.CreateBlueprintRequest{Name: "Dental Starter"})
	require.NoError(t, err)
	_, err = blueprintSvc.AddStep(blueprint.ID, dto.AddStepRequest{StepOrder: 1, Title: "Collect FAQ content"})
	require.NoError(t, err)
	_, err = blueprintSvc.AddTool(blueprint.ID, dto.AddBlueprintToolRequest{ToolRef: twilio.ID})
	require.NoError(t, err)

	applied, err := blueprintSvc.Apply("Dental Starter", dto.ApplyBlueprintRequest{CompanyRef: "Acme Dental"})
	require.NoError(t, err)
	assert.Equal(t, "Dental Starter (from blueprint)", applied.Project.Name)
	assert.Equal(t, company.ID, applied.Project.CompanyID)

	appliedTools, err := projectSvc.Tools(applied.Project.ID)
	require.NoError(t, err)
	require.Len(t, appliedTools, 1)
	assert.Equal(t, twilio.ID, appliedTools[0].ToolID)

	// The original project is untouched by the apply
	unchanged, err := projectSvc.Get(first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusInProgress, unchanged.Status)
	assert.Empty(t, unchanged.Tools)

	detail, err := companySvc.Get(company.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Projects, 2)
}

// Calling the replace-all flow twice with the same set must leave
// exactly that set, not accumulate.
func TestReplaceAssignmentsIsIdempotent(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewCompanyService(db)

	company := createTestCompany(t, db, "Acme Corp")
	p1, err := NewProductService(db).Create(dto.CreateProductRequest{Name: "Booking Bot"})
	require.NoError(t, err)
	p2, err := NewProductService(db).Create(dto.CreateProductRequest{Name: "FAQ Bot"})
	require.NoError(t, err)

	req := dto.ReplaceAssignmentsRequest{Type: "product", IDs: []string{p1.ID, p2.ID}}
	require.NoError(t, svc.ReplaceAssignments(company.ID, req))
	require.NoError(t, svc.ReplaceAssignments(company.ID, req))

	detail, err := svc.Get(company.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Products, 2)
}
