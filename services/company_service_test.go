package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botadmin/dto"
	"github.com/botadmin/models"
)

func TestCompanyCreateDefaultsToActive(t *testing.T) {
	db := newTestDatabase(t)

	company, err := NewCompanyService(db).Create(dto.CreateCompanyRequest{
		Name:         "Acme Corp",
		ContactEmail: "ops@acme.example",
		Website:      "https://acme.example",
	})
	require.NoError(t, err)
	assert.Equal(t, models.CompanyStatusActive, company.Status)
	assert.NotEmpty(t, company.ID)
}

func TestCompanyCreateRejectsBadInput(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewCompanyService(db)

	_, err := svc.Create(dto.CreateCompanyRequest{})
	assert.True(t, IsValidationError(err))

	_, err = svc.Create(dto.CreateCompanyRequest{Name: "Acme", ContactEmail: "not-an-email"})
	assert.True(t, IsValidationError(err))
}

func TestCompanyNameUnique(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewCompanyService(db)

	createTestCompany(t, db, "Acme Corp")
	_, err := svc.Create(dto.CreateCompanyRequest{Name: "Acme Corp"})
	require.Error(t, err)
	assert.True(t, IsConflictError(err))
}

func TestCompanyPartialUpdate(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewCompanyService(db)

	company := createTestCompany(t, db, "Acme Corp")

	notes := "prefers email"
	status := "inactive"
	updated, err := svc.Update(company.ID, dto.UpdateCompanyRequest{Notes: &notes, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated.Name)
	assert.Equal(t, "prefers email", updated.Notes)
	assert.Equal(t, models.CompanyStatusInactive, updated.Status)
}

func TestCompanyUpdateEdgeCases(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewCompanyService(db)

	company := createTestCompany(t, db, "Acme Corp")

	// No fields at all is rejected
	_, err := svc.Update(company.ID, dto.UpdateCompanyRequest{})
	assert.True(t, IsValidationError(err))

	// Unknown status is rejected
	bad := "defunct"
	_, err = svc.Update(company.ID, dto.UpdateCompanyRequest{Status: &bad})
	assert.True(t, IsValidationError(err))

	// Missing company surfaces as not found
	notes := "x"
	_, err = svc.Update("co_000000000000", dto.UpdateCompanyRequest{Notes: &notes})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompanyListFilters(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewCompanyService(db)

	createTestCompany(t, db, "Acme Corp")
	bravo := createTestCompany(t, db, "Bravo Studio")

	status := "archived"
	_, err := svc.Update(bravo.ID, dto.UpdateCompanyRequest{Status: &status})
	require.NoError(t, err)

	archived, err := svc.List(dto.CompanyFilter{Status: "archived"})
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, "Bravo Studio", archived[0].Name)

	searched, err := svc.List(dto.CompanyFilter{Search: "acme"})
	require.NoError(t, err)
	require.Len(t, searched, 1)
	assert.Equal(t, "Acme Corp", searched[0].Name)
}

func TestCompanyAssignmentsAndDetail(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewCompanyService(db)

	company := createTestCompany(t, db, "Acme Corp")
	industry := createTestIndustry(t, db, "Healthcare")

	niche, err := NewNicheService(db).Create(dto.CreateNicheRequest{IndustryID: industry.ID, Name: "Dental"})
	require.NoError(t, err)
	product, err := NewProductService(db).Create(dto.CreateProductRequest{Name: "Booking Bot"})
	require.NoError(t, err)

	// Assignment resolves catalog refs by name as well as by id
	_, err = svc.AssignIndustry(company.ID, dto.AssignCatalogRequest{Ref: "Healthcare"})
	require.NoError(t, err)
	_, err = svc.AssignNiche(company.ID, dto.AssignCatalogRequest{Ref: niche.ID})
	require.NoError(t, err)
	_, err = svc.AssignProduct(company.ID, dto.AssignCatalogRequest{Ref: product.ID, Notes: "pilot"})
	require.NoError(t, err)

	createTestProject(t, db, company.ID, "Intake Bot")

	detail, err := svc.Get("Acme Corp")
	require.NoError(t, err)
	require.NotNil(t, detail)
	require.Len(t, detail.Industries, 1)
	assert.Equal(t, "Healthcare", detail.Industries[0].IndustryName)
	require.Len(t, detail.Niches, 1)
	assert.Equal(t, "Dental", detail.Niches[0].NicheName)
	assert.Equal(t, "Healthcare", detail.Niches[0].IndustryName)
	require.Len(t, detail.Products, 1)
	assert.Equal(t, "pilot", detail.Products[0].Notes)
	require.Len(t, detail.Projects, 1)
	assert.Equal(t, "Intake Bot", detail.Projects[0].Name)
}

func TestCompanyAssignMissingCatalogItem(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewCompanyService(db)

	company := createTestCompany(t, db, "Acme Corp")

	_, err := svc.AssignIndustry(company.ID, dto.AssignCatalogRequest{Ref: "Aerospace"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompanyDuplicateAssignmentsAllowed(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewCompanyService(db)

	company := createTestCompany(t, db, "Acme Corp")
	industry := createTestIndustry(t, db, "Healthcare")

	_, err := svc.AssignIndustry(company.ID, dto.AssignCatalogRequest{Ref: industry.ID})
	require.NoError(t, err)
	_, err = svc.AssignIndustry(company.ID, dto.AssignCatalogRequest{Ref: industry.ID})
	require.NoError(t, err)

	detail, err := svc.Get(company.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Industries, 2)
}

func TestCompanyReplaceAssignments(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewCompanyService(db)

	company := createTestCompany(t, db, "Acme Corp")
	healthcare := createTestIndustry(t, db, "Healthcare")
	retail := createTestIndustry(t, db, "Retail")
	finance := createTestIndustry(t, db, "Finance")

	_, err := svc.AssignIndustry(company.ID, dto.AssignCatalogRequest{Ref: healthcare.ID})
	require.NoError(t, err)

	err = svc.ReplaceAssignments(company.ID, dto.ReplaceAssignmentsRequest{
		Type: "industry",
		IDs:  []string{retail.ID, finance.ID},
	})
	require.NoError(t, err)

	detail, err := svc.Get(company.ID)
	require.NoError(t, err)
	require.Len(t, detail.Industries, 2)
	names := []string{detail.Industries[0].IndustryName, detail.Industries[1].IndustryName}
	assert.ElementsMatch(t, []string{"Retail", "Finance"}, names)

	// Empty set clears the type entirely
	err = svc.ReplaceAssignments(company.ID, dto.ReplaceAssignmentsRequest{Type: "industry"})
	require.NoError(t, err)
	detail, err = svc.Get(company.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Industries)

	// Unknown type is rejected
	err = svc.ReplaceAssignments(company.ID, dto.ReplaceAssignmentsRequest{Type: "vertical"})
	assert.True(t, IsValidationError(err))
}

func TestCompanySoftDelete(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewCompanyService(db)

	company := createTestCompany(t, db, "Acme Corp")
	require.NoError(t, svc.Delete(company.ID))

	companies, err := svc.List(dto.CompanyFilter{})
	require.NoError(t, err)
	assert.Empty(t, companies)

	gone, err := svc.Get(company.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
