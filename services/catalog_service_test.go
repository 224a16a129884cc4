package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botadmin/dto"
)

func TestIndustryCreateRequiresName(t *testing.T) {
	db := newTestDatabase(t)

	_, err := NewIndustryService(db).Create(dto.CreateIndustryRequest{})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestIndustryNameUnique(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewIndustryService(db)

	_, err := svc.Create(dto.CreateIndustryRequest{Name: "Healthcare"})
	require.NoError(t, err)

	_, err = svc.Create(dto.CreateIndustryRequest{Name: "Healthcare"})
	require.Error(t, err)
	assert.True(t, IsConflictError(err))
	assert.Contains(t, err.Error(), "Healthcare")
}

func TestIndustryNameStaysReservedAfterDelete(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewIndustryService(db)

	industry, err := svc.Create(dto.CreateIndustryRequest{Name: "Retail"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(industry.ID))

	_, err = svc.Create(dto.CreateIndustryRequest{Name: "Retail"})
	require.Error(t, err)
	assert.True(t, IsConflictError(err))
}

func TestIndustryLookupByIDOrName(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewIndustryService(db)

	created, err := svc.Create(dto.CreateIndustryRequest{Name: "Finance"})
	require.NoError(t, err)

	byID, err := svc.Get(created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, created.ID, byID.ID)

	byName, err := svc.Get("Finance")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, created.ID, byName.ID)

	missing, err := svc.Get("Aerospace")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestIndustryDeleteHidesFromList(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewIndustryService(db)

	industry, err := svc.Create(dto.CreateIndustryRequest{Name: "Logistics"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(industry.ID))

	industries, err := svc.List(dto.CatalogFilter{})
	require.NoError(t, err)
	assert.Empty(t, industries)

	gone, err := svc.Get(industry.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestIndustryDeleteCascadesToNiches(t *testing.T) {
	db := newTestDatabase(t)
	industrySvc := NewIndustryService(db)
	nicheSvc := NewNicheService(db)

	industry := createTestIndustry(t, db, "Healthcare")
	niche, err := nicheSvc.Create(dto.CreateNicheRequest{IndustryID: industry.ID, Name: "Dental"})
	require.NoError(t, err)

	require.NoError(t, industrySvc.Delete(industry.ID))

	gone, err := nicheSvc.Get(niche.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestNicheCreateRequiresLiveIndustry(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewNicheService(db)

	_, err := svc.Create(dto.CreateNicheRequest{IndustryID: "in_000000000000", Name: "Dental"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestNicheNameUniquePerIndustry(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewNicheService(db)

	healthcare := createTestIndustry(t, db, "Healthcare")
	retail := createTestIndustry(t, db, "Retail")

	_, err := svc.Create(dto.CreateNicheRequest{IndustryID: healthcare.ID, Name: "Boutique"})
	require.NoError(t, err)

	// Same name in the same industry collides
	_, err = svc.Create(dto.CreateNicheRequest{IndustryID: healthcare.ID, Name: "Boutique"})
	require.Error(t, err)
	assert.True(t, IsConflictError(err))

	// Same name under a different industry is fine
	_, err = svc.Create(dto.CreateNicheRequest{IndustryID: retail.ID, Name: "Boutique"})
	require.NoError(t, err)
}

func TestNicheListFiltersAndJoinsIndustry(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewNicheService(db)

	healthcare := createTestIndustry(t, db, "Healthcare")
	retail := createTestIndustry(t, db, "Retail")

	_, err := svc.Create(dto.CreateNicheRequest{IndustryID: healthcare.ID, Name: "Dental"})
	require.NoError(t, err)
	_, err = svc.Create(dto.CreateNicheRequest{IndustryID: retail.ID, Name: "Fashion"})
	require.NoError(t, err)

	all, err := svc.List(dto.NicheFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := svc.List(dto.NicheFilter{IndustryID: healthcare.ID})
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "Dental", scoped[0].Name)
	assert.Equal(t, "Healthcare", scoped[0].IndustryName)

	searched, err := svc.List(dto.NicheFilter{Search: "fash"})
	require.NoError(t, err)
	require.Len(t, searched, 1)
	assert.Equal(t, "Fashion", searched[0].Name)
}

func TestNicheLookupByIDOrName(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewNicheService(db)

	industry := createTestIndustry(t, db, "Healthcare")
	created, err := svc.Create(dto.CreateNicheRequest{IndustryID: industry.ID, Name: "Dental"})
	require.NoError(t, err)

	byID, err := svc.Get(created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, created.ID, byID.ID)

	byName, err := svc.Get("Dental")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, created.ID, byName.ID)
	assert.Equal(t, "Healthcare", byName.IndustryName)

	missing, err := svc.Get("Veterinary")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductAndServiceCatalogs(t *testing.T) {
	db := newTestDatabase(t)
	productSvc := NewProductService(db)
	serviceSvc := NewServiceService(db)

	product, err := productSvc.Create(dto.CreateProductRequest{Name: "Chatbot Starter"})
	require.NoError(t, err)
	_, err = productSvc.Create(dto.CreateProductRequest{Name: "Chatbot Starter"})
	assert.True(t, IsConflictError(err))

	service, err := serviceSvc.Create(dto.CreateServiceRequest{Name: "Chatbot Starter"})
	require.NoError(t, err)

	// Product and service names are independent namespaces
	assert.NotEqual(t, product.ID, service.ID)

	byName, err := serviceSvc.Get("Chatbot Starter")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, service.ID, byName.ID)

	productByName, err := productSvc.Get("Chatbot Starter")
	require.NoError(t, err)
	require.NotNil(t, productByName)
	assert.Equal(t, product.ID, productByName.ID)
}

func TestCatalogSearchIsCaseInsensitive(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewIndustryService(db)

	_, err := svc.Create(dto.CreateIndustryRequest{Name: "Healthcare", Description: "clinics and hospitals"})
	require.NoError(t, err)

	byName, err := svc.List(dto.CatalogFilter{Search: "HEALTH"})
	require.NoError(t, err)
	assert.Len(t, byName, 1)

	byDescription, err := svc.List(dto.CatalogFilter{Search: "Hospitals"})
	require.NoError(t, err)
	assert.Len(t, byDescription, 1)

	none, err := svc.List(dto.CatalogFilter{Search: "farming"})
	require.NoError(t, err)
	assert.Empty(t, none)
}
