package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botadmin/dto"
	"github.com/botadmin/models"
)

func TestToolCreateValidation(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewToolService(db)

	_, err := svc.Create(dto.CreateToolRequest{Category: "api"})
	assert.True(t, IsValidationError(err))

	_, err = svc.Create(dto.CreateToolRequest{Name: "Twilio", Category: "telephony"})
	assert.True(t, IsValidationError(err))

	_, err = svc.Create(dto.CreateToolRequest{Name: "Twilio", Category: "api", URL: "not a url"})
	assert.True(t, IsValidationError(err))

	tool, err := svc.Create(dto.CreateToolRequest{
		Name:     "Twilio",
		Category: "messaging",
		URL:      "https://twilio.com",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ToolCategoryMessaging, tool.Category)
}

func TestToolNameUnique(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewToolService(db)

	createTestTool(t, db, "Twilio")
	_, err := svc.Create(dto.CreateToolRequest{Name: "Twilio", Category: "messaging"})
	require.Error(t, err)
	assert.True(t, IsConflictError(err))
}

func TestToolLookupByIDOrName(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewToolService(db)

	created := createTestTool(t, db, "Twilio")

	byID, err := svc.Get(created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, created.ID, byID.ID)

	byName, err := svc.Get("Twilio")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, created.ID, byName.ID)

	missing, err := svc.Get("Vonage")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestToolListFilters(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewToolService(db)

	_, err := svc.Create(dto.CreateToolRequest{Name: "Twilio", Category: "messaging"})
	require.NoError(t, err)
	_, err = svc.Create(dto.CreateToolRequest{Name: "Stripe", Category: "payment", Description: "billing"})
	require.NoError(t, err)

	byCategory, err := svc.List(dto.ToolFilter{Category: "payment"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Stripe", byCategory[0].Name)

	bySearch, err := svc.List(dto.ToolFilter{Search: "BILLING"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Stripe", bySearch[0].Name)
}

func TestToolSoftDelete(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewToolService(db)

	tool := createTestTool(t, db, "Twilio")
	require.NoError(t, svc.Delete(tool.ID))

	tools, err := svc.List(dto.ToolFilter{})
	require.NoError(t, err)
	assert.Empty(t, tools)
}
