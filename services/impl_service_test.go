package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botadmin/dto"
	"github.com/botadmin/models"
)

func TestImplCreateValidation(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewImplService(db)
	company := createTestCompany(t, db, "Acme Corp")
	project := createTestProject(t, db, company.ID, "Intake Bot")

	_, err := svc.Create(dto.CreateImplRequest{Type: "prompt", Title: "x", Content: "y"})
	assert.True(t, IsValidationError(err))

	_, err = svc.Create(dto.CreateImplRequest{ProjectID: project.ID, Type: "diagram", Title: "x", Content: "y"})
	assert.True(t, IsValidationError(err))

	detail, err := svc.Create(dto.CreateImplRequest{
		ProjectID: project.ID,
		Type:      "prompt",
		Title:     "System prompt",
		Content:   "You are a helpful intake assistant.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DetailTypePrompt, detail.Type)
}

func TestImplListOrdersBySortOrder(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewImplService(db)
	company := createTestCompany(t, db, "Acme Corp")
	project := createTestProject(t, db, company.ID, "Intake Bot")

	_, err := svc.Create(dto.CreateImplRequest{ProjectID: project.ID, Type: "note", Title: "Later", Content: "b", SortOrder: 5})
	require.NoError(t, err)
	_, err = svc.Create(dto.CreateImplRequest{ProjectID: project.ID, Type: "note", Title: "First", Content: "a", SortOrder: 1})
	require.NoError(t, err)

	details, err := svc.List(dto.ImplFilter{ProjectID: project.ID})
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "First", details[0].Title)
	assert.Equal(t, "Later", details[1].Title)

	// Listing without a project is rejected
	_, err = svc.List(dto.ImplFilter{})
	assert.True(t, IsValidationError(err))
}

func TestImplListFiltersByType(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewImplService(db)
	company := createTestCompany(t, db, "Acme Corp")
	project := createTestProject(t, db, company.ID, "Intake Bot")

	_, err := svc.Create(dto.CreateImplRequest{ProjectID: project.ID, Type: "prompt", Title: "P", Content: "x"})
	require.NoError(t, err)
	_, err = svc.Create(dto.CreateImplRequest{ProjectID: project.ID, Type: "config", Title: "C", Content: "x"})
	require.NoError(t, err)

	prompts, err := svc.List(dto.ImplFilter{ProjectID: project.ID, Type: "prompt"})
	require.NoError(t, err)
	require.Len(t, prompts, 1)
	assert.Equal(t, "P", prompts[0].Title)
}

func TestImplUpdateAndDelete(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewImplService(db)
	company := createTestCompany(t, db, "Acme Corp")
	project := createTestProject(t, db, company.ID, "Intake Bot")

	detail, err := svc.Create(dto.CreateImplRequest{ProjectID: project.ID, Type: "note", Title: "Draft", Content: "x"})
	require.NoError(t, err)

	title := "Final"
	updated, err := svc.Update(detail.ID, dto.UpdateImplRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, "x", updated.Content)

	_, err = svc.Update(detail.ID, dto.UpdateImplRequest{})
	assert.True(t, IsValidationError(err))

	_, err = svc.Update("im_000000000000", dto.UpdateImplRequest{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(detail.ID))
	gone, err := svc.Get(detail.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
