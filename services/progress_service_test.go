package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botadmin/dto"
	"github.com/botadmin/models"
)

func TestProgressLogDefaultsStatus(t *testing.T) {
	db := newTestDatabase(t)
	company := createTestCompany(t, db, "Acme Corp")
	project := createTestProject(t, db, company.ID, "Intake Bot")

	entry, err := NewProgressService(db).Log(dto.CreateProgressRequest{
		ProjectID: project.ID,
		Phase:     "discovery",
		Note:      "kickoff call done",
		LoggedBy:  "sam",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ProgressInProgress, entry.Status)
	assert.False(t, entry.LoggedAt.IsZero())
}

func TestProgressLogValidation(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewProgressService(db)
	company := createTestCompany(t, db, "Acme Corp")
	project := createTestProject(t, db, company.ID, "Intake Bot")

	_, err := svc.Log(dto.CreateProgressRequest{Phase: "discovery"})
	assert.True(t, IsValidationError(err))

	_, err = svc.Log(dto.CreateProgressRequest{ProjectID: project.ID})
	assert.True(t, IsValidationError(err))

	_, err = svc.Log(dto.CreateProgressRequest{ProjectID: project.ID, Phase: "shipping"})
	assert.True(t, IsValidationError(err))

	_, err = svc.Log(dto.CreateProgressRequest{ProjectID: project.ID, Phase: "build", Status: "paused"})
	assert.True(t, IsValidationError(err))
}

func TestProgressTimelineNewestFirst(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewProgressService(db)
	company := createTestCompany(t, db, "Acme Corp")
	project := createTestProject(t, db, company.ID, "Intake Bot")

	phases := []string{"discovery", "design", "build"}
	for _, phase := range phases {
		_, err := svc.Log(dto.CreateProgressRequest{ProjectID: project.ID, Phase: phase, Status: "completed"})
		require.NoError(t, err)
	}

	timeline, err := svc.Timeline(project.ID)
	require.NoError(t, err)
	require.Len(t, timeline, 3)
	for i := 1; i < len(timeline); i++ {
		assert.False(t, timeline[i-1].LoggedAt.Before(timeline[i].LoggedAt))
	}
}
