package models

import (
	"time"
)

// ProgressPhase names the delivery phase a log entry belongs to
type ProgressPhase string

const (
	PhaseDiscovery ProgressPhase = "discovery"
	PhaseDesign    ProgressPhase = "design"
	PhaseBuild     ProgressPhase = "build"
	PhaseTest      ProgressPhase = "test"
	PhaseDeploy    ProgressPhase = "deploy"
	PhaseHandoff   ProgressPhase = "handoff"
)

// ProgressPhases lists every legal progress phase value
var ProgressPhases = []ProgressPhase{
	PhaseDiscovery,
	PhaseDesign,
	PhaseBuild,
	PhaseTest,
	PhaseDeploy,
	PhaseHandoff,
}

// ProgressStatus is the state of the phase at the moment it was logged
type ProgressStatus string

const (
	ProgressInProgress ProgressStatus = "in_progress"
	ProgressCompleted  ProgressStatus = "completed"
	ProgressBlocked    ProgressStatus = "blocked"
)

// ProgressStatuses lists every legal progress status value
var ProgressStatuses = []ProgressStatus{
	ProgressInProgress,
	ProgressCompleted,
	ProgressBlocked,
}

// ProgressLog is an append-only timeline entry on a project.
// Entries are never updated or deleted.
type ProgressLog struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	ProjectID string         `json:"projectId" gorm:"not null;index"`
	Phase     ProgressPhase  `json:"phase" gorm:"type:varchar(20);not null"`
	Status    ProgressStatus `json:"status" gorm:"type:varchar(20);not null;default:'in_progress'"`
	Note      string         `json:"note" gorm:"default:null"`
	LoggedBy  string         `json:"loggedBy" gorm:"default:null"`
	LoggedAt  time.Time      `json:"loggedAt" gorm:"not null"`
	CreatedAt time.Time      `json:"createdAt"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID"`
}
