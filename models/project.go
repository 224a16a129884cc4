package models

import (
	"time"

	"gorm.io/gorm"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusReview     ProjectStatus = "review"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

// ProjectStatuses lists every legal project status value
var ProjectStatuses = []ProjectStatus{
	ProjectStatusPlanning,
	ProjectStatusInProgress,
	ProjectStatusReview,
	ProjectStatusCompleted,
	ProjectStatusOnHold,
	ProjectStatusCancelled,
}

// AdvanceOrder is the linear status progression walked by the
// advance operation. on_hold and cancelled sit outside it and are
// reachable only through a direct status set.
var AdvanceOrder = []ProjectStatus{
	ProjectStatusPlanning,
	ProjectStatusInProgress,
	ProjectStatusReview,
	ProjectStatusCompleted,
}

// Project represents a client project owned by exactly one company.
// CompanyID never changes after creation.
type Project struct {
	ID            string         `json:"id" gorm:"primaryKey"`
	CompanyID     string         `json:"companyId" gorm:"not null;index"`
	Name          string         `json:"name" gorm:"not null"`
	Description   string         `json:"description" gorm:"default:null"`
	Status        ProjectStatus  `json:"status" gorm:"type:varchar(20);not null;default:'planning'"`
	StartDate     string         `json:"startDate" gorm:"default:null"`
	TargetDate    string         `json:"targetDate" gorm:"default:null"`
	CompletedDate string         `json:"completedDate" gorm:"default:null"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Company Company       `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	Tools   []ProjectTool `json:"tools,omitempty" gorm:"foreignKey:ProjectID"`
}

// ProjectTool links a tool to a project. No uniqueness constraint:
// the same tool may be assigned to a project more than once.
type ProjectTool struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	ProjectID  string    `json:"projectId" gorm:"not null;index"`
	ToolID     string    `json:"toolId" gorm:"not null;index"`
	ConfigJSON string    `json:"configJson" gorm:"default:null"`
	Notes      string    `json:"notes" gorm:"default:null"`
	CreatedAt  time.Time `json:"createdAt"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID"`
	Tool    Tool    `json:"-" gorm:"foreignKey:ToolID"`
}
