package dto

import (
	"time"

	"github.com/botadmin/models"
)

// CreateProjectRequest is the input for project creation
type CreateProjectRequest struct {
	CompanyID   string `json:"companyId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	TargetDate  string `json:"targetDate"`
}

// UpdateProjectRequest carries a partial update; nil fields are left
// untouched. CompanyID is immutable and deliberately absent.
type UpdateProjectRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Status        *string `json:"status"`
	StartDate     *string `json:"startDate"`
	TargetDate    *string `json:"targetDate"`
	CompletedDate *string `json:"completedDate"`
}

// ProjectFilter narrows project listings
type ProjectFilter struct {
	CompanyID string `json:"companyId" form:"companyId"`
	Status    string `json:"status" form:"status"`
	Search    string `json:"search" form:"search"`
}

// ProjectRow is a project joined with its owning company's name
type ProjectRow struct {
	ID            string               `json:"id"`
	CompanyID     string               `json:"companyId"`
	CompanyName   string               `json:"companyName"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	Status        models.ProjectStatus `json:"status"`
	StartDate     string               `json:"startDate"`
	TargetDate    string               `json:"targetDate"`
	CompletedDate string               `json:"completedDate"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// ProjectToolRow is a tool assignment joined with the tool registry
type ProjectToolRow struct {
	ID           string    `json:"id"`
	ToolID       string    `json:"toolId"`
	ToolName     string    `json:"toolName"`
	ToolCategory string    `json:"toolCategory"`
	ConfigJSON   string    `json:"configJson"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AssignToolRequest is the input for assigning a tool to a project
type AssignToolRequest struct {
	ToolRef    string `json:"toolRef"`
	ConfigJSON string `json:"configJson"`
	Notes      string `json:"notes"`
}

// SetStatusRequest is the input for jumping a project to an explicit
// status outside the linear progression
type SetStatusRequest struct {
	Status string `json:"status"`
}

// AdvanceResult reports the outcome of moving a project one step
// along the linear status progression
type AdvanceResult struct {
	Project   *ProjectRow          `json:"project"`
	Advanced  bool                 `json:"advanced"`
	Reason    string               `json:"reason,omitempty"`
	NewStatus models.ProjectStatus `json:"newStatus,omitempty"`
}

// ProjectDetail is a project with tools, implementation details and
// the progress timeline eagerly loaded
type ProjectDetail struct {
	ProjectRow
	Tools    []ProjectToolRow              `json:"tools"`
	Details  []models.ImplementationDetail `json:"details"`
	Timeline []models.ProgressLog          `json:"timeline"`
}
