package models

import (
	"time"

	"gorm.io/gorm"
)

// Blueprint is a reusable project template: ordered steps plus tool
// roles, optionally tagged with target industries and niches.
type Blueprint struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null;uniqueIndex"`
	Description string         `json:"description" gorm:"default:null"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Steps []BlueprintStep `json:"steps,omitempty" gorm:"foreignKey:BlueprintID"`
	Tools []BlueprintTool `json:"tools,omitempty" gorm:"foreignKey:BlueprintID"`
}

// BlueprintStep is one ordered step in a blueprint. StepOrder gaps
// and duplicates are permitted.
type BlueprintStep struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	BlueprintID string    `json:"blueprintId" gorm:"not null;index"`
	StepOrder   int       `json:"stepOrder" gorm:"not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"default:null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Blueprint Blueprint `json:"-" gorm:"foreignKey:BlueprintID"`
}

// BlueprintTool links a tool to a blueprint with an optional role.
// Duplicate rows for the same pair are permitted.
type BlueprintTool struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	BlueprintID     string    `json:"blueprintId" gorm:"not null;index"`
	ToolID          string    `json:"toolId" gorm:"not null;index"`
	RoleInBlueprint string    `json:"roleInBlueprint" gorm:"default:null"`
	Notes           string    `json:"notes" gorm:"default:null"`
	CreatedAt       time.Time `json:"createdAt"`

	Blueprint Blueprint `json:"-" gorm:"foreignKey:BlueprintID"`
	Tool      Tool      `json:"-" gorm:"foreignKey:ToolID"`
}

// BlueprintIndustry tags a blueprint with a target industry
type BlueprintIndustry struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	BlueprintID string    `json:"blueprintId" gorm:"not null;index"`
	IndustryID  string    `json:"industryId" gorm:"not null;index"`
	CreatedAt   time.Time `json:"createdAt"`

	Blueprint Blueprint `json:"-" gorm:"foreignKey:BlueprintID"`
	Industry  Industry  `json:"-" gorm:"foreignKey:IndustryID"`
}

// BlueprintNiche tags a blueprint with a target niche
type BlueprintNiche struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	BlueprintID string    `json:"blueprintId" gorm:"not null;index"`
	NicheID     string    `json:"nicheId" gorm:"not null;index"`
	CreatedAt   time.Time `json:"createdAt"`

	Blueprint Blueprint `json:"-" gorm:"foreignKey:BlueprintID"`
	Niche     Niche     `json:"-" gorm:"foreignKey:NicheID"`
}
