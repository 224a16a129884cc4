package models

import (
	"time"

	"gorm.io/gorm"
)

// DetailType classifies an implementation artifact
type DetailType string

const (
	DetailTypePrompt DetailType = "prompt"
	DetailTypeConfig DetailType = "config"
	DetailTypeAPIRef DetailType = "api_ref"
	DetailTypeNote   DetailType = "note"
)

// DetailTypes lists every legal implementation detail type
var DetailTypes = []DetailType{
	DetailTypePrompt,
	DetailTypeConfig,
	DetailTypeAPIRef,
	DetailTypeNote,
}

// ImplementationDetail is a freeform typed artifact attached to a
// project (prompts, config snippets, API references, notes).
type ImplementationDetail struct {
	ID           string         `json:"id" gorm:"primaryKey"`
	ProjectID    string         `json:"projectId" gorm:"not null;index"`
	Type         DetailType     `json:"type" gorm:"type:varchar(20);not null"`
	Title        string         `json:"title" gorm:"not null"`
	Content      string         `json:"content" gorm:"not null"`
	MetadataJSON string         `json:"metadataJson" gorm:"default:null"`
	SortOrder    int            `json:"sortOrder" gorm:"not null;default:0"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID"`
}
