package models

import (
	"time"

	"gorm.io/gorm"
)

// ToolCategory classifies a tool in the registry
type ToolCategory string

const (
	ToolCategoryAIPlatform ToolCategory = "ai_platform"
	ToolCategoryAPI        ToolCategory = "api"
	ToolCategoryMessaging  ToolCategory = "messaging"
	ToolCategoryAnalytics  ToolCategory = "analytics"
	ToolCategoryCRM        ToolCategory = "crm"
	ToolCategoryPayment    ToolCategory = "payment"
	ToolCategoryHosting    ToolCategory = "hosting"
	ToolCategoryOther      ToolCategory = "other"
)

// ToolCategories lists every legal tool category value
var ToolCategories = []ToolCategory{
	ToolCategoryAIPlatform,
	ToolCategoryAPI,
	ToolCategoryMessaging,
	ToolCategoryAnalytics,
	ToolCategoryCRM,
	ToolCategoryPayment,
	ToolCategoryHosting,
	ToolCategoryOther,
}

// Tool represents an entry in the tool registry, referenced by
// projects and blueprints
type Tool struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null;uniqueIndex"`
	Category    ToolCategory   `json:"category" gorm:"type:varchar(20);default:null"`
	URL         string         `json:"url" gorm:"default:null"`
	Description string         `json:"description" gorm:"default:null"`
	CreatedAt   time.Time      `json:"createdAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
