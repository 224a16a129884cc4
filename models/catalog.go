package models

import (
	"time"

	"gorm.io/gorm"
)

// Industry is a top-level catalog classification.
type Industry struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null;uniqueIndex"`
	Description string         `json:"description" gorm:"default:null"`
	CreatedAt   time.Time      `json:"createdAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Niches []Niche `json:"niches,omitempty" gorm:"foreignKey:IndustryID"`
}

// Niche is an industry-scoped catalog classification.
// Name is unique per industry, not globally.
type Niche struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	IndustryID  string         `json:"industryId" gorm:"not null;index;uniqueIndex:uniq_niche_industry_name"`
	Name        string         `json:"name" gorm:"not null;uniqueIndex:uniq_niche_industry_name"`
	Description string         `json:"description" gorm:"default:null"`
	CreatedAt   time.Time      `json:"createdAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Industry Industry `json:"industry,omitempty" gorm:"foreignKey:IndustryID"`
}

// Product is a flat, industry-agnostic catalog entity.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null;uniqueIndex"`
	Description string         `json:"description" gorm:"default:null"`
	CreatedAt   time.Time      `json:"createdAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// Service is a flat, industry-agnostic catalog entity.
type Service struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null;uniqueIndex"`
	Description string         `json:"description" gorm:"default:null"`
	CreatedAt   time.Time      `json:"createdAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name for Industry model
func (Industry) TableName() string {
	return "industries"
}

// TableName sets the table name for Niche model
func (Niche) TableName() string {
	return "niches"
}
