package models

import (
	"time"

	"gorm.io/gorm"
)

// CompanyStatus represents the lifecycle state of a client company
type CompanyStatus string

const (
	CompanyStatusActive   CompanyStatus = "active"
	CompanyStatusInactive CompanyStatus = "inactive"
	CompanyStatusArchived CompanyStatus = "archived"
)

// CompanyStatuses lists every legal company status value
var CompanyStatuses = []CompanyStatus{
	CompanyStatusActive,
	CompanyStatusInactive,
	CompanyStatusArchived,
}

// Company represents a client company
type Company struct {
	ID           string         `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"not null;uniqueIndex"`
	ContactName  string         `json:"contactName" gorm:"default:null"`
	ContactEmail string         `json:"contactEmail" gorm:"default:null"`
	ContactPhone string         `json:"contactPhone" gorm:"default:null"`
	Website      string         `json:"website" gorm:"default:null"`
	Notes        string         `json:"notes" gorm:"default:null"`
	Status       CompanyStatus  `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:CompanyID"`
}

// CompanyIndustry links a company to an industry
type CompanyIndustry struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	CompanyID  string    `json:"companyId" gorm:"not null;index"`
	IndustryID string    `json:"industryId" gorm:"not null;index"`
	CreatedAt  time.Time `json:"createdAt"`

	Company  Company  `json:"-" gorm:"foreignKey:CompanyID"`
	Industry Industry `json:"-" gorm:"foreignKey:IndustryID"`
}

// CompanyNiche links a company to a niche
type CompanyNiche struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CompanyID string    `json:"companyId" gorm:"not null;index"`
	NicheID   string    `json:"nicheId" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt"`

	Company Company `json:"-" gorm:"foreignKey:CompanyID"`
	Niche   Niche   `json:"-" gorm:"foreignKey:NicheID"`
}

// CompanyProduct links a company to a product it uses or sells
type CompanyProduct struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CompanyID string    `json:"companyId" gorm:"not null;index"`
	ProductID string    `json:"productId" gorm:"not null;index"`
	Notes     string    `json:"notes" gorm:"default:null"`
	CreatedAt time.Time `json:"createdAt"`

	Company Company `json:"-" gorm:"foreignKey:CompanyID"`
	Product Product `json:"-" gorm:"foreignKey:ProductID"`
}

// CompanyService links a company to a service it offers
type CompanyService struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CompanyID string    `json:"companyId" gorm:"not null;index"`
	ServiceID string    `json:"serviceId" gorm:"not null;index"`
	Notes     string    `json:"notes" gorm:"default:null"`
	CreatedAt time.Time `json:"createdAt"`

	Company Company `json:"-" gorm:"foreignKey:CompanyID"`
	Service Service `json:"-" gorm:"foreignKey:ServiceID"`
}

// TableName sets the table name for Company model
func (Company) TableName() string {
	return "companies"
}
