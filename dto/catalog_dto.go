package dto

import (
	"time"
)

// CreateIndustryRequest is the input for industry creation
type CreateIndustryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateNicheRequest is the input for niche creation. IndustryID must
// reference a live industry.
type CreateNicheRequest struct {
	IndustryID  string `json:"industryId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateProductRequest is the input for product creation
type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateServiceRequest is the input for service creation
type CreateServiceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CatalogFilter narrows flat catalog listings
type CatalogFilter struct {
	Search string `json:"search" form:"search"`
}

// NicheFilter narrows niche listings
type NicheFilter struct {
	IndustryID string `json:"industryId" form:"industryId"`
	Search     string `json:"search" form:"search"`
}

// NicheResponse surfaces a niche together with its parent industry name
type NicheResponse struct {
	ID           string    `json:"id"`
	IndustryID   string    `json:"industryId"`
	IndustryName string    `json:"industryName"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
}
