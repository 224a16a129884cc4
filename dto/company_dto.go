package dto

import (
	"github.com/botadmin/models"
)

// CreateCompanyRequest is the input for company creation. Empty
// optional fields are treated as not provided.
type CreateCompanyRequest struct {
	Name         string `json:"name"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Website      string `json:"website"`
	Notes        string `json:"notes"`
}

// UpdateCompanyRequest carries a partial update; nil fields are left
// untouched
type UpdateCompanyRequest struct {
	Name         *string `json:"name"`
	ContactName  *string `json:"contactName"`
	ContactEmail *string `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`
	Website      *string `json:"website"`
	Notes        *string `json:"notes"`
	Status       *string `json:"status"`
}

// CompanyFilter narrows company listings
type CompanyFilter struct {
	Status string `json:"status" form:"status"`
	Search string `json:"search" form:"search"`
}

// AssignedIndustry is one industry association on a company
type AssignedIndustry struct {
	ID           string `json:"id"`
	IndustryID   string `json:"industryId"`
	IndustryName string `json:"industryName"`
}

// AssignedNiche is one niche association on a company
type AssignedNiche struct {
	ID           string `json:"id"`
	NicheID      string `json:"nicheId"`
	NicheName    string `json:"nicheName"`
	IndustryName string `json:"industryName"`
}

// AssignedProduct is one product association on a company
type AssignedProduct struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Notes       string `json:"notes"`
}

// AssignedService is one service association on a company
type AssignedService struct {
	ID          string `json:"id"`
	ServiceID   string `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	Notes       string `json:"notes"`
}

// CompanyDetail is a company with its catalog associations and live
// projects eagerly loaded
type CompanyDetail struct {
	models.Company
	Industries []AssignedIndustry `json:"industries"`
	Niches     []AssignedNiche    `json:"niches"`
	Products   []AssignedProduct  `json:"products"`
	Services   []AssignedService  `json:"services"`
	Projects   []models.Project   `json:"projects"`
}

// AssignCatalogRequest is the input for the additive assignment
// operations. Ref is an id or exact name of the catalog item.
type AssignCatalogRequest struct {
	Ref   string `json:"ref"`
	Notes string `json:"notes"`
}

// ReplaceAssignmentsRequest is the input for the replace-all flow:
// every existing association of Type is superseded by IDs.
type ReplaceAssignmentsRequest struct {
	Type string   `json:"type"`
	IDs  []string `json:"ids"`
}
