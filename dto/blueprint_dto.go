package dto

import (
	"github.com/botadmin/models"
)

// CreateBlueprintRequest is the input for blueprint creation
type CreateBlueprintRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AddStepRequest is the input for appending a step to a blueprint.
// StepOrder duplicates and gaps are permitted.
type AddStepRequest struct {
	StepOrder   int    `json:"stepOrder"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AddBlueprintToolRequest is the input for attaching a tool to a
// blueprint with an optional role
type AddBlueprintToolRequest struct {
	ToolRef         string `json:"toolRef"`
	RoleInBlueprint string `json:"roleInBlueprint"`
	Notes           string `json:"notes"`
}

// BlueprintFilter narrows blueprint listings
type BlueprintFilter struct {
	Search string `json:"search" form:"search"`
}

// BlueprintToolRow is a blueprint tool joined with the tool registry
type BlueprintToolRow struct {
	ID              string `json:"id"`
	ToolID          string `json:"toolId"`
	ToolName        string `json:"toolName"`
	RoleInBlueprint string `json:"roleInBlueprint"`
	Notes           string `json:"notes"`
}

// BlueprintIndustryTag is one industry tag on a blueprint
type BlueprintIndustryTag struct {
	ID           string `json:"id"`
	IndustryID   string `json:"industryId"`
	IndustryName string `json:"industryName"`
}

// BlueprintNicheTag is one niche tag on a blueprint
type BlueprintNicheTag struct {
	ID           string `json:"id"`
	NicheID      string `json:"nicheId"`
	NicheName    string `json:"nicheName"`
	IndustryName string `json:"industryName"`
}

// BlueprintDetail is a blueprint with its ordered steps, tools and
// catalog tags
type BlueprintDetail struct {
	models.Blueprint
	Steps      []models.BlueprintStep `json:"steps"`
	Tools      []BlueprintToolRow     `json:"tools"`
	Industries []BlueprintIndustryTag `json:"industries"`
	Niches     []BlueprintNicheTag    `json:"niches"`
}

// ApplyBlueprintRequest is the input for instantiating a blueprint
// into a concrete project for a company
type ApplyBlueprintRequest struct {
	CompanyRef  string `json:"companyRef"`
	ProjectName string `json:"projectName"`
}

// ApplyBlueprintResult is the outcome of a successful apply
type ApplyBlueprintResult struct {
	Project   models.Project  `json:"project"`
	Blueprint BlueprintDetail `json:"blueprint"`
}
