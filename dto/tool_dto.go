package dto

// CreateToolRequest is the input for tool registration
type CreateToolRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// ToolFilter narrows tool listings
type ToolFilter struct {
	Category string `json:"category" form:"category"`
	Search   string `json:"search" form:"search"`
}
