package dto

// CreateImplRequest is the input for attaching an implementation
// artifact to a project
type CreateImplRequest struct {
	ProjectID    string `json:"projectId"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	MetadataJSON string `json:"metadataJson"`
	SortOrder    int    `json:"sortOrder"`
}

// UpdateImplRequest carries a partial update; nil fields are left
// untouched
type UpdateImplRequest struct {
	Type         *string `json:"type"`
	Title        *string `json:"title"`
	Content      *string `json:"content"`
	MetadataJSON *string `json:"metadataJson"`
	SortOrder    *int    `json:"sortOrder"`
}

// ImplFilter narrows implementation detail listings to one project
// and optionally one artifact type
type ImplFilter struct {
	ProjectID string `json:"projectId" form:"projectId"`
	Type      string `json:"type" form:"type"`
}
