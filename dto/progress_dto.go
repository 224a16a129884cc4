package dto

// CreateProgressRequest is the input for appending a timeline entry
// to a project. Status defaults to in_progress.
type CreateProgressRequest struct {
	ProjectID string `json:"projectId"`
	Phase     string `json:"phase"`
	Status    string `json:"status"`
	Note      string `json:"note"`
	LoggedBy  string `json:"loggedBy"`
}
