package models

import "encoding/json"

// CreateProjectRequest contains fields for creating a project.
type CreateProjectRequest struct {
	ProjectID  string          `json:"project_id,omitempty"`
	Name       string          `json:"name"`
	IsSystem   bool            `json:"is_system,omitempty"`
	CanvasData json.RawMessage `json:"canvas_data"`
}

// UpdateProjectRequest contains fields for updating a project. Nil fields
// are left unchanged.
type UpdateProjectRequest struct {
	Name       *string         `json:"name,omitempty"`
	CanvasData json.RawMessage `json:"canvas_data,omitempty"`
}

// VariableUpsert contains fields for creating or replacing one project
// global variable.
type VariableUpsert struct {
	Value       string `json:"value"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Folder      string `json:"folder,omitempty"`
}
