package dto

// WorkspaceInitRequest carries the Drive folder share link pasted by the
// teacher during setup.
type WorkspaceInitRequest struct {
	FolderURL string `json:"folder_url" validate:"required,min=10"`
}

// ConfigSetRequest upserts one Config row.
type ConfigSetRequest struct {
	Key   string `json:"key" validate:"required,min=1"`
	Value string `json:"value"`
}

// WorkspaceStatusResponse reports the workspace setup state.
type WorkspaceStatusResponse struct {
	Initialized       bool   `json:"initialized"`
	FolderID          string `json:"folder_id,omitempty"`
	OrganizedFolderID string `json:"organized_folder_id,omitempty"`
	SpreadsheetID     string `json:"spreadsheet_id,omitempty"`
}
