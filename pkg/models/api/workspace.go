package api

// Wire types of the assistant v1 REST API.

type Workspace struct {
	Name        string `json:"name"`
	WorkspaceID string `json:"workspace_id"`
	Language    string `json:"language,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Created     string `json:"created,omitempty"`
	Updated     string `json:"updated,omitempty"`
}

type Pagination struct {
	RefreshURL string `json:"refresh_url,omitempty"`
	NextURL    string `json:"next_url,omitempty"`
	NextCursor string `json:"next_cursor,omitempty"`
	Total      int    `json:"total,omitempty"`
	Matched    int    `json:"matched,omitempty"`
}

type WorkspaceCollection struct {
	Workspaces []Workspace `json:"workspaces"`
	Pagination Pagination  `json:"pagination"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// ListParams are the query parameters of GET /v1/workspaces.
type ListParams struct {
	Version   string `url:"version"`
	PageLimit int    `url:"page_limit,omitempty"`
	Cursor    string `url:"cursor,omitempty"`
}

// WorkspaceParams are the query parameters of the per-workspace calls.
type WorkspaceParams struct {
	Version string `url:"version"`
	Export  bool   `url:"export,omitempty"`
}
