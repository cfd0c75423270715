package domain

// WorkspaceRecord is one catalog row. ID is nil for target rows that were
// provisioned before the workspace itself was created.
type WorkspaceRecord struct {
	ID    *string
	Name  string
	Label string
}

// HasID reports whether the record carries a non-empty identifier.
func (r WorkspaceRecord) HasID() bool {
	return r.ID != nil && *r.ID != ""
}

// IDOrEmpty returns the identifier, or "" when the record has none.
func (r WorkspaceRecord) IDOrEmpty() string {
	if r.ID == nil {
		return ""
	}
	return *r.ID
}

// WorkspaceSummary is a list entry as returned by the assistant service.
type WorkspaceSummary struct {
	ID   string
	Name string
}

// WorkspaceResult is what the assistant service answers to a create or update call.
type WorkspaceResult struct {
	ID       string
	Name     string
	Language string
	Status   string
}
