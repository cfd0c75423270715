package adapters

import (
	"fmt"

	"github.com/de-tools/assistant-migrator/pkg/models/api"
	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/de-tools/assistant-migrator/pkg/models/store"
)

// MapStoreRecordToWorkspace decodes a catalog row. NAME and LABEL must be
// non-empty strings; ID may be NULL but not an empty string.
func MapStoreRecordToWorkspace(rec store.Record) (domain.WorkspaceRecord, error) {
	cols := store.WorkspaceSchema.Columns

	name, err := requiredString(rec, cols.Name.Name)
	if err != nil {
		return domain.WorkspaceRecord{}, err
	}
	label, err := requiredString(rec, cols.Label.Name)
	if err != nil {
		return domain.WorkspaceRecord{}, err
	}

	ws := domain.WorkspaceRecord{Name: name, Label: label}
	raw, ok := rec[cols.ID.Name]
	if !ok || raw == nil {
		return ws, nil
	}
	id, ok := asString(raw)
	if !ok || id == "" {
		return domain.WorkspaceRecord{}, fmt.Errorf("column %s: expected non-empty string, got %T", cols.ID.Name, raw)
	}
	ws.ID = &id
	return ws, nil
}

// MapStoreRecordsToWorkspaces decodes every row or none.
func MapStoreRecordsToWorkspaces(recs []store.Record) ([]domain.WorkspaceRecord, error) {
	out := make([]domain.WorkspaceRecord, 0, len(recs))
	for i, rec := range recs {
		ws, err := MapStoreRecordToWorkspace(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, ws)
	}
	return out, nil
}

// MapDomainWorkspaceToStoreValues builds the column values of an INSERT.
// The ID column is left out when the record has no identifier.
func MapDomainWorkspaceToStoreValues(ws domain.WorkspaceRecord) []store.ColumnValue {
	cols := store.WorkspaceSchema.Columns
	values := make([]store.ColumnValue, 0, 3)
	if ws.HasID() {
		values = append(values, store.ColumnValue{Column: cols.ID, Value: *ws.ID})
	}
	values = append(values,
		store.ColumnValue{Column: cols.Name, Value: ws.Name},
		store.ColumnValue{Column: cols.Label, Value: ws.Label},
	)
	return values
}

func MapAPIWorkspaceToSummary(ws api.Workspace) domain.WorkspaceSummary {
	return domain.WorkspaceSummary{
		ID:   ws.WorkspaceID,
		Name: ws.Name,
	}
}

func MapAPIWorkspaceToResult(ws api.Workspace) domain.WorkspaceResult {
	return domain.WorkspaceResult{
		ID:       ws.WorkspaceID,
		Name:     ws.Name,
		Language: ws.Language,
		Status:   ws.Status,
	}
}

func requiredString(rec store.Record, column string) (string, error) {
	raw, ok := rec[column]
	if !ok || raw == nil {
		return "", fmt.Errorf("column %s: missing value", column)
	}
	s, ok := asString(raw)
	if !ok {
		return "", fmt.Errorf("column %s: expected string, got %T", column, raw)
	}
	if s == "" {
		return "", fmt.Errorf("column %s: empty value", column)
	}
	return s, nil
}

// asString accepts the representations drivers use for VARCHAR columns.
func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	case *string:
		if s == nil {
			return "", false
		}
		return *s, true
	}
	return "", false
}
