package store

type Column struct {
	Name string
}

// ColumnValue is an equality filter in a WHERE clause, or one assignment in
// an INSERT or UPDATE.
type ColumnValue struct {
	Column Column
	Value  any
}

// Record is one catalog row keyed by upper-cased column name.
type Record map[string]any

// Query selects rows of Table matching every filter. No filters selects all rows.
type Query struct {
	Table   string
	Filters []ColumnValue
}

func (q Query) IsSelectAll() bool {
	return len(q.Filters) == 0
}

type workspaceColumns struct {
	ID    Column
	Name  Column
	Label Column
}

type workspaceSchema struct {
	TableName string
	Columns   workspaceColumns
}

// WorkspaceSchema describes the WORKSPACE catalog table.
var WorkspaceSchema = workspaceSchema{
	TableName: "WORKSPACE",
	Columns: workspaceColumns{
		ID:    Column{Name: "ID"},
		Name:  Column{Name: "NAME"},
		Label: Column{Name: "LABEL"},
	},
}
