package migration

import (
	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/de-tools/assistant-migrator/pkg/models/store"
)

// SelectCandidateQuery turns the run parameters into the source catalog query.
// Exactly one of MigrateAll and SingleWorkspaceID must be set.
func SelectCandidateQuery(params domain.MigrationParameters) (store.Query, error) {
	schema := store.WorkspaceSchema
	switch {
	case !params.MigrateAll && params.SingleWorkspaceID != "":
		return store.Query{
			Table:   schema.TableName,
			Filters: []store.ColumnValue{{Column: schema.Columns.ID, Value: params.SingleWorkspaceID}},
		}, nil
	case params.MigrateAll && params.SingleWorkspaceID == "":
		return store.Query{Table: schema.TableName}, nil
	default:
		return store.Query{}, domain.ErrInvalidMigrationParameters
	}
}
