package migration

import (
	"context"
	"fmt"

	"github.com/de-tools/assistant-migrator/pkg/adapters"
	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/de-tools/assistant-migrator/pkg/models/store"
)

// Resolver maps a unit to its pre-provisioned row in the target catalog.
// It never creates rows.
type Resolver struct {
	catalog WorkspaceCatalog
}

func NewResolver(catalog WorkspaceCatalog) *Resolver {
	return &Resolver{catalog: catalog}
}

func (r *Resolver) ResolveTargetID(ctx context.Context, unit domain.MigrationUnit) (string, error) {
	schema := store.WorkspaceSchema
	recs, err := r.catalog.Query(ctx, schema.TableName, []store.ColumnValue{
		{Column: schema.Columns.Name, Value: unit.SourceCatalogName},
	})
	if err != nil {
		return "", fmt.Errorf("failed to resolve target of %s: %w", unit.SourceCatalogName, err)
	}

	rows, err := adapters.MapStoreRecordsToWorkspaces(recs)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrCatalog, err)
	}

	switch {
	case len(rows) == 0:
		return "", fmt.Errorf("%w: no target catalog row named %s", domain.ErrNotFound, unit.SourceCatalogName)
	case len(rows) > 1:
		return "", fmt.Errorf("%w: %d target catalog rows named %s", domain.ErrAmbiguous, len(rows), unit.SourceCatalogName)
	case !rows[0].HasID():
		return "", fmt.Errorf("%w: target catalog row %s has no workspace id", domain.ErrNotFound, unit.SourceCatalogName)
	}
	return *rows[0].ID, nil
}
