package migration

import (
	"context"
	"fmt"

	"github.com/de-tools/assistant-migrator/pkg/adapters"
	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/de-tools/assistant-migrator/pkg/models/store"
	"github.com/rs/zerolog"
)

// FetchCandidates runs q against the catalog and decodes every row. A row
// that does not decode fails the whole fetch.
func FetchCandidates(ctx context.Context, catalog WorkspaceCatalog, q store.Query) ([]domain.WorkspaceRecord, error) {
	var (
		recs []store.Record
		err  error
	)
	if q.IsSelectAll() {
		recs, err = catalog.QueryAll(ctx, q.Table)
	} else {
		recs, err = catalog.Query(ctx, q.Table, q.Filters)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", q.Table, err)
	}

	workspaces, err := adapters.MapStoreRecordsToWorkspaces(recs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalog, err)
	}

	zerolog.Ctx(ctx).Debug().Str("table", q.Table).Int("rows", len(workspaces)).Msg("fetched catalog rows")
	return workspaces, nil
}
