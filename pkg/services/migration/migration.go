// Package migration moves assistant workspaces from a source deployment to
// a target deployment. The source catalog decides what moves, every workspace
// is backed up before anything is changed, and the target catalog maps each
// workspace to the identifier it is applied to.
package migration

import (
	"context"

	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/de-tools/assistant-migrator/pkg/models/store"
)

// WorkspaceCatalog is the relational catalog of one deployment.
type WorkspaceCatalog interface {
	Query(ctx context.Context, table string, filters []store.ColumnValue) ([]store.Record, error)
	QueryAll(ctx context.Context, table string) ([]store.Record, error)
	Insert(ctx context.Context, table string, values []store.ColumnValue) error
}

// WorkspaceService is the assistant API of one deployment.
type WorkspaceService interface {
	ListSummaries(ctx context.Context) ([]domain.WorkspaceSummary, error)
	GetExport(ctx context.Context, id string) (domain.WorkspaceExport, error)
	UpdateByID(ctx context.Context, payload domain.UpdatePayload) (domain.WorkspaceResult, error)
	Create(ctx context.Context, payload domain.UpdatePayload) (domain.WorkspaceResult, error)
	DeleteByID(ctx context.Context, id string) error
}

// BackupSink stores workspace backups under a file name.
type BackupSink interface {
	Write(ctx context.Context, name string, payload []byte) error
}
