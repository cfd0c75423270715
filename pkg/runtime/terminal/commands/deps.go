package commands

import (
	"context"

	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/de-tools/assistant-migrator/pkg/models/store"
	"github.com/de-tools/assistant-migrator/pkg/runtime/terminal/export"
	"github.com/de-tools/assistant-migrator/pkg/services/config"
	"github.com/de-tools/assistant-migrator/pkg/services/migration"
	"github.com/de-tools/assistant-migrator/pkg/store/assistant"
	"github.com/de-tools/assistant-migrator/pkg/store/backup"
	"github.com/de-tools/assistant-migrator/pkg/store/catalog"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Catalog is a catalog connection as the commands use it.
type Catalog interface {
	migration.WorkspaceCatalog
	Update(ctx context.Context, table string, set, filters []store.ColumnValue) (int64, error)
	Close() error
}

// Factories build the collaborators of a command from validated settings.
type Factories struct {
	OpenCatalog func(ctx context.Context, settings catalog.Settings) (Catalog, error)
	NewService  func(settings assistant.Settings) (migration.WorkspaceService, error)
	NewSink     func(ctx context.Context, location string) (migration.BackupSink, error)
}

func DefaultFactories() Factories {
	registry := catalog.DefaultRegistry()
	return Factories{
		OpenCatalog: func(ctx context.Context, settings catalog.Settings) (Catalog, error) {
			c, err := catalog.Open(ctx, registry, settings)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		NewService: func(settings assistant.Settings) (migration.WorkspaceService, error) {
			c, err := assistant.NewClient(settings)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		NewSink: func(ctx context.Context, location string) (migration.BackupSink, error) {
			return backup.NewSink(ctx, location)
		},
	}
}

// Deps are shared by every command. Config is set by the root command
// before any subcommand runs.
type Deps struct {
	Factories
	Config   *config.Config
	Reporter *export.Reporter
	Fs       afero.Fs
}

func (d *Deps) openCatalog(ctx context.Context, env domain.Environment) (Catalog, error) {
	if err := d.Config.ValidateCatalog(env); err != nil {
		return nil, err
	}
	return d.OpenCatalog(ctx, d.Config.CatalogSettings(env))
}

func (d *Deps) newService(env domain.Environment) (migration.WorkspaceService, error) {
	if err := d.Config.ValidateService(env); err != nil {
		return nil, err
	}
	return d.NewService(d.Config.AssistantSettings(env))
}

func closeCatalog(ctx context.Context, c Catalog) {
	if err := c.Close(); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close catalog")
	}
}

func addEnvFlag(cmd *cobra.Command, target *string, def domain.Environment) {
	cmd.Flags().StringVar(target, "env", def.String(), "Deployment to use (source or target)")
}
