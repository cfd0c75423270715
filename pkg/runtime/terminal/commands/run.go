package commands

import (
	"fmt"

	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/de-tools/assistant-migrator/pkg/services/migration"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type RunCmd struct {
	deps        *Deps
	all         bool
	workspaceID string
	concurrency int
}

func NewRunCmd(deps *Deps) *cobra.Command {
	rc := &RunCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Migrate workspaces from the source deployment to the target deployment",
		Long: `Selects workspaces from the source catalog (MIGRATE_ALL or SINGLE_WORKSPACE_ID),
backs up each export to BACKUP_DIRECTORY and overwrites the target workspace
registered under the same name in the target catalog.`,
		Args: cobra.NoArgs,
		RunE: rc.run,
	}

	cmd.Flags().BoolVar(&rc.all, "all", false, "Migrate every workspace of the source catalog (overrides MIGRATE_ALL)")
	cmd.Flags().StringVar(&rc.workspaceID, "workspace-id", "", "Migrate a single workspace (overrides SINGLE_WORKSPACE_ID)")
	cmd.Flags().IntVar(&rc.concurrency, "concurrency", 0, "Maximum concurrent workspaces, 0 for no limit (overrides MAX_CONCURRENCY)")

	return cmd
}

func (rc *RunCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)
	cfg := rc.deps.Config

	if cmd.Flags().Changed("all") {
		cfg.Parameters.MigrateAll = rc.all
	}
	if cmd.Flags().Changed("workspace-id") {
		cfg.Parameters.SingleWorkspaceID = rc.workspaceID
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Parameters.MaxConcurrency = rc.concurrency
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	sourceCatalog, err := rc.deps.OpenCatalog(ctx, cfg.CatalogSettings(domain.EnvironmentSource))
	if err != nil {
		return fmt.Errorf("failed to open source catalog: %w", err)
	}
	defer closeCatalog(ctx, sourceCatalog)

	targetCatalog, err := rc.deps.OpenCatalog(ctx, cfg.CatalogSettings(domain.EnvironmentTarget))
	if err != nil {
		return fmt.Errorf("failed to open target catalog: %w", err)
	}
	defer closeCatalog(ctx, targetCatalog)

	source, err := rc.deps.NewService(cfg.AssistantSettings(domain.EnvironmentSource))
	if err != nil {
		return fmt.Errorf("failed to create source client: %w", err)
	}
	target, err := rc.deps.NewService(cfg.AssistantSettings(domain.EnvironmentTarget))
	if err != nil {
		return fmt.Errorf("failed to create target client: %w", err)
	}
	sink, err := rc.deps.NewSink(ctx, cfg.Source.BackupDirectory)
	if err != nil {
		return fmt.Errorf("failed to create backup sink: %w", err)
	}

	pipeline := migration.NewPipeline(migration.Dependencies{
		SourceCatalog: sourceCatalog,
		TargetCatalog: targetCatalog,
		Source:        source,
		Target:        target,
		Backups:       sink,
	}, cfg.MigrationParameters(), cfg.Parameters.MaxConcurrency)

	report, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("migration failed")
		return err
	}
	return rc.deps.Reporter.Migration(report)
}
