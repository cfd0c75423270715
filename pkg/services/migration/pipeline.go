package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Dependencies are the collaborators of one run, created once and shared by
// every task.
type Dependencies struct {
	SourceCatalog WorkspaceCatalog
	TargetCatalog WorkspaceCatalog
	Source        WorkspaceService
	Target        WorkspaceService
	Backups       BackupSink
}

type Pipeline struct {
	deps        Dependencies
	params      domain.MigrationParameters
	concurrency int
	assembler   *Assembler
	resolver    *Resolver
	applier     *Applier
	now         func() time.Time
}

// NewPipeline wires a run. concurrency caps both fan-outs; 0 means no cap.
func NewPipeline(deps Dependencies, params domain.MigrationParameters, concurrency int) *Pipeline {
	return &Pipeline{
		deps:        deps,
		params:      params,
		concurrency: concurrency,
		assembler:   NewAssembler(deps.Source, deps.Backups, concurrency),
		resolver:    NewResolver(deps.TargetCatalog),
		applier:     NewApplier(deps.Target),
		now:         time.Now,
	}
}

// Run migrates the selected workspaces. The first failure fails the run and
// no report is returned. Updates that completed before it are not rolled back.
func (p *Pipeline) Run(ctx context.Context) (*domain.MigrationReport, error) {
	runID := uuid.NewString()
	logger := zerolog.Ctx(ctx).With().Str("run_id", runID).Logger()
	ctx = logger.WithContext(ctx)

	report := &domain.MigrationReport{RunID: runID, StartedAt: p.now()}

	query, err := SelectCandidateQuery(p.params)
	if err != nil {
		return nil, err
	}

	candidates, err := FetchCandidates(ctx, p.deps.SourceCatalog, query)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, domain.ErrNoCandidates
	}
	report.Candidates = len(candidates)
	logger.Info().Int("candidates", len(candidates)).Bool("migrate_all", p.params.MigrateAll).Msg("selected workspaces")

	summaries, err := p.deps.Source.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list source workspaces: %w", err)
	}

	units, err := p.assembler.Assemble(ctx, candidates, summaries)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble migration: %w", err)
	}
	logger.Info().Int("units", len(units)).Msg("assembled and backed up workspaces")

	applied, err := p.applyAll(ctx, units)
	if err != nil {
		return nil, fmt.Errorf("failed to apply migration: %w", err)
	}

	report.Applied = applied
	report.FinishedAt = p.now()
	logger.Info().
		Int("applied", len(applied)).
		Dur("elapsed", report.Duration()).
		Msg("migration finished")
	return report, nil
}

func (p *Pipeline) applyAll(ctx context.Context, units []domain.MigrationUnit) ([]domain.AppliedUnit, error) {
	applied := make([]domain.AppliedUnit, len(units))
	err := fanOut(ctx, len(units), p.concurrency, func(ctx context.Context, i int) error {
		unit := units[i]
		logger := zerolog.Ctx(ctx).With().
			Str("workspace", unit.SourceCatalogName).
			Str("source_id", unit.SourceID).
			Logger()

		targetID, err := p.resolver.ResolveTargetID(ctx, unit)
		if err != nil {
			return err
		}
		logger = logger.With().Str("target_id", targetID).Logger()
		transition(&logger, domain.UnitTargetResolved)

		res, err := p.applier.Apply(ctx, unit, targetID)
		if err != nil {
			return err
		}
		transition(&logger, domain.UnitApplied)

		applied[i] = domain.AppliedUnit{
			SourceID: unit.SourceID,
			Name:     unit.SourceCatalogName,
			TargetID: targetID,
			Status:   res.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return applied, nil
}
