package migration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Assembler fetches the export of every candidate and backs it up.
type Assembler struct {
	service     WorkspaceService
	backups     BackupSink
	concurrency int
	now         func() time.Time
}

func NewAssembler(service WorkspaceService, backups BackupSink, concurrency int) *Assembler {
	return &Assembler{
		service:     service,
		backups:     backups,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// Assemble returns one unit per candidate, in candidate order, or the first
// error any candidate hit. There is no partial result.
func (a *Assembler) Assemble(
	ctx context.Context,
	candidates []domain.WorkspaceRecord,
	summaries []domain.WorkspaceSummary,
) ([]domain.MigrationUnit, error) {
	units := make([]domain.MigrationUnit, len(candidates))
	err := fanOut(ctx, len(candidates), a.concurrency, func(ctx context.Context, i int) error {
		unit, err := a.assembleOne(ctx, candidates[i], summaries)
		if err != nil {
			return err
		}
		units[i] = unit
		return nil
	})
	if err != nil {
		return nil, err
	}
	return units, nil
}

func (a *Assembler) assembleOne(
	ctx context.Context,
	candidate domain.WorkspaceRecord,
	summaries []domain.WorkspaceSummary,
) (domain.MigrationUnit, error) {
	logger := zerolog.Ctx(ctx).With().
		Str("workspace", candidate.Name).
		Str("source_id", candidate.IDOrEmpty()).
		Logger()
	transition(&logger, domain.UnitSelected)

	if !candidate.HasID() {
		return domain.MigrationUnit{}, fmt.Errorf("%w: catalog row %s has no workspace id", domain.ErrNotFound, candidate.Name)
	}
	id, err := MatchOne(summaries, *candidate.ID)
	if err != nil {
		return domain.MigrationUnit{}, err
	}
	transition(&logger, domain.UnitCrossReferenced)

	export, err := a.service.GetExport(ctx, id)
	if err != nil {
		return domain.MigrationUnit{}, fmt.Errorf("failed to fetch workspace %s: %w", id, err)
	}
	transition(&logger, domain.UnitFetched)

	if err := a.backup(ctx, id, export); err != nil {
		logger.Warn().Err(err).Msg("backup failed, continuing without it")
	}
	transition(&logger, domain.UnitBackedUp)

	return domain.MigrationUnit{
		SourceCatalogName: candidate.Name,
		SourceID:          id,
		Export:            export,
	}, nil
}

// backup writes the export as the service returned it. Exports built
// without a response body are encoded from their fields.
func (a *Assembler) backup(ctx context.Context, id string, export domain.WorkspaceExport) error {
	var buf bytes.Buffer
	if len(export.Raw) > 0 {
		if err := json.Indent(&buf, export.Raw, "", "  "); err != nil {
			return fmt.Errorf("%w: encode %s: %w", domain.ErrBackupWrite, id, err)
		}
	} else {
		payload, err := json.MarshalIndent(export, "", "  ")
		if err != nil {
			return fmt.Errorf("%w: encode %s: %w", domain.ErrBackupWrite, id, err)
		}
		buf.Write(payload)
	}
	return a.backups.Write(ctx, BackupName(id, a.now()), buf.Bytes())
}

// BackupName is the file name a workspace export is saved under.
func BackupName(id string, at time.Time) string {
	return fmt.Sprintf("%s_%d.json", id, at.UnixMilli())
}
