package migration

import (
	"context"
	"fmt"

	"github.com/de-tools/assistant-migrator/pkg/adapters"
	"github.com/de-tools/assistant-migrator/pkg/models/domain"
)

type Applier struct {
	service WorkspaceService
}

func NewApplier(service WorkspaceService) *Applier {
	return &Applier{service: service}
}

// Apply overwrites targetID with the content of unit. No retry.
func (a *Applier) Apply(ctx context.Context, unit domain.MigrationUnit, targetID string) (domain.WorkspaceResult, error) {
	payload := adapters.BuildUpdatePayload(unit.Export, targetID)
	res, err := a.service.UpdateByID(ctx, payload)
	if err != nil {
		return domain.WorkspaceResult{}, fmt.Errorf("%w %s: %w", domain.ErrApply, targetID, err)
	}
	return res, nil
}
