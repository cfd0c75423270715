package migration

import (
	"context"

	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// fanOut runs task for every index in [0, n) and waits for all of them. The
// first failure cancels the context handed to the remaining tasks and is the
// error returned. limit <= 0 runs every task at once.
func fanOut(ctx context.Context, n, limit int, task func(ctx context.Context, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return task(gctx, i)
		})
	}
	return g.Wait()
}

func transition(logger *zerolog.Logger, state domain.UnitState) {
	logger.Debug().Str("state", string(state)).Msg("unit transition")
}
