package migration

import (
	"fmt"

	"github.com/de-tools/assistant-migrator/pkg/models/domain"
)

// MatchOne returns the id of the single summary whose id equals id.
func MatchOne(summaries []domain.WorkspaceSummary, id string) (string, error) {
	var matches int
	for _, s := range summaries {
		if s.ID == id {
			matches++
		}
	}
	switch matches {
	case 0:
		return "", fmt.Errorf("%w: workspace %s is not listed by the source service", domain.ErrNotFound, id)
	case 1:
		return id, nil
	default:
		return "", fmt.Errorf("%w: workspace %s is listed %d times by the source service", domain.ErrAmbiguous, id, matches)
	}
}
