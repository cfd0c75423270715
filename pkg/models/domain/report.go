package domain

import "time"

// AppliedUnit is one workspace that reached the Applied state.
type AppliedUnit struct {
	SourceID string
	Name     string
	TargetID string
	Status   string
}

// MigrationReport summarises a successful run.
type MigrationReport struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Candidates int
	Applied    []AppliedUnit
}

func (r MigrationReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
