package domain

type MigrationParameters struct {
	MigrateAll        bool
	SingleWorkspaceID string
}

// MigrationUnit is a fetched source workspace waiting to be applied to the target.
type MigrationUnit struct {
	SourceCatalogName string
	SourceID          string
	Export            WorkspaceExport
}

type UnitState string

const (
	UnitSelected        UnitState = "selected"
	UnitCrossReferenced UnitState = "cross_referenced"
	UnitFetched         UnitState = "fetched"
	UnitBackedUp        UnitState = "backed_up"
	UnitTargetResolved  UnitState = "target_resolved"
	UnitApplied         UnitState = "applied"
)
