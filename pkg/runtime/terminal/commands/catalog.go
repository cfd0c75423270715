package commands

import (
	"fmt"

	"github.com/de-tools/assistant-migrator/pkg/adapters"
	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/de-tools/assistant-migrator/pkg/models/store"
	"github.com/de-tools/assistant-migrator/pkg/services/migration"
	"github.com/spf13/cobra"
)

var workspaceTable = store.WorkspaceSchema

func NewCatalogCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and maintain the WORKSPACE catalog table",
	}

	cmd.AddCommand(newCatalogListCmd(deps))
	cmd.AddCommand(newCatalogAddCmd(deps))
	cmd.AddCommand(newCatalogSetIDCmd(deps))

	return cmd
}

type catalogListCmd struct {
	deps  *Deps
	env   string
	id    string
	name  string
	label string
}

func newCatalogListCmd(deps *Deps) *cobra.Command {
	lc := &catalogListCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog rows, optionally filtered",
		Args:  cobra.NoArgs,
		RunE:  lc.run,
	}
	addEnvFlag(cmd, &lc.env, domain.EnvironmentSource)
	cmd.Flags().StringVar(&lc.id, "id", "", "Only rows with this ID")
	cmd.Flags().StringVar(&lc.name, "name", "", "Only rows with this NAME")
	cmd.Flags().StringVar(&lc.label, "label", "", "Only rows with this LABEL")
	return cmd
}

func (lc *catalogListCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	env, err := domain.ParseEnvironment(lc.env)
	if err != nil {
		return err
	}

	var filters []store.ColumnValue
	for _, f := range []struct {
		column store.Column
		value  string
	}{
		{workspaceTable.Columns.ID, lc.id},
		{workspaceTable.Columns.Name, lc.name},
		{workspaceTable.Columns.Label, lc.label},
	} {
		if f.value != "" {
			filters = append(filters, store.ColumnValue{Column: f.column, Value: f.value})
		}
	}

	c, err := lc.deps.openCatalog(ctx, env)
	if err != nil {
		return err
	}
	defer closeCatalog(ctx, c)

	records, err := migration.FetchCandidates(ctx, c, store.Query{Table: workspaceTable.TableName, Filters: filters})
	if err != nil {
		return err
	}
	return lc.deps.Reporter.Catalog(records)
}

type catalogAddCmd struct {
	deps  *Deps
	env   string
	id    string
	name  string
	label string
}

func newCatalogAddCmd(deps *Deps) *cobra.Command {
	ac := &catalogAddCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a workspace in the catalog",
		Args:  cobra.NoArgs,
		RunE:  ac.run,
	}
	addEnvFlag(cmd, &ac.env, domain.EnvironmentTarget)
	cmd.Flags().StringVar(&ac.id, "id", "", "Workspace identifier; may be set later with set-id")
	cmd.Flags().StringVar(&ac.name, "name", "", "Workspace name, the key used to resolve target workspaces")
	cmd.Flags().StringVar(&ac.label, "label", "", "Free-form label")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("label")
	return cmd
}

func (ac *catalogAddCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	env, err := domain.ParseEnvironment(ac.env)
	if err != nil {
		return err
	}

	rec := domain.WorkspaceRecord{Name: ac.name, Label: ac.label}
	if ac.id != "" {
		rec.ID = &ac.id
	}

	c, err := ac.deps.openCatalog(ctx, env)
	if err != nil {
		return err
	}
	defer closeCatalog(ctx, c)

	if err := c.Insert(ctx, workspaceTable.TableName, adapters.MapDomainWorkspaceToStoreValues(rec)); err != nil {
		return fmt.Errorf("failed to register workspace %s: %w", ac.name, err)
	}
	return ac.deps.Reporter.Message("Registered %s in the %s catalog", ac.name, env)
}

type catalogSetIDCmd struct {
	deps *Deps
	env  string
	id   string
	name string
}

func newCatalogSetIDCmd(deps *Deps) *cobra.Command {
	sc := &catalogSetIDCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "set-id",
		Short: "Set the workspace identifier of the row with the given name",
		Args:  cobra.NoArgs,
		RunE:  sc.run,
	}
	addEnvFlag(cmd, &sc.env, domain.EnvironmentTarget)
	cmd.Flags().StringVar(&sc.name, "name", "", "Row to update")
	cmd.Flags().StringVar(&sc.id, "id", "", "New workspace identifier")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func (sc *catalogSetIDCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	env, err := domain.ParseEnvironment(sc.env)
	if err != nil {
		return err
	}

	c, err := sc.deps.openCatalog(ctx, env)
	if err != nil {
		return err
	}
	defer closeCatalog(ctx, c)

	n, err := c.Update(ctx, workspaceTable.TableName,
		[]store.ColumnValue{{Column: workspaceTable.Columns.ID, Value: sc.id}},
		[]store.ColumnValue{{Column: workspaceTable.Columns.Name, Value: sc.name}},
	)
	if err != nil {
		return fmt.Errorf("failed to set id of %s: %w", sc.name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: no %s catalog row named %s", domain.ErrNotFound, env, sc.name)
	}
	return sc.deps.Reporter.Message("Updated %d row(s) named %s", n, sc.name)
}
