package commands

import (
	"encoding/json"
	"fmt"

	"github.com/de-tools/assistant-migrator/pkg/adapters"
	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func NewWorkspacesCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspaces",
		Short: "Inspect and manage workspaces of an assistant deployment",
	}

	cmd.AddCommand(newWorkspacesListCmd(deps))
	cmd.AddCommand(newWorkspacesDeleteCmd(deps))
	cmd.AddCommand(newWorkspacesRestoreCmd(deps))

	return cmd
}

type workspacesListCmd struct {
	deps *Deps
	env  string
}

func newWorkspacesListCmd(deps *Deps) *cobra.Command {
	lc := &workspacesListCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the workspaces of a deployment",
		Args:  cobra.NoArgs,
		RunE:  lc.run,
	}
	addEnvFlag(cmd, &lc.env, domain.EnvironmentSource)
	return cmd
}

func (lc *workspacesListCmd) run(cmd *cobra.Command, _ []string) error {
	env, err := domain.ParseEnvironment(lc.env)
	if err != nil {
		return err
	}
	svc, err := lc.deps.newService(env)
	if err != nil {
		return err
	}

	summaries, err := svc.ListSummaries(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list %s workspaces: %w", env, err)
	}
	return lc.deps.Reporter.Summaries(summaries)
}

type workspacesDeleteCmd struct {
	deps *Deps
	env  string
	id   string
}

func newWorkspacesDeleteCmd(deps *Deps) *cobra.Command {
	dc := &workspacesDeleteCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a workspace",
		Args:  cobra.NoArgs,
		RunE:  dc.run,
	}
	addEnvFlag(cmd, &dc.env, domain.EnvironmentTarget)
	cmd.Flags().StringVar(&dc.id, "id", "", "Workspace identifier")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func (dc *workspacesDeleteCmd) run(cmd *cobra.Command, _ []string) error {
	env, err := domain.ParseEnvironment(dc.env)
	if err != nil {
		return err
	}
	svc, err := dc.deps.newService(env)
	if err != nil {
		return err
	}

	if err := svc.DeleteByID(cmd.Context(), dc.id); err != nil {
		return fmt.Errorf("failed to delete workspace %s: %w", dc.id, err)
	}
	return dc.deps.Reporter.Message("Deleted workspace %s from %s", dc.id, env)
}

type workspacesRestoreCmd struct {
	deps *Deps
	env  string
	file string
	id   string
}

func newWorkspacesRestoreCmd(deps *Deps) *cobra.Command {
	rc := &workspacesRestoreCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Apply a backup file to a deployment",
		Long: `Reads a backup written by "run" and applies it. With --id the workspace is
overwritten, otherwise a new workspace is created.`,
		Args: cobra.NoArgs,
		RunE: rc.run,
	}
	addEnvFlag(cmd, &rc.env, domain.EnvironmentTarget)
	cmd.Flags().StringVar(&rc.file, "file", "", "Backup file to apply")
	cmd.Flags().StringVar(&rc.id, "id", "", "Workspace to overwrite; empty creates a new one")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (rc *workspacesRestoreCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	env, err := domain.ParseEnvironment(rc.env)
	if err != nil {
		return err
	}

	data, err := afero.ReadFile(rc.deps.Fs, rc.file)
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}
	var export domain.WorkspaceExport
	if err := json.Unmarshal(data, &export); err != nil {
		return fmt.Errorf("failed to decode backup %s: %w", rc.file, err)
	}

	svc, err := rc.deps.newService(env)
	if err != nil {
		return err
	}

	if rc.id != "" {
		res, err := svc.UpdateByID(ctx, adapters.BuildUpdatePayload(export, rc.id))
		if err != nil {
			return fmt.Errorf("%w %s: %w", domain.ErrApply, rc.id, err)
		}
		return rc.deps.Reporter.Result("Updated", res)
	}

	res, err := svc.Create(ctx, adapters.BuildCreatePayload(export))
	if err != nil {
		return fmt.Errorf("failed to create workspace %s: %w", export.Name, err)
	}
	return rc.deps.Reporter.Result("Created", res)
}
