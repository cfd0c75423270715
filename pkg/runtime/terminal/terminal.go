package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/de-tools/assistant-migrator/pkg/runtime/terminal/commands"
	"github.com/de-tools/assistant-migrator/pkg/runtime/terminal/export"
	"github.com/de-tools/assistant-migrator/pkg/services/config"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	deps      *commands.Deps
	logOutput io.Writer
	rootCmd   *cobra.Command

	profilesPath string
	envFile      string
	logLevel     string
	output       string
}

// Options contain configuration for the CLI. Zero values select the
// production collaborators.
type Options struct {
	Output    io.Writer
	LogOutput io.Writer
	Factories *commands.Factories
	Fs        afero.Fs
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if opts.Factories == nil {
		f := commands.DefaultFactories()
		opts.Factories = &f
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}

	cli := &CLI{
		deps: &commands.Deps{
			Factories: *opts.Factories,
			Reporter:  export.NewReporter(opts.Output),
			Fs:        opts.Fs,
		},
		logOutput: opts.LogOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args, for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "migrator",
		Short:             "Migrate assistant workspaces between deployments",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.setup,
	}

	cmd.PersistentFlags().StringVar(&cli.profilesPath, "profiles", defaultProfilesPath(),
		"Path to the ini file with [source] and [target] assistant credentials")
	cmd.PersistentFlags().StringVar(&cli.envFile, "env-file", "",
		"Path to a .env file (default is ./.env when present)")
	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "",
		"Log level (overrides LOG_LEVEL)")
	cmd.PersistentFlags().StringVarP(&cli.output, "output", "o", string(export.FormatTable),
		"Output format: table or json")

	cmd.AddCommand(commands.NewRunCmd(cli.deps))
	cmd.AddCommand(commands.NewWorkspacesCmd(cli.deps))
	cmd.AddCommand(commands.NewCatalogCmd(cli.deps))

	return cmd
}

// setup loads the environment, configuration and logger before any subcommand.
func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	if err := cli.loadEnvFile(); err != nil {
		return err
	}

	cfg, err := config.Load(cli.profilesPath)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if cli.logLevel != "" {
		level = cli.logLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	format, err := export.ParseFormat(cli.output)
	if err != nil {
		return err
	}
	cli.deps.Reporter.SetFormat(format)
	cli.deps.Config = cfg

	logger := zerolog.New(cli.logOutput).Level(lvl).With().Timestamp().Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))
	logger.Debug().Str("command", cmd.CommandPath()).Str("profiles", cli.profilesPath).Msg("configuration loaded")
	return nil
}

func (cli *CLI) loadEnvFile() error {
	if cli.envFile != "" {
		if err := godotenv.Load(cli.envFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", cli.envFile, err)
		}
		return nil
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

func defaultProfilesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".assistantcfg")
}
