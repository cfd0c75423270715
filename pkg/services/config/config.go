package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/de-tools/assistant-migrator/pkg/store/assistant"
	"github.com/de-tools/assistant-migrator/pkg/store/catalog"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DefaultDriver          = catalog.DriverPostgres
	DefaultUsername        = "apikey"
	DefaultVersion         = "2018-07-10"
	DefaultBackupDirectory = "./backup/"
	DefaultLogLevel        = "info"
)

type DBConfig struct {
	Driver   string `mapstructure:"driver" validate:"required,oneof=pgx databricks snowflake"`
	DBName   string `mapstructure:"dbname" validate:"required"`
	Hostname string `mapstructure:"hostname" validate:"required"`
	UID      string `mapstructure:"uid"`
	PWD      string `mapstructure:"pwd" validate:"required"`
	Port     int    `mapstructure:"port" validate:"gte=0,lte=65535"`
}

type ServiceConfig struct {
	URL      string `mapstructure:"url" validate:"required,url"`
	Username string `mapstructure:"username" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Version  string `mapstructure:"version" validate:"required"`
}

// EnvironmentConfig is everything needed to talk to one deployment.
type EnvironmentConfig struct {
	DB              DBConfig      `mapstructure:"db"`
	ServiceAPI      ServiceConfig `mapstructure:"service_api"`
	BackupDirectory string        `mapstructure:"backup_directory"`
}

type Parameters struct {
	MigrateAll        bool   `mapstructure:"migrate_all"`
	SingleWorkspaceID string `mapstructure:"single_workspace_id"`
	MaxConcurrency    int    `mapstructure:"max_concurrency" validate:"gte=0"`
}

type Config struct {
	Source     EnvironmentConfig `mapstructure:"source"`
	Target     EnvironmentConfig `mapstructure:"target"`
	Parameters Parameters        `mapstructure:"migration_tool_parameters"`
	LogLevel   string            `mapstructure:"log_level"`
}

// envBindings maps config keys to the environment variables operators set.
var envBindings = buildEnvBindings()

func buildEnvBindings() map[string]string {
	b := map[string]string{
		"migration_tool_parameters.migrate_all":         "MIGRATE_ALL",
		"migration_tool_parameters.single_workspace_id": "SINGLE_WORKSPACE_ID",
		"migration_tool_parameters.max_concurrency":     "MAX_CONCURRENCY",
		"source.backup_directory":                       "BACKUP_DIRECTORY",
		"log_level":                                     "LOG_LEVEL",
	}
	for _, env := range []domain.Environment{domain.EnvironmentSource, domain.EnvironmentTarget} {
		prefix := strings.ToUpper(env.String())
		for _, k := range []string{"driver", "dbname", "hostname", "uid", "pwd", "port"} {
			b[env.String()+".db."+k] = prefix + "_DB_" + strings.ToUpper(k)
		}
		for _, k := range []string{"url", "username", "password", "version"} {
			b[env.String()+".service_api."+k] = prefix + "_SERVICE_API_" + strings.ToUpper(k)
		}
	}
	return b
}

// Load reads the optional ini profiles file and the environment. Variables
// set in the environment take precedence over profile values.
func Load(profilesPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if profilesPath != "" {
		profiles, err := LoadProfiles(profilesPath)
		switch {
		case err == nil:
			profiles.apply(v)
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, err
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("%w: bind %s: %w", domain.ErrConfig, env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse configuration: %w", domain.ErrConfig, err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	for _, env := range []string{"source", "target"} {
		v.SetDefault(env+".db.driver", DefaultDriver)
		v.SetDefault(env+".service_api.username", DefaultUsername)
		v.SetDefault(env+".service_api.version", DefaultVersion)
	}
	v.SetDefault("source.backup_directory", DefaultBackupDirectory)
	v.SetDefault("migration_tool_parameters.migrate_all", false)
	v.SetDefault("migration_tool_parameters.max_concurrency", 0)
	v.SetDefault("log_level", DefaultLogLevel)
}

// Validate checks everything a migration run needs.
func (c *Config) Validate() error {
	if err := validate(c, ""); err != nil {
		return err
	}
	if c.Source.BackupDirectory == "" {
		return fmt.Errorf("%w: source.backup_directory is required (BACKUP_DIRECTORY)", domain.ErrConfig)
	}
	if p := c.Parameters; p.MigrateAll == (p.SingleWorkspaceID != "") {
		return fmt.Errorf("%w: set exactly one of MIGRATE_ALL and SINGLE_WORKSPACE_ID", domain.ErrInvalidMigrationParameters)
	}
	return nil
}

// ValidateService checks the assistant settings of env.
func (c *Config) ValidateService(env domain.Environment) error {
	svc := c.Environment(env).ServiceAPI
	return validate(&svc, env.String()+".service_api.")
}

// ValidateCatalog checks the catalog database settings of env.
func (c *Config) ValidateCatalog(env domain.Environment) error {
	db := c.Environment(env).DB
	return validate(&db, env.String()+".db.")
}

func (c *Config) Environment(env domain.Environment) EnvironmentConfig {
	if env == domain.EnvironmentTarget {
		return c.Target
	}
	return c.Source
}

func (c *Config) CatalogSettings(env domain.Environment) catalog.Settings {
	db := c.Environment(env).DB
	return catalog.Settings{
		Driver:   db.Driver,
		DBName:   db.DBName,
		Hostname: db.Hostname,
		UID:      db.UID,
		PWD:      db.PWD,
		Port:     db.Port,
	}
}

func (c *Config) AssistantSettings(env domain.Environment) assistant.Settings {
	svc := c.Environment(env).ServiceAPI
	return assistant.Settings{
		URL:      svc.URL,
		Username: svc.Username,
		Password: svc.Password,
		Version:  svc.Version,
	}
}

func (c *Config) MigrationParameters() domain.MigrationParameters {
	return domain.MigrationParameters{
		MigrateAll:        c.Parameters.MigrateAll,
		SingleWorkspaceID: c.Parameters.SingleWorkspaceID,
	}
}

var structValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// validate runs the struct tags of s. prefix is the config key s lives under.
func validate(s any, prefix string) error {
	err := structValidator.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", domain.ErrConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		_, key, _ := strings.Cut(fe.Namespace(), ".")
		msgs = append(msgs, describe(prefix+key, fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrConfig, strings.Join(msgs, "; "))
}

// describe renders a field error with the config key and, when there is one,
// the environment variable that sets it.
func describe(key string, fe validator.FieldError) string {
	msg := fmt.Sprintf("%s failed %q", key, fe.Tag())
	if fe.Param() != "" {
		msg += " (" + fe.Param() + ")"
	}
	if env, ok := envBindings[key]; ok {
		msg += " [" + env + "]"
	}
	return msg
}
