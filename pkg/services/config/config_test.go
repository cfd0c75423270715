package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func completeEnv() map[string]string {
	return map[string]string{
		"SOURCE_DB_DBNAME":            "BLUDB",
		"SOURCE_DB_HOSTNAME":          "src.db.example.com",
		"SOURCE_DB_UID":               "migrator",
		"SOURCE_DB_PWD":               "pwd",
		"SOURCE_DB_PORT":              "5432",
		"SOURCE_SERVICE_API_URL":      "https://src.assistant.example.com",
		"SOURCE_SERVICE_API_PASSWORD": "src-key",
		"TARGET_DB_DRIVER":            "databricks",
		"TARGET_DB_DBNAME":            "/sql/1.0/warehouses/abc",
		"TARGET_DB_HOSTNAME":          "adb-1.azuredatabricks.net",
		"TARGET_DB_PWD":               "dapi123",
		"TARGET_SERVICE_API_URL":      "https://dst.assistant.example.com",
		"TARGET_SERVICE_API_PASSWORD": "dst-key",
		"MIGRATE_ALL":                 "true",
		"MAX_CONCURRENCY":             "4",
	}
}

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assistantcfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FromEnvironment(t *testing.T) {
	// Given
	setEnv(t, completeEnv())

	// When
	cfg, err := Load("")

	// Then
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultDriver, cfg.Source.DB.Driver)
	assert.Equal(t, 5432, cfg.Source.DB.Port)
	assert.Equal(t, DefaultUsername, cfg.Source.ServiceAPI.Username)
	assert.Equal(t, DefaultVersion, cfg.Target.ServiceAPI.Version)
	assert.Equal(t, DefaultBackupDirectory, cfg.Source.BackupDirectory)
	assert.Equal(t, "databricks", cfg.Target.DB.Driver)
	assert.Equal(t, 4, cfg.Parameters.MaxConcurrency)
	assert.Equal(t, domain.MigrationParameters{MigrateAll: true}, cfg.MigrationParameters())
}

func TestLoad_ProfilesAreOverriddenByEnvironment(t *testing.T) {
	path := writeProfiles(t, `
[source]
url      = https://profile-src.example.com
password = profile-src-key
version  = 2021-06-14

[target]
url      = https://profile-dst.example.com
username = svc
`)
	t.Setenv("SOURCE_SERVICE_API_PASSWORD", "env-src-key")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://profile-src.example.com", cfg.Source.ServiceAPI.URL)
	assert.Equal(t, "env-src-key", cfg.Source.ServiceAPI.Password)
	assert.Equal(t, "2021-06-14", cfg.Source.ServiceAPI.Version)
	assert.Equal(t, "svc", cfg.Target.ServiceAPI.Username)
	assert.Equal(t, DefaultVersion, cfg.Target.ServiceAPI.Version)
}

func TestLoad_MissingProfilesFileIsIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))

	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestValidate_ReportsMissingKeys(t *testing.T) {
	vars := completeEnv()
	delete(vars, "TARGET_DB_HOSTNAME")
	setEnv(t, vars)

	cfg, err := Load("")
	require.NoError(t, err)

	err = cfg.Validate()

	assert.ErrorIs(t, err, domain.ErrConfig)
	assert.Contains(t, err.Error(), "target.db.hostname")
	assert.Contains(t, err.Error(), "TARGET_DB_HOSTNAME")
}

func TestValidate_RejectsUnknownDriver(t *testing.T) {
	vars := completeEnv()
	vars["SOURCE_DB_DRIVER"] = "oracle"
	setEnv(t, vars)

	cfg, err := Load("")
	require.NoError(t, err)

	err = cfg.Validate()
	assert.ErrorIs(t, err, domain.ErrConfig)
	assert.Contains(t, err.Error(), "source.db.driver")
}

func TestConfig_Settings(t *testing.T) {
	setEnv(t, completeEnv())
	cfg, err := Load("")
	require.NoError(t, err)

	cs := cfg.CatalogSettings(domain.EnvironmentTarget)
	assert.Equal(t, "databricks", cs.Driver)
	assert.Equal(t, "adb-1.azuredatabricks.net", cs.Hostname)

	as := cfg.AssistantSettings(domain.EnvironmentSource)
	assert.Equal(t, "https://src.assistant.example.com", as.URL)
	assert.Equal(t, "apikey", as.Username)
	assert.Equal(t, "src-key", as.Password)
}

func TestProfiles_ApplyOnlySetsPresentKeys(t *testing.T) {
	path := writeProfiles(t, `
[source]
url = https://src.example.com
password = k
`)
	p, err := LoadProfiles(path)
	require.NoError(t, err)

	v := viper.New()
	p.apply(v)

	assert.Equal(t, "https://src.example.com", v.GetString("source.service_api.url"))
	assert.Equal(t, "k", v.GetString("source.service_api.password"))
	assert.False(t, v.IsSet("source.service_api.username"))
	assert.False(t, v.IsSet("target.service_api.url"))
}

func TestValidateServiceAndCatalog(t *testing.T) {
	t.Setenv("TARGET_SERVICE_API_URL", "https://dst.assistant.example.com")
	t.Setenv("TARGET_SERVICE_API_PASSWORD", "dst-key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.NoError(t, cfg.ValidateService(domain.EnvironmentTarget))

	err = cfg.ValidateCatalog(domain.EnvironmentTarget)
	assert.ErrorIs(t, err, domain.ErrConfig)
	assert.Contains(t, err.Error(), "target.db.hostname failed \"required\" [TARGET_DB_HOSTNAME]")
}
