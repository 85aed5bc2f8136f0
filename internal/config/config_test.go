package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
dbname = "facility"

[facility]
default_audit_required = false
default_max_duration_hours = 2.5

[aggregation]
leaderboard_days = [1, 7, 30]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.False(t, cfg.Facility.DefaultAuditRequired)
	assert.Equal(t, 2.5, cfg.Facility.DefaultMaxDurationHours)
	assert.Equal(t, []int{1, 7, 30}, cfg.Aggregation.LeaderboardDays)
	assert.Equal(t, 20, cfg.Aggregation.LeaderboardLimit)
	assert.Equal(t, 180, cfg.Admission.MaxHorizonDays)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "db"
password = "from-file"
`)
	t.Setenv(EnvDBPassword, "secret")
	t.Setenv(EnvDBHost, "pg.internal")
	t.Setenv(EnvHTTPPort, "8181")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "pg.internal", cfg.Database.Host)
	assert.Equal(t, 8181, cfg.Server.HTTPPort)
	assert.Contains(t, cfg.Database.DSN(), "host=pg.internal")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)

	path := writeConfig(t, `
[facility]
default_max_duration_hours = 0
`)
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	t.Setenv(EnvHTTPPort, "eighty")
	_, err = Load(writeConfig(t, ""))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate_LeaderboardDays(t *testing.T) {
	cfg := Default()
	cfg.Aggregation.LeaderboardDays = []int{7, 0}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Aggregation.LeaderboardDays = nil
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	assert.NoError(t, Default().Validate())
}
