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

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "salon"
user = "salon"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "09:00", cfg.Calendar.SlotStart)
	assert.Equal(t, "18:00", cfg.Calendar.SlotEnd)
	assert.Equal(t, 30, cfg.Calendar.SlotStepMinutes)
	assert.Equal(t, MatchModeExact, cfg.Calendar.MatchMode)
	assert.Equal(t, 2, cfg.Calendar.PreviewLimit)
	assert.Equal(t, 1, cfg.Calendar.NarrowPreviewLimit)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Empty(t, cfg.SalonAPI.URL)
	assert.Equal(t, "host=localhost port=5432 user=salon password= dbname=salon sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "salon"
password = "from-file"

[salon_api]
url = "http://file.local"
`)

	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("SALON_API_URL", "http://env.local")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "http://env.local", cfg.SalonAPI.URL)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, 6543, cfg.Database.Port)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "missing file",
			content: "",
			wantErr: ErrReadConfig,
		},
		{
			name:    "no dbname",
			content: "[logs]\nlevel = \"info\"\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "unknown match mode",
			content: "[database]\ndbname = \"salon\"\n[calendar]\nmatch_mode = \"fuzzy\"\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "slot window reversed",
			content: "[database]\ndbname = \"salon\"\n[calendar]\nslot_start = \"18:00\"\nslot_end = \"09:00\"\n",
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.toml")
			if tt.content != "" {
				path = writeConfig(t, tt.content)
			}

			_, err := Load(path)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCalendarConfig_Location(t *testing.T) {
	c := CalendarConfig{Timezone: "Asia/Seoul"}
	assert.Equal(t, "Asia/Seoul", c.Location().String())

	c.Timezone = "Mars/Olympus"
	assert.NotNil(t, c.Location())
}
