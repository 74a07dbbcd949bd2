package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"cli"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:8080/api/v1", cfg.APIBaseURL)
	require.Equal(t, 8*time.Second, cfg.RequestTimeout)
	require.Equal(t, "gopay.db", cfg.DatabaseDSN)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("API_BASE_URL", "https://pay.example.com/api/v1")
	t.Setenv("GOPAY_DB", "session.db")

	cfg := LoadConfig()

	require.Equal(t, "https://pay.example.com/api/v1", cfg.APIBaseURL)
	require.Equal(t, "session.db", cfg.DatabaseDSN)
	require.Equal(t, 8*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	resetArgs(t, "-a", "http://flagged:9000", "-t", "3")
	t.Setenv("API_BASE_URL", "http://enved:9001")

	cfg := LoadConfig()

	require.Equal(t, "http://flagged:9000", cfg.APIBaseURL)
	require.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_JsonFile(t *testing.T) {
	jc := JsonConfig{APIBaseURL: "http://fromjson:8082", DatabaseDSN: "j.db"}
	data, err := json.Marshal(jc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	resetArgs(t, "-c", path)

	cfg := LoadConfig()
	require.Equal(t, "http://fromjson:8082", cfg.APIBaseURL)
	require.Equal(t, "j.db", cfg.DatabaseDSN)
	// Timeout untouched: absent from the JSON file.
	require.Equal(t, 8*time.Second, cfg.RequestTimeout)
}

func TestParseJson_DurationString(t *testing.T) {
	var jc JsonConfig
	require.NoError(t, json.Unmarshal([]byte(`{"request_timeout":"2s"}`), &jc))
	require.Equal(t, 2*time.Second, jc.RequestTimeout.Duration)
}
