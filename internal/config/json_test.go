package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"server": {
			"port": 8080,
			"cors_allowed_origins": ["https://app.example"],
			"shutdown_timeout": "7s"
		},
		"external_api": {
			"url": "https://api.example.com/cards?card_no=",
			"username": "relay",
			"password": "secret",
			"request_timeout": "30s"
		},
		"trace_spans": true
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"https://app.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 7*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "https://api.example.com/cards?card_no=", cfg.Adapter.URL)
	assert.Equal(t, "relay", cfg.Adapter.Username)
	assert.Equal(t, "secret", cfg.Adapter.Password)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.True(t, cfg.TraceSpans)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{not valid json"), 0o600))

	cfg, err := parseJSON(p)

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"string seconds", `"30s"`, 30 * time.Second, false},
		{"string combined", `"1m30s"`, 90 * time.Second, false},
		{"nanoseconds number", `1000000000`, time.Second, false},
		{"invalid string", `"soon"`, 0, true},
		{"boolean", `true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
