package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-p", "8088",
		"-url", "https://api.example.com/cards/",
		"-username", "relay",
		"-timeout", "4s",
		"-shutdown-timeout", "2s",
		"-trace-spans",
		"-config", "/etc/relay.json",
	})

	require.NoError(t, err)
	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "https://api.example.com/cards/", cfg.Adapter.URL)
	assert.Equal(t, "relay", cfg.Adapter.Username)
	assert.Empty(t, cfg.Adapter.Password)
	assert.Equal(t, 4*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/etc/relay.json", cfg.JSONFilePath)
	assert.True(t, cfg.TraceSpans)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := ParseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "relay.json"})

	require.NoError(t, err)
	assert.Equal(t, "relay.json", cfg.JSONFilePath)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-grpc-address", "localhost:9090"}},
		{"bad port", []string{"-p", "abc"}},
		{"bad duration", []string{"-timeout", "forever"}},
		{"password flag is not accepted", []string{"-password", "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			assert.Nil(t, cfg)
			assert.Error(t, err)
		})
	}
}
