package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{Path: "transcripts.db"},
		YouTube:  YouTubeConfig{DefaultLanguages: []string{"en"}},
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg.Server.Port = 70000
	assert.Error(t, cfg.Validate())
}

func TestValidateFillsDatabasePath(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Path = ""
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "transcripts.db", cfg.Database.Path)
}

func TestValidateFillsDefaultLanguages(t *testing.T) {
	cfg := validConfig()
	cfg.YouTube.DefaultLanguages = nil
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"en"}, cfg.YouTube.DefaultLanguages)
}

func TestInitIsIdempotent(t *testing.T) {
	require.NoError(t, Init())
	require.NoError(t, Init())

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"en"}, cfg.YouTube.DefaultLanguages)
}
