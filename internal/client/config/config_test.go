package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:3000", cfg.ServerBaseURL)
	assert.Equal(t, "wodtracker.db", cfg.DatabasePath)
}

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("WODTRACKER_SERVER", "https://api.example.com")
	t.Setenv("WODTRACKER_DB", "/tmp/creds.db")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://api.example.com", cfg.ServerBaseURL)
	assert.Equal(t, "/tmp/creds.db", cfg.DatabasePath)
}

func TestParseEnv_EmptyKeepsDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://localhost:3000", cfg.ServerBaseURL)
}
