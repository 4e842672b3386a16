package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "finmentor.db", cfg.DBPath)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DB_PATH", "/tmp/other.db")

	cfg := Load()
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
}
