package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"DB_WAIT_RETRIES", "DB_WAIT_DELAY", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, "root", cfg.DBUser)
	assert.Equal(t, "", cfg.DBPassword)
	assert.Equal(t, "chatapp", cfg.DBName)
	assert.Equal(t, 30, cfg.WaitRetries)
	assert.Equal(t, 5*time.Second, cfg.WaitDelay)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "33060")
	t.Setenv("DB_WAIT_RETRIES", "3")
	t.Setenv("DB_WAIT_DELAY", "250ms")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "33060", cfg.DBPort)
	assert.Equal(t, 3, cfg.WaitRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.WaitDelay)
}

func TestCredentialsFromConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	assert.NoError(t, err)

	creds := cfg.Credentials()
	assert.Equal(t, "localhost", creds.Host)
	assert.Equal(t, "secret", creds.Password)
	assert.Equal(t, "chatapp", creds.Database)
}

func TestCredentialsDSN(t *testing.T) {
	creds := Credentials{
		Host:     "localhost",
		Port:     "3306",
		User:     "root",
		Password: "secret",
		Database: "chatapp",
	}

	assert.Equal(t, "localhost:3306", creds.Addr())
	assert.Equal(t, "root:secret@tcp(localhost:3306)/chatapp", creds.DSN())
	assert.Equal(t, "root:secret@tcp(localhost:3306)/", creds.ServerDSN())
}

func TestValidIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"chatapp", true},
		{"chat_app", true},
		{"_internal", true},
		{"db2", true},
		{"", false},
		{"2db", false},
		{"chat-app", false},
		{"chat app", false},
		{"chatapp;DROP DATABASE chatapp", false},
		{"chat`app", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidIdentifier(tt.name), "name %q", tt.name)
	}
}
