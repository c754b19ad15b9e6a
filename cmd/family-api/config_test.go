// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"PORT",
	"FAMILY_LAST_NAME",
	"MESSAGING_SOURCE",
	"NATS_URL",
	"NATS_TIMEOUT",
	"NATS_MAX_RECONNECT",
	"NATS_RECONNECT_WAIT",
	"NATS_MESSAGE_ENCODING",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, env := range configEnvVars {
		t.Setenv(env, "")
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := loadConfig("")

	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "Jackson", cfg.FamilyName)
	assert.Equal(t, ":3000", cfg.listenAddr())
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	clearConfigEnv(t)
	path := writeConfigFile(t, `
port: "8080"
bind: 127.0.0.1
family_name: Doe
messaging_source: nats
nats:
  url: nats://broker:4222
  timeout: 3s
  max_reconnect: 7
  encoding: msgpack
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "127.0.0.1:8080", cfg.listenAddr())
	assert.Equal(t, "Doe", cfg.FamilyName)
	assert.Equal(t, "nats", cfg.MessagingSource)
	assert.Equal(t, "nats://broker:4222", cfg.NATS.URL)
	assert.Equal(t, 3*time.Second, cfg.NATS.Timeout)
	assert.Equal(t, 7, cfg.NATS.MaxReconnect)
	assert.Equal(t, 2*time.Second, cfg.NATS.ReconnectWait)
	assert.Equal(t, "msgpack", cfg.NATS.Encoding)

	t.Setenv("PORT", "9090")
	t.Setenv("FAMILY_LAST_NAME", "Smith")
	t.Setenv("NATS_TIMEOUT", "1s")
	t.Setenv("NATS_MAX_RECONNECT", "1")

	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "Smith", cfg.FamilyName)
	assert.Equal(t, time.Second, cfg.NATS.Timeout)
	assert.Equal(t, 1, cfg.NATS.MaxReconnect)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		env  map[string]string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.yaml") },
		},
		{
			name: "invalid yaml",
			path: func(t *testing.T) string { return writeConfigFile(t, "port: [unterminated") },
		},
		{
			name: "invalid timeout",
			path: func(*testing.T) string { return "" },
			env:  map[string]string{"NATS_TIMEOUT": "soon"},
		},
		{
			name: "invalid reconnect wait",
			path: func(*testing.T) string { return "" },
			env:  map[string]string{"NATS_RECONNECT_WAIT": "10"},
		},
		{
			name: "invalid max reconnect",
			path: func(*testing.T) string { return "" },
			env:  map[string]string{"NATS_MAX_RECONNECT": "many"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := loadConfig(tc.path(t))
			assert.Error(t, err)
		})
	}
}
