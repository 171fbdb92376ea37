package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run(
		"1. defaults",
		func(t *testing.T) {
			cfg, errLoad := Load(nil)
			require.NoError(t, errLoad)
			require.Equal(
				t,
				&Config{
					InputPath:   InputStdin,
					InputFormat: "yaml",
					LogLevel:    "info",
					Env:         EnvProduction,
				},
				cfg,
			)
			require.True(t, cfg.IsProduction())
		},
	)

	t.Run(
		"2. environment",
		func(t *testing.T) {
			t.Setenv("FINDMEETING_LOG_LEVEL", "debug")
			t.Setenv("FINDMEETING_ENV", EnvDevelopment)

			cfg, errLoad := Load(nil)
			require.NoError(t, errLoad)
			require.Equal(t, "debug", cfg.LogLevel)
			require.False(t, cfg.IsProduction())
		},
	)

	t.Run(
		"3. flags win over environment",
		func(t *testing.T) {
			t.Setenv("FINDMEETING_LOG_LEVEL", "debug")

			cfg, errLoad := Load(
				[]string{"--log-level", "warn", "--input", "day.yaml"},
			)
			require.NoError(t, errLoad)
			require.Equal(t, "warn", cfg.LogLevel)
			require.Equal(t, "day.yaml", cfg.InputPath)
		},
	)

	t.Run(
		"4. config file",
		func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "findmeeting.yaml")
			require.NoError(
				t,
				os.WriteFile(
					path,
					[]byte("input: events.json\nlog_level: error\nenv: development\n"),
					0o600,
				),
			)

			cfg, errLoad := Load([]string{"--config", path})
			require.NoError(t, errLoad)
			require.Equal(t, "events.json", cfg.InputPath)
			require.Equal(t, "error", cfg.LogLevel)
			require.Equal(t, EnvDevelopment, cfg.Env)
		},
	)
}

func TestErrorsLoad(t *testing.T) {
	t.Run(
		"1. unknown flag",
		func(t *testing.T) {
			cfg, errLoad := Load([]string{"--unknown"})
			require.Error(t, errLoad)
			require.Nil(t, cfg)
		},
	)

	t.Run(
		"2. missing config file",
		func(t *testing.T) {
			cfg, errLoad := Load(
				[]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")},
			)
			require.Error(t, errLoad)
			require.Nil(t, cfg)
		},
	)

	t.Run(
		"3. invalid environment name",
		func(t *testing.T) {
			cfg, errLoad := Load([]string{"--env", "staging"})
			require.Error(t, errLoad)
			require.Nil(t, cfg)
		},
	)

	t.Run(
		"4. invalid log level",
		func(t *testing.T) {
			cfg, errLoad := Load([]string{"--log-level", "verbose"})
			require.Error(t, errLoad)
			require.Nil(t, cfg)
		},
	)
}
