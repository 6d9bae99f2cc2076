package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/config"
)

type testConfig struct {
	Schemas  string        `env:"SCHEMAS,required"`
	Addr     string        `env:"ADDR" envDefault:":8080"`
	MaxDepth int           `env:"MAX_DEPTH" envDefault:"0"`
	Debug    bool          `env:"DEBUG"`
	Langs    []string      `env:"LANGS" envSeparator:","`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("prefixed variables", func(t *testing.T) {
		t.Parallel()
		var cfg testConfig
		err := config.Load(&cfg,
			config.WithPrefix("FORMCHECK_"),
			config.WithEnvironment(map[string]string{
				"FORMCHECK_SCHEMAS":   "schemas.yaml",
				"FORMCHECK_MAX_DEPTH": "8",
				"FORMCHECK_DEBUG":     "true",
				"FORMCHECK_LANGS":     "en,de",
				"SCHEMAS":             "ignored.yaml",
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, "schemas.yaml", cfg.Schemas)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 8, cfg.MaxDepth)
		assert.True(t, cfg.Debug)
		assert.Equal(t, []string{"en", "de"}, cfg.Langs)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("missing required", func(t *testing.T) {
		t.Parallel()
		var cfg testConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		var cfg testConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{
			"SCHEMAS":   "s.yaml",
			"MAX_DEPTH": "deep",
		}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestLoad_EnvFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, ".env")
	second := filepath.Join(dir, ".env.local")
	require.NoError(t, os.WriteFile(first, []byte("SCHEMAS=from_first.yaml\nADDR=:9000\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("SCHEMAS=from_second.yaml\nDEBUG=true\nMAX_DEPTH=3\n"), 0o600))

	t.Run("earlier files and environment win", func(t *testing.T) {
		t.Parallel()
		var cfg testConfig
		err := config.Load(&cfg,
			config.WithEnvFiles(first, second),
			config.WithEnvironment(map[string]string{"ADDR": ":7000"}),
		)
		require.NoError(t, err)
		assert.Equal(t, "from_first.yaml", cfg.Schemas)
		assert.Equal(t, ":7000", cfg.Addr)
		assert.True(t, cfg.Debug)
		assert.Equal(t, 3, cfg.MaxDepth)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		var cfg testConfig
		err := config.Load(&cfg,
			config.WithEnvFiles(filepath.Join(dir, "none.env")),
			config.WithEnvironment(map[string]string{}),
		)
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

func TestMustLoad(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		var cfg testConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
	assert.NotPanics(t, func() {
		var cfg testConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{"SCHEMAS": "s.yaml"}))
	})
}
