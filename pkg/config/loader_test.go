package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessiontag/pkg/config"
)

type cookieDefaults struct {
	Name     string `env:"TEST_COOKIE_NAME" envDefault:"sid"`
	Bytes    int    `env:"TEST_COOKIE_BYTES" envDefault:"16"`
	Secure   bool   `env:"TEST_COOKIE_SECURE" envDefault:"true"`
	SameSite string `env:"TEST_COOKIE_SAME_SITE" envDefault:"Lax"`
}

type successConfig struct {
	Name   string `env:"TEST_NAME_SUCCESS" envDefault:"sid"`
	Bytes  int    `env:"TEST_BYTES_SUCCESS" envDefault:"16"`
	Secure bool   `env:"TEST_SECURE_SUCCESS" envDefault:"true"`
}

type singletonConfig struct {
	Name string `env:"TEST_NAME_SINGLETON" envDefault:"sid"`
}

type identifierConfig struct {
	Name string `env:"TEST_IDENTIFIER_NAME" envDefault:"sid"`
}

type fingerprintConfig struct {
	Name string `env:"TEST_FINGERPRINT_NAME" envDefault:"sfp"`
}

type requiredConfig struct {
	RedisURL string `env:"TEST_REQUIRED_REDIS_URL,required"`
}

type envFileConfig struct {
	Name    string   `env:"TEST_ENVFILE_NAME"`
	Bytes   int      `env:"TEST_ENVFILE_BYTES"`
	Origins []string `env:"TEST_ENVFILE_ORIGINS" envSeparator:","`
	Quoted  string   `env:"TEST_ENVFILE_QUOTED"`
}

type reloadConfig struct {
	Name string `env:"TEST_RELOAD_NAME" envDefault:"sid"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_NAME_SUCCESS", "app_sid")
	t.Setenv("TEST_BYTES_SUCCESS", "32")
	t.Setenv("TEST_SECURE_SUCCESS", "false")

	var cfg successConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "app_sid", cfg.Name)
	assert.Equal(t, 32, cfg.Bytes)
	assert.False(t, cfg.Secure)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_COOKIE_NAME")
	os.Unsetenv("TEST_COOKIE_BYTES")
	os.Unsetenv("TEST_COOKIE_SECURE")
	os.Unsetenv("TEST_COOKIE_SAME_SITE")

	var cfg cookieDefaults
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "sid", cfg.Name)
	assert.Equal(t, 16, cfg.Bytes)
	assert.True(t, cfg.Secure)
	assert.Equal(t, "Lax", cfg.SameSite)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("TEST_REQUIRED_REDIS_URL")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrParsingConfig))

	// a failed parse is not cached
	t.Setenv("TEST_REQUIRED_REDIS_URL", "redis://localhost:6379/0")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("TEST_NAME_SINGLETON", "first_value")

	var first singletonConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_NAME_SINGLETON", "second_value")

	var second singletonConfig
	require.NoError(t, config.Load(&second))

	assert.Equal(t, "first_value", second.Name, "second load is served from cache")
}

func TestLoad_DifferentTypes(t *testing.T) {
	t.Setenv("TEST_IDENTIFIER_NAME", "app_sid")
	t.Setenv("TEST_FINGERPRINT_NAME", "app_sfp")

	var idCfg identifierConfig
	require.NoError(t, config.Load(&idCfg))

	var fpCfg fingerprintConfig
	require.NoError(t, config.Load(&fpCfg))

	assert.Equal(t, "app_sid", idCfg.Name)
	assert.Equal(t, "app_sfp", fpCfg.Name)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *successConfig
	err := config.Load(cfg)
	assert.ErrorIs(t, err, config.ErrNilPointer)

	assert.ErrorIs(t, config.ForceReload(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("TEST_REQUIRED_REDIS_URL")
	config.ResetCache()

	var cfg requiredConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, ".env")
	override := filepath.Join(dir, ".env.local")

	require.NoError(t, os.WriteFile(base, []byte(
		"TEST_ENVFILE_NAME=sid\n"+
			"TEST_ENVFILE_BYTES=16\n"+
			"TEST_ENVFILE_ORIGINS=a.example,b.example\n"+
			"TEST_ENVFILE_QUOTED=\"quoted value\"\n",
	), 0o600))
	require.NoError(t, os.WriteFile(override, []byte("TEST_ENVFILE_BYTES=32\n"), 0o600))

	t.Cleanup(func() {
		for _, k := range []string{"TEST_ENVFILE_NAME", "TEST_ENVFILE_BYTES", "TEST_ENVFILE_ORIGINS", "TEST_ENVFILE_QUOTED"} {
			os.Unsetenv(k)
		}
		config.ResetCache()
	})

	require.NoError(t, config.LoadEnv(base, override))

	var cfg envFileConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "sid", cfg.Name)
	assert.Equal(t, 32, cfg.Bytes, "later files override earlier ones")
	assert.Equal(t, []string{"a.example", "b.example"}, cfg.Origins)
	assert.Equal(t, "quoted value", cfg.Quoted)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, config.ErrEnvFile)

	assert.Panics(t, func() {
		config.MustLoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	})
}

func TestForceReload(t *testing.T) {
	t.Setenv("TEST_RELOAD_NAME", "first")

	var cfg reloadConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Name)

	t.Setenv("TEST_RELOAD_NAME", "second")
	require.NoError(t, config.ForceReload(&cfg))
	assert.Equal(t, "second", cfg.Name)

	var cached reloadConfig
	require.NoError(t, config.Load(&cached))
	assert.Equal(t, "second", cached.Name)
}
