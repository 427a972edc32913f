package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gymkit/pkg/config"
)

type TestConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_DEFAULT" envDefault:"true"`
}

type TestConfigSuccess struct {
	TestString string `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_SUCCESS" envDefault:"true"`
}

type TestConfigSingleton struct {
	TestString string `env:"TEST_STRING_SINGLETON" envDefault:"default_value"`
}

type TestConfigReload struct {
	Value string `env:"TEST_RELOAD_VALUE" envDefault:"initial"`
}

type TestConfigEnvFile struct {
	Value string `env:"TEST_ENV_FILE_VALUE"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_BOOL_SUCCESS", "false")
	config.ResetCache()

	var cfg TestConfigSuccess
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "test_value", cfg.TestString)
	assert.Equal(t, 100, cfg.TestInt)
	assert.False(t, cfg.TestBool)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_STRING_DEFAULT")
	os.Unsetenv("TEST_INT_DEFAULT")
	os.Unsetenv("TEST_BOOL_DEFAULT")
	config.ResetCache()

	var cfg TestConfigDefault
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
	assert.True(t, cfg.TestBool)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")
	config.ResetCache()

	var cfg RequiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Run("retries after the environment is fixed", func(t *testing.T) {
		t.Setenv("REQUIRED_VALUE", "present")

		var retry RequiredConfig
		require.NoError(t, config.Load(&retry))
		assert.Equal(t, "present", retry.Required)
	})
}

func TestLoad_Singleton(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_STRING_SINGLETON", "first")

	var first TestConfigSingleton
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_STRING_SINGLETON", "second")

	var second TestConfigSingleton
	require.NoError(t, config.Load(&second))

	assert.Equal(t, "first", second.TestString, "cached value should be returned")
}

func TestForceReload(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_RELOAD_VALUE", "before")

	var cfg TestConfigReload
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "before", cfg.Value)

	t.Setenv("TEST_RELOAD_VALUE", "after")
	require.NoError(t, config.ForceReload(&cfg))
	assert.Equal(t, "after", cfg.Value)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigDefault
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	os.Unsetenv("TEST_ENV_FILE_VALUE")
	t.Cleanup(func() { os.Unsetenv("TEST_ENV_FILE_VALUE") })
	config.ResetCache()

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_ENV_FILE_VALUE=from_file\n"), 0o600))

	require.NoError(t, config.LoadEnv(path))

	var cfg TestConfigEnvFile
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "nope.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnv)
	})
}
