package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonesrussell/mars-explorer/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string        `yaml:"name"`
	Port    int           `env:"TEST_CFG_PORT"    yaml:"port"`
	Debug   bool          `env:"TEST_CFG_DEBUG"   yaml:"debug"`
	Timeout time.Duration `env:"TEST_CFG_TIMEOUT" yaml:"timeout"`
	Nested  struct {
		Key string `env:"TEST_CFG_KEY" yaml:"key"`
	} `yaml:"nested"`
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_YAMLThenEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("TEST_CFG_PORT", "9090")
	t.Setenv("TEST_CFG_KEY", "from-env")

	path := writeFile(t, dir, "config.yml", "name: explorer\nport: 8080\ntimeout: 5s\nnested:\n  key: from-yaml\n")

	cfg, err := config.Load[testConfig](path)
	require.NoError(t, err)

	assert.Equal(t, "explorer", cfg.Name)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "from-env", cfg.Nested.Key)
}

func TestLoad_MissingFileUsesEnvOnly(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("TEST_CFG_DEBUG", "yes")
	t.Setenv("TEST_CFG_TIMEOUT", "10s")

	cfg, err := config.Load[testConfig](filepath.Join(dir, "nope.yml"))
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Zero(t, cfg.Port)
}

func TestLoad_EnvFileIsRead(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, "test.env", "TEST_CFG_KEY=dotenv-value\n")
	t.Setenv("ENV_FILE", envPath)
	t.Cleanup(func() { _ = os.Unsetenv("TEST_CFG_KEY") })

	cfg, err := config.Load[testConfig](filepath.Join(dir, "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, "dotenv-value", cfg.Nested.Key)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	path := writeFile(t, dir, "config.yml", "port: [not an int\n")

	_, err := config.Load[testConfig](path)
	require.Error(t, err)
}

func TestLoadWithDefaults_EnvBeatsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("TEST_CFG_PORT", "7000")

	cfg, err := config.LoadWithDefaults[testConfig](filepath.Join(dir, "nope.yml"), func(c *testConfig) {
		c.Port = 8080
		c.Name = "default-name"
	})
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "default-name", cfg.Name)
}

func TestValidators(t *testing.T) {
	t.Parallel()

	var verr *config.ValidationError

	require.ErrorAs(t, config.ValidatePort("service.port", 0), &verr)
	assert.Equal(t, "service.port", verr.Field)
	assert.NoError(t, config.ValidatePort("service.port", 8095))

	require.Error(t, config.ValidateRequired("nasa.base_url", ""))
	assert.NoError(t, config.ValidateURL("nasa.base_url", "https://api.nasa.gov"))
	assert.Error(t, config.ValidateURL("nasa.base_url", "api.nasa.gov"))
	assert.Error(t, config.ValidateLogLevel("logging.level", "loud"))
	assert.NoError(t, config.ValidateLogLevel("logging.level", "debug"))
}
