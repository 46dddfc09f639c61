package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "launcher.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "INFO", cfg.DefaultLogLevel)
	assert.Empty(t, cfg.JavaCommand)
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher.toml")
	content := "default_log_level = \"WARN\"\njava_command = \"/opt/jdk/bin/java\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "WARN", cfg.DefaultLogLevel)
	assert.Equal(t, "/opt/jdk/bin/java", cfg.JavaCommand)
}

func TestLoad_DirectoryIsReadError(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read "+dir)
	assert.NotErrorIs(t, err, ErrConfigValidation)
}

func TestParse_UnknownKeyIsValidationError(t *testing.T) {
	_, err := Parse([]byte("install_dir = \"/tmp\"\n"), "launcher.toml")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigValidation)
	assert.Contains(t, err.Error(), "launcher.toml")
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse([]byte("default_log_level = \n"), "launcher.toml")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfigValidation)
	assert.Contains(t, err.Error(), "invalid config launcher.toml")
}

func TestParse_BlankValuesFallBack(t *testing.T) {
	cfg, err := Parse([]byte("default_log_level = \"  \"\n"), "launcher.toml")
	require.NoError(t, err)
	assert.Equal(t, "INFO", cfg.DefaultLogLevel)
}

func TestParse_WhitespaceJavaCommandRejected(t *testing.T) {
	_, err := Parse([]byte("java_command = \"   \"\n"), "launcher.toml")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigValidation)
	assert.Contains(t, err.Error(), "java_command")
}

func TestParse_TrimsValues(t *testing.T) {
	cfg, err := Parse([]byte("default_log_level = \" DEBUG \"\njava_command = \" java17 \"\n"), "x")
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", cfg.DefaultLogLevel)
	assert.Equal(t, "java17", cfg.JavaCommand)
}
