package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdscan/pkg/config"
)

func TestFromYAML(t *testing.T) {
	t.Parallel()

	data := []byte("format: yaml\ncolor: never\nlog_level: debug\n")

	cfg, err := config.FromYAML(data)

	require.NoError(t, err)
	assert.Equal(t, config.FormatYAML, cfg.Format)
	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "definition-title", cfg.Construct, "unset fields keep defaults")
}

func TestFromYAML_InvalidFormat(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("format: xml\n"))

	assert.Error(t, err)
}

func TestFromYAML_Malformed(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("format: [unclosed\n"))

	assert.Error(t, err)
}

func TestYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	original := config.DefaultConfig()
	original.Format = config.FormatYAML

	data, err := original.ToYAML()
	require.NoError(t, err)

	loaded, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestDiscover_FindsUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path := filepath.Join(root, ".mdscan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: never\n"), 0o644))

	assert.Equal(t, path, config.Discover(nested))
}

func TestDiscover_NoneFound(t *testing.T) {
	t.Parallel()

	assert.Empty(t, config.Discover(t.TempDir()))
}

func TestLoadOrDefault(t *testing.T) {
	t.Parallel()

	t.Run("explicit missing is an error", func(t *testing.T) {
		t.Parallel()

		_, err := config.LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"), ".")
		assert.Error(t, err)
	})

	t.Run("no config falls back to defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.LoadOrDefault("", t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, config.DefaultConfig(), cfg)
	})

	t.Run("discovered config wins", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, ".mdscan.yml")
		require.NoError(t, os.WriteFile(path, []byte("color: always\n"), 0o644))

		cfg, err := config.LoadOrDefault("", dir)
		require.NoError(t, err)
		assert.Equal(t, config.ColorAlways, cfg.Color)
	})
}
