package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/basidwild/clawdbox/internal/adapters/config"
	"github.com/basidwild/clawdbox/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return tmpDir
}

func TestLoad_Success(t *testing.T) {
	dir := writeManifest(t, `
version: "1"
build:
  workspace: .
  profile: dev
  environment:
    CARGO_TERM_COLOR: never
features:
  - gdb
  - vhost-net
`)

	loader := &config.FileManifestLoader{Filename: config.DefaultFilename}
	m, err := loader.Load(dir)
	require.NoError(t, err)

	features := m.Features()
	require.Len(t, features, 2)
	require.Equal(t, domain.FeatureGDB, features[0], "declaration order must be preserved")
	require.Equal(t, "vhost-net", features[1].String())

	require.Equal(t, ".", m.Params.Workspace)
	require.Equal(t, "dev", m.Params.Profile)
	require.Equal(t, "never", m.Params.Environment["CARGO_TERM_COLOR"])
}

func TestLoad_DefaultsWorkspace(t *testing.T) {
	dir := writeManifest(t, `
features:
  - gdb
`)

	loader := &config.FileManifestLoader{}
	m, err := loader.Load(dir)
	require.NoError(t, err)
	require.Equal(t, ".", m.Params.Workspace)
}

func TestLoad_NoFeatures(t *testing.T) {
	dir := writeManifest(t, `
version: "1"
build:
  workspace: .
`)

	loader := &config.FileManifestLoader{}
	_, err := loader.Load(dir)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrNoFeaturesDefined))
}

func TestLoad_DuplicateFeature(t *testing.T) {
	dir := writeManifest(t, `
features:
  - gdb
  - gdb
`)

	loader := &config.FileManifestLoader{}
	_, err := loader.Load(dir)
	require.True(t, errors.Is(err, domain.ErrDuplicateFeature))
}

func TestLoad_ReservedFeatureName(t *testing.T) {
	dir := writeManifest(t, `
features:
  - all
`)

	loader := &config.FileManifestLoader{}
	_, err := loader.Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "reserved")
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	dir := writeManifest(t, `
version: "9"
features:
  - gdb
`)

	loader := &config.FileManifestLoader{}
	_, err := loader.Load(dir)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	loader := &config.FileManifestLoader{}
	_, err := loader.Load(t.TempDir())
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := writeManifest(t, "features: [unclosed")

	loader := &config.FileManifestLoader{}
	_, err := loader.Load(dir)
	require.Error(t, err)
}
