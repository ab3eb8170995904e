package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/basidwild/clawdbox/internal/adapters/fs"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestFingerprint_Deterministic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "lib.rs"), "pub fn run() {}\n")
	writeFile(t, filepath.Join(dir, "Cargo.toml"), "[package]\nname = \"clawdbox\"\n")

	fp := fs.NewFingerprinter(fs.NewWalker())

	first, err := fp.Fingerprint(dir)
	require.NoError(t, err)
	second, err := fp.Fingerprint(dir)
	require.NoError(t, err)

	require.Equal(t, first, second, "unchanged tree must yield an unchanged fingerprint")
	require.Len(t, first, 16)
}

func TestFingerprint_ChangesWithContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "src", "lib.rs")
	writeFile(t, path, "pub fn run() {}\n")

	fp := fs.NewFingerprinter(fs.NewWalker())

	before, err := fp.Fingerprint(dir)
	require.NoError(t, err)

	writeFile(t, path, "pub fn run() { broken }\n")
	after, err := fp.Fingerprint(dir)
	require.NoError(t, err)

	require.NotEqual(t, before, after)
}

func TestFingerprint_ChangesWithPath(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	writeFile(t, filepath.Join(dirA, "a.rs"), "x")
	writeFile(t, filepath.Join(dirB, "b.rs"), "x")

	fp := fs.NewFingerprinter(fs.NewWalker())

	hashA, err := fp.Fingerprint(dirA)
	require.NoError(t, err)
	hashB, err := fp.Fingerprint(dirB)
	require.NoError(t, err)

	require.NotEqual(t, hashA, hashB, "same content under a different path is a different tree")
}

func TestFingerprint_IgnoresBuildArtifacts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "lib.rs"), "pub fn run() {}\n")

	fp := fs.NewFingerprinter(fs.NewWalker())

	before, err := fp.Fingerprint(dir)
	require.NoError(t, err)

	// Artifacts written by a previous build run must not perturb the hash.
	writeFile(t, filepath.Join(dir, "target", "debug", "clawdbox"), "binary")
	writeFile(t, filepath.Join(dir, ".git", "HEAD"), "ref: refs/heads/main")

	after, err := fp.Fingerprint(dir)
	require.NoError(t, err)
	require.Equal(t, before, after)
}
