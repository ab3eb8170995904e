package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/basidwild/clawdbox/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// defaultIgnores are directories that never contribute to the source
// fingerprint: build artifacts change on every run by definition.
var defaultIgnores = []string{"target", "build"}

// Fingerprinter computes a content hash of a workspace tree.
type Fingerprinter struct {
	walker *Walker
}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter(walker *Walker) *Fingerprinter {
	return &Fingerprinter{walker: walker}
}

// Fingerprint hashes every source file under root together with its
// workspace-relative path. An unchanged tree yields an unchanged
// fingerprint.
func (f *Fingerprinter) Fingerprint(root string) (string, error) {
	hasher := xxhash.New()

	for path := range f.walker.WalkFiles(root, defaultIgnores) {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		// Separators keep path and content contributions from bleeding
		// into each other.
		_, _ = hasher.WriteString(filepath.ToSlash(rel))
		_, _ = hasher.Write([]byte{0})

		if err := f.hashFile(path, hasher); err != nil {
			return "", err
		}
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func (f *Fingerprinter) hashFile(path string, hasher io.Writer) error {
	file, err := os.Open(path) //nolint:gosec // Path comes from the walker
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(hasher, file); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return nil
}
