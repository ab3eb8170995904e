package ports

// Fingerprinter defines the interface for computing workspace fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprint.go -destination=mocks/mock_fingerprint.go -package=mocks
type Fingerprinter interface {
	// Fingerprint computes a content hash of the source tree rooted at the
	// given directory. An unchanged tree yields an unchanged fingerprint,
	// which is what makes repeated check runs comparable.
	Fingerprint(root string) (string, error)
}
