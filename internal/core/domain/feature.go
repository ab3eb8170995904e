package domain

import "unique"

// Feature identifies one optional compile-time capability of the
// clawdbox runtime. It is a value object with identity and equality
// only; the underlying string is interned since the same handful of
// feature names flows through requests, manifests and reports.
type Feature struct {
	h unique.Handle[string]
}

// NewFeature creates a Feature from its capability name.
func NewFeature(name string) Feature {
	return Feature{
		h: unique.Make(name),
	}
}

// FeatureGDB names the debugger integration capability. It is the
// feature most prone to bit-rot since default builds exclude it.
var FeatureGDB = NewFeature("gdb")

// String returns the capability name.
func (f Feature) String() string {
	var zero unique.Handle[string]
	if f.h == zero {
		return ""
	}
	return f.h.Value()
}

// IsZero reports whether the feature carries no name.
func (f Feature) IsZero() bool {
	var zero unique.Handle[string]
	return f.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (f Feature) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It creates a new handle from the provided text.
func (f *Feature) UnmarshalText(text []byte) error {
	f.h = unique.Make(string(text))
	return nil
}
