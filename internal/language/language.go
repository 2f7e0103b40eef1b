// Package language holds the validated C/C++ language standard a generated
// CMakeLists.txt declares.
package language

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLanguageConfig is returned when a family/version pair is not
// in the allowed set.
var ErrInvalidLanguageConfig = errors.New("invalid language configuration")

// Family is a source language family
type Family int

const (
	C Family = iota
	CXX
)

// String returns the command-line token for the family
func (f Family) String() string {
	switch f {
	case C:
		return "c"
	case CXX:
		return "c++"
	default:
		return "unknown"
	}
}

var allowedVersions = map[Family][]string{
	C:   {"90", "99", "11"},
	CXX: {"98", "11", "14", "17", "20"},
}

// Families returns every supported family in declaration order
func Families() []Family {
	return []Family{C, CXX}
}

// AllowedVersions returns the standard versions accepted for a family.
// The returned slice is a copy.
func AllowedVersions(f Family) []string {
	return append([]string(nil), allowedVersions[f]...)
}

// ParseFamily maps a family token to a Family. Matching is case-insensitive.
func ParseFamily(token string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "c":
		return C, nil
	case "c++":
		return CXX, nil
	}
	return 0, fmt.Errorf("%w: unknown language %q (expected one of c, c++)", ErrInvalidLanguageConfig, token)
}

// Standard is an immutable, validated (family, version) pair
type Standard struct {
	family  Family
	version string
}

// New validates family and version and returns the Standard.
// The family token is case-insensitive; the version is compared verbatim.
//
// Example:
//
//	std, err := language.New("C++", "17")
func New(family, version string) (Standard, error) {
	f, err := ParseFamily(family)
	if err != nil {
		return Standard{}, err
	}

	for _, v := range allowedVersions[f] {
		if v == version {
			return Standard{family: f, version: version}, nil
		}
	}

	return Standard{}, fmt.Errorf("%w: %s does not support version %q (allowed: %s)",
		ErrInvalidLanguageConfig, f, version, strings.Join(allowedVersions[f], ", "))
}

// Default returns C90
func Default() Standard {
	return Standard{family: C, version: "90"}
}

// Family returns the language family
func (s Standard) Family() Family { return s.family }

// Version returns the standard version, e.g. "17"
func (s Standard) Version() string { return s.version }

// IsZero reports whether s was never constructed through New or Default
func (s Standard) IsZero() bool { return s.version == "" }

// String returns a compact form such as "c++17"
func (s Standard) String() string {
	return s.family.String() + s.version
}
