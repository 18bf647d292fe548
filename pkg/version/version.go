// Package version packs a semantic version into a single 32-bit integer.
//
// The layout, from the most significant bit down:
//
//	bits 31-26  major  (6 bits,  0-63)
//	bits 25-16  minor  (10 bits, 0-1023)
//	bits 15-0   patch  (16 bits, 0-65535)
//
// Packed versions compare correctly with ordinary integer comparison:
// a higher version always packs to a larger uint32.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	majorBits = 6
	minorBits = 10
	patchBits = 16

	// MajorMax, MinorMax and PatchMax are the largest values each field
	// can hold.
	MajorMax = 1<<majorBits - 1
	MinorMax = 1<<minorBits - 1
	PatchMax = 1<<patchBits - 1

	majorShift = minorBits + patchBits
	minorShift = patchBits
)

var (
	ErrMajorOutOfRange = errors.New("version: major out of range")
	ErrMinorOutOfRange = errors.New("version: minor out of range")
	ErrPatchOutOfRange = errors.New("version: patch out of range")
)

// Version is a bit-packed semantic version.
type Version uint32

// New packs major.minor.patch into a Version, validating each field against
// its bit width.
func New(major, minor, patch uint32) (Version, error) {
	if major > MajorMax {
		return 0, fmt.Errorf("%w: %d > %d", ErrMajorOutOfRange, major, MajorMax)
	}
	if minor > MinorMax {
		return 0, fmt.Errorf("%w: %d > %d", ErrMinorOutOfRange, minor, MinorMax)
	}
	if patch > PatchMax {
		return 0, fmt.Errorf("%w: %d > %d", ErrPatchOutOfRange, patch, PatchMax)
	}
	return Version(major<<majorShift | minor<<minorShift | patch), nil
}

// MustNew is like New but panics on out-of-range fields. Intended for
// package-level version constants.
func MustNew(major, minor, patch uint32) Version {
	v, err := New(major, minor, patch)
	if err != nil {
		panic(err)
	}
	return v
}

// Major returns the 6-bit major field.
func (v Version) Major() uint32 { return uint32(v) >> majorShift & MajorMax }

// Minor returns the 10-bit minor field.
func (v Version) Minor() uint32 { return uint32(v) >> minorShift & MinorMax }

// Patch returns the 16-bit patch field.
func (v Version) Patch() uint32 { return uint32(v) & PatchMax }

// String renders the version as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// Parse reads a "major.minor.patch" string, with an optional leading "v",
// into a packed Version.
func Parse(s string) (Version, error) {
	trimmed := strings.TrimPrefix(s, "v")
	parts := strings.Split(trimmed, ".")
	if len(parts) != 3 {
		return 0, fmt.Errorf("version: malformed version string %q", s)
	}

	fields := make([]uint32, 3)
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("version: malformed version string %q: %w", s, err)
		}
		fields[i] = uint32(n)
	}

	return New(fields[0], fields[1], fields[2])
}
