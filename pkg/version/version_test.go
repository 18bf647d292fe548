package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                string
		major, minor, patch uint32
	}{
		{"zero", 0, 0, 0},
		{"typical", 1, 2, 3},
		{"field maxima", MajorMax, MinorMax, PatchMax},
		{"major only", 63, 0, 0},
		{"minor only", 0, 1023, 0},
		{"patch only", 0, 0, 65535},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(tt.major, tt.minor, tt.patch)
			require.NoError(t, err)
			require.Equal(t, tt.major, v.Major())
			require.Equal(t, tt.minor, v.Minor())
			require.Equal(t, tt.patch, v.Patch())
		})
	}
}

func TestFieldLayout(t *testing.T) {
	t.Parallel()

	// 1.2.3 → 0b000001 | 0b0000000010 | 0x0003
	v := MustNew(1, 2, 3)
	require.Equal(t, Version(1<<26|2<<16|3), v)
}

func TestOutOfRangeFields(t *testing.T) {
	t.Parallel()

	_, err := New(MajorMax+1, 0, 0)
	require.ErrorIs(t, err, ErrMajorOutOfRange)

	_, err = New(0, MinorMax+1, 0)
	require.ErrorIs(t, err, ErrMinorOutOfRange)

	_, err = New(0, 0, PatchMax+1)
	require.ErrorIs(t, err, ErrPatchOutOfRange)
}

func TestMustNewPanicsOnOverflow(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { MustNew(64, 0, 0) })
}

func TestOrdering(t *testing.T) {
	t.Parallel()

	// Packed representation must order the same way the version does.
	require.Less(t, MustNew(1, 9, 9), MustNew(2, 0, 0))
	require.Less(t, MustNew(1, 2, 65535), MustNew(1, 3, 0))
	require.Less(t, MustNew(1, 2, 3), MustNew(1, 2, 4))
}

func TestStringAndParse(t *testing.T) {
	t.Parallel()

	v := MustNew(12, 345, 6789)
	require.Equal(t, "12.345.6789", v.String())

	parsed, err := Parse("12.345.6789")
	require.NoError(t, err)
	require.Equal(t, v, parsed)

	parsed, err = Parse("v1.0.7")
	require.NoError(t, err)
	require.Equal(t, MustNew(1, 0, 7), parsed)
}

func TestParseRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "1.2", "1.2.3.4", "a.b.c", "1.-2.3"} {
		_, err := Parse(s)
		require.Error(t, err, "input %q", s)
	}

	_, err := Parse("64.0.0")
	require.ErrorIs(t, err, ErrMajorOutOfRange)
}
