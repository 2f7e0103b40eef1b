package language

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AllowedPairs(t *testing.T) {
	for _, f := range Families() {
		for _, v := range AllowedVersions(f) {
			t.Run(f.String()+v, func(t *testing.T) {
				std, err := New(f.String(), v)
				require.NoError(t, err)
				assert.Equal(t, f, std.Family())
				assert.Equal(t, v, std.Version())
			})
		}
	}
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		family  string
		version string
	}{
		{"c++ with c-only version", "c++", "99"},
		{"c with c++-only version", "c", "17"},
		{"unknown family", "rust", "2021"},
		{"empty family", "", "90"},
		{"empty version", "c", ""},
		{"version with whitespace", "c", " 99"},
		{"four digit year", "c++", "2017"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.family, tt.version)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidLanguageConfig), "got %v", err)
		})
	}
}

func TestNew_FamilyCaseInsensitive(t *testing.T) {
	std, err := New("C++", "17")
	require.NoError(t, err)
	assert.Equal(t, CXX, std.Family())
	assert.Equal(t, "c++17", std.String())

	std, err = New(" C ", "11")
	require.NoError(t, err)
	assert.Equal(t, C, std.Family())
}

func TestDefault(t *testing.T) {
	std := Default()
	assert.Equal(t, C, std.Family())
	assert.Equal(t, "90", std.Version())
	assert.False(t, std.IsZero())
	assert.True(t, Standard{}.IsZero())
}

func TestAllowedVersions_ReturnsCopy(t *testing.T) {
	v := AllowedVersions(C)
	v[0] = "xx"
	assert.Equal(t, []string{"90", "99", "11"}, AllowedVersions(C))
}

func TestFamily_String(t *testing.T) {
	assert.Equal(t, "c", C.String())
	assert.Equal(t, "c++", CXX.String())
	assert.Equal(t, "unknown", Family(42).String())
}
