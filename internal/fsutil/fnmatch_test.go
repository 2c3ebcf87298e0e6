package fsutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"*.py", "mod.py", true},
		{"*.py", "pkg/sub/mod.py", true},
		{"tests/*", "tests/unit/test_x.py", true},
		{"tests/*", "src/tests/test_x.py", false},
		{"test_?.py", "test_a.py", true},
		{"test_?.py", "test_ab.py", false},
		{"[ab].py", "a.py", true},
		{"[!ab].py", "a.py", false},
		{"[!ab].py", "c.py", true},
		{"[a-c].py", "b.py", true},
		{"[].py", "[].py", true},
		{"file[", "file[", true},
		{"a+b.py", "a+b.py", true},
		{"a.py", "abpy", false},
		{"*.egg", "dist/demo.egg/info", false},
	}

	for _, tc := range testCases {

		tc := tc
		t.Run(tc.pattern+" "+tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Match(tc.pattern, tc.name))
		})
	}
}

func TestFilter_NestedExclude(t *testing.T) {
	t.Parallel()

	f := Filter{Exclude: []string{"tests/*"}}

	require.True(t, f.Excluded("tests/unit/fixtures/bad.py"))
	require.False(t, f.Excluded("src/mod.py"))
}
