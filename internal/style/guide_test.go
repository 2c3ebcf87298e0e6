package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGuide_Decide(t *testing.T) {
	t.Parallel()

	g := NewGuide(Config{
		Select:       []string{"E", "W"},
		ExtendSelect: []string{"W605"},
		Ignore:       []string{"W6", "E501"},
		ExtendIgnore: []string{"E1"},
	})

	testCases := []struct {
		code string
		want Decision
	}{
		{"E501", Ignored},
		{"E502", Selected},
		{"E101", Ignored},
		{"W291", Selected},
		{"W605", Selected}, // more specific select wins
		{"W601", Ignored},
		{"C901", Ignored}, // never selected
	}

	for _, tc := range testCases {

		tc := tc
		t.Run(tc.code, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, g.Decide(tc.code))
		})
	}
}

func TestGuide_DecideTieGoesToSelect(t *testing.T) {
	t.Parallel()

	g := NewGuide(Config{Select: []string{"E501"}, Ignore: []string{"E501"}})

	require.Equal(t, Selected, g.Decide("E501"))
}

func TestGuide_ShouldReport(t *testing.T) {
	t.Parallel()

	g := NewGuide(Config{
		Select: []string{"E", "W"},
		PerFileIgnores: map[string][]string{
			"__init__.py":      {"W391"},
			"tests/fixtures/*": {"E"},
			"docs/*":           {"W291"},
		},
	})

	require.True(t, g.ShouldReport("pkg/mod.py", "W391", ""))
	require.False(t, g.ShouldReport("pkg/__init__.py", "W391", ""))
	require.False(t, g.ShouldReport("tests/fixtures/bad.py", "E501", ""))
	require.True(t, g.ShouldReport("tests/fixtures/bad.py", "W291", ""))
	require.False(t, g.ShouldReport("tests/fixtures/unit/deep/bad.py", "E501", ""), "* crosses directories")
	require.False(t, g.ShouldReport("docs/source/conf.py", "W291", ""))
	require.True(t, g.ShouldReport("src/docs/conf.py", "W291", ""), "patterns are anchored")
	require.False(t, g.ShouldReport("pkg/mod.py", "E501", "x = 1  # noqa"))
	require.True(t, g.ShouldReport("pkg/mod.py", "E501", "x = 1  # noqa: W291"))
}

func TestGuide_DisableNoqa(t *testing.T) {
	t.Parallel()

	g := NewGuide(Config{Select: []string{"E"}, DisableNoqa: true})

	require.True(t, g.ShouldReport("mod.py", "E501", "x = 1  # noqa"))
}

func TestIsInlineIgnored(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		line string
		code string
		want bool
	}{
		{"x = 1", "E501", false},
		{"x = 1  # noqa", "E501", true},
		{"x = 1  # NOQA", "W291", true},
		{"x = 1  #noqa:E501", "E501", true},
		{"x = 1  # noqa: E501,W291", "W291", true},
		{"x = 1  # noqa: E501 W291", "W291", true},
		{"x = 1  # noqa:e5", "E501", true},
		{"x = 1  # noqa: E501", "W291", false},
		{"x = 'noqa'", "E501", false},
	}

	for _, tc := range testCases {

		tc := tc
		t.Run(tc.line, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, IsInlineIgnored(tc.line, tc.code))
		})
	}
}
