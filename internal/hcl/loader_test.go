package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeHCL(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stylegrid.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeHCL(t, `
max_line_length = 100
jobs            = 2
format          = "pylint"
select          = ["E", "W"]
extend_ignore   = ["W291"]
exclude         = ["build", ".venv"]
exit_zero       = true
show_source     = false

per_file_ignores = {
  "tests/*.py"  = ["E501"]
  "__init__.py" = ["W391", "W292"]
}
`)

	// --- Act ---
	s, ok, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, path, s.Source)
	require.Equal(t, 100, *s.MaxLineLength)
	require.Equal(t, 2, *s.Jobs)
	require.Equal(t, "pylint", *s.Format)
	require.Equal(t, []string{"E", "W"}, s.Select)
	require.Equal(t, []string{"W291"}, s.ExtendIgnore)
	require.Equal(t, []string{"build", ".venv"}, s.Exclude)
	require.True(t, *s.ExitZero)
	require.False(t, *s.ShowSource)
	require.Nil(t, s.Count, "unset attributes stay nil")
	require.Nil(t, s.Ignore)
	require.Equal(t, map[string][]string{
		"tests/*.py":  {"E501"},
		"__init__.py": {"W391", "W292"},
	}, s.PerFileIgnores)
}

func TestLoader_EmptyFile(t *testing.T) {
	t.Parallel()

	s, ok, err := NewLoader().Load(context.Background(), writeHCL(t, ""))

	require.NoError(t, err)
	require.True(t, ok, "an HCL file always belongs to stylegrid")
	require.Nil(t, s.PerFileIgnores)
	require.Nil(t, s.MaxLineLength)
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax error", "max_line_length = ", "failed to parse HCL file"},
		{"unknown attribute", "max_width = 10\n", "failed to decode HCL file"},
		{"wrong type", "max_line_length = \"wide\"\n", "failed to decode HCL file"},
		{"bad per-file ignores", "per_file_ignores = [\"E501\"]\n", "per_file_ignores"},
	}

	for _, tc := range testCases {

		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := NewLoader().Load(context.Background(), writeHCL(t, tc.content))

			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoader_Handles(t *testing.T) {
	t.Parallel()

	l := NewLoader()
	require.True(t, l.Handles("ci/lint.hcl"))
	require.True(t, l.Handles("LINT.HCL"))
	require.False(t, l.Handles("setup.cfg"))
}
