package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/stylegrid/internal/config"
	"github.com/specialistvlad/stylegrid/internal/hcl"
	"github.com/specialistvlad/stylegrid/internal/iniconfig"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func loaders() []config.Loader {
	return []config.Loader{hcl.NewLoader(), iniconfig.NewLoader()}
}

func TestLoad_DiscoversInParentDirectory(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	write(t, filepath.Join(root, "setup.cfg"), "[metadata]\nname = demo\n")
	write(t, filepath.Join(root, "tox.ini"), "[flake8]\nmax-line-length = 99\n")
	nested := filepath.Join(root, "src", "pkg")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	// --- Act ---
	s, err := config.Load(context.Background(), config.Sources{Dir: nested}, loaders()...)

	// --- Assert ---
	require.NoError(t, err)
	require.NotNil(t, s.MaxLineLength)
	require.Equal(t, 99, *s.MaxLineLength)
	require.Equal(t, filepath.Join(root, "tox.ini"), s.Source)
}

func TestLoad_HCLWinsOverINI(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write(t, filepath.Join(root, "setup.cfg"), "[flake8]\nmax-line-length = 99\n")
	write(t, filepath.Join(root, ".stylegrid.hcl"), "max_line_length = 120\n")

	s, err := config.Load(context.Background(), config.Sources{Dir: root}, loaders()...)

	require.NoError(t, err)
	require.Equal(t, 120, *s.MaxLineLength)
}

func TestLoad_ExplicitAndAppendedFiles(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	write(t, filepath.Join(root, "stylegrid.hcl"), "max_line_length = 120\n")
	explicit := filepath.Join(root, "ci", "lint.cfg")
	write(t, explicit, "[stylegrid]\nmax-line-length = 88\nselect = E,W\ncount = true\n")
	extra := filepath.Join(root, "ci", "extra.hcl")
	write(t, extra, "select = [\"E\"]\nexit_zero = true\n")

	// --- Act ---
	s, err := config.Load(context.Background(), config.Sources{
		Dir:          root,
		ConfigFile:   explicit,
		AppendConfig: []string{extra},
	}, loaders()...)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, 88, *s.MaxLineLength, "the explicit file replaces discovery")
	require.Equal(t, []string{"E"}, s.Select, "appended files win")
	require.True(t, *s.Count)
	require.True(t, *s.ExitZero)
	require.Equal(t, explicit+","+extra, s.Source)
}

func TestLoad_Isolated(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write(t, filepath.Join(root, "stylegrid.hcl"), "max_line_length = 120\n")

	s, err := config.Load(context.Background(), config.Sources{Dir: root, Isolated: true}, loaders()...)

	require.NoError(t, err)
	require.Equal(t, &config.Settings{}, s)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	noSection := filepath.Join(root, "setup.cfg")
	write(t, noSection, "[metadata]\nname = demo\n")
	unknown := filepath.Join(root, "config.yaml")
	write(t, unknown, "max_line_length: 1\n")

	_, err := config.Load(context.Background(), config.Sources{Dir: root, ConfigFile: noSection}, loaders()...)
	require.ErrorIs(t, err, config.ErrNoSettings)
	require.Contains(t, err.Error(), "can't load configuration")

	_, err = config.Load(context.Background(), config.Sources{Dir: root, ConfigFile: unknown}, loaders()...)
	require.ErrorIs(t, err, config.ErrUnknownFormat)
}

func TestSettings_Merge(t *testing.T) {
	t.Parallel()

	one, two := 1, 2
	base := &config.Settings{
		Source:         "a",
		MaxLineLength:  &one,
		Select:         []string{"E"},
		PerFileIgnores: map[string][]string{"a/*": {"E1"}},
	}

	base.Merge(&config.Settings{
		Source:         "b",
		MaxLineLength:  &two,
		PerFileIgnores: map[string][]string{"b/*": {"W2"}},
	})
	base.Merge(nil)

	require.Equal(t, "a,b", base.Source)
	require.Equal(t, 2, *base.MaxLineLength)
	require.Equal(t, []string{"E"}, base.Select, "unset lists are kept")
	require.Equal(t, map[string][]string{"a/*": {"E1"}, "b/*": {"W2"}}, base.PerFileIgnores)
}
