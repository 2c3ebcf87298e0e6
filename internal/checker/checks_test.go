package checker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// summary reduces violations to "row:col code" for compact assertions.
func summary(vs []Violation) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, fmt.Sprintf("%d:%d %s", v.Row, v.Col, v.Code))
	}
	return out
}

func TestCheckSource(t *testing.T) {
	t.Parallel()

	long := "x = '" + strings.Repeat("a", 80) + "'"

	testCases := []struct {
		name string
		src  string
		want []string
	}{
		{"empty file", "", []string{}},
		{"clean file", "x = 1\n\ndef f():\n    return x\n", []string{}},
		{"trailing whitespace", "x = 1  \n", []string{"1:6 W291"}},
		{"whitespace on blank line", "x = 1\n   \ny = 2\n", []string{"2:1 W293"}},
		{"tab indentation", "if x:\n\ty = 1\n", []string{"2:1 W191"}},
		{"tab after code is not indentation", "x = 1\t# note\n", []string{}},
		{"line too long", long + "\n", []string{"1:80 E501"}},
		{"no newline at end", "x = 1", []string{"1:6 W292"}},
		{"blank line at end", "x = 1\n\n", []string{"2:1 W391"}},
		{"windows line endings", "x = 1\r\ny = 2 \r\n", []string{"2:6 W291"}},
	}

	for _, tc := range testCases {

		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := CheckSource("mod.py", []byte(tc.src), 79)

			require.Equal(t, tc.want, summary(got))
		})
	}
}

func TestCheckSource_LongURLCommentIsAllowed(t *testing.T) {
	t.Parallel()

	src := "# https://example.com/" + strings.Repeat("a", 90) + "\n"

	require.Empty(t, CheckSource("mod.py", []byte(src), 79))
}

func TestCheckSource_ViolationDetails(t *testing.T) {
	t.Parallel()

	src := "x = '" + strings.Repeat("a", 80) + "'\n"

	got := CheckSource("pkg/mod.py", []byte(src), 79)

	require.Len(t, got, 1)
	require.Equal(t, Violation{
		Filename: "pkg/mod.py",
		Code:     "E501",
		Row:      1,
		Col:      80,
		Text:     "line too long (86 > 79 characters)",
		Line:     strings.TrimSuffix(src, "\n"),
	}, got[0])
}

func TestCheckSource_CountsRunesNotBytes(t *testing.T) {
	t.Parallel()

	src := "s = '" + strings.Repeat("é", 70) + "'\n"

	require.Empty(t, CheckSource("mod.py", []byte(src), 79))
}
