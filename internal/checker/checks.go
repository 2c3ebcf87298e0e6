package checker

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// physicalLine is what a line check sees.
type physicalLine struct {
	text          string // without line ending
	row           int
	maxLineLength int
}

// lineCheck returns zero or more (col, code, text) findings for one line.
type lineCheck func(l physicalLine) []finding

type finding struct {
	col  int
	code string
	text string
}

// lineChecks run on every physical line, in this order.
var lineChecks = []lineCheck{
	tabsInIndentation,
	trailingWhitespace,
	maximumLineLength,
}

// tabsInIndentation reports W191.
func tabsInIndentation(l physicalLine) []finding {
	indent := l.text[:len(l.text)-len(strings.TrimLeft(l.text, " \t"))]
	if strings.ContainsRune(indent, '\t') {
		return []finding{{col: 1, code: "W191", text: "indentation contains tabs"}}
	}
	return nil
}

// trailingWhitespace reports W291 and W293.
func trailingWhitespace(l physicalLine) []finding {
	stripped := strings.TrimRight(l.text, " \t\v\f")
	if stripped == l.text {
		return nil
	}
	if stripped == "" {
		return []finding{{col: 1, code: "W293", text: "whitespace on blank line"}}
	}
	return []finding{{col: utf8.RuneCountInString(stripped) + 1, code: "W291", text: "trailing whitespace"}}
}

// maximumLineLength reports E501. A comment line holding a single long
// token, such as a URL, is allowed to exceed the limit.
func maximumLineLength(l physicalLine) []finding {
	line := strings.TrimRight(l.text, " \t\v\f")
	length := utf8.RuneCountInString(line)
	if length <= l.maxLineLength {
		return nil
	}

	chunks := strings.Fields(line)
	if len(chunks) == 1 || (len(chunks) == 2 && chunks[0] == "#") {
		last := chunks[len(chunks)-1]
		if length-utf8.RuneCountInString(last) < l.maxLineLength-7 {
			return nil
		}
	}

	return []finding{{
		col:  l.maxLineLength + 1,
		code: "E501",
		text: fmt.Sprintf("line too long (%d > %d characters)", length, l.maxLineLength),
	}}
}

// CheckSource runs every check over the contents of one file.
func CheckSource(filename string, src []byte, maxLineLength int) []Violation {
	if len(src) == 0 {
		return nil
	}

	lines := strings.SplitAfter(string(src), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var out []Violation
	for i, raw := range lines {
		text := strings.TrimRight(raw, "\r\n")
		pl := physicalLine{text: text, row: i + 1, maxLineLength: maxLineLength}
		for _, check := range lineChecks {
			for _, f := range check(pl) {
				out = append(out, Violation{
					Filename: filename,
					Code:     f.code,
					Row:      pl.row,
					Col:      f.col,
					Text:     f.text,
					Line:     text,
				})
			}
		}
	}

	last := lines[len(lines)-1]
	lastText := strings.TrimRight(last, "\r\n")
	switch {
	case !strings.HasSuffix(last, "\n"):
		out = append(out, Violation{
			Filename: filename,
			Code:     "W292",
			Row:      len(lines),
			Col:      utf8.RuneCountInString(lastText) + 1,
			Text:     "no newline at end of file",
			Line:     lastText,
		})
	case strings.TrimSpace(lastText) == "":
		out = append(out, Violation{
			Filename: filename,
			Code:     "W391",
			Row:      len(lines),
			Col:      1,
			Text:     "blank line at end of file",
			Line:     lastText,
		})
	}

	return out
}

// ioError builds the E902 violation reported for unreadable files.
func ioError(filename string, err error) Violation {
	return Violation{
		Filename: filename,
		Code:     "E902",
		Row:      1,
		Col:      1,
		Text:     fmt.Sprintf("IOError: %v", err),
	}
}
