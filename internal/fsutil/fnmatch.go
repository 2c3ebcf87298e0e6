package fsutil

import (
	"regexp"
	"strings"
	"sync"
)

var patternCache sync.Map // string -> *regexp.Regexp

// Match reports whether name matches the shell pattern. Unlike
// filepath.Match, "*" and "?" also match the path separator, so "tests/*"
// covers every file below tests. "[seq]" and "[!seq]" are supported; an
// unterminated "[" matches itself.
func Match(pattern, name string) bool {
	if re, ok := patternCache.Load(pattern); ok {
		return re.(*regexp.Regexp).MatchString(name)
	}
	re := regexp.MustCompile(translate(pattern))
	patternCache.Store(pattern, re)
	return re.MatchString(name)
}

// translate turns a shell pattern into an anchored regular expression.
func translate(pattern string) string {
	var b strings.Builder
	b.WriteString(`(?s)^`)

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		case '[':
			end := classEnd(pattern, i+1)
			if end < 0 {
				b.WriteString(`\[`)
				continue
			}
			b.WriteString(class(pattern[i+1 : end]))
			i = end
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	b.WriteString(`$`)
	return b.String()
}

// classEnd returns the index of the "]" closing a class opened just before
// start, or -1. A "]" right after the opening (or after "!") is literal.
func classEnd(pattern string, start int) int {
	j := start
	if j < len(pattern) && pattern[j] == '!' {
		j++
	}
	if j < len(pattern) && pattern[j] == ']' {
		j++
	}
	for ; j < len(pattern); j++ {
		if pattern[j] == ']' {
			return j
		}
	}
	return -1
}

func class(body string) string {
	var b strings.Builder
	b.WriteByte('[')
	if strings.HasPrefix(body, "!") {
		b.WriteByte('^')
		body = body[1:]
	}
	for _, r := range body {
		switch r {
		case '\\', '[', ']', '^':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte(']')
	return b.String()
}
