package checker

// Violation is a single problem reported by a check.
type Violation struct {
	Filename string
	Code     string
	Row      int // 1-based
	Col      int // 1-based
	Text     string
	Line     string // the physical line, without its line ending
}
