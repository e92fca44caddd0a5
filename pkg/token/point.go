package token

import "fmt"

// Point is a position in the source: 1-based line and column plus the
// 0-based byte offset. Columns count units, not bytes.
type Point struct {
	Line   int
	Column int
	Offset int
}

// Start returns the position before any input.
func Start() Point {
	return Point{Line: 1, Column: 1, Offset: 0}
}

// Advance returns the point moved past one unit. Line endings wrap to
// the first column of the next line; the end-of-input sentinel does not
// move the point.
func (p Point) Advance(u Unit) Point {
	if u.IsEOF() {
		return p
	}

	p.Offset += u.Width()
	if u.IsLineEnding() {
		p.Line++
		p.Column = 1
	} else {
		p.Column++
	}

	return p
}

// String returns the point as "line:column".
func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
