package token

import (
	"fmt"
	"unicode/utf8"
)

// UnitKind classifies one atomic step of input.
type UnitKind uint8

const (
	// UnitEOF is the end-of-input sentinel. It is synthesized by the
	// tokenizer past the last unit and never stored in a unit slice.
	UnitEOF UnitKind = iota

	// UnitChar is a single scalar character.
	UnitChar

	// UnitCRLF is an atomic carriage-return+line-feed pair. Merging the
	// pair keeps a line ending from being observed as two steps.
	UnitCRLF
)

// Unit is one atomic step of input: a character, a CR+LF pair, or the
// end-of-input sentinel.
type Unit struct {
	Kind UnitKind

	// Char holds the scalar value when Kind is UnitChar.
	Char rune

	// width is the number of source bytes covered. It can differ from
	// the UTF-8 length of Char when an invalid byte was replaced.
	width uint8
}

// EOF is the end-of-input sentinel unit.
var EOF = Unit{Kind: UnitEOF}

// Char builds a single-character unit.
func Char(r rune) Unit {
	return Unit{Kind: UnitChar, Char: r, width: uint8(utf8.RuneLen(r))}
}

// CRLF is the atomic carriage-return+line-feed unit.
var CRLF = Unit{Kind: UnitCRLF, width: 2}

// IsEOF reports whether the unit is the end-of-input sentinel.
func (u Unit) IsEOF() bool {
	return u.Kind == UnitEOF
}

// IsChar reports whether the unit is exactly the character r.
func (u Unit) IsChar(r rune) bool {
	return u.Kind == UnitChar && u.Char == r
}

// IsLineEnding reports whether the unit ends a line: CR+LF, a lone line
// feed, or a lone carriage return.
func (u Unit) IsLineEnding() bool {
	return u.Kind == UnitCRLF || u.IsChar('\n') || u.IsChar('\r')
}

// IsSpaceOrTab reports whether the unit is horizontal whitespace.
func (u Unit) IsSpaceOrTab() bool {
	return u.IsChar(' ') || u.IsChar('\t')
}

// Width returns the number of source bytes the unit covers.
func (u Unit) Width() int {
	return int(u.width)
}

// String returns a debug representation of the unit.
func (u Unit) String() string {
	switch u.Kind {
	case UnitEOF:
		return "EOF"
	case UnitCRLF:
		return `"\r\n"`
	default:
		return fmt.Sprintf("%q", u.Char)
	}
}

// Units decodes content into input units, merging each CR+LF byte pair
// into one atomic unit. An invalid UTF-8 byte decodes to one U+FFFD
// unit with a one-byte width, so unit widths always cover the source
// exactly.
func Units(content []byte) []Unit {
	units := make([]Unit, 0, len(content))

	for i := 0; i < len(content); {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			units = append(units, CRLF)
			i += 2
			continue
		}

		r, size := utf8.DecodeRune(content[i:])
		units = append(units, Unit{Kind: UnitChar, Char: r, width: uint8(size)})
		i += size
	}

	return units
}
