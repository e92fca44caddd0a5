// Package construct holds self-contained recognizers built from the
// engine primitives, plus the registry that dispatches on the opening
// unit. Titles occur in link reference definitions and in inline
// link/image resources: double quoted ("a"), single quoted ('a'), or
// parenthesized ((a)). They may span lines but never contain a blank
// line, and they may be empty.
package construct

import (
	"fmt"

	"github.com/yaklabco/mdscan/pkg/token"
	"github.com/yaklabco/mdscan/pkg/tokenizer"
)

// TitleOptions names the token kinds the title construct produces, so
// one construct serves grammars that need differently-named titles.
type TitleOptions struct {
	// Title is the kind for the whole title span.
	Title token.Kind

	// Marker is the kind for the opening and closing marker spans.
	Marker token.Kind

	// String is the kind for the span between the markers.
	String token.Kind
}

// titleDelimiter is the kind of marker a title was opened with.
type titleDelimiter uint8

const (
	// delimiterParen: opened with '(', closed with ')'.
	delimiterParen titleDelimiter = iota

	// delimiterDouble: opened and closed with '"'.
	delimiterDouble

	// delimiterSingle: opened and closed with '\''.
	delimiterSingle
)

// titleDelimiterOf derives the delimiter from the opening character.
// Any other character is a dispatch bug and panics.
func titleDelimiterOf(r rune) titleDelimiter {
	switch r {
	case '(':
		return delimiterParen
	case '"':
		return delimiterDouble
	case '\'':
		return delimiterSingle
	default:
		panic(fmt.Sprintf("construct: %q cannot open a title", r))
	}
}

// closer returns the one character that closes this kind of title.
func (d titleDelimiter) closer() rune {
	switch d {
	case delimiterParen:
		return ')'
	case delimiterDouble:
		return '"'
	default:
		return '\''
	}
}

// titleParser is the construct-local state, created at the opening
// marker and discarded on Ok or Nok.
type titleParser struct {
	opts TitleOptions

	// closer is the only character that ends the title.
	closer rune

	// connect is whether a content span already exists to link the
	// next one to.
	connect bool
}

// Title returns the entry state of the title construct. The first unit
// must be '"', '\'', or '('; anything else ends Nok with zero effect.
//
//	> | "a"
//	    ^
func Title(opts TitleOptions) tokenizer.StateFn {
	return func(t *tokenizer.Tokenizer, u token.Unit) tokenizer.State {
		if u.IsChar('"') || u.IsChar('\'') || u.IsChar('(') {
			p := &titleParser{
				opts:   opts,
				closer: titleDelimiterOf(u.Char).closer(),
			}
			t.Enter(opts.Title)
			t.Enter(opts.Marker)
			t.Consume()
			t.Exit(opts.Marker)
			return tokenizer.Next(p.begin)
		}
		return tokenizer.Nok()
	}
}

// begin is after the opening marker, and again at the closing marker.
// It handles the empty title and the normal close.
//
//	> | "a"
//	     ^
func (p *titleParser) begin(t *tokenizer.Tokenizer, u token.Unit) tokenizer.State {
	if u.IsChar(p.closer) {
		t.Enter(p.opts.Marker)
		t.Consume()
		t.Exit(p.opts.Marker)
		t.Exit(p.opts.Title)
		return tokenizer.Ok()
	}

	t.Enter(p.opts.String)
	return p.atBreak(t, u)
}

// atBreak is between segments of title text: at data, at a line ending,
// at the closer, or at the end of input.
//
//	> | "a"
//	     ^
func (p *titleParser) atBreak(t *tokenizer.Tokenizer, u token.Unit) tokenizer.State {
	switch {
	case u.IsChar(p.closer):
		t.Exit(p.opts.String)
		return p.begin(t, u)
	case u.IsEOF():
		// Unterminated title.
		return tokenizer.Nok()
	case u.IsLineEnding():
		sub := SpaceOrTabEOL(EOLOptions{
			Content: token.ContentString,
			Connect: p.connect,
		})
		return tokenizer.Next(t.Attempt(sub, func(ok bool) tokenizer.State {
			if !ok {
				// Blank line; the failed delegation rolled back.
				return tokenizer.Nok()
			}
			p.connect = true
			return tokenizer.Next(p.atBreak)
		}))
	default:
		t.EnterWithContent(token.TokData, token.ContentString)
		if p.connect {
			t.Link()
		} else {
			p.connect = true
		}
		return p.text(t, u)
	}
}

// text is in title text, consuming ordinary units.
//
//	> | "a"
//	     ^
func (p *titleParser) text(t *tokenizer.Tokenizer, u token.Unit) tokenizer.State {
	switch {
	case u.IsChar(p.closer), u.IsEOF(), u.IsLineEnding():
		t.Exit(token.TokData)
		return p.atBreak(t, u)
	case u.IsChar('\\'):
		t.Consume()
		return tokenizer.Next(p.escape)
	default:
		t.Consume()
		return tokenizer.Next(p.text)
	}
}

// escape is after a backslash in title text. Only the active closing
// marker can be escaped here; every other escape is left for the string
// content pass.
//
//	> | "a\*b"
//	      ^
func (p *titleParser) escape(t *tokenizer.Tokenizer, u token.Unit) tokenizer.State {
	if u.IsChar(p.closer) {
		t.Consume()
		return tokenizer.Next(p.text)
	}
	return p.text(t, u)
}
