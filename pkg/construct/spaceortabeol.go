package construct

import (
	"github.com/yaklabco/mdscan/pkg/token"
	"github.com/yaklabco/mdscan/pkg/tokenizer"
)

// EOLOptions configures SpaceOrTabEOL.
type EOLOptions struct {
	// Content tags the produced spans so they join the surrounding
	// subtokenization chain. ContentNone leaves them literal.
	Content token.ContentType

	// Connect links the line-ending span to an already-open chain.
	// Content-typed spans after the first are always chained.
	Connect bool
}

// SpaceOrTabEOL returns a sub-automaton that consumes exactly one line
// ending plus any immediately following horizontal whitespace. It ends
// Nok when that would leave a blank line: a line ending followed, over
// nothing but whitespace, by another line ending or end of input.
// Callers run it through Attempt so a Nok rolls back completely.
func SpaceOrTabEOL(opts EOLOptions) tokenizer.StateFn {
	e := &eolParser{opts: opts}
	return e.start
}

type eolParser struct {
	opts EOLOptions
}

// start requires a line ending.
func (e *eolParser) start(t *tokenizer.Tokenizer, u token.Unit) tokenizer.State {
	if !u.IsLineEnding() {
		return tokenizer.Nok()
	}

	t.EnterWithContent(token.TokLineEnding, e.opts.Content)
	if e.opts.Connect {
		t.Link()
	}
	t.Consume()
	t.Exit(token.TokLineEnding)
	return tokenizer.Next(e.afterEOL)
}

// afterEOL is past the line ending, before optional whitespace.
func (e *eolParser) afterEOL(t *tokenizer.Tokenizer, u token.Unit) tokenizer.State {
	if u.IsSpaceOrTab() {
		t.EnterWithContent(token.TokSpaceOrTab, e.opts.Content)
		if e.opts.Content != token.ContentNone {
			t.Link()
		}
		t.Consume()
		return tokenizer.Next(e.inWhitespace)
	}
	return e.after(t, u)
}

// inWhitespace consumes the whitespace run.
func (e *eolParser) inWhitespace(t *tokenizer.Tokenizer, u token.Unit) tokenizer.State {
	if u.IsSpaceOrTab() {
		t.Consume()
		return tokenizer.Next(e.inWhitespace)
	}
	t.Exit(token.TokSpaceOrTab)
	return e.after(t, u)
}

// after decides the outcome on the first unit of the next line. Another
// line ending or end of input here means the line was blank.
func (e *eolParser) after(_ *tokenizer.Tokenizer, u token.Unit) tokenizer.State {
	if u.IsLineEnding() || u.IsEOF() {
		return tokenizer.Nok()
	}
	return tokenizer.Ok()
}
