package tokenizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdscan/pkg/token"
	"github.com/yaklabco/mdscan/pkg/tokenizer"
)

// consumeAll consumes every unit up to end of input as one data span.
func consumeAll(kind token.Kind) tokenizer.StateFn {
	var loop tokenizer.StateFn

	opened := false
	loop = func(t *tokenizer.Tokenizer, u token.Unit) tokenizer.State {
		if u.IsEOF() {
			if opened {
				t.Exit(kind)
			}
			return tokenizer.Ok()
		}
		if !opened {
			t.Enter(kind)
			opened = true
		}
		t.Consume()
		return tokenizer.Next(loop)
	}
	return loop
}

func TestRun_ConsumesAndTracksPosition(t *testing.T) {
	t.Parallel()

	tok := tokenizer.New([]byte("ab\r\nc"))
	ok := tok.Run(consumeAll(token.TokData))

	require.True(t, ok)
	require.Len(t, tok.Events, 2)
	assert.Equal(t, token.Enter, tok.Events[0].Kind)
	assert.Equal(t, token.Point{Line: 1, Column: 1, Offset: 0}, tok.Events[0].Point)
	assert.Equal(t, token.Exit, tok.Events[1].Kind)
	assert.Equal(t, token.Point{Line: 2, Column: 2, Offset: 5}, tok.Events[1].Point)
	assert.Equal(t, 5, tok.Point().Offset)
}

func TestRun_RepresentsUnconsumedUnit(t *testing.T) {
	t.Parallel()

	// The first state inspects without consuming; the second must see
	// the same unit again.
	var seen []rune

	second := func(tk *tokenizer.Tokenizer, u token.Unit) tokenizer.State {
		seen = append(seen, u.Char)
		tk.Consume()
		return tokenizer.Ok()
	}
	first := func(_ *tokenizer.Tokenizer, u token.Unit) tokenizer.State {
		seen = append(seen, u.Char)
		return tokenizer.Next(second)
	}

	tok := tokenizer.New([]byte("x"))
	ok := tok.Run(first)

	require.True(t, ok)
	assert.Equal(t, []rune{'x', 'x'}, seen)
}

func TestRun_NokUnwindsEverything(t *testing.T) {
	t.Parallel()

	fail := func(tk *tokenizer.Tokenizer, _ token.Unit) tokenizer.State {
		tk.Enter(token.TokData)
		tk.Consume()
		return tokenizer.Nok()
	}

	tok := tokenizer.New([]byte("abc"))
	before := tok.Point()

	ok := tok.Run(fail)

	assert.False(t, ok)
	assert.Empty(t, tok.Events)
	assert.Equal(t, before, tok.Point())
}

func TestAttempt_CommitsOnOk(t *testing.T) {
	t.Parallel()

	sub := func(tk *tokenizer.Tokenizer, _ token.Unit) tokenizer.State {
		tk.Enter(token.TokData)
		tk.Consume()
		tk.Exit(token.TokData)
		return tokenizer.Ok()
	}

	var subOK bool
	start := func(tk *tokenizer.Tokenizer, _ token.Unit) tokenizer.State {
		return tokenizer.Next(tk.Attempt(sub, func(ok bool) tokenizer.State {
			subOK = ok
			return tokenizer.Ok()
		}))
	}

	tok := tokenizer.New([]byte("a"))
	ok := tok.Run(start)

	require.True(t, ok)
	assert.True(t, subOK)
	assert.Len(t, tok.Events, 2)
	assert.Equal(t, 1, tok.Point().Offset)
}

func TestAttempt_RollsBackOnNok(t *testing.T) {
	t.Parallel()

	// The sub-automaton consumes two units and opens a span before
	// failing; none of that may remain visible.
	sub := func(tk *tokenizer.Tokenizer, _ token.Unit) tokenizer.State {
		tk.Enter(token.TokData)
		tk.Consume()
		return tokenizer.Next(func(tk *tokenizer.Tokenizer, _ token.Unit) tokenizer.State {
			tk.Consume()
			return tokenizer.Nok()
		})
	}

	var after token.Point
	var events int
	start := func(tk *tokenizer.Tokenizer, _ token.Unit) tokenizer.State {
		return tokenizer.Next(tk.Attempt(sub, func(ok bool) tokenizer.State {
			after = tk.Point()
			events = len(tk.Events)
			if ok {
				return tokenizer.Ok()
			}
			return tokenizer.Nok()
		}))
	}

	tok := tokenizer.New([]byte("abc"))
	ok := tok.Run(start)

	assert.False(t, ok)
	assert.Equal(t, token.Start(), after, "position must be restored before done runs")
	assert.Zero(t, events, "events must be truncated before done runs")
}

func TestAttempt_DoneSeesTerminationUnit(t *testing.T) {
	t.Parallel()

	// Sub consumes "a" and stops at "b"; the continuation done returns
	// must be handed that same "b".
	sub := func(tk *tokenizer.Tokenizer, _ token.Unit) tokenizer.State {
		tk.Consume()
		return tokenizer.Next(func(_ *tokenizer.Tokenizer, _ token.Unit) tokenizer.State {
			return tokenizer.Ok()
		})
	}

	var next rune
	start := func(tk *tokenizer.Tokenizer, _ token.Unit) tokenizer.State {
		return tokenizer.Next(tk.Attempt(sub, func(bool) tokenizer.State {
			return tokenizer.Next(func(tk *tokenizer.Tokenizer, u token.Unit) tokenizer.State {
				next = u.Char
				tk.Consume()
				return tokenizer.Ok()
			})
		}))
	}

	tok := tokenizer.New([]byte("ab"))
	require.True(t, tok.Run(start))
	assert.Equal(t, 'b', next)
}

func TestExit_MismatchPanics(t *testing.T) {
	t.Parallel()

	tok := tokenizer.New([]byte("a"))
	tok.Enter(token.TokData)

	assert.Panics(t, func() { tok.Exit(token.TokLineEnding) })
}

func TestExit_WithoutEnterPanics(t *testing.T) {
	t.Parallel()

	tok := tokenizer.New([]byte("a"))

	assert.Panics(t, func() { tok.Exit(token.TokData) })
}

func TestConsume_PastEndPanics(t *testing.T) {
	t.Parallel()

	tok := tokenizer.New(nil)

	assert.Panics(t, func() { tok.Consume() })
}
