package construct_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdscan/pkg/construct"
	"github.com/yaklabco/mdscan/pkg/token"
	"github.com/yaklabco/mdscan/pkg/tokenizer"
)

func TestSpaceOrTabEOL_ConsumesEOLAndWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		source     string
		wantOffset int
	}{
		{"bare line feed", "\nx", 1},
		{"crlf", "\r\nx", 2},
		{"eol plus spaces", "\n   x", 4},
		{"eol plus tab", "\n\tx", 2},
		{"eol plus mixed whitespace", "\n \t x", 4},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tok := tokenizer.New([]byte(tt.source))
			ok := tok.Run(construct.SpaceOrTabEOL(construct.EOLOptions{}))

			require.True(t, ok)
			assert.Equal(t, tt.wantOffset, tok.Point().Offset)
			assert.Equal(t, token.TokLineEnding, tok.Events[0].Token)
		})
	}
}

func TestSpaceOrTabEOL_RejectsBlankLine(t *testing.T) {
	t.Parallel()

	tests := []string{
		"\n\n",
		"\n",
		"\r\n\r\n",
		"\n   \n",
		"\n\t",
		"\n   ",
	}

	for _, source := range tests {
		source := source
		t.Run(fmt.Sprintf("%q", source), func(t *testing.T) {
			t.Parallel()

			tok := tokenizer.New([]byte(source))
			ok := tok.Run(construct.SpaceOrTabEOL(construct.EOLOptions{}))

			assert.False(t, ok)
		})
	}
}

func TestSpaceOrTabEOL_NokOnNonLineEnding(t *testing.T) {
	t.Parallel()

	tok := tokenizer.New([]byte("x"))
	ok := tok.Run(construct.SpaceOrTabEOL(construct.EOLOptions{}))

	assert.False(t, ok)
	assert.Empty(t, tok.Events)
}

// Failure through Attempt must leave no trace, even though the
// sub-automaton consumed units and opened spans before rejecting.
func TestSpaceOrTabEOL_FailureRollsBackThroughAttempt(t *testing.T) {
	t.Parallel()

	tok := tokenizer.New([]byte("\n  \nrest"))

	var eventsAtDone int
	var pointAtDone token.Point
	start := func(tk *tokenizer.Tokenizer, _ token.Unit) tokenizer.State {
		sub := construct.SpaceOrTabEOL(construct.EOLOptions{Content: token.ContentString})
		return tokenizer.Next(tk.Attempt(sub, func(ok bool) tokenizer.State {
			eventsAtDone = len(tk.Events)
			pointAtDone = tk.Point()
			if ok {
				return tokenizer.Ok()
			}
			return tokenizer.Nok()
		}))
	}

	ok := tok.Run(start)

	assert.False(t, ok)
	assert.Zero(t, eventsAtDone, "event log must be truncated on failure")
	assert.Equal(t, token.Start(), pointAtDone, "position must be rewound on failure")
}

func TestSpaceOrTabEOL_ContentTypedSpansChain(t *testing.T) {
	t.Parallel()

	// A content-typed whitespace span always joins the line ending's
	// chain so the deferred pass sees one logical string.
	tok := tokenizer.New([]byte("\n  x"))
	ok := tok.Run(construct.SpaceOrTabEOL(construct.EOLOptions{Content: token.ContentString}))

	require.True(t, ok)
	require.Len(t, tok.Events, 4)
	assert.Equal(t, token.TokLineEnding, tok.Events[0].Token)
	assert.Equal(t, token.TokSpaceOrTab, tok.Events[2].Token)
	assert.Equal(t, 2, tok.Events[0].Next, "whitespace span must chain after the line ending")
	assert.Equal(t, 0, tok.Events[2].Previous)
}
