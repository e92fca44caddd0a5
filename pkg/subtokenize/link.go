// Package subtokenize links content-typed spans that together form one
// logical string, so a later pass can reparse them as a unit while
// positions still map back to the source.
package subtokenize

import (
	"github.com/yaklabco/mdscan/pkg/token"
)

// Link chains the Enter event at index to the chain's previous Enter,
// which sits two events back (its Exit lies between them). Constructs
// call this right after opening a span that continues an earlier one.
func Link(events []token.Event, index int) {
	LinkTo(events, index-2, index)
}

// LinkTo chains next after previous. Both must be content-typed Enter
// events sharing one content type; anything else is a caller bug and
// panics.
func LinkTo(events []token.Event, previous, next int) {
	prev := &events[previous]
	succ := &events[next]

	if prev.Kind != token.Enter || succ.Kind != token.Enter {
		panic("subtokenize: link targets must be enter events")
	}
	if prev.Content == token.ContentNone || prev.Content != succ.Content {
		panic("subtokenize: linked spans must share a content type")
	}

	prev.Next = next
	succ.Previous = previous
}

// Chain returns the enter-event indices of the chain containing index,
// in log order. A span that was never linked forms a chain of one.
func Chain(events []token.Event, index int) []int {
	for events[index].Previous != token.NoLink {
		index = events[index].Previous
	}

	var chain []int
	for {
		chain = append(chain, index)
		if events[index].Next == token.NoLink {
			return chain
		}
		index = events[index].Next
	}
}

// ChainText concatenates the source text of every span in the chain
// containing index. Span boundaries are preserved in the event log; the
// returned bytes are the logical string the deferred pass will reparse.
func ChainText(events []token.Event, index int, source []byte) []byte {
	var out []byte
	for _, enter := range Chain(events, index) {
		out = append(out, token.SpanText(events, enter, source)...)
	}
	return out
}
