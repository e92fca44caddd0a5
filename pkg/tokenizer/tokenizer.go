// Package tokenizer implements the incremental tokenizing engine: a
// continuation-passing automaton over a unit stream, with an append-only
// event log, enter/exit span primitives, and transactional delegation to
// sub-automatons.
package tokenizer

import (
	"fmt"

	"github.com/yaklabco/mdscan/pkg/subtokenize"
	"github.com/yaklabco/mdscan/pkg/token"
)

// StateFn is a continuation. It receives the current unit, may mutate
// the event log and position through the tokenizer, and returns either a
// terminal result or the next continuation. A continuation that returns
// without consuming is invoked again with the same unit (zero-width
// lookahead).
type StateFn func(t *Tokenizer, u token.Unit) State

// State is the result of feeding one unit to a continuation: terminal
// Ok, terminal Nok, or a pending continuation.
type State struct {
	next StateFn
	ok   bool
}

// Ok is the terminal success state: the construct matched and the event
// log is authoritative.
func Ok() State {
	return State{ok: true}
}

// Nok is the terminal failure state: the construct did not match and the
// net effect must be as if nothing were attempted.
func Nok() State {
	return State{}
}

// Next suspends until the next step, handing control to fn.
func Next(fn StateFn) State {
	return State{next: fn}
}

// Tokenizer owns the event log and the position cursor for one run.
// Only the currently active continuation mutates it; there is no
// concurrency by construction.
type Tokenizer struct {
	// Events is the append-only event log. Spans stay in the log after
	// a successful run for the deferred subtokenization pass.
	Events []token.Event

	units []token.Unit
	index int
	point token.Point
	stack []token.Kind
}

// New creates a tokenizer over content, decoding it into units with
// CR+LF pairs kept atomic.
func New(content []byte) *Tokenizer {
	return FromUnits(token.Units(content))
}

// FromUnits creates a tokenizer over an already-decoded unit stream.
func FromUnits(units []token.Unit) *Tokenizer {
	return &Tokenizer{
		units: units,
		point: token.Start(),
	}
}

// Point returns the current position.
func (t *Tokenizer) Point() token.Point {
	return t.point
}

// Current returns the unit at the cursor, or the end-of-input sentinel
// past the last unit.
func (t *Tokenizer) Current() token.Unit {
	if t.index >= len(t.units) {
		return token.EOF
	}
	return t.units[t.index]
}

// Enter opens a span of the given kind at the current position.
func (t *Tokenizer) Enter(kind token.Kind) {
	t.EnterWithContent(kind, token.ContentNone)
}

// EnterWithContent opens a span tagged with a content type, marking it
// for deferred reparse by that content grammar.
func (t *Tokenizer) EnterWithContent(kind token.Kind, content token.ContentType) {
	t.Events = append(t.Events, token.Event{
		Kind:     token.Enter,
		Token:    kind,
		Point:    t.point,
		Content:  content,
		Previous: token.NoLink,
		Next:     token.NoLink,
	})
	t.stack = append(t.stack, kind)
}

// Exit closes the most recently opened span, which must be of the given
// kind. A mismatch is a construct bug and panics.
func (t *Tokenizer) Exit(kind token.Kind) {
	if len(t.stack) == 0 {
		panic(fmt.Sprintf("tokenizer: exit %v without open span", kind))
	}
	if top := t.stack[len(t.stack)-1]; top != kind {
		panic(fmt.Sprintf("tokenizer: exit %v does not match open %v", kind, top))
	}
	t.stack = t.stack[:len(t.stack)-1]

	t.Events = append(t.Events, token.Event{
		Kind:     token.Exit,
		Token:    kind,
		Point:    t.point,
		Content:  token.ContentNone,
		Previous: token.NoLink,
		Next:     token.NoLink,
	})
}

// Consume advances the cursor and position past exactly one unit.
// Consuming the end-of-input sentinel is a construct bug and panics.
func (t *Tokenizer) Consume() {
	if t.index >= len(t.units) {
		panic("tokenizer: consume past end of input")
	}
	t.point = t.point.Advance(t.units[t.index])
	t.index++
}

// Link chains the most recently opened span to its predecessor in the
// same subtokenization chain.
func (t *Tokenizer) Link() {
	subtokenize.Link(t.Events, len(t.Events)-1)
}

// mark is a checkpoint of everything Attempt must be able to undo.
type mark struct {
	index  int
	point  token.Point
	events int
	stack  int
}

func (t *Tokenizer) save() mark {
	return mark{
		index:  t.index,
		point:  t.point,
		events: len(t.Events),
		stack:  len(t.stack),
	}
}

func (t *Tokenizer) restore(m mark) {
	t.index = m.index
	t.point = m.point
	t.Events = t.Events[:m.events]
	t.stack = t.stack[:m.stack]
}

// Attempt delegates to a sub-automaton against the live unit stream.
// When sub ends Ok its events and position advance stand; when it ends
// Nok the log, position, and open-span stack are restored exactly as
// they were, so the caller can try an alternative from the same place.
// Either way, done decides how the delegating construct continues; the
// unit the sub-automaton terminated on is re-presented to whatever done
// returns.
func (t *Tokenizer) Attempt(sub StateFn, done func(ok bool) State) StateFn {
	m := t.save()
	current := sub

	var step StateFn
	step = func(t *Tokenizer, u token.Unit) State {
		state := current(t, u)
		if state.next != nil {
			current = state.next
			return Next(step)
		}
		if !state.ok {
			t.restore(m)
		}
		return done(state.ok)
	}

	return step
}

// Run drives the continuation until it reaches a terminal state, feeding
// one unit at a time and re-presenting units that were inspected but not
// consumed. A run that ends Nok unwinds completely: the event log and
// position are left exactly as before the call. Reports whether the run
// ended Ok.
func (t *Tokenizer) Run(start StateFn) bool {
	m := t.save()

	state := Next(start)
	for state.next != nil {
		state = state.next(t, t.Current())
	}

	if !state.ok {
		t.restore(m)
	}
	return state.ok
}
