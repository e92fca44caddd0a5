package token

// EventKind distinguishes the two marker types in the event log.
type EventKind uint8

const (
	// Enter opens a span.
	Enter EventKind = iota

	// Exit closes the most recently opened span of the same token kind.
	Exit
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	if k == Enter {
		return "enter"
	}
	return "exit"
}

// NoLink marks an event that is not part of a subtokenization chain.
const NoLink = -1

// Event is one marker in the append-only event log. Enter/Exit pairs of
// the same token kind delimit spans; for a successful run the spans nest
// correctly and their extents cover the consumed input exactly.
type Event struct {
	Kind  EventKind
	Token Kind

	// Point is the source position of the marker: the span start for
	// Enter, the position just past the span for Exit.
	Point Point

	// Content tags an Enter for deferred reparse by another grammar.
	Content ContentType

	// Previous and Next chain content-typed Enter events that belong to
	// one logical string, in log order. NoLink when unchained.
	Previous int
	Next     int
}

// ExitFor returns the index of the Exit event matching the Enter at
// enter, or -1 if the log holds no balanced match.
func ExitFor(events []Event, enter int) int {
	if enter < 0 || enter >= len(events) || events[enter].Kind != Enter {
		return -1
	}

	depth := 0
	for i := enter; i < len(events); i++ {
		if events[i].Token != events[enter].Token {
			continue
		}
		if events[i].Kind == Enter {
			depth++
		} else {
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// SpanText returns the source text covered by the span opened at enter.
func SpanText(events []Event, enter int, source []byte) []byte {
	exit := ExitFor(events, enter)
	if exit < 0 {
		return nil
	}

	start := events[enter].Point.Offset
	end := events[exit].Point.Offset
	if start < 0 || end > len(source) || start > end {
		return nil
	}

	return source[start:end]
}

// ValidateEvents checks that the log is well formed for a completed run:
//   - Enter/Exit markers are stack-balanced per token kind.
//   - Offsets never move backwards in log order.
//   - The outermost span covers [start, end) exactly.
//
// Returns true if valid, false otherwise.
func ValidateEvents(events []Event, start, end int) bool {
	if len(events) == 0 {
		return start == end
	}

	if events[0].Kind != Enter || events[0].Point.Offset != start {
		return false
	}

	var stack []Kind
	offset := start

	for _, ev := range events {
		if ev.Point.Offset < offset {
			return false
		}
		offset = ev.Point.Offset

		if ev.Kind == Enter {
			stack = append(stack, ev.Token)
			continue
		}

		if len(stack) == 0 || stack[len(stack)-1] != ev.Token {
			return false
		}
		stack = stack[:len(stack)-1]
	}

	if len(stack) != 0 {
		return false
	}

	last := events[len(events)-1]
	return last.Kind == Exit && last.Point.Offset == end
}
