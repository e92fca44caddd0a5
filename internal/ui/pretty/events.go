package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdscan/pkg/token"
)

// FormatEvents renders the event log, one marker per line:
//
//	enter DefinitionTitle        1:1
//	enter DefinitionTitleMarker  1:1
//	...
//
// Enter events carrying a content type show it, and chained events show
// the index they continue.
func (s *Styles) FormatEvents(events []token.Event, source []byte) string {
	var builder strings.Builder

	kindWidth := 0
	for _, ev := range events {
		if w := len(ev.Token.String()); w > kindWidth {
			kindWidth = w
		}
	}

	for i, ev := range events {
		mark := s.EnterMark.Render("enter")
		if ev.Kind == token.Exit {
			mark = s.ExitMark.Render("exit ")
		}

		builder.WriteString(fmt.Sprintf("  %3d  %s  %s  %s",
			i,
			mark,
			s.TokenKind.Render(fmt.Sprintf("%-*s", kindWidth, ev.Token)),
			s.Location.Render(ev.Point.String()),
		))

		if ev.Kind == token.Enter && ev.Content != token.ContentNone {
			builder.WriteString("  " + s.Content.Render("["+ev.Content.String()+"]"))
		}
		if ev.Previous != token.NoLink {
			builder.WriteString("  " + s.LinkArrow.Render(fmt.Sprintf("<-%d", ev.Previous)))
		}

		if ev.Kind == token.Enter {
			if text := token.SpanText(events, i, source); len(text) > 0 {
				builder.WriteString("  " + s.SpanText.Render(fmt.Sprintf("%q", text)))
			}
		}

		builder.WriteString("\n")
	}

	return builder.String()
}

// FormatOutcome renders the terminal result of a run.
func (s *Styles) FormatOutcome(ok bool) string {
	if ok {
		return s.Success.Render("ok")
	}
	return s.Failure.Render("nok")
}
