// Package token defines the data model for the incremental tokenizer:
// input units, token kinds, content types, positions, and enter/exit events.
package token

// Kind classifies the semantic meaning of a span in the event stream.
type Kind uint16

// Kinds used by the engine and the built-in constructs. Constructs are
// generic over caller-supplied kinds; the two title kind sets below exist
// so callers can produce differently-named titles from the same construct.
const (
	// TokData is raw content inside a construct. When tagged with a
	// content type, the span is reparsed later by that content grammar.
	TokData Kind = iota

	// TokLineEnding is a single line ending ('\n', '\r', or CR+LF).
	TokLineEnding

	// TokSpaceOrTab is a run of horizontal whitespace.
	TokSpaceOrTab

	// Kinds for titles attached to link reference definitions.
	TokDefinitionTitle
	TokDefinitionTitleMarker
	TokDefinitionTitleString

	// Kinds for titles attached to inline link/image resources.
	TokResourceTitle
	TokResourceTitleMarker
	TokResourceTitleString
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case TokData:
		return "Data"
	case TokLineEnding:
		return "LineEnding"
	case TokSpaceOrTab:
		return "SpaceOrTab"
	case TokDefinitionTitle:
		return "DefinitionTitle"
	case TokDefinitionTitleMarker:
		return "DefinitionTitleMarker"
	case TokDefinitionTitleString:
		return "DefinitionTitleString"
	case TokResourceTitle:
		return "ResourceTitle"
	case TokResourceTitleMarker:
		return "ResourceTitleMarker"
	case TokResourceTitleString:
		return "ResourceTitleString"
	default:
		return "Unknown"
	}
}

// ContentType tags a span whose content must be reparsed by a separate
// grammar before escapes and references take effect. An untagged span is
// taken literally.
type ContentType uint8

const (
	// ContentNone marks a literal span with no deferred reparse.
	ContentNone ContentType = iota

	// ContentString is the restricted content type used inside
	// constructs such as titles and destinations: character escapes
	// and character references apply, nothing else.
	ContentString

	// ContentText is the full inline content type.
	ContentText
)

// String returns a human-readable name for the content type.
func (c ContentType) String() string {
	switch c {
	case ContentNone:
		return "none"
	case ContentString:
		return "string"
	case ContentText:
		return "text"
	default:
		return "unknown"
	}
}
