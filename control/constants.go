package control

// Format tokens and defaults.
const (
	// KeySeparator terminates the key on a field's first physical line.
	KeySeparator = ':'

	// ContinuationIndent is written at the start of every continuation
	// line. A single space is what Debian tooling produces; RecordWriter
	// and FieldWriter accept a different indent for testing.
	ContinuationIndent = " "

	// ParagraphMarker is the wire form of an intentionally empty logical
	// line inside a folded value: a continuation line consisting of
	// exactly one space and a dot.
	ParagraphMarker = " ."

	// DefaultWrapWidth is the column limit used by the folding engine
	// when word wrapping is enabled. Width is measured in grapheme
	// clusters, with one column reserved for the continuation indent.
	DefaultWrapWidth = 80
)
