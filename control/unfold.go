package control

import "strings"

// Unfold turns a raw folded value into its logical multi-line string.
//
// A value that never left its first physical line is returned unchanged.
// Otherwise the first segment is kept verbatim and every continuation
// line loses its leading run of spaces and tabs; a continuation line
// consisting of exactly " ." becomes an empty logical line.
//
// Unfold is the inverse of FieldWriter for values whose lines are
// individually trimmed and where no logical line is exactly ".".
func Unfold(raw string) string {
	if !strings.Contains(raw, "\n ") && !strings.Contains(raw, "\n\t") {
		return raw
	}

	lines := strings.Split(raw, "\n")
	var b strings.Builder
	b.Grow(len(raw))
	b.WriteString(lines[0])
	for _, line := range lines[1:] {
		b.WriteByte('\n')
		if line != ParagraphMarker {
			b.WriteString(strings.TrimLeft(line, " \t"))
		}
	}
	return b.String()
}

// SplitList splits a logical value into its comma-separated items, each
// trimmed of surrounding whitespace. A comma inside an item is not
// escapable; this is a limitation of the format, not of the parser.
func SplitList(logical string) []string {
	items := strings.Split(logical, ",")
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
	return items
}
