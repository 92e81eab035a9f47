package control

import (
	"strings"

	"github.com/rivo/uniseg"
)

// writeWrapped writes one logical line, greedily wrapped on Unicode word
// boundaries. Width is measured in grapheme clusters and every physical
// line starts with one column already spent, reserving room for the
// continuation indent. A single word longer than the limit is never
// split. A pure-whitespace word is dropped when it would start a fresh
// physical line.
func (fw *FieldWriter) writeWrapped(line string) error {
	width := fw.WrapWidth
	if width == 0 {
		width = DefaultWrapWidth
	}

	written := 1
	state := -1
	var word string
	for rest := line; rest != ""; {
		word, rest, state = uniseg.FirstWordInString(rest, state)
		n := uniseg.GraphemeClusterCount(word)
		if written+n > width {
			if err := fw.write("\n" + fw.indent()); err != nil {
				return err
			}
			written = 1
		}
		if strings.TrimSpace(word) == "" && written == 1 {
			continue
		}
		if err := fw.write(word); err != nil {
			return err
		}
		written += n
	}
	return nil
}
