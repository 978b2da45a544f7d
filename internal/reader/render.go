package reader

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Strip renders the scroll-mode viewport: body on a single line shifted left
// by offset cells and clipped to width cells. The result is padded to width.
func Strip(body string, offset, width int) string {
	if width <= 0 {
		return ""
	}
	if offset < 0 {
		offset = 0
	}
	var b strings.Builder
	skipped, used := 0, 0
	for _, r := range body {
		r, w := stripCell(r)
		if w == 0 {
			continue
		}
		if skipped < offset {
			skipped += w
			// A wide rune cut in half by the left edge leaves a blank cell.
			if skipped > offset && used < width {
				b.WriteByte(' ')
				used++
			}
			continue
		}
		if used+w > width {
			break
		}
		b.WriteRune(r)
		used += w
	}
	if used < width {
		b.WriteString(strings.Repeat(" ", width-used))
	}
	return b.String()
}

// stripCell maps whitespace to a single space and reports the cell width
// of r on the strip. Zero-width runes are not drawn.
func stripCell(r rune) (rune, int) {
	if unicode.IsSpace(r) {
		return ' ', 1
	}
	return r, runewidth.RuneWidth(r)
}

// ScrollLength is the number of runes Strip draws for body, which is where
// scroll playback stops.
func ScrollLength(body string) int {
	n := 0
	for _, r := range body {
		if _, w := stripCell(r); w > 0 {
			n++
		}
	}
	return n
}

// Wrap wraps text to width cells at word boundaries.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += w
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
