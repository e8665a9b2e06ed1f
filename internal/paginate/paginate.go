// Package paginate splits long transcript text into bounded-size pages
// for a context-limited rewriting call. The split is greedy: each page
// takes the largest prefix that ends on a natural boundary, preferring
// paragraph breaks over line breaks over word breaks, with a hard cut
// only when no boundary falls inside the limit.
package paginate

import (
	"strings"
	"unicode/utf8"
)

// separators in preference order. The empty string stands for a hard
// cut at the size limit.
var separators = []string{"\n\n", "\n", " "}

// Paginate splits text into ordered pages of at most chunkSize bytes.
// When overlap is nonzero, the last overlap bytes of each page are
// repeated at the start of the next one to preserve cross-page context.
// Concatenating the pages minus their overlaps reconstructs the input
// exactly. Empty input yields no pages.
func Paginate(text string, chunkSize, overlap int) []string {
	if text == "" {
		return nil
	}
	if chunkSize <= 0 || len(text) <= chunkSize {
		return []string{text}
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= chunkSize {
		overlap = chunkSize - 1
	}

	var pages []string
	pos := 0 // first byte not yet covered by a previous page

	for pos < len(text) {
		pageStart := pos
		if len(pages) > 0 {
			pageStart = pos - overlap
			if pageStart < 0 {
				pageStart = 0
			}
		}

		limit := pageStart + chunkSize
		if limit >= len(text) {
			pages = append(pages, text[pageStart:])
			break
		}

		cut := findCut(text, pos, limit)
		pages = append(pages, text[pageStart:cut])
		pos = cut
	}

	return pages
}

// findCut returns the cut position in (pos, limit] ending the current
// page, preferring the latest natural boundary inside the window.
func findCut(text string, pos, limit int) int {
	window := text[pos:limit]

	for _, sep := range separators {
		if idx := strings.LastIndex(window, sep); idx >= 0 {
			return pos + idx + len(sep)
		}
	}

	// Hard cut: back up so a multi-byte rune is never split across pages.
	cut := limit
	for cut > pos+1 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return cut
}
