// Package caption converts raw WEBVTT caption documents into plain,
// readable prose. Auto-generated captions carry a header block, timecode
// cue ranges, styling settings, and non-speech annotations like
// "(applause)"; normalization strips all of that and merges the
// remaining cue fragments into sentences.
package caption

import (
	"regexp"
	"strings"
)

// vttHeaderRe matches the WEBVTT header plus its optional metadata lines
// (Kind:, Language:) and the blank line terminating the block.
var vttHeaderRe = regexp.MustCompile(`^WEBVTT\n[a-zA-Z: ]*\n[a-zA-Z: ]*\n\n`)

// timecodeRe matches a cue timing range like
// "00:00:01.000 --> 00:00:02.000" with optional fractional seconds and
// trailing cue settings (align/position), through end of line.
var timecodeRe = regexp.MustCompile(`[0-9:. ]*-->[0-9:. ]*[^\n]*`)

// annotationRe matches parenthesized non-speech annotations. Real speech
// rarely opens a parenthetical with a lowercase letter or digit, so
// "(applause)" and "(upbeat music)" match while "(Note from the editor)"
// does not.
var annotationRe = regexp.MustCompile(`\([ )a-z0-9][^\n]*`)

// Normalizer strips caption markup and rebuilds prose. The zero value
// removes non-speech annotations; set KeepAnnotations to preserve them.
type Normalizer struct {
	KeepAnnotations bool
}

// Normalize converts a raw caption document into plain text with
// newlines only at sentence boundaries. Malformed input degrades to
// best-effort stripping; empty input yields empty output.
func (n Normalizer) Normalize(raw string) string {
	// Caption files downloaded on Windows hosts arrive with CRLF line
	// endings; fold them (and bare CRs) to LF so the line-oriented
	// patterns and the sentence-boundary rule see clean newlines.
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	text = vttHeaderRe.ReplaceAllString(text, "")

	text = timecodeRe.ReplaceAllString(text, "")
	if !n.KeepAnnotations {
		text = annotationRe.ReplaceAllString(text, "")
	}

	// Removing timecodes leaves runs of blank lines, and collapsing one
	// run can create another, so iterate to a fixed point.
	for strings.Contains(text, "\n\n") {
		text = strings.ReplaceAll(text, "\n\n", "\n")
	}

	text = strings.TrimPrefix(text, "\n")

	return mergeCueBreaks(text)
}

// mergeCueBreaks replaces every newline not immediately preceded by
// sentence-ending punctuation with a single space, turning cue-fragment
// line breaks into flowing prose.
func mergeCueBreaks(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\n' {
			if i > 0 && (text[i-1] == '.' || text[i-1] == '!' || text[i-1] == '?') {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
			continue
		}
		b.WriteByte(c)
	}

	return b.String()
}
