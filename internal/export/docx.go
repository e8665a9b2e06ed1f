// Package export renders final transcripts as DOCX documents.
package export

import (
	"strings"

	"github.com/gomutex/godocx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// WriteTranscript writes a plain-text transcript as a styled docx file
// with the given title, one paragraph per transcript line.
func WriteTranscript(title, text, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	doc.AddParagraph("").AddText(title).Font(fontName).Size(16).Color("000000").Bold(true)
	doc.AddParagraph("")

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		doc.AddParagraph("").AddText(trimmed).Font(fontName).Size(fontSize).Color("000000")
	}

	return doc.SaveTo(outputPath)
}
