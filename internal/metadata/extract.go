// Package metadata renders the TRANSCRIPT DETAILS header block from a
// source's video.info.json metadata document.
package metadata

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrNotFound means the metadata document does not exist.
	ErrNotFound = errors.New("metadata document not found")
	// ErrInvalidFormat means the metadata document is not valid JSON.
	ErrInvalidFormat = errors.New("metadata document is not valid JSON")
)

// placeholder is rendered for any field the metadata document lacks.
const placeholder = "unknown"

// infoFields are the extracted fields, in render order.
var infoFields = []struct {
	label string
	key   string
}{
	{"Upload Date", "upload_date"},
	{"Channel", "channel"},
	{"Title", "fulltitle"},
	{"URL", "webpage_url_domain"},
	{"Description", "description"},
}

// ExtractFile reads a metadata document from disk and renders the
// header block. A missing file is ErrNotFound, malformed JSON is
// ErrInvalidFormat.
func ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("read metadata %s: %w", path, err)
	}
	return Extract(data)
}

// Extract renders the fixed-order TRANSCRIPT DETAILS block from raw
// metadata JSON. Missing fields render as a placeholder rather than
// failing the extraction.
func Extract(data []byte) (string, error) {
	var info map[string]interface{}
	if err := json.Unmarshal(data, &info); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	var b strings.Builder
	b.WriteString("\n\n**TRANSCRIPT DETAILS**\n\n")
	b.WriteString("*Please do not include this section in the transcript*!\n")

	for _, f := range infoFields {
		fmt.Fprintf(&b, "* %s: %s\n", f.label, stringField(info, f.key))
	}

	b.WriteString("\n\n**TRANSCRIPT**\n")
	return b.String(), nil
}

func stringField(info map[string]interface{}, key string) string {
	v, ok := info[key]
	if !ok || v == nil {
		return placeholder
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	if s == "" {
		return placeholder
	}
	return s
}
