package export

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteTranscript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.docx")

	text := "First sentence of the transcript.\nSecond sentence.\n\nThird one after a gap.\n"
	if err := WriteTranscript("My Talk", text, path); err != nil {
		t.Fatalf("WriteTranscript() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}

	// DOCX files are zip archives; check the magic bytes.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 2 || data[0] != 'P' || data[1] != 'K' {
		t.Errorf("output does not look like a zip archive: % x", data[:2])
	}
}

func TestWriteTranscriptEmptyText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.docx")

	if err := WriteTranscript("Empty", "", path); err != nil {
		t.Fatalf("WriteTranscript() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}
