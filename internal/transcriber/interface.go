package transcriber

import "context"

// Transcriber converts an audio artifact into a plain-text transcript
// file and returns the transcript's path.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
