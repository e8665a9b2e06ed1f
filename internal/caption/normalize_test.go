package caption

import (
	"strings"
	"testing"
)

const sampleVTT = `WEBVTT
Kind: captions
Language: en

00:00:01.000 --> 00:00:02.500 align:start position:0%
Hello everyone and
00:00:02.500 --> 00:00:04.000
welcome back to the channel.

00:00:04.000 --> 00:00:05.000
(applause)

00:00:05.000 --> 00:00:07.000
Today we talk about Go.
`

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "full document",
			input: sampleVTT,
			want:  "Hello everyone and welcome back to the channel.\nToday we talk about Go.\n",
		},
		{
			name:  "sentence boundary rule",
			input: "Hello\nworld.\nNext",
			want:  "Hello world.\nNext",
		},
		{
			name:  "no header is not an error",
			input: "00:00:01.000 --> 00:00:02.000\nJust a cue.\n",
			want:  "Just a cue.\n",
		},
		{
			name:  "annotation stripped",
			input: "(upbeat music)\nWelcome.\n",
			want:  "Welcome.\n",
		},
		{
			name:  "crlf line endings",
			input: "WEBVTT\r\nKind: captions\r\nLanguage: en\r\n\r\n00:00:01.000 --> 00:00:02.000\r\nHello\r\nworld.\r\nNext\r\n",
			want:  "Hello world.\nNext ",
		},
		{
			name:  "capitalized parenthetical kept",
			input: "We met at (Berlin) station.\n",
			want:  "We met at (Berlin) station.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalizer{}.Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeRemovesTimecodes(t *testing.T) {
	got := Normalizer{}.Normalize(sampleVTT)
	if strings.Contains(got, "-->") {
		t.Errorf("output still contains timecode marker: %q", got)
	}
	if strings.Contains(got, "align:") {
		t.Errorf("output still contains cue settings: %q", got)
	}
}

func TestNormalizeNoDoubleBlankLines(t *testing.T) {
	input := "First.\n\n\n\n00:00:01.000 --> 00:00:02.000\n\n\nSecond.\n"
	got := Normalizer{}.Normalize(input)
	if strings.Contains(got, "\n\n") {
		t.Errorf("output contains double newline: %q", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		sampleVTT,
		"Hello\nworld.\nNext",
		"",
		"no markup at all, just prose.",
	}

	for _, input := range inputs {
		once := Normalizer{}.Normalize(input)
		twice := Normalizer{}.Normalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestNormalizeKeepAnnotations(t *testing.T) {
	input := "00:00:01.000 --> 00:00:02.000\n(applause)\nThank you.\n"
	got := Normalizer{KeepAnnotations: true}.Normalize(input)
	if !strings.Contains(got, "(applause)") {
		t.Errorf("annotation removed despite KeepAnnotations: %q", got)
	}
}
