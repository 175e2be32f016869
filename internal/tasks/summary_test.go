package tasks

import (
	"strings"
	"testing"
)

func TestSummarizeFirstFiveSentences(t *testing.T) {
	text := "One. Two! Three? Four. Five. Six. Seven."
	got := Summarize(text)
	want := "One. Two! Three? Four. Five."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSummarizeShortText(t *testing.T) {
	got := Summarize("Only one sentence here.")
	if got != "Only one sentence here." {
		t.Fatalf("got %q", got)
	}
}

func TestSummarizeFallback(t *testing.T) {
	if got := Summarize(""); got != "" {
		t.Fatalf("empty text should summarize to empty, got %q", got)
	}
}

func TestSummarizeUnpunctuatedLongText(t *testing.T) {
	text := strings.Repeat("word ", 300) // no sentence punctuation
	got := Summarize(text)
	if got == "" {
		t.Fatal("expected non-empty summary")
	}
	// A single unpunctuated run still splits as one "sentence".
	if len([]rune(got)) > len([]rune(text)) {
		t.Fatalf("summary longer than input")
	}
}
