package tasks

import (
	"regexp"
	"strings"
)

const (
	summarySentences = 5
	summaryFallback  = 600 // characters of raw text when no sentence boundary is found
)

var sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]*`)

// Summarize joins the first five sentences of the document, splitting on
// punctuation boundaries. When splitting yields nothing it falls back to
// the first 600 characters of raw text.
func Summarize(text string) string {
	var sentences []string
	for _, m := range sentenceRe.FindAllString(text, -1) {
		if m = strings.TrimSpace(m); m != "" {
			sentences = append(sentences, m)
		}
		if len(sentences) == summarySentences {
			break
		}
	}
	if len(sentences) > 0 {
		return strings.Join(sentences, " ")
	}

	runes := []rune(text)
	if len(runes) > summaryFallback {
		runes = runes[:summaryFallback]
	}
	return string(runes)
}
