package telegram

import (
	"regexp"
	"unicode/utf8"
)

var emphasisRun = regexp.MustCompile(`[*_]+`)

// CleanMarkdown drops every run of '*' and '_' characters.
func CleanMarkdown(text string) string {
	return emphasisRun.ReplaceAllString(text, "")
}

// ChunkText splits text into consecutive pieces of at most maxLen characters.
// Joining the pieces yields text unchanged. Empty text yields no pieces.
func ChunkText(text string, maxLen int) []string {
	if text == "" || maxLen <= 0 {
		return nil
	}
	if utf8.RuneCountInString(text) <= maxLen {
		return []string{text}
	}

	var parts []string
	start, count := 0, 0
	for i := range text {
		if count == maxLen {
			parts = append(parts, text[start:i])
			start, count = i, 0
		}
		count++
	}
	return append(parts, text[start:])
}
