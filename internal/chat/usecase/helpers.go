package usecase

import "strings"

// clipForTTS bounds text to the synthesis character limit. Truncation cuts at
// the last word boundary before the limit and appends an ellipsis marker.
func clipForTTS(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	clipped := string(runes[:limit])
	if idx := strings.LastIndex(clipped, " "); idx > 0 {
		clipped = clipped[:idx]
	}
	return clipped + Ellipsis
}
