package shared

import (
	"github.com/microcosm-cc/bluemonday"
	"html"
	"strings"
	"unicode"
)

const MaxLoggedTextLen = 128

// UnescapeSlackText undoes Slack's escaping of &, < and >. Everything else is kept as typed.
func UnescapeSlackText(text string) string {
	return strings.TrimSpace(html.UnescapeString(text))
}

// StripHtml reduces markup to plain text; only for display, never for matching.
func StripHtml(htm string) string {
	p := bluemonday.StrictPolicy()
	plain := p.Sanitize(htm)
	plain = html.UnescapeString(plain)
	plain = strings.TrimSpace(plain)
	return plain
}

func TruncateWithEllipsis(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	// https://stackoverflow.com/a/73939904/7479498
	lastSpaceIx := maxLen
	len := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			lastSpaceIx = i
		}
		len++
		if len > maxLen {
			return text[:lastSpaceIx] + "…"
		}
	}
	// If here, string is shorter or equal to maxLen
	return text
}
