package bot

import (
	"strings"
	"unicode/utf8"
)

const maxMessageLength = 4096

// splitText cuts text into chunks of at most limit runes, preferring line
// boundaries.
func splitText(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var (
		parts   []string
		current strings.Builder
		size    int
		lines   int
	)

	// Telegram rejects blank messages, so blank chunks are dropped.
	flush := func() {
		if strings.TrimSpace(current.String()) != "" {
			parts = append(parts, current.String())
		}
		current.Reset()
		size, lines = 0, 0
	}

	for _, line := range strings.Split(text, "\n") {
		for utf8.RuneCountInString(line) > limit {
			flush()
			runes := []rune(line)
			parts = append(parts, string(runes[:limit]))
			line = string(runes[limit:])
		}

		n := utf8.RuneCountInString(line)
		if lines > 0 && size+1+n > limit {
			flush()
		}
		if lines > 0 {
			current.WriteByte('\n')
			size++
		}
		current.WriteString(line)
		size += n
		lines++
	}
	flush()

	return parts
}
