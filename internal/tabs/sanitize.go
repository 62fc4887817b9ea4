package tabs

import "strings"

// fallbackIdentifier is used when sanitization leaves nothing behind.
const fallbackIdentifier = "language-tab"

// sanitizeIdentifier reduces raw text to an id safe for DOM ids and data
// attributes: lowercase ASCII alphanumerics, with every run of other
// characters collapsed to a single '-' and leading/trailing separators
// trimmed. An input that sanitizes to nothing yields fallbackIdentifier.
func sanitizeIdentifier(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	previousWasSeparator := false
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			previousWasSeparator = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
			previousWasSeparator = false
		default:
			if !previousWasSeparator {
				b.WriteByte('-')
				previousWasSeparator = true
			}
		}
	}

	sanitized := strings.Trim(b.String(), "-")
	if sanitized == "" {
		return fallbackIdentifier
	}
	return sanitized
}
