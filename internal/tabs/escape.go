package tabs

import "strings"

// Escaping is intentionally narrow: text content needs & < > rewritten,
// attribute values additionally need both quote styles. html.EscapeString is
// not used because it would also rewrite quotes inside code text, changing
// rendered snippets.
var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attributeEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
)

// escapeText escapes s for use as HTML element text content.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// escapeAttribute escapes s for use inside a double- or single-quoted HTML
// attribute value.
func escapeAttribute(s string) string {
	return attributeEscaper.Replace(s)
}
