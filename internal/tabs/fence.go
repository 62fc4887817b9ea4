package tabs

import (
	"regexp"
	"strings"
)

// fallbackLanguage tags code blocks whose fence carries no language.
const fallbackLanguage = "text"

// fencePattern matches a triple-backtick fence, its language tag on the fence
// line, and the verbatim body up to the next fence. The body keeps interior
// newlines and blank lines; only the line terminators adjacent to the fences
// are excluded.
var fencePattern = regexp.MustCompile("(?s)```([^`\r\n]*)\r?\n(.*?)\r?\n```")

// firstFencedBlock extracts the first fenced code block from an item's inner
// text. Later fences in the same item are ignored.
func firstFencedBlock(content string) (language, code string, ok bool) {
	match := fencePattern.FindStringSubmatch(content)
	if match == nil {
		return "", "", false
	}

	language = strings.TrimSpace(match[1])
	if language == "" {
		language = fallbackLanguage
	}
	return language, match[2], true
}
