package tabs

import (
	"fmt"
	"strings"
)

// renderGroup turns one block's open tag and inner content into the
// replacement HTML. ok is false when the block has no renderable content and
// must be passed through unchanged.
func renderGroup(openTag, inner string) (html string, ok bool) {
	groupID, items, ok := parseGroup(openTag, inner)
	if !ok {
		return "", false
	}

	active := activeIndex(items)
	group := sanitizeIdentifier(groupID)

	var b strings.Builder
	writeGroupStart(&b, group)
	writeTabButtons(&b, items, active, group)
	writeTabPanels(&b, items, active, group)
	writeGroupEnd(&b)
	return b.String(), true
}

// identifierPair derives the stable button/panel id pair linking one tab's
// control to its panel. Both are unique within a block as long as item values
// sanitize to distinct identifiers.
func identifierPair(group string, item tabItem) (buttonID, panelID string) {
	value := sanitizeIdentifier(item.value)
	buttonID = fmt.Sprintf("language-tabs-%s-button-%s", group, value)
	panelID = fmt.Sprintf("language-tabs-%s-panel-%s", group, value)
	return buttonID, panelID
}

func writeGroupStart(b *strings.Builder, group string) {
	fmt.Fprintf(b, "<div class=\"language-tabs\" data-language-tabs-group=\"%s\">\n",
		escapeAttribute(group))
	b.WriteString("<div class=\"language-tabs-list\" role=\"tablist\" aria-label=\"Programming language tabs\">\n")
}

func writeTabButtons(b *strings.Builder, items []tabItem, active int, group string) {
	for i, item := range items {
		activeClass, selected := "", "false"
		if i == active {
			activeClass, selected = " is-active", "true"
		}
		buttonID, panelID := identifierPair(group, item)

		fmt.Fprintf(b,
			"<button class=\"language-tabs-trigger%s\" type=\"button\" role=\"tab\" id=\"%s\" aria-controls=\"%s\" aria-selected=\"%s\" data-language-tabs-value=\"%s\">%s</button>\n",
			activeClass,
			escapeAttribute(buttonID),
			escapeAttribute(panelID),
			selected,
			escapeAttribute(item.value),
			escapeText(item.label),
		)
	}

	b.WriteString("</div>\n")
	b.WriteString("<div class=\"language-tabs-panels\">\n")
}

func writeTabPanels(b *strings.Builder, items []tabItem, active int, group string) {
	for i, item := range items {
		activeClass := ""
		if i == active {
			activeClass = " is-active"
		}
		buttonID, panelID := identifierPair(group, item)

		// Interior newlines become &#10; so the code sample stays a single
		// text node even after markdown renderers re-process the output.
		encodedCode := strings.ReplaceAll(escapeText(item.code), "\n", "&#10;")

		fmt.Fprintf(b,
			"<section class=\"language-tabs-panel%s\" role=\"tabpanel\" id=\"%s\" aria-labelledby=\"%s\" data-language-tabs-value=\"%s\">\n",
			activeClass,
			escapeAttribute(panelID),
			escapeAttribute(buttonID),
			escapeAttribute(item.value),
		)
		fmt.Fprintf(b, "<pre><code class=\"language-%s\">%s</code></pre>\n",
			escapeAttribute(item.language), encodedCode)
		b.WriteString("</section>\n")
	}

	b.WriteString("</div>\n")
}

func writeGroupEnd(b *strings.Builder) {
	b.WriteString("</div>\n")
}
