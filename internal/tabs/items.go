package tabs

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// fallbackGroupID names a block whose open tag carries no groupId.
	fallbackGroupID = "language-tabs-group"
)

var (
	tabItemPattern = regexp.MustCompile(`(?s)<TabItem([^>]*)>(.*?)</TabItem>`)

	groupIDAttribute = attributePattern("groupId")
	labelAttribute   = attributePattern("label")
	valueAttribute   = attributePattern("value")
)

func attributePattern(name string) *regexp.Regexp {
	return regexp.MustCompile(name + `\s*=\s*"([^"]+)"`)
}

// attributeValue resolves one attribute in isolation. Each attribute has its
// own fallback at the call site, so a malformed attribute never fails the
// item as a whole.
func attributeValue(pattern *regexp.Regexp, source string) (string, bool) {
	match := pattern.FindStringSubmatch(source)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// tabItem is one parsed <TabItem> entry of a tabs block.
type tabItem struct {
	label     string
	value     string
	language  string
	code      string
	isDefault bool
}

// parseGroup extracts the group identifier from the open tag and every tab
// item from the block's inner content. It returns ok=false when the block has
// no items or when any item lacks a fenced code sample; a single malformed
// item invalidates the whole group so the source block survives untouched.
func parseGroup(openTag, inner string) (groupID string, items []tabItem, ok bool) {
	groupID = fallbackGroupID
	if v, found := attributeValue(groupIDAttribute, openTag); found {
		groupID = v
	}

	for _, match := range tabItemPattern.FindAllStringSubmatch(inner, -1) {
		attributes, content := match[1], match[2]

		label, found := attributeValue(labelAttribute, attributes)
		if !found {
			label, found = attributeValue(valueAttribute, attributes)
		}
		if !found {
			label = fmt.Sprintf("Tab %d", len(items)+1)
		}

		value, found := attributeValue(valueAttribute, attributes)
		if !found {
			value = sanitizeIdentifier(label)
		}

		language, code, found := firstFencedBlock(content)
		if !found {
			return "", nil, false
		}

		items = append(items, tabItem{
			label:     label,
			value:     value,
			language:  language,
			code:      code,
			isDefault: strings.Contains(attributes, "default"),
		})
	}

	if len(items) == 0 {
		return "", nil, false
	}
	return groupID, items, true
}

// activeIndex picks the initially selected tab: the first item flagged as
// default, or the first item when none is.
func activeIndex(items []tabItem) int {
	for i, item := range items {
		if item.isDefault {
			return i
		}
	}
	return 0
}
