// Package tabs rewrites Docusaurus-style <Tabs> blocks embedded in markdown
// chapter bodies into self-contained semantic HTML: a tab list plus one panel
// per tab, each panel carrying the tab's fenced code sample.
//
// The rewrite is conservative. A block that cannot be rendered (no items, or
// an item without a fenced code sample) is left in the output byte for byte;
// an unterminated block causes everything from its open marker to the end of
// the body to pass through unchanged. Content it cannot parse never fails a
// build.
package tabs

import "strings"

const (
	openMarker  = "<Tabs"
	closeMarker = "</Tabs>"
)

// Rewrite replaces every recognized tabs block in content with generated
// HTML and returns the new body. Text outside blocks is copied through
// verbatim. Each rendered block is emitted with one leading and two trailing
// newlines so the surrounding markdown keeps paragraph separation.
//
// Scanning is marker-pair based and does not nest: the first close marker
// after an open tag terminates the block, even if another open marker
// appeared in between.
func Rewrite(content string) string {
	var out strings.Builder
	out.Grow(len(content))

	search := 0
	for {
		rel := strings.Index(content[search:], openMarker)
		if rel < 0 {
			break
		}
		start := search + rel
		out.WriteString(content[search:start])

		openEnd, closeStart, terminated := blockBounds(content, start)
		if !terminated {
			// Unterminated block: copy the remainder through untouched.
			out.WriteString(content[start:])
			return out.String()
		}

		openTag := content[start : openEnd+1]
		inner := content[openEnd+1 : closeStart]

		if html, ok := renderGroup(openTag, inner); ok {
			out.WriteByte('\n')
			out.WriteString(strings.TrimSpace(html))
			out.WriteString("\n\n")
		} else {
			out.WriteString(content[start : closeStart+len(closeMarker)])
		}

		search = closeStart + len(closeMarker)
	}

	out.WriteString(content[search:])
	return out.String()
}

// blockBounds locates the end of the open tag ('>') and the start of the
// close marker for the block opening at start. terminated is false when
// either is missing before end of input.
func blockBounds(content string, start int) (openEnd, closeStart int, terminated bool) {
	openEndRel := strings.IndexByte(content[start:], '>')
	if openEndRel < 0 {
		return 0, 0, false
	}
	openEnd = start + openEndRel

	closeRel := strings.Index(content[openEnd+1:], closeMarker)
	if closeRel < 0 {
		return 0, 0, false
	}
	return openEnd, openEnd + 1 + closeRel, true
}

// BlockStatus describes what the rewriter would do with one scanned block.
type BlockStatus int

const (
	// StatusRendered means the block parses and would be replaced with HTML.
	StatusRendered BlockStatus = iota
	// StatusPassedThrough means the block is malformed (no items, or an item
	// without a fenced code sample) and would survive unchanged.
	StatusPassedThrough
	// StatusUnterminated means the block's open tag or close marker is
	// missing; the rest of the body would be copied through verbatim.
	StatusUnterminated
)

// String returns the human-readable status name.
func (s BlockStatus) String() string {
	switch s {
	case StatusRendered:
		return "rendered"
	case StatusPassedThrough:
		return "passed-through"
	case StatusUnterminated:
		return "unterminated"
	default:
		return "unknown"
	}
}

// Block reports one tabs block found by Scan. Start and End are byte offsets
// into the scanned content, End exclusive.
type Block struct {
	Start  int
	End    int
	Status BlockStatus
}

// Scan locates every tabs block in content and reports how Rewrite would
// treat it, without rewriting anything. Offsets and dispositions follow the
// same marker-pair scan as Rewrite.
func Scan(content string) []Block {
	var blocks []Block

	search := 0
	for {
		rel := strings.Index(content[search:], openMarker)
		if rel < 0 {
			break
		}
		start := search + rel

		openEnd, closeStart, terminated := blockBounds(content, start)
		if !terminated {
			blocks = append(blocks, Block{Start: start, End: len(content), Status: StatusUnterminated})
			return blocks
		}

		status := StatusPassedThrough
		if _, ok := renderGroup(content[start:openEnd+1], content[openEnd+1:closeStart]); ok {
			status = StatusRendered
		}
		end := closeStart + len(closeMarker)
		blocks = append(blocks, Block{Start: start, End: end, Status: status})

		search = end
	}

	return blocks
}
