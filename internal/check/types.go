package check

import "fmt"

// Issue is one tabs block the preprocessor would leave unchanged.
type Issue struct {
	FilePath string // Path of the markdown file, relative to the scan root
	Line     int    // 1-based line of the block's open marker
	Status   string // Block disposition ("passed-through", "unterminated")
	Message  string // Brief description of the problem
}

// String formats the issue as file:line: message.
func (i Issue) String() string {
	return fmt.Sprintf("%s:%d: %s (%s)", i.FilePath, i.Line, i.Message, i.Status)
}

// Result contains all issues found during a scan.
type Result struct {
	Issues     []Issue
	FilesTotal int // Markdown files scanned
	BlocksOK   int // Blocks that would render
}

// HasIssues reports whether any block would be left unchanged.
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}
