package check

import (
	"fmt"
	"io"
)

// FormatText writes a human-readable report to w.
func FormatText(w io.Writer, result *Result) {
	for _, issue := range result.Issues {
		fmt.Fprintln(w, issue.String())
	}

	if result.HasIssues() {
		fmt.Fprintf(w, "\n%d problem(s) in %d file(s) scanned (%d block(s) ok)\n",
			len(result.Issues), result.FilesTotal, result.BlocksOK)
		return
	}
	fmt.Fprintf(w, "%d file(s) scanned, %d tabs block(s) ok\n", result.FilesTotal, result.BlocksOK)
}
