// Package check scans an mdBook source tree for tabs blocks that the
// preprocessor would pass through unchanged, so authors can find malformed
// markup before it silently ships as literal <Tabs> text.
package check

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/mdbook-language-tabs/internal/tabs"
)

// Checker scans markdown files for unrenderable tabs blocks.
type Checker struct{}

// CheckBook scans every markdown file under the book rooted at path. When
// path contains a book.toml, its [book] src setting picks the source
// directory (default "src"); otherwise path itself is scanned.
func (c *Checker) CheckBook(path string) (*Result, error) {
	src, err := sourceDir(path)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	err = filepath.WalkDir(src, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Skip hidden directories (e.g. .git) entirely.
			if strings.HasPrefix(d.Name(), ".") && filePath != src {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(filePath), ".md") {
			return nil
		}
		result.FilesTotal++
		return c.checkFile(src, filePath, result)
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", src, err)
	}

	return result, nil
}

// checkFile scans one markdown file and appends issues for every block that
// would not render. Markers inside fenced code blocks are documentation
// about the syntax, not uses of it, and are not reported.
func (c *Checker) checkFile(root, filePath string, result *Result) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	relPath, err := filepath.Rel(root, filePath)
	if err != nil {
		relPath = filePath
	}

	content := string(data)
	fenced := fencedSpans(data)

	for _, block := range tabs.Scan(content) {
		if block.Status == tabs.StatusRendered {
			result.BlocksOK++
			continue
		}
		if insideSpan(fenced, block.Start) {
			continue
		}

		message := "tabs block would be left unchanged"
		if block.Status == tabs.StatusUnterminated {
			message = "tabs block has no closing </Tabs> marker"
		}
		result.Issues = append(result.Issues, Issue{
			FilePath: relPath,
			Line:     lineAt(data, block.Start),
			Status:   block.Status.String(),
			Message:  message,
		})
	}

	return nil
}

// bookConfig is the subset of book.toml this command reads.
type bookConfig struct {
	Book struct {
		Src string `toml:"src"`
	} `toml:"book"`
}

// sourceDir resolves the markdown source directory for path. A directory
// without a book.toml is treated as a source directory itself.
func sourceDir(path string) (string, error) {
	data, err := os.ReadFile(filepath.Join(path, "book.toml"))
	if errors.Is(err, fs.ErrNotExist) {
		return path, nil
	}
	if err != nil {
		return "", err
	}

	var cfg bookConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return "", fmt.Errorf("parse book.toml: %w", err)
	}

	src := cfg.Book.Src
	if src == "" {
		src = "src"
	}
	return filepath.Join(path, src), nil
}

// fencedSpans returns the byte ranges covered by fenced code blocks in
// source, per a CommonMark parse.
func fencedSpans(source []byte) [][2]int {
	root := goldmark.New().Parser().Parse(gmtext.NewReader(source))

	var spans [][2]int
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if fenced, ok := n.(*gmast.FencedCodeBlock); ok {
			lines := fenced.Lines()
			if lines.Len() > 0 {
				spans = append(spans, [2]int{lines.At(0).Start, lines.At(lines.Len() - 1).Stop})
			}
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})

	return spans
}

func insideSpan(spans [][2]int, offset int) bool {
	for _, span := range spans {
		if offset >= span[0] && offset < span[1] {
			return true
		}
	}
	return false
}

// lineAt returns the 1-based line number of the byte at offset.
func lineAt(source []byte, offset int) int {
	line := 1
	for _, b := range source[:offset] {
		if b == '\n' {
			line++
		}
	}
	return line
}
