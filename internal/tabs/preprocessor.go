package tabs

import "git.home.luguber.info/inful/mdbook-language-tabs/internal/mdbook"

// Preprocessor is the mdBook-facing surface of the tabs rewriter.
type Preprocessor struct{}

// Name returns the preprocessor name used in book.toml.
func (Preprocessor) Name() string { return "language-tabs" }

// Supports reports whether the rewriter applies to the given renderer. The
// emitted markup is HTML, so only the html renderer is supported.
func (Preprocessor) Supports(renderer string) bool { return renderer == "html" }

// Run rewrites every chapter body of the book in place. Chapters are visited
// strictly sequentially in source order; each body is an independent, pure
// rewrite.
func (Preprocessor) Run(book *mdbook.Book) {
	mdbook.Walk(book, Rewrite)
}
