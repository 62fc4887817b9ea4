// Package mdbook implements the mdBook preprocessor protocol: the JSON shapes
// mdBook pipes to a preprocessor's stdin, the book it expects back on stdout,
// and helpers for walking chapter content.
package mdbook

import (
	"encoding/json"
	"fmt"
)

// Context is the preprocessor context mdBook sends ahead of the book. Config
// is kept raw; this preprocessor takes no configuration from book.toml.
type Context struct {
	Root          string          `json:"root"`
	Config        json.RawMessage `json:"config"`
	Renderer      string          `json:"renderer"`
	MdbookVersion string          `json:"mdbook_version"`
}

// Book is the serialized book tree: an ordered list of top-level items.
type Book struct {
	Sections []BookItem
}

// bookWire mirrors mdBook's Book serialization, including the
// __non_exhaustive marker field it emits and expects back.
type bookWire struct {
	Sections      []BookItem `json:"sections"`
	NonExhaustive *struct{}  `json:"__non_exhaustive"`
}

// MarshalJSON serializes the book in the exact shape mdBook deserializes.
func (b Book) MarshalJSON() ([]byte, error) {
	return json.Marshal(bookWire{Sections: b.Sections})
}

// UnmarshalJSON deserializes a book from mdBook's serialized form.
func (b *Book) UnmarshalJSON(data []byte) error {
	var wire bookWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	b.Sections = wire.Sections
	return nil
}

// BookItem is mdBook's tagged union of book entries: a chapter, a part
// title, or a separator. Exactly one variant is set.
type BookItem struct {
	Chapter   *Chapter
	PartTitle string
	Separator bool
}

// Chapter is one content-bearing node of the book tree. Number, Path and
// SourcePath are nullable in the wire form (draft and unnumbered chapters).
type Chapter struct {
	Name        string     `json:"name"`
	Content     string     `json:"content"`
	Number      []uint32   `json:"number"`
	SubItems    []BookItem `json:"sub_items"`
	Path        *string    `json:"path"`
	SourcePath  *string    `json:"source_path"`
	ParentNames []string   `json:"parent_names"`
}

// MarshalJSON emits the externally-tagged form mdBook uses: a bare
// "Separator" string, or a single-key object for Chapter / PartTitle.
func (i BookItem) MarshalJSON() ([]byte, error) {
	switch {
	case i.Chapter != nil:
		return json.Marshal(struct {
			Chapter *Chapter `json:"Chapter"`
		}{i.Chapter})
	case i.Separator:
		return json.Marshal("Separator")
	default:
		return json.Marshal(struct {
			PartTitle string `json:"PartTitle"`
		}{i.PartTitle})
	}
}

// UnmarshalJSON decodes the externally-tagged form.
func (i *BookItem) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != "Separator" {
			return fmt.Errorf("unknown book item variant %q", tag)
		}
		*i = BookItem{Separator: true}
		return nil
	}

	var tagged struct {
		Chapter   *Chapter `json:"Chapter"`
		PartTitle *string  `json:"PartTitle"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("decode book item: %w", err)
	}
	switch {
	case tagged.Chapter != nil:
		*i = BookItem{Chapter: tagged.Chapter}
	case tagged.PartTitle != nil:
		*i = BookItem{PartTitle: *tagged.PartTitle}
	default:
		return fmt.Errorf("book item has no recognized variant")
	}
	return nil
}

// Walk applies fn to every chapter body in the book, depth-first in source
// order, replacing each body with fn's result. Separators and part titles
// carry no content and are skipped without recursion. Nothing but chapter
// content is modified.
func Walk(book *Book, fn func(string) string) {
	walkItems(book.Sections, fn)
}

func walkItems(items []BookItem, fn func(string) string) {
	for idx := range items {
		chapter := items[idx].Chapter
		if chapter == nil {
			continue
		}
		chapter.Content = fn(chapter.Content)
		walkItems(chapter.SubItems, fn)
	}
}
