package interfaces

import (
	"context"
	"time"
)

// FrontMatter captures the structured metadata block prefixing a document's
// body. Well-known keys are promoted to typed fields; everything else is
// preserved in Custom and the merged Raw view.
type FrontMatter struct {
	Title       string
	Description string
	Tags        []string
	Draft       bool
	Custom      map[string]any
	Raw         map[string]any
}

// CodeBlock is a fenced code example extracted from a section body.
type CodeBlock struct {
	// Lang is the language tag declared on the opening fence, possibly empty.
	Lang string
	// Text is the raw block content between the fences, annotations included.
	Text string
	// Annotated reports whether the fence carried the interactive-annotation
	// marker (twoslash) and therefore needs cleaning before display.
	Annotated bool
	// Lines is the newline-delimited line count of Text, always >= 1.
	Lines int
}

// Section is the content between one heading and the next, carrying the
// resolved parent heading so consumers never lose hierarchy context.
type Section struct {
	// Heading is the section's own heading text, empty for the pre-heading
	// prologue of a document.
	Heading string
	// Level is the markdown heading depth 1-6, or 0 for the prologue.
	Level int
	// Parent is the nearest earlier heading at a strictly shallower level
	// that has not been superseded by an intervening heading.
	Parent string
	// Body holds every raw line of the section, code fences included.
	Body []string
	// Prose holds the lines of Body that sit outside fenced code.
	Prose []string
	// Code lists the fenced blocks found in Body, in document order.
	Code []CodeBlock
}

// Document is an immutable parsed markdown source file.
type Document struct {
	// Path is the slash-separated path relative to the documentation root.
	Path string
	// FrontMatter is the parsed metadata prefix, zero-valued when absent.
	FrontMatter FrontMatter
	// Sections is the ordered heading hierarchy extracted from Body.
	Sections []Section
	// Body is the raw markdown body with the frontmatter block stripped.
	Body []byte
	// Checksum is the sha256 digest of the raw file contents.
	Checksum []byte
	// LastModified mirrors the source file's modification time.
	LastModified time.Time
}

// BodyLines returns the total raw body line count across all sections.
func (d *Document) BodyLines() int {
	total := 0
	for _, section := range d.Sections {
		total += len(section.Body)
	}
	return total
}

// MarkdownParser renders markdown into HTML. Used by the preview surface,
// not by the condensation pipeline.
type MarkdownParser interface {
	Parse(markdown []byte) ([]byte, error)
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions tune HTML rendering behaviour.
type ParseOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// DocumentLoader resolves and parses markdown documents beneath a
// documentation root.
type DocumentLoader interface {
	// Load reads and parses a single document relative to the root.
	Load(ctx context.Context, path string) (*Document, error)
	// Resolve expands a list of literal paths and glob patterns into a
	// lexicographically sorted, de-duplicated path list.
	Resolve(patterns []string) ([]string, error)
}
