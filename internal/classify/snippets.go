package classify

import (
	"strings"

	"github.com/goliatone/go-docpack/pkg/interfaces"
)

// SnippetWindow is the inclusive cleaned-line-count range preferred when
// selecting a code example for condensed output.
type SnippetWindow struct {
	Min int
	Max int
}

// DefaultSnippetWindow is the sweet spot: big enough to show something real,
// small enough to spend little budget.
var DefaultSnippetWindow = SnippetWindow{Min: 2, Max: 15}

// BestSnippet picks the code block most worth keeping from a section: among
// blocks matching the target language, the shortest block whose cleaned line
// count falls inside the window; failing that, the shortest matching block of
// any size. Returns nil when no block matches the language filter. An empty
// lang disables the filter.
func BestSnippet(blocks []interfaces.CodeBlock, lang string) *interfaces.CodeBlock {
	return BestSnippetIn(blocks, lang, DefaultSnippetWindow)
}

// BestSnippetIn selects against an explicit size window.
func BestSnippetIn(blocks []interfaces.CodeBlock, lang string, window SnippetWindow) *interfaces.CodeBlock {
	var inWindow *interfaces.CodeBlock
	var fallback *interfaces.CodeBlock
	inWindowLines := 0
	fallbackLines := 0

	for i := range blocks {
		block := &blocks[i]
		if !langMatches(block.Lang, lang) {
			continue
		}
		cleaned := CleanedLineCount(block.Text)
		if cleaned == 0 {
			continue
		}
		if fallback == nil || cleaned < fallbackLines {
			fallback = block
			fallbackLines = cleaned
		}
		if cleaned < window.Min || cleaned > window.Max {
			continue
		}
		if inWindow == nil || cleaned < inWindowLines {
			inWindow = block
			inWindowLines = cleaned
		}
	}

	if inWindow != nil {
		return inWindow
	}
	return fallback
}

func langMatches(blockLang, target string) bool {
	if strings.TrimSpace(target) == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(blockLang), strings.TrimSpace(target))
}
