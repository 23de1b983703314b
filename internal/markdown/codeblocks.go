package markdown

import (
	"strings"

	"github.com/goliatone/go-docpack/pkg/interfaces"
)

const fenceMarker = "```"

// annotationToken on a fence info line marks the block as carrying
// interactive annotations that must be stripped before display.
const annotationToken = "twoslash"

// splitFences walks section body lines with a two-state scanner ("prose" vs
// "in fenced code") and separates prose from fenced code blocks. Nested
// fences are not modeled: an opening marker inside a fence closes it. An
// unterminated fence swallows the remainder of the section as code rather
// than corrupting prose; this is a documented limitation covered by tests.
func splitFences(lines []string) ([]string, []interfaces.CodeBlock) {
	var prose []string
	var blocks []interfaces.CodeBlock

	inFence := false
	var lang string
	var annotated bool
	var body []string

	closeBlock := func() {
		if len(body) > 0 {
			text := strings.Join(body, "\n")
			blocks = append(blocks, interfaces.CodeBlock{
				Lang:      lang,
				Text:      text,
				Annotated: annotated,
				Lines:     len(body),
			})
		}
		lang = ""
		annotated = false
		body = nil
	}

	for _, line := range lines {
		if isFenceMarker(line) {
			if inFence {
				closeBlock()
			} else {
				lang, annotated = parseFenceInfo(line)
			}
			inFence = !inFence
			continue
		}
		if inFence {
			body = append(body, line)
			continue
		}
		prose = append(prose, line)
	}
	if inFence {
		closeBlock()
	}

	return prose, blocks
}

// isFenceMarker reports whether the line opens or closes a fenced block.
func isFenceMarker(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), fenceMarker)
}

// parseFenceInfo reads the info string of an opening fence: the first token
// is the language tag, and the annotation token may appear anywhere after it.
func parseFenceInfo(line string) (string, bool) {
	info := strings.TrimPrefix(strings.TrimSpace(line), fenceMarker)
	info = strings.TrimLeft(info, "`")
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return "", false
	}

	lang := fields[0]
	annotated := false
	for _, field := range fields {
		if strings.EqualFold(field, annotationToken) {
			annotated = true
			if strings.EqualFold(lang, annotationToken) {
				lang = ""
			}
		}
	}
	return lang, annotated
}
