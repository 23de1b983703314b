package markdown

import (
	"strings"

	"github.com/goliatone/go-docpack/pkg/interfaces"
)

// headingTable tracks the most recent heading seen at each markdown level.
// It is threaded through the scan explicitly so parent resolution stays a
// pure fold over the line sequence.
type headingTable [7]string

// parentFor returns the nearest non-empty heading at a strictly shallower
// level than the given one.
func (t *headingTable) parentFor(level int) string {
	for l := level - 1; l >= 1; l-- {
		if t[l] != "" {
			return t[l]
		}
	}
	return ""
}

// push records a heading at its level and invalidates the deeper entries so a
// later shallower heading supersedes stale context.
func (t *headingTable) push(level int, text string) {
	t[level] = text
	for l := level + 1; l < len(t); l++ {
		t[l] = ""
	}
}

// ExtractSections scans a markdown body (frontmatter already stripped) into
// ordered sections. The scan is a single left-to-right pass: heading lines
// open a new section, everything else accumulates into the current body.
// Heading markers inside fenced code are ignored. A body with no headings
// yields exactly one prologue section at level 0.
func ExtractSections(body []byte) []interfaces.Section {
	lines := strings.Split(strings.ReplaceAll(string(body), "\r\n", "\n"), "\n")

	var table headingTable
	var sections []interfaces.Section

	current := interfaces.Section{}
	var buffer []string
	inFence := false

	flush := func() {
		current.Body = trimBlankEdges(buffer)
		if current.Heading == "" && len(current.Body) == 0 {
			buffer = nil
			return
		}
		current.Prose, current.Code = splitFences(current.Body)
		sections = append(sections, current)
		buffer = nil
	}

	for _, line := range lines {
		if isFenceMarker(line) {
			inFence = !inFence
			buffer = append(buffer, line)
			continue
		}

		level, text, ok := parseHeading(line)
		if !ok || inFence {
			buffer = append(buffer, line)
			continue
		}

		flush()
		table.push(level, text)
		current = interfaces.Section{
			Heading: text,
			Level:   level,
			Parent:  table.parentFor(level),
		}
	}
	flush()

	if len(sections) == 0 {
		sections = append(sections, interfaces.Section{})
	}
	return sections
}

// parseHeading reports whether the line is an ATX heading, returning its
// level (1-6) and trimmed text.
func parseHeading(line string) (int, string, bool) {
	trimmed := strings.TrimLeft(line, " ")
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, "", false
	}
	rest := trimmed[level:]
	if rest != "" && !strings.HasPrefix(rest, " ") {
		return 0, "", false
	}
	return level, strings.TrimSpace(rest), true
}

func trimBlankEdges(lines []string) []string {
	start := 0
	end := len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	if start == end {
		return nil
	}
	return append([]string(nil), lines[start:end]...)
}
