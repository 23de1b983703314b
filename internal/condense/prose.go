package condense

import "strings"

// digestMaxChars caps a digest bullet when a paragraph never terminates a
// sentence.
const digestMaxChars = 120

// condenseProse emits prose under the given line budget. When the non-blank
// line count already fits, the lines are emitted verbatim with blank lines
// removed. Otherwise the prose switches to digest mode: one bullet per
// paragraph carrying the paragraph's first sentence, until the budget runs
// out.
func condenseProse(prose []string, budget int) []string {
	if budget <= 0 {
		return nil
	}

	nonBlank := make([]string, 0, len(prose))
	for _, line := range prose {
		if strings.TrimSpace(line) != "" {
			nonBlank = append(nonBlank, line)
		}
	}
	if len(nonBlank) == 0 {
		return nil
	}
	if len(nonBlank) <= budget {
		return nonBlank
	}

	var out []string
	for _, para := range paragraphs(prose) {
		if len(out) >= budget {
			break
		}
		sentence := firstSentence(para)
		if sentence == "" {
			continue
		}
		out = append(out, "- "+sentence)
	}
	return out
}

// paragraphs splits prose into blank-line-delimited paragraphs, each joined
// into a single string.
func paragraphs(prose []string) []string {
	var paras []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			paras = append(paras, strings.Join(current, " "))
			current = nil
		}
	}

	for _, line := range prose {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, strings.TrimSpace(line))
	}
	flush()
	return paras
}

// firstSentence returns the paragraph text up to and including the first
// sentence terminator. Paragraphs with no terminator are truncated to
// digestMaxChars.
func firstSentence(para string) string {
	trimmed := strings.TrimSpace(para)
	if trimmed == "" {
		return ""
	}
	for i, r := range trimmed {
		switch r {
		case '.', '!', '?':
			return trimmed[:i+1]
		}
	}
	if runes := []rune(trimmed); len(runes) > digestMaxChars {
		return string(runes[:digestMaxChars])
	}
	return trimmed
}
