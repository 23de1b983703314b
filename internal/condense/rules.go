package condense

import (
	"strings"

	"github.com/goliatone/go-docpack/internal/classify"
	"github.com/goliatone/go-docpack/pkg/interfaces"
)

// Rule is a single do/don't statement extracted from prose, filed under the
// resolved heading of its section.
type Rule struct {
	Heading  string
	Polarity classify.Polarity
	Text     string
}

// Example is a code block with an inherited polarity: the polarity of the
// nearest preceding classified prose line in the same section, neutral when
// none precedes it.
type Example struct {
	Heading  string
	Polarity classify.Polarity
	Lang     string
	Text     string
}

// Checklist groups the rules and examples extracted from one document, in
// document order.
type Checklist struct {
	Rules    []Rule
	Examples []Example
}

// ExtractChecklist walks every section of the document classifying prose
// lines by rule polarity and tagging qualifying code examples. Sections whose
// own heading is generic file their findings under the parent heading so the
// final artifact never shows a meaningless title.
func ExtractChecklist(doc *interfaces.Document, lang string) Checklist {
	var list Checklist
	if doc == nil {
		return list
	}

	for _, section := range doc.Sections {
		heading := classify.ResolveHeading(section.Heading, section.Parent)
		scanSection(section, heading, lang, &list)
	}
	return list
}

// scanSection re-walks the raw section body so rules and code blocks stay in
// their original interleaved order; the polarity a code example inherits
// depends on what the prose said immediately before it.
func scanSection(section interfaces.Section, heading, lang string, list *Checklist) {
	last := classify.Neutral
	inFence := false
	fenceHadBody := false
	blockIndex := 0

	// Fences with no body never produce a code block, so the index into
	// section.Code only moves when the closing marker ends a non-empty fence.
	emit := func() {
		if blockIndex >= len(section.Code) {
			return
		}
		block := section.Code[blockIndex]
		blockIndex++
		if !langQualifies(block.Lang, lang) {
			return
		}
		cleaned := classify.StripAnnotations(block.Text)
		if strings.TrimSpace(cleaned) == "" {
			return
		}
		list.Examples = append(list.Examples, Example{
			Heading:  heading,
			Polarity: last,
			Lang:     block.Lang,
			Text:     cleaned,
		})
	}

	for _, line := range section.Body {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if inFence && fenceHadBody {
				emit()
			}
			inFence = !inFence
			fenceHadBody = false
			continue
		}
		if inFence {
			fenceHadBody = true
			continue
		}

		polarity := classify.ClassifyLine(line)
		if polarity == classify.Neutral {
			continue
		}
		last = polarity
		list.Rules = append(list.Rules, Rule{
			Heading:  heading,
			Polarity: polarity,
			Text:     classify.RuleText(line),
		})
	}
	if inFence && fenceHadBody {
		emit()
	}
}

func langQualifies(blockLang, target string) bool {
	if strings.TrimSpace(target) == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(blockLang), strings.TrimSpace(target))
}

// Render emits a checklist under a hard line budget. Rules outrank examples:
// every heading's rules are emitted first, then negative examples are paired
// with the nearest positive example sharing the same resolved heading to
// form wrong/right contrasts, budget permitting.
func (cl Checklist) Render(budget int) []string {
	if budget <= 0 {
		return nil
	}

	var out []string
	room := func(n int) bool { return len(out)+n <= budget }

	for _, heading := range cl.headings() {
		rules := cl.rulesFor(heading)
		pairs, singles := cl.pairsFor(heading)
		if len(rules) == 0 && len(pairs) == 0 && len(singles) == 0 {
			continue
		}
		if !room(1 + len(rules)) {
			break
		}

		out = append(out, "## "+heading)
		for _, rule := range rules {
			out = append(out, ruleLine(rule))
		}

		for _, pair := range pairs {
			lines := pair.render()
			if !room(len(lines)) {
				continue
			}
			out = append(out, lines...)
		}
		for _, single := range singles {
			lines := single.render("**Example:**")
			if !room(len(lines)) {
				continue
			}
			out = append(out, lines...)
		}
	}
	return out
}

func ruleLine(rule Rule) string {
	glyph := "✅"
	if rule.Polarity == classify.Negative {
		glyph = "❌"
	}
	return "- " + glyph + " " + rule.Text
}

// headings returns the resolved headings in first-seen document order.
func (cl Checklist) headings() []string {
	seen := map[string]struct{}{}
	var ordered []string
	add := func(h string) {
		if h == "" {
			return
		}
		if _, ok := seen[h]; ok {
			return
		}
		seen[h] = struct{}{}
		ordered = append(ordered, h)
	}
	for _, rule := range cl.Rules {
		add(rule.Heading)
	}
	for _, example := range cl.Examples {
		add(example.Heading)
	}
	return ordered
}

func (cl Checklist) rulesFor(heading string) []Rule {
	var rules []Rule
	for _, rule := range cl.Rules {
		if rule.Heading == heading {
			rules = append(rules, rule)
		}
	}
	return rules
}

// contrast is a wrong/right example pairing.
type contrast struct {
	wrong Example
	right Example
}

func (p contrast) render() []string {
	lines := p.wrong.render("**Wrong:**")
	return append(lines, p.right.render("**Right:**")...)
}

func (e Example) render(label string) []string {
	lines := []string{label, "```" + e.Lang}
	lines = append(lines, strings.Split(e.Text, "\n")...)
	return append(lines, "```")
}

// pairsFor matches each negative example under the heading with the nearest
// available positive one; examples left unpaired are returned as singles
// (positives only, a lone wrong example teaches nothing).
func (cl Checklist) pairsFor(heading string) ([]contrast, []Example) {
	var negatives, positives []int
	for i, example := range cl.Examples {
		if example.Heading != heading {
			continue
		}
		switch example.Polarity {
		case classify.Negative:
			negatives = append(negatives, i)
		case classify.Positive:
			positives = append(positives, i)
		}
	}

	used := map[int]struct{}{}
	var pairs []contrast
	for _, neg := range negatives {
		best := -1
		bestDist := 0
		for _, pos := range positives {
			if _, taken := used[pos]; taken {
				continue
			}
			dist := pos - neg
			if dist < 0 {
				dist = -dist
			}
			if best == -1 || dist < bestDist {
				best = pos
				bestDist = dist
			}
		}
		if best == -1 {
			continue
		}
		used[best] = struct{}{}
		pairs = append(pairs, contrast{wrong: cl.Examples[neg], right: cl.Examples[best]})
	}

	var singles []Example
	for _, pos := range positives {
		if _, taken := used[pos]; taken {
			continue
		}
		singles = append(singles, cl.Examples[pos])
	}
	return pairs, singles
}
