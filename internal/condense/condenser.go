package condense

import (
	"strings"

	"github.com/goliatone/go-docpack/internal/classify"
	"github.com/goliatone/go-docpack/internal/logging"
	"github.com/goliatone/go-docpack/pkg/interfaces"
)

// minSectionBudget is the floor applied to every section that receives any
// budget at all; below three lines a section cannot say anything useful.
const minSectionBudget = 3

// proseShare and codeShare split a section's budget between prose and code.
const (
	proseShare = 60
	codeShare  = 100 - proseShare
)

// Options tune a single condensation run.
type Options struct {
	// Budget is the maximum number of output lines for the document.
	Budget int
	// Lang restricts code example selection; empty disables the filter.
	Lang string
}

// Condenser compresses documents under hard line budgets.
type Condenser struct {
	logger interfaces.Logger
}

// New constructs a Condenser. A nil logger falls back to no-op.
func New(logger interfaces.Logger) *Condenser {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Condenser{logger: logger}
}

// Condense reduces a document to at most opts.Budget lines. The budget is
// distributed across sections proportionally to each section's raw body line
// count, with a floor of three lines per section and a ceiling of whatever
// remains globally. Sections are processed in order and the loop stops once
// the remainder reaches zero; later sections are dropped entirely, which is
// a deliberate content-loss tradeoff under tight budgets, not an error.
func (c *Condenser) Condense(doc *interfaces.Document, opts Options) []string {
	if doc == nil || opts.Budget <= 0 {
		return nil
	}

	total := doc.BodyLines()
	if total == 0 {
		return nil
	}

	var out []string
	remaining := opts.Budget

	for _, section := range doc.Sections {
		if remaining <= 0 {
			c.logger.Debug("condense.section.dropped",
				"path", doc.Path, "heading", section.Heading)
			continue
		}

		share := opts.Budget * len(section.Body) / total
		if share < minSectionBudget {
			share = minSectionBudget
		}
		if share > remaining {
			share = remaining
		}

		lines := c.CondenseSection(section, share, opts.Lang)
		out = append(out, lines...)
		remaining -= len(lines)
	}

	return out
}

// CondenseSection reduces one section to at most budget lines: heading
// first, then prose under 60% of the remainder, then at most one code
// example under the rest.
func (c *Condenser) CondenseSection(section interfaces.Section, budget int, lang string) []string {
	if budget <= 0 {
		return nil
	}

	var out []string
	if section.Heading != "" {
		out = append(out, headingLine(section))
	}

	remaining := budget - len(out)
	if remaining <= 0 {
		return out
	}

	proseBudget := remaining * proseShare / 100
	codeBudget := remaining - proseBudget

	out = append(out, condenseProse(section.Prose, proseBudget)...)

	// Code is attempted only when its share can hold more than the fences.
	if codeBudget <= 2 {
		return out
	}
	remaining = budget - len(out)
	if remaining <= 2 {
		return out
	}

	block := classify.BestSnippet(section.Code, lang)
	if block == nil {
		return out
	}
	cleaned := classify.StripAnnotations(block.Text)
	cleanedLines := classify.CleanedLineCount(block.Text)
	if cleanedLines == 0 || cleanedLines+2 > remaining {
		// Does not fit; omitted silently rather than truncated mid-block.
		return out
	}

	out = append(out, "```"+block.Lang)
	out = append(out, strings.Split(cleaned, "\n")...)
	out = append(out, "```")
	return out
}

// headingLine renders a section heading, demoting level-1 headings so they
// never compete with the artifact title.
func headingLine(section interfaces.Section) string {
	level := section.Level
	if level < 2 {
		level = 2
	}
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level) + " " + section.Heading
}
