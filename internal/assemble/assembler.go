package assemble

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-docpack/internal/condense"
	"github.com/goliatone/go-docpack/internal/logging"
	"github.com/goliatone/go-docpack/pkg/interfaces"
)

// minDocBudget mirrors the section floor one level up: a document that
// receives any budget receives at least enough to say something.
const minDocBudget = 3

// titleLines is the reservation for the artifact's top-level heading and the
// blank line after it.
const titleLines = 2

var (
	// ErrSpecNameRequired is returned for specs without an artifact name.
	ErrSpecNameRequired = errors.New("assemble: output spec requires a name")
	// ErrNoTemplate is returned when a template-kind spec has no registered
	// static content.
	ErrNoTemplate = errors.New("assemble: no static content registered for template artifact")
)

// Assembler builds artifacts from output specs.
type Assembler struct {
	loader    interfaces.DocumentLoader
	condenser *condense.Condenser
	logger    interfaces.Logger
	templates map[string]string
}

var _ interfaces.ArtifactAssembler = (*Assembler)(nil)

// Option configures an Assembler.
type Option func(*Assembler)

// WithLogger injects the assembly logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(a *Assembler) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithStaticContent registers the byte-for-byte content of a template-kind
// artifact. Template artifacts carry no condensation logic but are hashed by
// the integrity system like every other output.
func WithStaticContent(name, content string) Option {
	return func(a *Assembler) {
		a.templates[name] = content
	}
}

// New constructs an Assembler over the provided document loader.
func New(loader interfaces.DocumentLoader, opts ...Option) *Assembler {
	a := &Assembler{
		loader:    loader,
		logger:    logging.NoOp(),
		templates: map[string]string{},
	}
	for _, opt := range opts {
		opt(a)
	}
	a.condenser = condense.New(a.logger)
	return a
}

// AssembleAll produces every configured artifact in spec order. Individual
// spec failures abort the run; per-source failures inside a spec do not.
func (a *Assembler) AssembleAll(ctx context.Context, specs []interfaces.OutputSpec) ([]*interfaces.Artifact, error) {
	artifacts := make([]*interfaces.Artifact, 0, len(specs))
	for _, spec := range specs {
		artifact, err := a.Assemble(ctx, spec)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}
	return artifacts, nil
}

// Assemble produces a single artifact from its spec.
func (a *Assembler) Assemble(ctx context.Context, spec interfaces.OutputSpec) (*interfaces.Artifact, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return nil, ErrSpecNameRequired
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kind := spec.Kind
	if kind == "" {
		kind = interfaces.ArtifactReference
	}

	var lines []string
	var sources []string
	var err error

	switch kind {
	case interfaces.ArtifactTemplate:
		lines, err = a.templateLines(spec)
	case interfaces.ArtifactChecklist:
		lines, sources, err = a.checklistLines(ctx, spec)
	default:
		lines, sources, err = a.referenceLines(ctx, spec)
	}
	if err != nil {
		return nil, err
	}

	artifact := &interfaces.Artifact{
		Name:     spec.Name,
		Path:     ArtifactPath(spec.Name),
		Sources:  sources,
		Template: kind == interfaces.ArtifactTemplate,
	}
	artifact.Content, artifact.Truncated = capLines(lines, spec.MaxLines)

	a.logger.Info("assemble.artifact.completed",
		"artifact", spec.Name,
		"sources", len(sources),
		"lines", artifact.Lines(),
		"truncated", artifact.Truncated)

	return artifact, nil
}

// loadSources resolves the spec's patterns and parses every readable
// document. Unreadable files are skipped with a warning so one bad source
// cannot sink the whole artifact.
func (a *Assembler) loadSources(ctx context.Context, spec interfaces.OutputSpec) ([]*interfaces.Document, []string, error) {
	paths, err := a.loader.Resolve(spec.Sources)
	if err != nil {
		return nil, nil, fmt.Errorf("assemble %s: %w", spec.Name, err)
	}

	docs := make([]*interfaces.Document, 0, len(paths))
	loaded := make([]string, 0, len(paths))
	for _, path := range paths {
		doc, err := a.loader.Load(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return nil, nil, ctx.Err()
			}
			logging.WithBuildContext(a.logger, path, spec.Name, "load").
				Warn("assemble.source.skipped", "error", err)
			continue
		}
		docs = append(docs, doc)
		loaded = append(loaded, path)
	}
	return docs, loaded, nil
}

// referenceLines runs the generic condenser: the artifact budget minus the
// title reservation is split across documents proportionally to raw body
// line counts, and each document is condensed under its share.
func (a *Assembler) referenceLines(ctx context.Context, spec interfaces.OutputSpec) ([]string, []string, error) {
	docs, sources, err := a.loadSources(ctx, spec)
	if err != nil {
		return nil, nil, err
	}

	lines := titleBlock(spec)

	total := 0
	for _, doc := range docs {
		total += doc.BodyLines()
	}
	if total == 0 {
		return lines, sources, nil
	}

	budget := spec.MaxLines - titleLines
	remaining := budget

	for _, doc := range docs {
		if remaining <= 0 {
			logging.WithBuildContext(a.logger, doc.Path, spec.Name, "condense").
				Warn("assemble.document.dropped", "reason", "budget exhausted")
			continue
		}
		share := budget * doc.BodyLines() / total
		if share < minDocBudget {
			share = minDocBudget
		}
		if share > remaining {
			share = remaining
		}
		block := a.condenser.Condense(doc, condense.Options{Budget: share, Lang: spec.Lang})
		lines = append(lines, block...)
		remaining -= len(block)
	}
	return lines, sources, nil
}

// checklistLines merges the rule/example extraction of every source document
// and renders one checklist under the artifact budget.
func (a *Assembler) checklistLines(ctx context.Context, spec interfaces.OutputSpec) ([]string, []string, error) {
	docs, sources, err := a.loadSources(ctx, spec)
	if err != nil {
		return nil, nil, err
	}

	var merged condense.Checklist
	for _, doc := range docs {
		list := condense.ExtractChecklist(doc, spec.Lang)
		merged.Rules = append(merged.Rules, list.Rules...)
		merged.Examples = append(merged.Examples, list.Examples...)
	}

	lines := titleBlock(spec)
	lines = append(lines, merged.Render(spec.MaxLines-titleLines)...)
	return lines, sources, nil
}

func (a *Assembler) templateLines(spec interfaces.OutputSpec) ([]string, error) {
	content, ok := a.templates[spec.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoTemplate, spec.Name)
	}
	return strings.Split(strings.TrimRight(content, "\n"), "\n"), nil
}

func titleBlock(spec interfaces.OutputSpec) []string {
	title := strings.TrimSpace(spec.Title)
	if title == "" {
		title = spec.Name
	}
	return []string{"# " + title, ""}
}

// ArtifactPath maps an artifact name onto its output filename. Names are
// slug-normalized so "TypeScript Reference" and "typescript-reference" alias
// to the same output.
func ArtifactPath(name string) string {
	normalized, err := slug.Normalize(strings.TrimSpace(name))
	if err != nil || normalized == "" {
		normalized = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
	}
	return normalized + ".md"
}
