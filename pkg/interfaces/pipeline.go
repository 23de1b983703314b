package interfaces

import "context"

// ArtifactKind selects the generator strategy used for an output spec.
type ArtifactKind string

const (
	// ArtifactReference runs the generic budget-constrained condenser.
	ArtifactReference ArtifactKind = "reference"
	// ArtifactChecklist runs the rule / contrastive-example extractor.
	ArtifactChecklist ArtifactKind = "checklist"
	// ArtifactTemplate emits registered static content verbatim.
	ArtifactTemplate ArtifactKind = "template"
)

// OutputSpec declares one artifact to assemble: where its sources come from,
// how large it may grow, and which generator strategy shapes it. Specs are
// supplied by configuration, never derived.
type OutputSpec struct {
	// Name is the artifact identifier; the output filename is <slug>.md.
	Name string
	// Title is the top-level heading written at the head of the artifact.
	// Defaults to Name when empty.
	Title string
	// Sources lists literal paths and glob patterns relative to the docs root.
	Sources []string
	// MaxLines is the hard line budget for the assembled artifact.
	MaxLines int
	// Kind selects the generator. Defaults to ArtifactReference.
	Kind ArtifactKind
	// Lang restricts code example selection to one language tag. Empty
	// disables the filter.
	Lang string
}

// Artifact is one finished output: bounded text plus the source files that
// actually fed it.
type Artifact struct {
	// Name is the spec's artifact identifier.
	Name string
	// Path is the output path relative to the output directory.
	Path string
	// Content is the assembled markdown text.
	Content string
	// Sources lists the resolved source paths, sorted, possibly empty for
	// template artifacts.
	Sources []string
	// Template marks artifacts emitted from registered static content
	// rather than condensed sources.
	Template bool
	// Truncated reports whether the global line cap cut content.
	Truncated bool
}

// Lines returns the artifact's content line count. A trailing newline does
// not count as an extra line.
func (a Artifact) Lines() int {
	if a.Content == "" {
		return 0
	}
	n := 0
	for _, r := range a.Content {
		if r == '\n' {
			n++
		}
	}
	if a.Content[len(a.Content)-1] != '\n' {
		n++
	}
	return n
}

// ArtifactAssembler turns output specs into finished artifacts.
type ArtifactAssembler interface {
	// Assemble produces a single artifact from its spec.
	Assemble(ctx context.Context, spec OutputSpec) (*Artifact, error)
	// AssembleAll produces every configured artifact in spec order.
	AssembleAll(ctx context.Context, specs []OutputSpec) ([]*Artifact, error)
}
