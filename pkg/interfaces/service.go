package interfaces

import "context"

// BuildReport summarises one full build: every assembled artifact plus where
// the manifest was written.
type BuildReport struct {
	Artifacts    []*Artifact
	ManifestPath string
	BuildID      string
}

// DriftSummary reports divergence between the persisted manifest and the
// current source tree.
type DriftSummary struct {
	Changed         []string
	Added           []string
	Removed         []string
	AffectedOutputs []string
	HasDrift        bool
}

// ArtifactChange classifies one artifact in a dry-run diff.
type ArtifactChange struct {
	Name   string
	Path   string
	Status string
}

// PipelineService is the high-level surface of the documentation pipeline.
type PipelineService interface {
	// Build regenerates every artifact and replaces the manifest.
	Build(ctx context.Context) (*BuildReport, error)
	// Check compares the persisted manifest against the current sources.
	Check(ctx context.Context) (*DriftSummary, error)
	// Diff assembles artifacts in memory and classifies each against the
	// manifest without writing anything.
	Diff(ctx context.Context) ([]ArtifactChange, error)
}
