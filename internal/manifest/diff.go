package manifest

import (
	"sort"

	"github.com/goliatone/go-docpack/pkg/interfaces"
)

// ArtifactStatus classifies one artifact in a dry-run comparison.
type ArtifactStatus string

const (
	// StatusNew marks an artifact absent from the manifest.
	StatusNew ArtifactStatus = "NEW"
	// StatusUnchanged marks an artifact whose content hash matches.
	StatusUnchanged ArtifactStatus = "UNCHANGED"
	// StatusChanged marks an artifact whose content hash differs.
	StatusChanged ArtifactStatus = "CHANGED"
)

// ArtifactDiff is one row of a dry-run comparison.
type ArtifactDiff struct {
	Name   string
	Path   string
	Status ArtifactStatus
}

// CompareArtifacts classifies freshly assembled artifacts against the
// persisted manifest without writing anything. Artifacts are reported in
// path order.
func CompareArtifacts(m *Manifest, artifacts []*interfaces.Artifact) []ArtifactDiff {
	diffs := make([]ArtifactDiff, 0, len(artifacts))
	for _, artifact := range artifacts {
		diff := ArtifactDiff{Name: artifact.Name, Path: artifact.Path, Status: StatusNew}
		if m != nil {
			if entry, ok := m.Outputs[artifact.Path]; ok {
				if entry.Hash == HashBytes([]byte(artifact.Content)) {
					diff.Status = StatusUnchanged
				} else {
					diff.Status = StatusChanged
				}
			}
		}
		diffs = append(diffs, diff)
	}
	sort.Slice(diffs, func(i, j int) bool { return diffs[i].Path < diffs[j].Path })
	return diffs
}
