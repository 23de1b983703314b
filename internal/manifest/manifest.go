package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"time"
)

const (
	// FormatVersion is bumped on incompatible manifest layout changes.
	FormatVersion = 1
	// TemplateSentinel marks outputs emitted from registered static content.
	TemplateSentinel = "template"
)

// SourceEntry records one hashed source file and the artifacts it feeds.
type SourceEntry struct {
	Hash      string   `json:"hash"`
	FeedsInto []string `json:"feedsInto"`
}

// OutputEntry records one hashed artifact file, its line count, and the
// source paths that produced it. GeneratedFrom holds the template sentinel
// for template artifacts; a condensed artifact whose sources all failed to
// load records an empty list.
type OutputEntry struct {
	Hash          string   `json:"hash"`
	Lines         int      `json:"lines"`
	GeneratedFrom []string `json:"generatedFrom"`
}

// Manifest is the durable integrity record of one build. It is replaced
// wholesale on every build and read-only during drift checks.
type Manifest struct {
	Version      int                    `json:"version"`
	BuildID      string                 `json:"buildId"`
	SourceRepo   string                 `json:"sourceRepo"`
	SourceCommit string                 `json:"sourceCommit"`
	BuildDate    time.Time              `json:"buildDate"`
	Sources      map[string]SourceEntry `json:"sources"`
	Outputs      map[string]OutputEntry `json:"outputs"`
}

// New returns an empty manifest at the current format version.
func New() *Manifest {
	return &Manifest{
		Version: FormatVersion,
		Sources: map[string]SourceEntry{},
		Outputs: map[string]OutputEntry{},
	}
}

// SourcePaths returns the recorded source paths in sorted order.
func (m *Manifest) SourcePaths() []string {
	paths := make([]string, 0, len(m.Sources))
	for path := range m.Sources {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// OutputPaths returns the recorded output paths in sorted order.
func (m *Manifest) OutputPaths() []string {
	paths := make([]string, 0, len(m.Outputs))
	for path := range m.Outputs {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// normalize sorts every entry's path/name sets so marshaled output is
// deterministic regardless of the order entries were recorded in.
func (m *Manifest) normalize() {
	for path, entry := range m.Sources {
		entry.FeedsInto = sortedSet(entry.FeedsInto)
		m.Sources[path] = entry
	}
	for path, entry := range m.Outputs {
		entry.GeneratedFrom = sortedSet(entry.GeneratedFrom)
		m.Outputs[path] = entry
	}
}

// DriftReport classifies the divergence between a persisted manifest and the
// current source tree.
type DriftReport struct {
	Changed []string `json:"changed"`
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
	// AffectedOutputs is the union of FeedsInto over every changed or
	// removed source.
	AffectedOutputs []string `json:"affectedOutputs"`
	HasDrift        bool     `json:"hasDrift"`
}

// HashBytes returns the hex sha256 digest of data.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func sortedSet(values []string) []string {
	if len(values) == 0 {
		return values
	}
	seen := map[string]struct{}{}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
