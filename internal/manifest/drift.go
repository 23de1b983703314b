package manifest

import (
	"io/fs"

	"github.com/goliatone/go-docpack/internal/logging"
	"github.com/goliatone/go-docpack/pkg/interfaces"
)

// Resolver expands literal paths and glob patterns into concrete source
// paths. The markdown loader satisfies this.
type Resolver interface {
	Resolve(patterns []string) ([]string, error)
}

// Detector compares a persisted manifest against the current source tree.
// It never mutates the manifest.
type Detector struct {
	sources  fs.FS
	resolver Resolver
	logger   interfaces.Logger
}

// NewDetector constructs a Detector over the documentation filesystem.
func NewDetector(sources fs.FS, resolver Resolver, logger interfaces.Logger) *Detector {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Detector{sources: sources, resolver: resolver, logger: logger}
}

// Detect re-hashes every recorded source and re-scans the configured
// patterns for unknown paths. Removed means the file is gone, changed means
// its hash differs, added means the scan found a path the manifest never
// recorded.
func (d *Detector) Detect(m *Manifest, patterns []string) (*DriftReport, error) {
	report := &DriftReport{}

	affected := map[string]struct{}{}
	markAffected := func(entry SourceEntry) {
		for _, name := range entry.FeedsInto {
			affected[name] = struct{}{}
		}
	}

	for _, path := range m.SourcePaths() {
		entry := m.Sources[path]
		data, err := fs.ReadFile(d.sources, path)
		if err != nil {
			report.Removed = append(report.Removed, path)
			markAffected(entry)
			continue
		}
		if HashBytes(data) != entry.Hash {
			report.Changed = append(report.Changed, path)
			markAffected(entry)
		}
	}

	if d.resolver != nil && len(patterns) > 0 {
		current, err := d.resolver.Resolve(patterns)
		if err != nil {
			return nil, err
		}
		for _, path := range current {
			if _, known := m.Sources[path]; known {
				continue
			}
			if _, err := fs.Stat(d.sources, path); err != nil {
				// Literal patterns resolve even when the file is absent.
				continue
			}
			report.Added = append(report.Added, path)
		}
	}

	for name := range affected {
		report.AffectedOutputs = append(report.AffectedOutputs, name)
	}
	report.Changed = sortedSet(report.Changed)
	report.Added = sortedSet(report.Added)
	report.Removed = sortedSet(report.Removed)
	report.AffectedOutputs = sortedSet(report.AffectedOutputs)
	report.HasDrift = len(report.Changed)+len(report.Added)+len(report.Removed) > 0

	d.logger.Debug("manifest.drift.computed",
		"changed", len(report.Changed),
		"added", len(report.Added),
		"removed", len(report.Removed),
		"drift", report.HasDrift)

	return report, nil
}
