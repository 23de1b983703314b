package assemble

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-docpack/internal/logging"
	"github.com/goliatone/go-docpack/pkg/interfaces"
)

// Writer persists assembled artifacts under an output directory.
type Writer struct {
	outputDir string
	logger    interfaces.Logger
}

// NewWriter creates a Writer rooted at outputDir.
func NewWriter(outputDir string, logger interfaces.Logger) *Writer {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Writer{outputDir: outputDir, logger: logger}
}

// WriteAll writes every artifact, creating the output directory on demand.
// Artifacts are written once at the end of a build, never incrementally.
func (w *Writer) WriteAll(artifacts []*interfaces.Artifact) error {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", w.outputDir, err)
	}
	for _, artifact := range artifacts {
		if err := w.Write(artifact); err != nil {
			return err
		}
	}
	return nil
}

// Write persists a single artifact at its configured path.
func (w *Writer) Write(artifact *interfaces.Artifact) error {
	path := filepath.Join(w.outputDir, filepath.FromSlash(artifact.Path))
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create artifact dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(artifact.Content), 0o644); err != nil {
		return fmt.Errorf("write artifact %s: %w", artifact.Name, err)
	}
	w.logger.Debug("assemble.artifact.written", "artifact", artifact.Name, "path", path)
	return nil
}
