package markdown

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gobwas/glob"

	"github.com/goliatone/go-docpack/pkg/interfaces"
)

// LoaderConfig configures how markdown files are discovered within a
// documentation root.
type LoaderConfig struct {
	// BasePath is the root directory where markdown documents live. It is
	// recorded for diagnostics; path resolution happens against FS.
	BasePath string
	// Extension limits discovery to files with this suffix (defaults ".md").
	Extension string
}

// Loader turns filesystem paths into parsed Documents.
type Loader struct {
	fs        fs.FS
	basePath  string
	extension string
}

var _ interfaces.DocumentLoader = (*Loader)(nil)

// NewLoader constructs a Loader over the provided filesystem.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	ext := cfg.Extension
	if strings.TrimSpace(ext) == "" {
		ext = ".md"
	}
	return &Loader{
		fs:        filesystem,
		basePath:  filepath.Clean(cfg.BasePath),
		extension: ext,
	}
}

// Load reads and parses a single markdown document. The returned Document
// carries the sha256 checksum of the raw file bytes.
func (l *Loader) Load(ctx context.Context, path string) (*interfaces.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	rel := filepath.ToSlash(filepath.Clean(path))

	data, err := fs.ReadFile(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("markdown loader read %s: %w", rel, err)
	}

	modified := time.Time{}
	if info, err := fs.Stat(l.fs, rel); err == nil {
		modified = info.ModTime()
	}

	doc, err := BuildDocument(rel, data, modified)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Resolve expands literal paths and glob patterns into a sorted,
// de-duplicated list of document paths. Literal paths are kept as-is even
// when the file is missing so callers can decide how to degrade; glob
// patterns that match nothing simply contribute nothing.
func (l *Loader) Resolve(patterns []string) ([]string, error) {
	seen := map[string]struct{}{}
	var resolved []string

	add := func(path string) {
		path = filepath.ToSlash(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		resolved = append(resolved, path)
	}

	for _, pattern := range patterns {
		pattern = strings.TrimSpace(filepath.ToSlash(pattern))
		if pattern == "" {
			continue
		}
		if !strings.ContainsAny(pattern, "*?[{") {
			add(pattern)
			continue
		}

		matcher, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("markdown loader: compile pattern %q: %w", pattern, err)
		}

		walkErr := fs.WalkDir(l.fs, ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			path = filepath.ToSlash(path)
			if !strings.HasSuffix(path, l.extension) {
				return nil
			}
			if matcher.Match(path) {
				add(path)
			}
			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("markdown loader: walk pattern %q: %w", pattern, walkErr)
		}
	}

	// Filesystem enumeration order must never leak into output ordering.
	sort.Strings(resolved)
	return resolved, nil
}

// BuildDocument assembles a Document from the supplied path, raw content,
// and modification time: frontmatter first, then the section scan over the
// remaining body.
func BuildDocument(path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, fmt.Errorf("markdown loader parse %s: %w", path, err)
	}

	sum := sha256.Sum256(source)

	return &interfaces.Document{
		Path:         filepath.ToSlash(path),
		FrontMatter:  meta,
		Sections:     ExtractSections(body),
		Body:         body,
		Checksum:     sum[:],
		LastModified: modified,
	}, nil
}
