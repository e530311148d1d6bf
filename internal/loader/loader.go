// Package loader discovers and parses catalog files under a root path.
//
// Discovery walks the tree skipping dot-directories and well known build
// output directories. Parsing is tolerant: a document that fails to
// decode is skipped with a warning so one broken manifest never hides
// the rest of the catalog.
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/catwalk-tui/catwalk/internal/catalog"
	"github.com/catwalk-tui/catwalk/internal/validate"
)

// DefaultPattern matches the standard catalog manifest file names.
const DefaultPattern = "catalog-info.{yaml,yml}"

// excludedDirs are build outputs, dependency trees and caches that never
// contain catalog manifests worth the scan time.
var excludedDirs = []string{
	"target",
	"node_modules",
	"__pycache__",
	".venv",
	"venv",
	".tox",
	"build",
	".gradle",
	"bin",
	"obj",
	"dist",
	"out",
	".next",
	".nuxt",
	".svelte-kit",
	".cache",
	".parcel-cache",
	".turbo",
	"coverage",
}

var excludedDirPrefixes = []string{"bazel-"}

// ExcludeDir reports whether a directory name is skipped during
// discovery. Dot-directories are always skipped.
func ExcludeDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, dir := range excludedDirs {
		if name == dir {
			return true
		}
	}
	for _, prefix := range excludedDirPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Loader reads catalog entities from the filesystem.
type Loader struct {
	// Pattern is a doublestar pattern matched against file base names.
	Pattern string
	// Exclude lists additional directory names skipped during
	// discovery, on top of the built-in excluded set.
	Exclude []string
	// Warn receives human-readable messages about skipped documents
	// and unreadable files. Defaults to stderr.
	Warn io.Writer
}

func New() *Loader {
	return &Loader{Pattern: DefaultPattern, Warn: os.Stderr}
}

func (l *Loader) warnf(format string, args ...any) {
	if l.Warn == nil {
		return
	}
	fmt.Fprintf(l.Warn, "Warning: "+format+"\n", args...)
}

// Matches reports whether a base file name matches the loader pattern.
func (l *Loader) Matches(name string) bool {
	ok, err := doublestar.Match(l.Pattern, name)
	return err == nil && ok
}

func (l *Loader) excludeDir(name string) bool {
	if ExcludeDir(name) {
		return true
	}
	for _, dir := range l.Exclude {
		if name == dir {
			return true
		}
	}
	return false
}

// Discover returns every catalog file under root, in walk order.
func (l *Loader) Discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			l.warnf("cannot read %s: %v", path, err)
			return nil
		}
		if d.IsDir() {
			if path != root && l.excludeDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if l.Matches(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering catalog files under %s: %w", root, err)
	}
	return files, nil
}

// ParseFile decodes a multi-document YAML file. Each document becomes
// one entity, annotated with the source path and any validation
// problems. Documents that are not valid entities are skipped.
func (l *Loader) ParseFile(path string) ([]catalog.Sourced, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()
	return l.parseAll(f, path)
}

func (l *Loader) parseAll(r io.Reader, path string) ([]catalog.Sourced, error) {
	dec := yaml.NewDecoder(r)
	var entities []catalog.Sourced
	for {
		var e catalog.Entity
		err := dec.Decode(&e)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			l.warnf("failed to parse entity in %s: %v", path, err)
			// The decoder cannot resynchronize after a syntax error.
			break
		}
		if e.Metadata.Name == "" && e.Kind == "" {
			// Empty document, usually a trailing separator.
			continue
		}
		s := catalog.NewSourced(e, path).WithProblems(validate.Entity(&e))
		entities = append(entities, s)
	}
	return entities, nil
}

// Load reads entities from a single file or a directory tree. Files
// that fail to read are skipped with a warning; the load fails only
// when the root itself is unusable.
func (l *Loader) Load(root string) ([]catalog.Sourced, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("loading catalog from %s: %w", root, err)
	}
	if !info.IsDir() {
		return l.ParseFile(root)
	}

	files, err := l.Discover(root)
	if err != nil {
		return nil, err
	}
	var all []catalog.Sourced
	for _, path := range files {
		entities, err := l.ParseFile(path)
		if err != nil {
			l.warnf("%v", err)
			continue
		}
		all = append(all, entities...)
	}
	return all, nil
}
