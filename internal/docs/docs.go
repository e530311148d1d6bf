// Package docs resolves documentation references from entity
// annotations and drives the file browser over them.
package docs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/catwalk-tui/catwalk/internal/loader"
)

// Annotation keys recognized as documentation references.
const (
	AnnotationTechDocs = "backstage.io/techdocs-ref"
	AnnotationADR      = "backstage.io/adr-location"
)

// RefType distinguishes the documentation source an annotation points at.
type RefType int

const (
	TechDocs RefType = iota
	ADR
)

func (t RefType) Label() string {
	if t == ADR {
		return "ADR"
	}
	return "TechDocs"
}

// Ref is a resolved documentation location on disk.
type Ref struct {
	Type RefType
	Path string
}

// File is one markdown document under a Ref.
type File struct {
	Path         string
	Name         string
	RelativePath string
}

// ParseRefs extracts documentation references from an entity's
// annotations. Relative paths resolve against the directory of the
// entity's source file, and only locations that exist are returned.
// Annotation keys are visited in sorted order so the result is stable.
func ParseRefs(annotations map[string]string, sourceFile string) []Ref {
	sourceDir := filepath.Dir(sourceFile)

	keys := make([]string, 0, len(annotations))
	for k := range annotations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var refs []Ref
	for _, key := range keys {
		value := annotations[key]
		if key == AnnotationTechDocs {
			if path, ok := resolveTechDocs(value, sourceDir); ok {
				refs = append(refs, Ref{Type: TechDocs, Path: path})
			}
		}
		if key == AnnotationADR || strings.Contains(key, "adr") {
			path := resolvePath(value, sourceDir)
			if pathExists(path) {
				refs = append(refs, Ref{Type: ADR, Path: path})
			}
		}
	}
	return refs
}

// resolveTechDocs handles the "dir:" prefix form first, then the value
// as a plain path.
func resolveTechDocs(value, sourceDir string) (string, bool) {
	if dir, ok := strings.CutPrefix(value, "dir:"); ok {
		path := resolvePath(dir, sourceDir)
		if pathExists(path) {
			return path, true
		}
	}
	path := resolvePath(value, sourceDir)
	if pathExists(path) {
		return path, true
	}
	return "", false
}

func resolvePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Discover lists the markdown files under a documentation location,
// sorted by relative path. A location that is itself a markdown file
// yields a single entry.
func Discover(docsPath string) []File {
	info, err := os.Stat(docsPath)
	if err != nil {
		return nil
	}

	if !info.IsDir() {
		if !isMarkdown(docsPath) {
			return nil
		}
		name := filepath.Base(docsPath)
		return []File{{Path: docsPath, Name: name, RelativePath: name}}
	}

	var files []File
	collectMarkdown(docsPath, docsPath, &files)
	sort.Slice(files, func(i, j int) bool {
		return files[i].RelativePath < files[j].RelativePath
	})
	return files
}

func collectMarkdown(base, current string, files *[]File) {
	entries, err := os.ReadDir(current)
	if err != nil {
		return
	}
	for _, entry := range entries {
		path := filepath.Join(current, entry.Name())
		if entry.IsDir() {
			if !loader.ExcludeDir(entry.Name()) {
				collectMarkdown(base, path, files)
			}
			continue
		}
		if !isMarkdown(path) {
			continue
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			rel = path
		}
		*files = append(*files, File{
			Path:         path,
			Name:         entry.Name(),
			RelativePath: rel,
		})
	}
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
