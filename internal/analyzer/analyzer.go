// Package analyzer turns a project directory into a structural
// fingerprint: languages, frameworks, declared dependencies and notable
// files. The walk is bounded by depth and file count and never fails;
// unreadable paths simply contribute nothing.
package analyzer

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"

	"github.com/jakoblorz/toolscout/internal/filesystem"
	"github.com/jakoblorz/toolscout/internal/manifest"
	"github.com/jakoblorz/toolscout/internal/models"
)

const (
	// DefaultMaxDepth is how many directory levels below the root are
	// descended into.
	DefaultMaxDepth = 5

	// DefaultMaxFiles caps the fingerprint's file list. The walk keeps
	// going for language detection once the cap is hit; only appending
	// stops.
	DefaultMaxFiles = 1000
)

// Analyzer walks project trees and produces fingerprints.
type Analyzer struct {
	fs           filesystem.FileSystem
	maxDepth     int
	maxFiles     int
	useGitignore bool
}

// Option configures analyzer behavior.
type Option func(*Analyzer)

// WithMaxDepth overrides the walk depth bound.
func WithMaxDepth(depth int) Option {
	return func(a *Analyzer) {
		a.maxDepth = depth
	}
}

// WithMaxFiles overrides the file list cap.
func WithMaxFiles(max int) Option {
	return func(a *Analyzer) {
		a.maxFiles = max
	}
}

// WithGitignore makes the walk honor the project's root .gitignore in
// addition to the built-in skip list.
func WithGitignore(enabled bool) Option {
	return func(a *Analyzer) {
		a.useGitignore = enabled
	}
}

// New creates an Analyzer.
func New(fs filesystem.FileSystem, options ...Option) *Analyzer {
	a := &Analyzer{
		fs:       fs,
		maxDepth: DefaultMaxDepth,
		maxFiles: DefaultMaxFiles,
	}

	for _, option := range options {
		option(a)
	}

	return a
}

// Analyze fingerprints the project at path. It always returns a valid
// fingerprint; a missing or unreadable path yields an empty one.
func (a *Analyzer) Analyze(path string) *models.ProjectFingerprint {
	fp := models.NewProjectFingerprint(path)

	languages := newStringSet()
	frameworks := newStringSet()
	dependencies := newStringSet()

	ignore := a.loadRootGitIgnore(path)

	// Walk errors are swallowed: the affected subtree contributes
	// nothing and the fingerprint stays valid (possibly sparse).
	_ = a.fs.WalkDir(path, func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if p == path {
			return nil
		}

		rel, relErr := filepath.Rel(path, p)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		name := entry.Name()

		if entry.IsDir() {
			// Config-directory detection happens before the skip
			// decision so dot-directories like .github still count.
			if d, ok := configDirs[name]; ok {
				recordDetection(d, languages, frameworks)
			}

			if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if pathDepth(rel) > a.maxDepth {
				return filepath.SkipDir
			}
			if ignore != nil {
				if match := ignore.Relative(rel, true); match != nil && match.Ignore() {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if ignore != nil {
			if match := ignore.Relative(rel, false); match != nil && match.Ignore() {
				return nil
			}
		}

		if len(fp.Files) < a.maxFiles {
			fp.Files = append(fp.Files, rel)
		}

		if d, ok := configFiles[name]; ok {
			recordDetection(d, languages, frameworks)
		}
		if lang, ok := extensions[strings.ToLower(filepath.Ext(name))]; ok {
			languages.add(lang)
		}

		return nil
	})

	// Merge manifest reader contributions; the first non-empty
	// description wins.
	for _, read := range manifest.Readers() {
		c := read(a.fs, path)
		for _, dep := range c.Dependencies {
			dependencies.add(dep)
		}
		for _, fw := range c.Frameworks {
			frameworks.add(fw)
		}
		if fp.Description == "" && c.Description != "" {
			fp.Description = c.Description
		}
	}

	fp.Languages = languages.values()
	fp.Frameworks = frameworks.values()
	fp.Dependencies = dependencies.values()

	return fp
}

func (a *Analyzer) loadRootGitIgnore(root string) gitignore.GitIgnore {
	if !a.useGitignore {
		return nil
	}

	data, err := a.fs.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}

	return gitignore.New(bytes.NewReader(data), root, nil)
}

func recordDetection(d detection, languages, frameworks *stringSet) {
	if d.Language != "" {
		languages.add(d.Language)
	}
	if d.Framework != "" {
		frameworks.add(d.Framework)
	}
}

func pathDepth(rel string) int {
	return strings.Count(rel, "/") + 1
}

// stringSet deduplicates while preserving insertion order.
type stringSet struct {
	seen  map[string]struct{}
	order []string
}

func newStringSet() *stringSet {
	return &stringSet{seen: make(map[string]struct{}), order: []string{}}
}

func (s *stringSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.order = append(s.order, v)
}

func (s *stringSet) values() []string {
	return s.order
}
