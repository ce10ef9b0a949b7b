package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/jakoblorz/toolscout/internal/filesystem"
	"github.com/jakoblorz/toolscout/internal/models"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// componentMatter is the metadata of a marketplace component: YAML
// frontmatter for markdown components, the manifest body for
// plugin.json.
type componentMatter struct {
	ID           string   `yaml:"id" json:"id"`
	Name         string   `yaml:"name" json:"name"`
	Description  string   `yaml:"description" json:"description"`
	Category     string   `yaml:"category" json:"category"`
	Tags         []string `yaml:"tags" json:"tags"`
	URL          string   `yaml:"url" json:"url"`
	Author       string   `yaml:"author" json:"author"`
	Official     bool     `yaml:"official" json:"official"`
	Languages    []string `yaml:"languages" json:"languages"`
	Frameworks   []string `yaml:"frameworks" json:"frameworks"`
	Dependencies []string `yaml:"dependencies" json:"dependencies"`
	Keywords     []string `yaml:"keywords" json:"keywords"`
	Files        []string `yaml:"files" json:"files"`
}

// Builder scans a local marketplace tree and produces a catalog
// document: SKILL.md files become skill entries, plugin.json manifests
// under plugins/ become plugin entries, markdown files under commands/
// and agents/ become command and agent entries.
type Builder struct {
	fs    filesystem.FileSystem
	now   func() time.Time
	newID func() (string, error)
}

// NewBuilder creates a Builder.
func NewBuilder(fs filesystem.FileSystem) *Builder {
	return &Builder{
		fs:  fs,
		now: time.Now,
		newID: func() (string, error) {
			return gonanoid.Generate(idAlphabet, 8)
		},
	}
}

// Build scans root and returns a catalog document. Unparseable
// component files are skipped; an unreadable root yields an empty
// document, not an error.
func (b *Builder) Build(root string) *Document {
	doc := &Document{
		Version:     "1",
		LastUpdated: b.now().UTC().Format(time.RFC3339),
		Items:       []*models.CatalogEntry{},
	}

	_ = b.fs.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil || entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		entryType, ok := classifyComponent(rel)
		if !ok {
			return nil
		}

		item, err := b.readComponent(path, entryType)
		if err != nil {
			return nil
		}
		doc.Items = append(doc.Items, item)
		return nil
	})

	return doc
}

// Write serializes a document to path, creating parent directories.
func (b *Builder) Write(doc *Document, path string) error {
	if err := b.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := b.fs.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

func classifyComponent(rel string) (models.RecommendationType, bool) {
	base := filepath.Base(rel)
	switch {
	case base == "SKILL.md":
		return models.TypeSkill, true
	case base == "plugin.json" && pathHasSegment(rel, "plugins"):
		return models.TypePlugin, true
	case strings.HasSuffix(base, ".md") && pathHasSegment(rel, "commands"):
		return models.TypeCommand, true
	case strings.HasSuffix(base, ".md") && pathHasSegment(rel, "agents"):
		return models.TypeAgent, true
	default:
		return "", false
	}
}

func pathHasSegment(rel, segment string) bool {
	for _, part := range strings.Split(rel, "/") {
		if part == segment {
			return true
		}
	}
	return false
}

func (b *Builder) readComponent(path string, entryType models.RecommendationType) (*models.CatalogEntry, error) {
	data, err := b.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var matter componentMatter
	if entryType == models.TypePlugin {
		if err := json.Unmarshal(data, &matter); err != nil {
			return nil, fmt.Errorf("failed to parse plugin manifest: %w", err)
		}
	} else if _, err := frontmatter.Parse(bytes.NewReader(data), &matter); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	name := matter.Name
	if name == "" {
		name = componentNameFromPath(path, entryType)
	}

	id := matter.ID
	if id == "" {
		suffix, err := b.newID()
		if err != nil {
			return nil, fmt.Errorf("failed to generate id: %w", err)
		}
		id = fmt.Sprintf("%s-%s", slugify(name), suffix)
	}

	source := models.SourceCommunity
	if matter.Official {
		source = models.SourceOfficial
	}

	install := models.Install{Method: models.InstallManual}
	if entryType == models.TypePlugin {
		install = models.Install{
			Method:  models.InstallPluginInstall,
			Command: fmt.Sprintf("plugin install %s", slugify(name)),
		}
	}

	return &models.CatalogEntry{
		ID:          id,
		Name:        name,
		Type:        entryType,
		URL:         matter.URL,
		Description: matter.Description,
		Author:      models.Author{Name: matter.Author},
		Category:    matter.Category,
		Tags:        matter.Tags,
		Detection: models.Detection{
			Dependencies: matter.Dependencies,
			Files:        matter.Files,
			Languages:    matter.Languages,
			Frameworks:   matter.Frameworks,
			Keywords:     matter.Keywords,
		},
		Metrics: models.Metrics{
			Source:     source,
			IsOfficial: matter.Official,
		},
		Install: install,
	}, nil
}

// componentNameFromPath falls back to the directory (skills, plugins)
// or file (commands, agents) name when the metadata has none.
func componentNameFromPath(path string, entryType models.RecommendationType) string {
	if entryType == models.TypeSkill || entryType == models.TypePlugin {
		return filepath.Base(filepath.Dir(path))
	}
	return strings.TrimSuffix(filepath.Base(path), ".md")
}

func slugify(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			sb.WriteRune('-')
		}
	}
	return strings.Trim(sb.String(), "-")
}
