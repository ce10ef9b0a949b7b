// Package catalog holds the immutable corpus of recommendable tools.
// The catalog is loaded once, treated as read-only afterwards, and
// passed into the scorers explicitly; it is safe for unlimited
// concurrent reads.
package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jakoblorz/toolscout/internal/filesystem"
	"github.com/jakoblorz/toolscout/internal/models"
)

// Document is the serialized catalog file format.
type Document struct {
	Version     string                 `json:"version"`
	LastUpdated string                 `json:"lastUpdated"`
	Items       []*models.CatalogEntry `json:"items"`
}

// Catalog is the loaded, immutable entry collection. Iteration order is
// the document's item order; scorers rely on it for tie-breaking.
type Catalog struct {
	version     string
	lastUpdated string
	entries     []*models.CatalogEntry
}

// New creates a catalog from a document.
func New(doc Document) *Catalog {
	return &Catalog{
		version:     doc.Version,
		lastUpdated: doc.LastUpdated,
		entries:     doc.Items,
	}
}

// Empty returns a catalog with no entries.
func Empty() *Catalog {
	return &Catalog{}
}

// Parse deserializes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(doc), nil
}

// LoadFile reads a catalog file. A missing or malformed file degrades
// to an empty catalog; recommend/search then return empty result sets
// instead of failing.
func LoadFile(fs filesystem.FileSystem, path string) *Catalog {
	data, err := fs.ReadFile(path)
	if err != nil {
		return Empty()
	}

	c, err := Parse(data)
	if err != nil {
		return Empty()
	}
	return c
}

// Entries returns the catalog's entries in document order. Callers must
// not mutate the returned slice or its entries.
func (c *Catalog) Entries() []*models.CatalogEntry {
	return c.entries
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Version returns the catalog document version.
func (c *Catalog) Version() string {
	return c.version
}

// LastUpdated returns the catalog document timestamp.
func (c *Catalog) LastUpdated() string {
	return c.lastUpdated
}

// Get looks an entry up by case-insensitive equality on name or id.
func (c *Catalog) Get(nameOrID string) (*models.CatalogEntry, bool) {
	for _, entry := range c.entries {
		if strings.EqualFold(entry.Name, nameOrID) || strings.EqualFold(entry.ID, nameOrID) {
			return entry, true
		}
	}
	return nil, false
}

// Stats are read-side aggregations over the catalog; no scoring is
// involved.
type Stats struct {
	Total         int            `json:"total"`
	ByCategory    map[string]int `json:"byCategory"`
	ByType        map[string]int `json:"byType"`
	BySource      map[string]int `json:"bySource"`
	OfficialCount int            `json:"officialCount"`
}

// Stats aggregates entry counts by category, type and source.
func (c *Catalog) Stats() Stats {
	stats := Stats{
		Total:      len(c.entries),
		ByCategory: make(map[string]int),
		ByType:     make(map[string]int),
		BySource:   make(map[string]int),
	}

	for _, entry := range c.entries {
		if entry.Category != "" {
			stats.ByCategory[entry.Category]++
		}
		stats.ByType[string(entry.Type)]++
		stats.BySource[string(entry.Metrics.Source)]++
		if entry.Official() {
			stats.OfficialCount++
		}
	}

	return stats
}
