package models

// Source identifies where a catalog entry was collected from.
type Source string

const (
	SourceOfficial    Source = "official"
	SourceCommunity   Source = "community"
	SourceAwesomeList Source = "awesome-list"
)

// InstallMethod identifies how an entry is installed.
type InstallMethod string

const (
	InstallPluginInstall InstallMethod = "plugin-install"
	InstallProtocolAdd   InstallMethod = "protocol-add"
	InstallManual        InstallMethod = "manual"
)

// Author describes the maintainer of a catalog entry.
type Author struct {
	Name  string `json:"name"`
	URL   string `json:"url,omitempty"`
	Email string `json:"email,omitempty"`
}

// Detection holds the signals an entry is matched against a project
// fingerprint with. All fields are optional; absent means "no signal of
// that kind", never "matches everything".
type Detection struct {
	Dependencies []string `json:"dependencies,omitempty"`
	Files        []string `json:"files,omitempty"`
	Languages    []string `json:"languages,omitempty"`
	Frameworks   []string `json:"frameworks,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
}

// Metrics carries quality signals used for score multipliers.
type Metrics struct {
	Source        Source `json:"source"`
	SecurityScore *int   `json:"securityScore,omitempty"`
	Stars         int    `json:"stars,omitempty"`
	IsOfficial    bool   `json:"isOfficial,omitempty"`
	LastUpdated   string `json:"lastUpdated,omitempty"`
}

// Install describes how to install an entry.
type Install struct {
	Method      InstallMethod `json:"method"`
	Command     string        `json:"command,omitempty"`
	Marketplace string        `json:"marketplace,omitempty"`
}

// CatalogEntry is one recommendable unit. Entries are never mutated
// after catalog load; the loaded catalog is safe for concurrent reads.
type CatalogEntry struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Type        RecommendationType `json:"type"`
	URL         string             `json:"url"`
	Description string             `json:"description"`
	Author      Author             `json:"author"`
	Category    string             `json:"category"`
	Tags        []string           `json:"tags,omitempty"`
	Detection   Detection          `json:"detection"`
	Metrics     Metrics            `json:"metrics"`
	Install     Install            `json:"install"`
}

// Official reports whether the entry should receive the official boost.
func (e *CatalogEntry) Official() bool {
	return e.Metrics.IsOfficial || e.Metrics.Source == SourceOfficial
}
