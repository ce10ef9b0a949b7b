package models

// ProjectFingerprint is the structured summary of an analyzed project.
// Languages, Frameworks and Dependencies are deduplicated sets; Files
// preserves scan order and is capped by the analyzer.
type ProjectFingerprint struct {
	Path         string   `json:"path"`
	Languages    []string `json:"languages"`
	Frameworks   []string `json:"frameworks"`
	Dependencies []string `json:"dependencies"`
	Files        []string `json:"files"`
	Description  string   `json:"description,omitempty"`
}

// NewProjectFingerprint creates an empty fingerprint for a path. All
// collections are non-nil so an unreadable project still serializes to
// empty arrays rather than null.
func NewProjectFingerprint(path string) *ProjectFingerprint {
	return &ProjectFingerprint{
		Path:         path,
		Languages:    []string{},
		Frameworks:   []string{},
		Dependencies: []string{},
		Files:        []string{},
	}
}

// HasLanguage reports whether the fingerprint contains the language.
func (f *ProjectFingerprint) HasLanguage(lang string) bool {
	return contains(f.Languages, lang)
}

// HasFramework reports whether the fingerprint contains the framework.
func (f *ProjectFingerprint) HasFramework(fw string) bool {
	return contains(f.Frameworks, fw)
}

// HasDependency reports whether the fingerprint contains the dependency.
func (f *ProjectFingerprint) HasDependency(dep string) bool {
	return contains(f.Dependencies, dep)
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
