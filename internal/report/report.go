// Package report renders recommendation results as a markdown document
// suitable for checking into a repository or pasting into an issue.
package report

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sync"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"

	"github.com/jakoblorz/toolscout/internal/filesystem"
	"github.com/jakoblorz/toolscout/internal/models"
)

const defaultReportTemplate = `# Tool Recommendations

Generated {{.Date}} for ` + "`{{.Project.Path}}`" + `.

## Project

{{- if .Project.Languages}}
- Languages: {{join ", " .Project.Languages}}
{{- end}}
{{- if .Project.Frameworks}}
- Frameworks: {{join ", " .Project.Frameworks}}
{{- end}}
- Dependencies: {{len .Project.Dependencies}}
- Files scanned: {{len .Project.Files}}

## Recommendations ({{len .Results}})
{{range $index, $r := .Results}}
### {{add $index 1}}. {{$r.Item.Name}} ({{$r.Item.Type}})

{{- if $r.Item.Description}}
{{$r.Item.Description}}
{{- end}}

- Score: {{printf "%.2f" $r.Score}}
{{- if $r.Reasons}}
- Matched: {{join ", " $r.Reasons}}
{{- end}}
{{- if $r.Item.URL}}
- URL: {{$r.Item.URL}}
{{- end}}
{{- if $r.Item.Install.Command}}
- Install: ` + "`{{$r.Item.Install.Command}}`" + `
{{- end}}
{{end}}`

var (
	templateCache     = make(map[string]*template.Template)
	templateCacheLock sync.Mutex
)

func getReportTemplate(fs filesystem.FileSystem, projectRoot string) (*template.Template, error) {
	path := findCustomTemplate(fs, projectRoot)
	cacheKey := path
	if cacheKey == "" {
		cacheKey = "__default__"
	}

	templateCacheLock.Lock()
	tmpl, ok := templateCache[cacheKey]
	templateCacheLock.Unlock()
	if ok {
		return tmpl, nil
	}

	text := defaultReportTemplate
	if path != "" {
		data, err := fs.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read report template: %w", err)
		}
		text = string(data)
	}

	parsed, err := template.New("report").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}

	templateCacheLock.Lock()
	templateCache[cacheKey] = parsed
	templateCacheLock.Unlock()

	return parsed, nil
}

// findCustomTemplate walks from start toward the filesystem root looking
// for a .toolscout/report.tmpl override.
func findCustomTemplate(fs filesystem.FileSystem, start string) string {
	dir := start
	for {
		templatePath := filepath.Join(dir, ".toolscout", "report.tmpl")
		if fs.Exists(templatePath) {
			return templatePath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Generator renders recommendation reports.
type Generator struct {
	fs  filesystem.FileSystem
	now func() time.Time
}

// NewGenerator creates a Generator.
func NewGenerator(fs filesystem.FileSystem) *Generator {
	return &Generator{fs: fs, now: time.Now}
}

type reportData struct {
	Date    string
	Project *models.ProjectFingerprint
	Results []models.ScoredEntry
}

// Render produces the markdown report for a fingerprint and its scored
// results. A .toolscout/report.tmpl file in or above the project root
// replaces the built-in template.
func (g *Generator) Render(fingerprint *models.ProjectFingerprint, results []models.ScoredEntry) (string, error) {
	tmpl, err := getReportTemplate(g.fs, fingerprint.Path)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	data := reportData{
		Date:    g.now().UTC().Format("2006-01-02"),
		Project: fingerprint,
		Results: results,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute report template: %w", err)
	}
	return buf.String(), nil
}
