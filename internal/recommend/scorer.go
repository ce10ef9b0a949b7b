package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jakoblorz/toolscout/internal/models"
)

// Options narrows a single scoring call.
type Options struct {
	MaxResults int
	Types      []models.RecommendationType
}

// Score ranks the catalog against a project fingerprint and optional
// free-text description. Results are ordered by descending score; ties
// preserve catalog order. Entries with no matched signal never appear.
func Score(catalog []*models.CatalogEntry, fp *models.ProjectFingerprint, description string, cfg Config, opts Options) []models.ScoredEntry {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = cfg.MaxResults
	}

	// The type filter runs before scoring; excluded types are never
	// evaluated.
	candidates := filterTypes(catalog, opts.Types)

	scored := make([]models.ScoredEntry, 0, len(candidates))
	raws := make([]float64, 0, len(candidates))
	for _, entry := range candidates {
		raw, reasons := rawSignalScore(entry, fp, description, cfg)
		if raw == 0 {
			continue
		}

		score := applyQualityMultipliers(raw, entry, cfg, &reasons)
		if cfg.EnableContextBonuses {
			score += contextBonuses(entry, fp, cfg, &reasons)
		}

		scored = append(scored, models.ScoredEntry{Item: entry, Score: score, Reasons: reasons})
		raws = append(raws, raw)
	}

	if cfg.EnableSimilarityBonus {
		applySimilarityBonuses(scored, cfg)
	}

	// Threshold on the raw signal score, then normalize for output.
	filtered := scored[:0]
	for i := range scored {
		if raws[i] < cfg.MinScore {
			continue
		}
		scored[i].Score /= cfg.MaxRawScore
		filtered = append(filtered, scored[i])
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})

	if len(filtered) > maxResults {
		filtered = filtered[:maxResults]
	}

	return filtered
}

func filterTypes(catalog []*models.CatalogEntry, types []models.RecommendationType) []*models.CatalogEntry {
	if len(types) == 0 {
		return catalog
	}

	wanted := make(map[models.RecommendationType]struct{}, len(types))
	for _, t := range types {
		wanted[t] = struct{}{}
	}

	var filtered []*models.CatalogEntry
	for _, entry := range catalog {
		if _, ok := wanted[entry.Type]; ok {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// rawSignalScore accumulates the additive signal weights. Reasons are
// appended in evaluation order.
func rawSignalScore(entry *models.CatalogEntry, fp *models.ProjectFingerprint, description string, cfg Config) (float64, []string) {
	var raw float64
	var reasons []string

	for _, lang := range entry.Detection.Languages {
		if fp.HasLanguage(lang) {
			raw += cfg.Weights.Language
			reasons = append(reasons, fmt.Sprintf("language match: %s", lang))
		}
	}

	for _, fw := range entry.Detection.Frameworks {
		if fp.HasFramework(fw) {
			raw += cfg.Weights.Framework
			reasons = append(reasons, fmt.Sprintf("framework match: %s", fw))
		}
	}

	for _, dep := range entry.Detection.Dependencies {
		if fp.HasDependency(dep) {
			raw += cfg.Weights.Dependency
			reasons = append(reasons, fmt.Sprintf("dependency match: %s", dep))
		}
	}

	for _, pattern := range entry.Detection.Files {
		if anyFileMatches(pattern, fp.Files) {
			raw += cfg.Weights.FilePattern
			reasons = append(reasons, fmt.Sprintf("file pattern match: %s", pattern))
		}
	}

	if description != "" {
		lowered := strings.ToLower(description)
		for _, kw := range entry.Detection.Keywords {
			if strings.Contains(lowered, strings.ToLower(kw)) {
				raw += cfg.Weights.Keyword
				reasons = append(reasons, fmt.Sprintf("keyword match: %s", kw))
			}
		}
	}

	return raw, reasons
}

func anyFileMatches(pattern string, files []string) bool {
	for _, file := range files {
		if MatchGlob(pattern, file) {
			return true
		}
	}
	return false
}

// applyQualityMultipliers applies the official and security multipliers
// to the summed signal score. Only one security multiplier applies; a
// score inside [low, high] gets neither.
func applyQualityMultipliers(raw float64, entry *models.CatalogEntry, cfg Config, reasons *[]string) float64 {
	score := raw

	if entry.Official() {
		score *= cfg.OfficialMultiplier
		*reasons = append(*reasons, "official source")
	}

	if s := entry.Metrics.SecurityScore; s != nil {
		switch {
		case *s > cfg.SecurityHighThreshold:
			score *= cfg.SecurityHighMultiplier
			*reasons = append(*reasons, "high security score")
		case *s < cfg.SecurityLowThreshold:
			score *= cfg.SecurityLowMultiplier
			*reasons = append(*reasons, "low security score")
		}
	}

	return score
}
