package recommend

import (
	"fmt"
	"path"

	"github.com/jakoblorz/toolscout/internal/models"
)

// SizeBucket classifies a project by file and dependency counts.
type SizeBucket string

const (
	SizeSmall      SizeBucket = "small"
	SizeMedium     SizeBucket = "medium"
	SizeLarge      SizeBucket = "large"
	SizeEnterprise SizeBucket = "enterprise"
)

var bucketRank = map[SizeBucket]int{
	SizeSmall:      0,
	SizeMedium:     1,
	SizeLarge:      2,
	SizeEnterprise: 3,
}

// ClassifySize buckets a fingerprint. File and dependency counts are
// bucketed independently; the coarser bucket wins.
func ClassifySize(fp *models.ProjectFingerprint) SizeBucket {
	byFiles := bucketByCeilings(len(fp.Files), 50, 200, 1000)
	byDeps := bucketByCeilings(len(fp.Dependencies), 10, 30, 80)

	if bucketRank[byDeps] > bucketRank[byFiles] {
		return byDeps
	}
	return byFiles
}

func bucketByCeilings(n, small, medium, large int) SizeBucket {
	switch {
	case n < small:
		return SizeSmall
	case n < medium:
		return SizeMedium
	case n < large:
		return SizeLarge
	default:
		return SizeEnterprise
	}
}

// monorepoFiles are workspace indicators checked against the
// fingerprint's file list by base name.
var monorepoFiles = map[string]struct{}{
	"go.work":             {},
	"pnpm-workspace.yaml": {},
	"lerna.json":          {},
	"turbo.json":          {},
	"nx.json":             {},
}

// HasMonorepoIndicators reports whether the fingerprint looks like a
// workspace/monorepo.
func HasMonorepoIndicators(fp *models.ProjectFingerprint) bool {
	if fp.HasFramework("monorepo") {
		return true
	}
	for _, f := range fp.Files {
		if _, ok := monorepoFiles[path.Base(f)]; ok {
			return true
		}
	}
	return false
}

// contextBonuses returns the summed context-aware bonuses. Each bonus
// contributes its configured weight at most once.
func contextBonuses(entry *models.CatalogEntry, fp *models.ProjectFingerprint, cfg Config, reasons *[]string) float64 {
	var bonus float64
	bucket := ClassifySize(fp)

	if hasTag(entry, string(bucket)) {
		bonus += cfg.SizeFitBonus
		*reasons = append(*reasons, fmt.Sprintf("project size fit: %s", bucket))
	}

	if HasMonorepoIndicators(fp) && hasTag(entry, "monorepo") {
		bonus += cfg.MonorepoBonus
		*reasons = append(*reasons, "monorepo fit")
	}

	if bucketRank[bucket] >= bucketRank[SizeLarge] && (hasTag(entry, "team") || hasTag(entry, "collaboration")) {
		bonus += cfg.TeamFitBonus
		*reasons = append(*reasons, "team size fit")
	}

	return bonus
}

func hasTag(entry *models.CatalogEntry, tag string) bool {
	for _, t := range entry.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
