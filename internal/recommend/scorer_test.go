package recommend

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/toolscout/internal/models"
)

func fingerprintWith(langs, frameworks, deps, files []string) *models.ProjectFingerprint {
	fp := models.NewProjectFingerprint("/proj")
	fp.Languages = langs
	fp.Frameworks = frameworks
	fp.Dependencies = deps
	fp.Files = files
	return fp
}

func TestScore_OfficialLanguageMatchNormalized(t *testing.T) {
	entry := &models.CatalogEntry{
		Name:      "Jest Helper",
		Type:      models.TypeSkill,
		Detection: models.Detection{Languages: []string{"javascript"}},
		Metrics:   models.Metrics{IsOfficial: true},
	}
	fp := fingerprintWith([]string{"javascript", "typescript"}, nil, nil, nil)

	results := Score([]*models.CatalogEntry{entry}, fp, "", DefaultConfig(), Options{})

	require.Len(t, results, 1)
	// raw 5 (language), ×1.3 official, normalized by 50.
	require.InDelta(t, 6.5/50, results[0].Score, 1e-9)
	require.Contains(t, results[0].Reasons, "language match: javascript")
	require.Contains(t, results[0].Reasons, "official source")
}

func TestScore_MonotonicInDependencyMatches(t *testing.T) {
	entry := &models.CatalogEntry{
		Name:      "DB Tools",
		Type:      models.TypeMCPServer,
		Detection: models.Detection{Dependencies: []string{"pg", "redis"}},
	}
	base := fingerprintWith(nil, nil, []string{"pg"}, nil)
	more := fingerprintWith(nil, nil, []string{"pg", "redis"}, nil)

	cfg := DefaultConfig()
	baseScore := Score([]*models.CatalogEntry{entry}, base, "", cfg, Options{})[0].Score
	moreScore := Score([]*models.CatalogEntry{entry}, more, "", cfg, Options{})[0].Score

	require.GreaterOrEqual(t, moreScore, baseScore)
}

func TestScore_ZeroSignalEntriesExcluded(t *testing.T) {
	entry := &models.CatalogEntry{
		Name:      "Rustacean",
		Type:      models.TypeSkill,
		Detection: models.Detection{Languages: []string{"rust"}},
		Metrics:   models.Metrics{IsOfficial: true},
	}
	fp := fingerprintWith([]string{"python"}, nil, nil, nil)

	results := Score([]*models.CatalogEntry{entry}, fp, "", DefaultConfig(), Options{})

	require.Empty(t, results)
}

func TestScore_SecurityMultipliers(t *testing.T) {
	low := 30
	mid := 65
	high := 95

	mk := func(name string, sec *int) *models.CatalogEntry {
		return &models.CatalogEntry{
			Name:      name,
			Type:      models.TypeSkill,
			Detection: models.Detection{Languages: []string{"go"}},
			Metrics:   models.Metrics{SecurityScore: sec},
		}
	}

	fp := fingerprintWith([]string{"go"}, nil, nil, nil)
	cfg := DefaultConfig()

	results := Score([]*models.CatalogEntry{mk("low", &low), mk("mid", &mid), mk("high", &high)}, fp, "", cfg, Options{})

	require.Len(t, results, 3)
	byName := map[string]float64{}
	for _, r := range results {
		byName[r.Item.Name] = r.Score
	}
	require.InDelta(t, 5*0.7/50, byName["low"], 1e-9)
	require.InDelta(t, 5.0/50, byName["mid"], 1e-9)
	require.InDelta(t, 5*1.1/50, byName["high"], 1e-9)
}

func TestScore_KeywordMatchAgainstDescription(t *testing.T) {
	entry := &models.CatalogEntry{
		Name:      "API Tester",
		Type:      models.TypeCommand,
		Detection: models.Detection{Keywords: []string{"rest", "graphql"}},
	}
	fp := models.NewProjectFingerprint("/proj")

	results := Score([]*models.CatalogEntry{entry}, fp, "A REST API for orders", DefaultConfig(), Options{})

	require.Len(t, results, 1)
	require.InDelta(t, 1.0/50, results[0].Score, 1e-9)
	require.Equal(t, []string{"keyword match: rest"}, results[0].Reasons)
}

func TestScore_TypeFilterAppliedBeforeScoring(t *testing.T) {
	skill := &models.CatalogEntry{
		Name:      "Go Skill",
		Type:      models.TypeSkill,
		Detection: models.Detection{Languages: []string{"go"}},
	}
	server := &models.CatalogEntry{
		Name:      "Go Server",
		Type:      models.TypeMCPServer,
		Detection: models.Detection{Languages: []string{"go"}},
	}
	fp := fingerprintWith([]string{"go"}, nil, nil, nil)

	results := Score([]*models.CatalogEntry{skill, server}, fp, "", DefaultConfig(), Options{
		Types: []models.RecommendationType{models.TypeMCPServer},
	})

	require.Len(t, results, 1)
	require.Equal(t, "Go Server", results[0].Item.Name)
}

func TestScore_MaxResultsWithTieKeepsCatalogOrder(t *testing.T) {
	mk := func(name string) *models.CatalogEntry {
		return &models.CatalogEntry{
			Name:      name,
			Type:      models.TypeSkill,
			Detection: models.Detection{Languages: []string{"go"}},
		}
	}
	first, second, third := mk("first"), mk("second"), mk("third")
	fp := fingerprintWith([]string{"go"}, nil, nil, nil)

	results := Score([]*models.CatalogEntry{first, second, third}, fp, "", DefaultConfig(), Options{MaxResults: 1})

	require.Len(t, results, 1)
	require.Equal(t, "first", results[0].Item.Name)
}

func TestScore_FilePatternSignal(t *testing.T) {
	entry := &models.CatalogEntry{
		Name:      "Skill Pack",
		Type:      models.TypePlugin,
		Detection: models.Detection{Files: []string{".claude/skills/**"}},
	}
	fp := fingerprintWith(nil, nil, nil, []string{".claude/skills/foo/SKILL.md"})

	results := Score([]*models.CatalogEntry{entry}, fp, "", DefaultConfig(), Options{})

	require.Len(t, results, 1)
	require.Contains(t, results[0].Reasons, "file pattern match: .claude/skills/**")
}

func TestScore_MinScoreFiltersOnRawScore(t *testing.T) {
	entry := &models.CatalogEntry{
		Name:      "Weak Match",
		Type:      models.TypeSkill,
		Detection: models.Detection{Keywords: []string{"api"}},
	}
	fp := models.NewProjectFingerprint("/proj")

	cfg := DefaultConfig()
	cfg.MinScore = 2

	results := Score([]*models.CatalogEntry{entry}, fp, "an api project", cfg, Options{})

	// Raw keyword score 1 < MinScore 2.
	require.Empty(t, results)
}

func TestScore_ContextBonuses(t *testing.T) {
	entry := &models.CatalogEntry{
		Name:      "Workspace Helper",
		Type:      models.TypeWorkflow,
		Tags:      []string{"monorepo", "small"},
		Detection: models.Detection{Languages: []string{"go"}},
	}
	fp := fingerprintWith([]string{"go"}, nil, nil, []string{"go.work", "a.go"})

	cfg := DefaultConfig()
	cfg.EnableContextBonuses = true

	results := Score([]*models.CatalogEntry{entry}, fp, "", cfg, Options{})

	require.Len(t, results, 1)
	// raw 5, no multipliers, + size fit 2 + monorepo 2, normalized.
	require.InDelta(t, (5+2+2)/50.0, results[0].Score, 1e-9)
	require.Contains(t, results[0].Reasons, "project size fit: small")
	require.Contains(t, results[0].Reasons, "monorepo fit")
}

func TestScore_SimilarityBonusCappedAndThresholded(t *testing.T) {
	anchor := &models.CatalogEntry{
		Name:      "Anchor",
		Type:      models.TypeSkill,
		Tags:      []string{"testing", "ci", "golang"},
		Detection: models.Detection{Languages: []string{"go"}, Frameworks: []string{"gin"}},
	}
	similar := &models.CatalogEntry{
		Name:      "Similar",
		Type:      models.TypeSkill,
		Tags:      []string{"testing", "ci"},
		Detection: models.Detection{Languages: []string{"go"}},
	}
	unrelated := &models.CatalogEntry{
		Name:      "Unrelated",
		Type:      models.TypeSkill,
		Tags:      []string{"docs"},
		Detection: models.Detection{Languages: []string{"go"}},
	}
	fp := fingerprintWith([]string{"go"}, []string{"gin"}, nil, nil)

	cfg := DefaultConfig()
	cfg.EnableSimilarityBonus = true

	results := Score([]*models.CatalogEntry{anchor, similar, unrelated}, fp, "", cfg, Options{})

	byName := map[string]models.ScoredEntry{}
	for _, r := range results {
		byName[r.Item.Name] = r
	}

	require.Contains(t, byName["Similar"].Reasons, "similar to other matches")
	require.NotContains(t, byName["Unrelated"].Reasons, "similar to other matches")

	// shared 2, jaccard 2/3 → bonus min(cap, 2/3*weight) = 2.
	require.InDelta(t, (5+2)/50.0, byName["Similar"].Score, 1e-9)
}
