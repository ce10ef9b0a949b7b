package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jakoblorz/toolscout/internal/models"
)

// Search scores catalog entries by direct text matching against name,
// description, category and tags. No project context is involved.
// Results are ordered by descending score; ties preserve catalog order.
func Search(catalog []*models.CatalogEntry, query string, cfg Config, opts Options) []models.ScoredEntry {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = cfg.MaxResults
	}

	candidates := filterTypes(catalog, opts.Types)
	q := strings.ToLower(strings.TrimSpace(query))

	var results []models.ScoredEntry
	for _, entry := range candidates {
		var score float64
		var reasons []string

		if strings.Contains(strings.ToLower(entry.Name), q) {
			score += 10
			reasons = append(reasons, "name match")
		}
		if strings.Contains(strings.ToLower(entry.Description), q) {
			score += 5
			reasons = append(reasons, "description match")
		}
		if strings.Contains(strings.ToLower(entry.Category), q) {
			score += 3
			reasons = append(reasons, "category match")
		}
		// Only the first matching tag is recorded and scored.
		for _, tag := range entry.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				score += 2
				reasons = append(reasons, fmt.Sprintf("tag match: %s", tag))
				break
			}
		}

		// The official boost raises matching entries proportionally;
		// it never turns a zero into a result.
		if score == 0 {
			continue
		}
		if entry.Official() {
			score *= cfg.SearchOfficialMultiplier
		}

		results = append(results, models.ScoredEntry{Item: entry, Score: score, Reasons: reasons})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}

	return results
}
