package catalog

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// Enricher fills star counts and last-updated timestamps for entries
// whose URL points at a GitHub repository. Lookup failures skip the
// entry rather than aborting the run.
type Enricher struct {
	client RepoClient
}

// NewEnricher creates an Enricher.
func NewEnricher(client RepoClient) *Enricher {
	return &Enricher{client: client}
}

// Enrich updates doc items in place and returns how many entries were
// enriched.
func (e *Enricher) Enrich(ctx context.Context, doc *Document) int {
	enriched := 0
	for _, item := range doc.Items {
		owner, repo, ok := parseGitHubURL(item.URL)
		if !ok {
			continue
		}

		r, err := e.client.GetRepository(ctx, owner, repo)
		if err != nil {
			continue
		}

		item.Metrics.Stars = r.Stars
		if !r.PushedAt.IsZero() {
			item.Metrics.LastUpdated = r.PushedAt.UTC().Format(time.RFC3339)
		}
		enriched++
	}
	return enriched
}

// parseGitHubURL extracts owner and repo from a github.com URL.
func parseGitHubURL(raw string) (string, string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", false
	}
	if u.Host != "github.com" && u.Host != "www.github.com" {
		return "", "", false
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), true
}
