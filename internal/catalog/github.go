package catalog

import (
	"context"
	"time"
)

// RepoClient provides the repository metadata the enricher needs. The
// real implementation talks to the GitHub API; tests use the mock.
type RepoClient interface {
	GetRepository(ctx context.Context, owner, repo string) (*Repository, error)
}

// Repository is the subset of repository metadata used for catalog
// metrics.
type Repository struct {
	Stars    int
	PushedAt time.Time
}
