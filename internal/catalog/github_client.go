package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubClient implements RepoClient using the real GitHub API.
type GitHubClient struct {
	client *github.Client
}

var ErrGitHubTokenNotFound = fmt.Errorf("GITHUB_TOKEN or GH_TOKEN environment variable not found")

// NewGitHubClient creates an authenticated GitHub API client.
func NewGitHubClient(token string) *GitHubClient {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &GitHubClient{client: github.NewClient(tc)}
}

// NewGitHubClientFromEnv creates a client using the token from
// environment variables.
func NewGitHubClientFromEnv() (*GitHubClient, error) {
	token := os.Getenv("GH_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		return nil, ErrGitHubTokenNotFound
	}

	return NewGitHubClient(token), nil
}

// NewGitHubClientWithoutAuth creates an unauthenticated client for
// public repository lookups.
func NewGitHubClientWithoutAuth() *GitHubClient {
	return &GitHubClient{client: github.NewClient(nil)}
}

func (c *GitHubClient) GetRepository(ctx context.Context, owner, repo string) (*Repository, error) {
	r, _, err := c.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository %s/%s: %w", owner, repo, err)
	}

	result := &Repository{
		Stars: r.GetStargazersCount(),
	}
	if pushed := r.GetPushedAt(); !pushed.IsZero() {
		result.PushedAt = pushed.Time
	}
	return result, nil
}
