package catalog

import (
	"context"
	"fmt"
)

// MockRepoClient is an in-memory RepoClient for testing.
type MockRepoClient struct {
	Repos map[string]*Repository // keyed by "owner/repo"
	Calls []string
}

// NewMockRepoClient creates an empty MockRepoClient.
func NewMockRepoClient() *MockRepoClient {
	return &MockRepoClient{Repos: make(map[string]*Repository)}
}

func (m *MockRepoClient) GetRepository(_ context.Context, owner, repo string) (*Repository, error) {
	key := fmt.Sprintf("%s/%s", owner, repo)
	m.Calls = append(m.Calls, key)

	r, ok := m.Repos[key]
	if !ok {
		return nil, fmt.Errorf("repository %s not found", key)
	}
	return r, nil
}
