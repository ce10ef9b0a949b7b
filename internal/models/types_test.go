package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRecommendationType(t *testing.T) {
	rt, err := ParseRecommendationType("mcp-server")
	require.NoError(t, err)
	require.Equal(t, TypeMCPServer, rt)

	_, err = ParseRecommendationType("nonsense")
	require.Error(t, err)
}

func TestParseRecommendationTypes(t *testing.T) {
	types, err := ParseRecommendationTypes([]string{"skill", "plugin"})
	require.NoError(t, err)
	require.Equal(t, []RecommendationType{TypeSkill, TypePlugin}, types)

	types, err = ParseRecommendationTypes(nil)
	require.NoError(t, err)
	require.Nil(t, types)

	_, err = ParseRecommendationTypes([]string{"skill", "bad"})
	require.Error(t, err)
}

func TestOfficial(t *testing.T) {
	require.True(t, (&CatalogEntry{Metrics: Metrics{IsOfficial: true}}).Official())
	require.True(t, (&CatalogEntry{Metrics: Metrics{Source: SourceOfficial}}).Official())
	require.False(t, (&CatalogEntry{Metrics: Metrics{Source: SourceCommunity}}).Official())
}
