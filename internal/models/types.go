package models

import "fmt"

// RecommendationType represents the kind of a catalog entry
type RecommendationType string

const (
	TypePlugin    RecommendationType = "plugin"
	TypeMCPServer RecommendationType = "mcp-server"
	TypeSkill     RecommendationType = "skill"
	TypeWorkflow  RecommendationType = "workflow"
	TypeHook      RecommendationType = "hook"
	TypeCommand   RecommendationType = "command"
	TypeAgent     RecommendationType = "agent"
)

// IsValid checks if the recommendation type is valid
func (t RecommendationType) IsValid() bool {
	switch t {
	case TypePlugin, TypeMCPServer, TypeSkill, TypeWorkflow, TypeHook, TypeCommand, TypeAgent:
		return true
	default:
		return false
	}
}

// String returns the string representation of RecommendationType
func (t RecommendationType) String() string {
	return string(t)
}

// ParseRecommendationType parses a string into a RecommendationType
func ParseRecommendationType(s string) (RecommendationType, error) {
	rt := RecommendationType(s)
	if !rt.IsValid() {
		return "", fmt.Errorf("invalid type: %s (must be plugin, mcp-server, skill, workflow, hook, command, or agent)", s)
	}
	return rt, nil
}

// ParseRecommendationTypes parses a list of strings, rejecting the
// whole list on the first invalid value.
func ParseRecommendationTypes(values []string) ([]RecommendationType, error) {
	if len(values) == 0 {
		return nil, nil
	}

	types := make([]RecommendationType, 0, len(values))
	for _, v := range values {
		rt, err := ParseRecommendationType(v)
		if err != nil {
			return nil, err
		}
		types = append(types, rt)
	}
	return types, nil
}
