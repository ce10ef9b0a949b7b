// Package recommend implements the two scoring algorithms: context-aware
// recommendation scoring against a project fingerprint and keyword
// search scoring against a free-text query. Both are pure functions
// over an injected catalog slice and are safe for concurrent use.
package recommend

// Weights are the per-signal additive weights of the recommendation
// scorer.
type Weights struct {
	Language    float64
	Framework   float64
	Dependency  float64
	FilePattern float64
	Keyword     float64
}

// Config carries all scoring constants. The defaults are empirically
// tuned, not derived; treat them as configurable, and note that the
// additive bonuses mean the normalized score is roughly bounded, not a
// strict [0,1] guarantee.
type Config struct {
	Weights Weights

	// Quality multipliers, applied after all signal weights are summed.
	OfficialMultiplier     float64
	SecurityHighMultiplier float64
	SecurityLowMultiplier  float64
	SecurityHighThreshold  int
	SecurityLowThreshold   int

	// Normalization and filtering. MinScore applies to the raw signal
	// score before normalization.
	MaxRawScore float64
	MinScore    float64
	MaxResults  int

	// Context-aware bonuses, additive after multipliers.
	EnableContextBonuses bool
	SizeFitBonus         float64
	MonorepoBonus        float64
	TeamFitBonus         float64

	// Tag co-occurrence similarity bonus.
	EnableSimilarityBonus bool
	SimilarityTopN        int
	SimilarityMinShared   int
	SimilarityMinJaccard  float64
	SimilarityWeight      float64
	SimilarityMaxBonus    float64

	// Search scorer.
	SearchOfficialMultiplier float64
}

// DefaultConfig returns the default scoring configuration. Context and
// similarity bonuses are disabled by default.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Language:    5,
			Framework:   4,
			Dependency:  3,
			FilePattern: 2,
			Keyword:     1,
		},
		OfficialMultiplier:     1.3,
		SecurityHighMultiplier: 1.1,
		SecurityLowMultiplier:  0.7,
		SecurityHighThreshold:  80,
		SecurityLowThreshold:   50,
		MaxRawScore:            50,
		MinScore:               1,
		MaxResults:             20,

		SizeFitBonus:  2,
		MonorepoBonus: 2,
		TeamFitBonus:  1.5,

		SimilarityTopN:       5,
		SimilarityMinShared:  2,
		SimilarityMinJaccard: 0.3,
		SimilarityWeight:     3,
		SimilarityMaxBonus:   3,

		SearchOfficialMultiplier: 1.2,
	}
}
