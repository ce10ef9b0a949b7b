package models

// ScoredEntry pairs a catalog entry with its computed score and the
// ordered, human-readable reasons for each positive contribution.
// Instances live for a single scoring call.
type ScoredEntry struct {
	Item    *CatalogEntry `json:"item"`
	Score   float64       `json:"score"`
	Reasons []string      `json:"reasons"`
}
