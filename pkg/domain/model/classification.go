package model

import (
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
)

// MatchedSignal is one weighted heuristic that contributed to a
// classification, kept for transparency and debugging.
type MatchedSignal struct {
	Signal string  `json:"signal"`
	Weight float64 `json:"weight"`
}

// ClassificationResult is the classifier's judgement for a single repository.
// It is derived data, recomputed on demand and never persisted.
type ClassificationResult struct {
	RepositoryID types.GitHubRepoID    `json:"repository_id"`
	Confidence   float64               `json:"confidence"`
	Category     types.ProjectCategory `json:"category"`
	Signals      []MatchedSignal       `json:"signals"`
}
