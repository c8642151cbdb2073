package model

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
)

// WorkLog is a time-windowed, categorized summary of commit activity on a
// repository. It is built fresh per request.
type WorkLog struct {
	TimeframeDays      int                          `json:"timeframe_days"`
	CommitCount        int                          `json:"commit_count"`
	CategoryCounts     map[types.CommitCategory]int `json:"category_counts"`
	MostActiveCategory types.CommitCategory         `json:"most_active_category"`
	LatestCommit       *CommitRecord                `json:"latest_commit,omitempty"`
	NarrativeSummary   string                       `json:"narrative_summary"`
}

// Validate checks the work log's internal consistency: the category counts
// must sum exactly to the commit count.
func (x *WorkLog) Validate() error {
	if x.TimeframeDays <= 0 {
		return goerr.Wrap(types.ErrValidationFailed, "timeframe must be positive",
			goerr.V("timeframe_days", x.TimeframeDays),
		)
	}
	if x.CommitCount < 0 {
		return goerr.Wrap(types.ErrValidationFailed, "commit count must not be negative",
			goerr.V("commit_count", x.CommitCount),
		)
	}

	var total int
	for _, n := range x.CategoryCounts {
		total += n
	}
	if total != x.CommitCount {
		return goerr.Wrap(types.ErrValidationFailed, "category counts do not sum to commit count",
			goerr.V("sum", total),
			goerr.V("commit_count", x.CommitCount),
		)
	}

	return nil
}
