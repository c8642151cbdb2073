package model

import (
	"time"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
)

// CommitRecord is a read-only view of a single commit, ordered by AuthorDate
// descending as returned by the gateway.
type CommitRecord struct {
	SHA        types.CommitSHA `json:"sha"`
	Message    string          `json:"message"`
	AuthorDate time.Time       `json:"author_date"`
}

// Subject returns the first line of the commit message.
func (x CommitRecord) Subject() string {
	for i := 0; i < len(x.Message); i++ {
		if x.Message[i] == '\n' {
			return x.Message[:i]
		}
	}
	return x.Message
}
