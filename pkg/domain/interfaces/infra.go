package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub ProjectStore

import (
	"context"
	"time"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/model"
)

// GitHub is the read-only gateway to the GitHub REST API. Implementations own
// retry/backoff and response caching; callers never talk to the API directly.
type GitHub interface {
	// ListRepositories returns the user's repositories sorted by last update,
	// capped at a single page (100 entries).
	ListRepositories(ctx context.Context, username string) ([]*model.RepositorySummary, error)

	// GetRepository fetches a single repository's metadata.
	GetRepository(ctx context.Context, owner, repo string) (*model.RepositorySummary, error)

	// ListCommits returns commits authored since the given time, newest first,
	// capped at a single page (100 entries).
	ListCommits(ctx context.Context, owner, repo string, since time.Time) ([]model.CommitRecord, error)

	// GetReadme returns the decoded README text. A missing README is not an
	// error: it returns ("", nil).
	GetReadme(ctx context.Context, owner, repo string) (string, error)
}

// ProjectStore is the persistence collaborator. It receives only plain data
// produced by the pipeline and is never called from within the classifier,
// analyzer, or synthesizer.
type ProjectStore interface {
	ImportProjects(ctx context.Context, projects []*model.ImportedProject) error
}
