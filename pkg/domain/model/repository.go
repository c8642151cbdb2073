package model

import (
	"time"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
)

// RepositorySummary is an immutable snapshot of a GitHub repository, fetched
// once per import session. Identity is ID.
type RepositorySummary struct {
	ID          types.GitHubRepoID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Language    string             `json:"language"`
	Stars       int                `json:"stars"`
	Forks       int                `json:"forks"`
	HTMLURL     string             `json:"html_url"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Private     bool               `json:"private"`
}
