package model

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
)

// ImportSession is the wizard's working state. It lives only in the session
// repository: created when the wizard opens, mutated through each step, and
// discarded on close or completion.
type ImportSession struct {
	ID                  types.SessionID                              `json:"id"`
	Username            string                                       `json:"username"`
	Platform            types.Platform                               `json:"platform"`
	FetchedRepositories []*RepositorySummary                         `json:"fetched_repositories"`
	SelectedIDs         map[types.GitHubRepoID]struct{}              `json:"-"`
	Classifications     map[types.GitHubRepoID]*ClassificationResult `json:"classifications,omitempty"`
	Step                types.ImportStep                             `json:"step"`
	CreatedAt           time.Time                                    `json:"created_at"`
	UpdatedAt           time.Time                                    `json:"updated_at"`
}

// Repository returns the fetched snapshot for the given ID, or nil if the
// session never fetched it.
func (x *ImportSession) Repository(id types.GitHubRepoID) *RepositorySummary {
	for _, repo := range x.FetchedRepositories {
		if repo.ID == id {
			return repo
		}
	}
	return nil
}

// SelectedRepoIDs returns the selected repository IDs in ascending order.
func (x *ImportSession) SelectedRepoIDs() []types.GitHubRepoID {
	ids := make([]types.GitHubRepoID, 0, len(x.SelectedIDs))
	for id := range x.SelectedIDs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// MarshalJSON exposes the selection set as a sorted ID array. The map itself
// stays out of the wire format.
func (x ImportSession) MarshalJSON() ([]byte, error) {
	type alias ImportSession
	return json.Marshal(struct {
		alias
		SelectedIDs []types.GitHubRepoID `json:"selected_ids"`
	}{
		alias:       alias(x),
		SelectedIDs: x.SelectedRepoIDs(),
	})
}

// Selected returns the selected repository snapshots in fetch order.
func (x *ImportSession) Selected() []*RepositorySummary {
	var repos []*RepositorySummary
	for _, repo := range x.FetchedRepositories {
		if _, ok := x.SelectedIDs[repo.ID]; ok {
			repos = append(repos, repo)
		}
	}
	return repos
}

// ImportedProject is the plain record handed to the persistence collaborator
// when the user confirms an import.
type ImportedProject struct {
	Repository     RepositorySummary     `json:"repository"`
	Classification *ClassificationResult `json:"classification,omitempty"`
	Username       string                `json:"username"`
	ImportedAt     time.Time             `json:"imported_at"`
}
