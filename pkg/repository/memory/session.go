package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/model"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/repository"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[types.SessionID]*model.ImportSession
}

func (r *sessionRepository) PutSession(ctx context.Context, session *model.ImportSession) error {
	if session.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "session ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = copySession(session)

	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context, id types.SessionID) (*model.ImportSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "session not found",
			goerr.V("sessionID", id),
		)
	}

	return copySession(session), nil
}

// UpdateSession applies fn to the stored session under the write lock. If the
// session was deleted in the meantime it fails with ErrNotFound and fn is
// never called, so results of abandoned work are discarded.
func (r *sessionRepository) UpdateSession(ctx context.Context, id types.SessionID, fn func(*model.ImportSession) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, exists := r.sessions[id]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "session not found",
			goerr.V("sessionID", id),
		)
	}

	updated := copySession(session)
	if err := fn(updated); err != nil {
		return err
	}

	r.sessions[id] = updated

	return nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, id types.SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; !exists {
		return goerr.Wrap(repository.ErrNotFound, "session not found",
			goerr.V("sessionID", id),
		)
	}

	delete(r.sessions, id)

	return nil
}

func copySession(session *model.ImportSession) *model.ImportSession {
	copied := *session

	copied.FetchedRepositories = make([]*model.RepositorySummary, len(session.FetchedRepositories))
	for i, repo := range session.FetchedRepositories {
		r := *repo
		copied.FetchedRepositories[i] = &r
	}

	copied.SelectedIDs = make(map[types.GitHubRepoID]struct{}, len(session.SelectedIDs))
	for id := range session.SelectedIDs {
		copied.SelectedIDs[id] = struct{}{}
	}

	copied.Classifications = make(map[types.GitHubRepoID]*model.ClassificationResult, len(session.Classifications))
	for id, result := range session.Classifications {
		c := *result
		c.Signals = append([]model.MatchedSignal(nil), result.Signals...)
		copied.Classifications[id] = &c
	}

	return &copied
}
