package interfaces

import (
	"context"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/model"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
)

// SessionRepository holds import sessions for the duration of a wizard run.
// Sessions are never persisted beyond the process.
type SessionRepository interface {
	PutSession(ctx context.Context, session *model.ImportSession) error
	GetSession(ctx context.Context, id types.SessionID) (*model.ImportSession, error)

	// UpdateSession applies fn to the stored session atomically. It fails with
	// ErrNotFound if the session was closed in the meantime, so results of
	// in-flight work never resurrect a discarded session.
	UpdateSession(ctx context.Context, id types.SessionID, fn func(*model.ImportSession) error) error

	DeleteSession(ctx context.Context, id types.SessionID) error
}
