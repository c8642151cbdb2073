package memory

import (
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/interfaces"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/model"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
)

// New creates a new in-memory session repository
func New() interfaces.SessionRepository {
	return &sessionRepository{
		sessions: make(map[types.SessionID]*model.ImportSession),
	}
}

// NewProjectStore creates a new in-memory project store. It is the default
// persistence collaborator; the hosting application replaces it with its own
// storage.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{}
}
