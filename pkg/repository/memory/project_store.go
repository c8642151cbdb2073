package memory

import (
	"context"
	"sync"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/interfaces"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/model"
)

// ProjectStore keeps imported project records in memory.
type ProjectStore struct {
	mu       sync.RWMutex
	projects []*model.ImportedProject
}

var _ interfaces.ProjectStore = (*ProjectStore)(nil)

func (s *ProjectStore) ImportProjects(ctx context.Context, projects []*model.ImportedProject) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, project := range projects {
		p := *project
		s.projects = append(s.projects, &p)
	}

	return nil
}

// Projects returns a snapshot of all imported projects.
func (s *ProjectStore) Projects() []*model.ImportedProject {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]*model.ImportedProject, len(s.projects))
	for i, project := range s.projects {
		p := *project
		snapshot[i] = &p
	}

	return snapshot
}
