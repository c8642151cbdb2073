package infra

import (
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/interfaces"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/repository/memory"
)

type Clients struct {
	github            interfaces.GitHub
	sessionRepository interfaces.SessionRepository
	projectStore      interfaces.ProjectStore
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		sessionRepository: memory.New(),
		projectStore:      memory.NewProjectStore(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) SessionRepository() interfaces.SessionRepository {
	return x.sessionRepository
}
func (x *Clients) ProjectStore() interfaces.ProjectStore {
	return x.projectStore
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithSessionRepository(repo interfaces.SessionRepository) Option {
	return func(x *Clients) {
		x.sessionRepository = repo
	}
}

func WithProjectStore(store interfaces.ProjectStore) Option {
	return func(x *Clients) {
		x.projectStore = store
	}
}
