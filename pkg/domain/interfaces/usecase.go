package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/model"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
)

type UseCase interface {
	// Classification
	ClassifyRepositories(ctx context.Context, repos []*model.RepositorySummary, readmeLookup map[types.GitHubRepoID]string) map[types.GitHubRepoID]*model.ClassificationResult

	// Commit history analysis. A nil WorkLog with a nil error means no
	// activity in the timeframe, not a failure.
	GenerateWorkLog(ctx context.Context, owner, repo string, timeframeDays int) (*model.WorkLog, error)

	// Content synthesis
	GeneratePlatformContent(project *model.ProjectDetails, workLog *model.WorkLog, commits []model.CommitRecord, customMessage string) map[types.Platform]*model.PlatformContent

	// Import workflow
	CreateSession(ctx context.Context, username string, platform types.Platform) (*model.ImportSession, error)
	GetSession(ctx context.Context, id types.SessionID) (*model.ImportSession, error)
	FetchRepositories(ctx context.Context, id types.SessionID) (*model.ImportSession, error)
	SelectRepositories(ctx context.Context, id types.SessionID, repoIDs []types.GitHubRepoID) (*model.ImportSession, error)
	DetectProjects(ctx context.Context, id types.SessionID) (*model.ImportSession, error)
	Back(ctx context.Context, id types.SessionID) (*model.ImportSession, error)
	ImportProjects(ctx context.Context, id types.SessionID) ([]*model.ImportedProject, error)
	CloseSession(ctx context.Context, id types.SessionID) error
}
