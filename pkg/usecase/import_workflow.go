package usecase

import (
	"context"
	"sync"

	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/model"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/utils/logging"
)

// readmeFetchConcurrency bounds the parallel README fetches during Detect.
const readmeFetchConcurrency = 4

// CreateSession opens a new import session in the username step.
func (x *UseCase) CreateSession(ctx context.Context, username string, platform types.Platform) (*model.ImportSession, error) {
	if username == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "username is empty")
	}

	now := logging.CtxTime(ctx)
	session := &model.ImportSession{
		ID:          types.NewSessionID(),
		Username:    username,
		Platform:    platform,
		SelectedIDs: make(map[types.GitHubRepoID]struct{}),
		Step:        types.StepUsername,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := x.clients.SessionRepository().PutSession(ctx, session); err != nil {
		return nil, goerr.Wrap(err, "failed to store import session")
	}

	logging.From(ctx).Info("Created import session",
		slog.Any("sessionID", session.ID),
		slog.String("username", username),
		slog.Any("platform", platform),
	)

	return session, nil
}

func (x *UseCase) GetSession(ctx context.Context, id types.SessionID) (*model.ImportSession, error) {
	return x.clients.SessionRepository().GetSession(ctx, id)
}

// FetchRepositories loads the user's repositories and advances the session to
// the selection step. It is only valid in the username step; going back first
// is required to re-fetch. An empty repository list keeps the session in the
// username step; gateway failures leave the session untouched. The fetched
// list is applied only if the session still exists when the fetch completes,
// so an abandoned wizard never receives late results.
func (x *UseCase) FetchRepositories(ctx context.Context, id types.SessionID) (*model.ImportSession, error) {
	session, err := x.clients.SessionRepository().GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.Step != types.StepUsername {
		return nil, goerr.Wrap(types.ErrValidationFailed, "fetching is only allowed in the username step",
			goerr.V("step", session.Step),
		)
	}

	repos, err := x.clients.GitHub().ListRepositories(ctx, session.Username)
	if err != nil {
		return nil, err
	}

	if len(repos) == 0 {
		logging.From(ctx).Info("User has no repositories, staying in username step",
			slog.Any("sessionID", id),
			slog.String("username", session.Username),
		)
		return session, nil
	}

	err = x.clients.SessionRepository().UpdateSession(ctx, id, func(s *model.ImportSession) error {
		if s.Step != types.StepUsername {
			return goerr.Wrap(types.ErrValidationFailed, "session moved during fetch",
				goerr.V("step", s.Step),
			)
		}
		s.FetchedRepositories = repos
		s.Step = types.StepSelectRepos
		s.UpdatedAt = logging.CtxTime(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return x.clients.SessionRepository().GetSession(ctx, id)
}

// SelectRepositories replaces the session's selection set. Every ID must
// belong to a fetched repository.
func (x *UseCase) SelectRepositories(ctx context.Context, id types.SessionID, repoIDs []types.GitHubRepoID) (*model.ImportSession, error) {
	err := x.clients.SessionRepository().UpdateSession(ctx, id, func(s *model.ImportSession) error {
		if s.Step != types.StepSelectRepos {
			return goerr.Wrap(types.ErrValidationFailed, "selection is only allowed in the select_repos step",
				goerr.V("step", s.Step),
			)
		}

		selected := make(map[types.GitHubRepoID]struct{}, len(repoIDs))
		for _, repoID := range repoIDs {
			if s.Repository(repoID) == nil {
				return goerr.Wrap(types.ErrValidationFailed, "unknown repository ID",
					goerr.V("repoID", repoID),
				)
			}
			selected[repoID] = struct{}{}
		}

		s.SelectedIDs = selected
		s.UpdatedAt = logging.CtxTime(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return x.clients.SessionRepository().GetSession(ctx, id)
}

// DetectProjects fetches the README of every selected repository, classifies
// them, and advances to the review step. Repositories whose README fetch
// fails are skipped without dropping the successful ones; if nothing could be
// classified, the session stays in the selection step and the error is
// surfaced.
func (x *UseCase) DetectProjects(ctx context.Context, id types.SessionID) (*model.ImportSession, error) {
	session, err := x.clients.SessionRepository().GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.Step != types.StepSelectRepos {
		return nil, goerr.Wrap(types.ErrValidationFailed, "detection is only allowed in the select_repos step",
			goerr.V("step", session.Step),
		)
	}

	selected := session.Selected()
	if len(selected) == 0 {
		return nil, goerr.Wrap(types.ErrValidationFailed, "no repositories selected")
	}

	var mu sync.Mutex
	readmes := make(map[types.GitHubRepoID]string, len(selected))
	var fetchErrs []error

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(readmeFetchConcurrency)
	for _, repo := range selected {
		eg.Go(func() error {
			readme, err := x.clients.GitHub().GetReadme(egCtx, session.Username, repo.Name)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logging.From(ctx).Warn("Failed to fetch README, skipping repository",
					slog.Any("repoID", repo.ID),
					slog.String("repo", repo.Name),
					slog.String("error", err.Error()),
				)
				fetchErrs = append(fetchErrs, err)
				return nil
			}
			readmes[repo.ID] = readme
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var classifiable []*model.RepositorySummary
	for _, repo := range selected {
		if _, ok := readmes[repo.ID]; ok {
			classifiable = append(classifiable, repo)
		}
	}

	if len(classifiable) == 0 {
		return nil, goerr.Wrap(types.ErrNetwork, "detection failed for all selected repositories",
			goerr.V("sessionID", id),
			goerr.V("failures", len(fetchErrs)),
		)
	}

	classifications := x.ClassifyRepositories(ctx, classifiable, readmes)

	err = x.clients.SessionRepository().UpdateSession(ctx, id, func(s *model.ImportSession) error {
		if s.Step != types.StepSelectRepos {
			return goerr.Wrap(types.ErrValidationFailed, "session moved during detection",
				goerr.V("step", s.Step),
			)
		}
		s.Classifications = classifications
		s.Step = types.StepReview
		s.UpdatedAt = logging.CtxTime(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("Detected projects",
		slog.Any("sessionID", id),
		slog.Int("classified", len(classifications)),
		slog.Int("skipped", len(fetchErrs)),
	)

	return x.clients.SessionRepository().GetSession(ctx, id)
}

// Back returns the session to the previous step without discarding fetched
// data, so re-entering a step avoids re-fetching.
func (x *UseCase) Back(ctx context.Context, id types.SessionID) (*model.ImportSession, error) {
	err := x.clients.SessionRepository().UpdateSession(ctx, id, func(s *model.ImportSession) error {
		switch s.Step {
		case types.StepReview:
			s.Step = types.StepSelectRepos
		case types.StepSelectRepos:
			s.Step = types.StepUsername
		default:
			return goerr.Wrap(types.ErrValidationFailed, "cannot go back from the initial step")
		}
		s.UpdatedAt = logging.CtxTime(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return x.clients.SessionRepository().GetSession(ctx, id)
}

// ImportProjects hands the selected, classified projects to the persistence
// collaborator and terminates the session on success. Selected repositories
// whose detection failed carry no classification and are not handed over.
func (x *UseCase) ImportProjects(ctx context.Context, id types.SessionID) ([]*model.ImportedProject, error) {
	session, err := x.clients.SessionRepository().GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.Step != types.StepReview {
		return nil, goerr.Wrap(types.ErrValidationFailed, "import is only allowed in the review_import step",
			goerr.V("step", session.Step),
		)
	}

	now := logging.CtxTime(ctx)
	var projects []*model.ImportedProject
	for _, repo := range session.Selected() {
		classification, ok := session.Classifications[repo.ID]
		if !ok {
			// Detection skipped this repository, so there is no record to store
			logging.From(ctx).Warn("Skipping unclassified repository",
				slog.Any("sessionID", id),
				slog.Any("repoID", repo.ID),
				slog.String("repo", repo.Name),
			)
			continue
		}
		projects = append(projects, &model.ImportedProject{
			Repository:     *repo,
			Classification: classification,
			Username:       session.Username,
			ImportedAt:     now,
		})
	}

	if len(projects) == 0 {
		return nil, goerr.Wrap(types.ErrValidationFailed, "no projects to import")
	}

	if err := x.clients.ProjectStore().ImportProjects(ctx, projects); err != nil {
		return nil, goerr.Wrap(err, "failed to hand projects to the store",
			goerr.V("sessionID", id),
		)
	}

	if err := x.clients.SessionRepository().DeleteSession(ctx, id); err != nil {
		return nil, goerr.Wrap(err, "failed to close session after import",
			goerr.V("sessionID", id),
		)
	}

	logging.From(ctx).Info("Imported projects",
		slog.Any("sessionID", id),
		slog.Int("count", len(projects)),
	)

	return projects, nil
}

// CloseSession discards the session. In-flight work for the session fails on
// its next repository access.
func (x *UseCase) CloseSession(ctx context.Context, id types.SessionID) error {
	return x.clients.SessionRepository().DeleteSession(ctx, id)
}
