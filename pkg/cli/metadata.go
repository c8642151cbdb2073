package cli

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/model"
)

// AutoDetectGitRepo fills owner and repo name from the local checkout's
// origin remote if not already set.
func AutoDetectGitRepo(dir string, ghRepo *model.GitHubRepo) error {
	if ghRepo.Owner != "" && ghRepo.RepoName != "" {
		return nil
	}

	repo, err := git.PlainOpen(dir)
	if err != nil {
		return goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return goerr.Wrap(err, "failed to get remote origin")
	}

	if len(remote.Config().URLs) == 0 {
		return goerr.New("no remote URL found")
	}

	url := remote.Config().URLs[0]
	parsed := ParseRemoteURL(url)
	if parsed == nil {
		return goerr.New("failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}

	if ghRepo.Owner == "" {
		ghRepo.Owner = parsed.Owner
	}
	if ghRepo.RepoName == "" {
		ghRepo.RepoName = parsed.RepoName
	}

	return nil
}

// ParseRemoteURL parses a git remote URL in SSH form
// (git@github.com:owner/repo.git) or HTTPS form
// (https://github.com/owner/repo.git). It returns nil on anything else.
func ParseRemoteURL(url string) *model.GitHubRepo {
	if rest, ok := strings.CutPrefix(url, "git@github.com:"); ok {
		rest = strings.TrimSuffix(rest, ".git")
		ownerRepo := strings.Split(rest, "/")
		if len(ownerRepo) != 2 || ownerRepo[0] == "" || ownerRepo[1] == "" {
			return nil
		}
		return &model.GitHubRepo{
			Owner:    ownerRepo[0],
			RepoName: ownerRepo[1],
		}
	}

	return model.ParseRepositoryURL(url)
}
