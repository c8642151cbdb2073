package model

import (
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
)

// GitHubRepo identifies a repository by its owner and name.
type GitHubRepo struct {
	Owner    string `json:"owner"`
	RepoName string `json:"repo_name"`
}

func (x *GitHubRepo) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner is empty")
	}
	if x.RepoName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repo name is empty")
	}
	return nil
}

// ParseRepositoryURL parses a repository web URL such as
// https://github.com/owner/repo or https://github.com/owner/repo.git into its
// owner and repo name. It returns nil on malformed input; callers must treat
// nil as a validation failure.
func ParseRepositoryURL(rawURL string) *GitHubRepo {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil
	}
	if u.Host == "" {
		return nil
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil
	}

	repoName := strings.TrimSuffix(parts[1], ".git")
	if repoName == "" {
		return nil
	}

	return &GitHubRepo{
		Owner:    parts[0],
		RepoName: repoName,
	}
}
