package cli

import (
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/model"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
)

// resolveRepository builds the target repository from --url, --owner/--repo,
// or the local checkout's origin remote, in that order.
func resolveRepository(owner, repo, rawURL string) (*model.GitHubRepo, error) {
	if rawURL != "" {
		parsed := model.ParseRepositoryURL(rawURL)
		if parsed == nil {
			return nil, goerr.Wrap(types.ErrValidationFailed, "not a repository URL", goerr.V("url", rawURL))
		}
		return parsed, nil
	}

	ghRepo := &model.GitHubRepo{Owner: owner, RepoName: repo}
	if ghRepo.Owner == "" || ghRepo.RepoName == "" {
		if err := AutoDetectGitRepo(".", ghRepo); err != nil {
			return nil, err
		}
	}

	if err := ghRepo.Validate(); err != nil {
		return nil, err
	}
	return ghRepo, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to encode output")
	}
	return nil
}
