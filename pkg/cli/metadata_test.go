package cli_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/cli"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/model"
)

func TestParseRemoteURL(t *testing.T) {
	t.Run("SSH format", func(t *testing.T) {
		repo := cli.ParseRemoteURL("git@github.com:octocat/hello-world.git")
		gt.True(t, repo != nil)
		gt.V(t, repo.Owner).Equal("octocat")
		gt.V(t, repo.RepoName).Equal("hello-world")
	})

	t.Run("HTTPS format", func(t *testing.T) {
		repo := cli.ParseRemoteURL("https://github.com/octocat/hello-world.git")
		gt.True(t, repo != nil)
		gt.V(t, repo.Owner).Equal("octocat")
		gt.V(t, repo.RepoName).Equal("hello-world")
	})

	t.Run("unparsable URL", func(t *testing.T) {
		gt.True(t, cli.ParseRemoteURL("ftp://example.com/repo") == nil)
		gt.True(t, cli.ParseRemoteURL("git@github.com:broken") == nil)
	})
}

func TestAutoDetectGitRepo(t *testing.T) {
	t.Run("auto-detect from current git repository", func(t *testing.T) {
		var repo model.GitHubRepo
		err := cli.AutoDetectGitRepo(".", &repo)

		if err != nil {
			t.Skipf("Not in a git repository: %v", err)
		}

		gt.V(t, repo.Owner).NotEqual("")
		gt.V(t, repo.RepoName).NotEqual("")
	})

	t.Run("preserve existing values", func(t *testing.T) {
		repo := model.GitHubRepo{
			Owner:    "custom-owner",
			RepoName: "custom-repo",
		}
		gt.NoError(t, cli.AutoDetectGitRepo(".", &repo))

		gt.V(t, repo.Owner).Equal("custom-owner")
		gt.V(t, repo.RepoName).Equal("custom-repo")
	})
}
