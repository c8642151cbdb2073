package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/model"
)

func TestParseRepositoryURL(t *testing.T) {
	testCases := map[string]struct {
		input string
		want  *model.GitHubRepo
	}{
		"plain https URL": {
			input: "https://github.com/octocat/hello-world",
			want:  &model.GitHubRepo{Owner: "octocat", RepoName: "hello-world"},
		},
		"clone URL with .git suffix": {
			input: "https://github.com/octocat/hello-world.git",
			want:  &model.GitHubRepo{Owner: "octocat", RepoName: "hello-world"},
		},
		"trailing slash": {
			input: "https://github.com/octocat/hello-world/",
			want:  &model.GitHubRepo{Owner: "octocat", RepoName: "hello-world"},
		},
		"deep link keeps only owner and repo": {
			input: "https://github.com/octocat/hello-world/tree/main/pkg",
			want:  &model.GitHubRepo{Owner: "octocat", RepoName: "hello-world"},
		},
		"http scheme": {
			input: "http://github.com/octocat/hello-world",
			want:  &model.GitHubRepo{Owner: "octocat", RepoName: "hello-world"},
		},
		"surrounding whitespace": {
			input: "  https://github.com/octocat/hello-world  ",
			want:  &model.GitHubRepo{Owner: "octocat", RepoName: "hello-world"},
		},
		"missing repo": {
			input: "https://github.com/octocat",
			want:  nil,
		},
		"missing path": {
			input: "https://github.com",
			want:  nil,
		},
		"ssh scheme": {
			input: "ssh://git@github.com/octocat/hello-world.git",
			want:  nil,
		},
		"bare words": {
			input: "octocat/hello-world",
			want:  nil,
		},
		"empty string": {
			input: "",
			want:  nil,
		},
		"only .git as repo": {
			input: "https://github.com/octocat/.git",
			want:  nil,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got := model.ParseRepositoryURL(tc.input)
			if tc.want == nil {
				gt.True(t, got == nil)
				return
			}
			gt.True(t, got != nil)
			gt.V(t, got.Owner).Equal(tc.want.Owner)
			gt.V(t, got.RepoName).Equal(tc.want.RepoName)
			gt.NoError(t, got.Validate())
		})
	}
}

func TestGitHubRepoValidate(t *testing.T) {
	gt.NoError(t, (&model.GitHubRepo{Owner: "octocat", RepoName: "hello-world"}).Validate())
	gt.Error(t, (&model.GitHubRepo{RepoName: "hello-world"}).Validate())
	gt.Error(t, (&model.GitHubRepo{Owner: "octocat"}).Validate())
}
