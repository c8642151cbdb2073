package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/cli/config"
)

func TestGitHubFlags(t *testing.T) {
	githubConfig := &config.GitHub{}
	flags := githubConfig.Flags()

	gt.V(t, len(flags)).Equal(3)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["github-token"])
	gt.True(t, flagNames["github-app-id"])
	gt.True(t, flagNames["github-app-private-key"])
}

func TestGitHubNew(t *testing.T) {
	t.Run("anonymous client without credentials", func(t *testing.T) {
		githubConfig := &config.GitHub{}
		client := gt.R1(githubConfig.New()).NoError(t)
		gt.True(t, client != nil)
	})
}
