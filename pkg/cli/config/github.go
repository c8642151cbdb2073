package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/infra/githubapi"
)

// GitHub selects the gateway credential: a personal access token, a GitHub
// App key pair, or nothing for anonymous access.
type GitHub struct {
	token      types.GitHubToken `masq:"secret"`
	appID      int64
	privateKey string            `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token (anonymous access if not specified)",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("SHOWCASE_GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID (takes precedence over the token)",
			Category:    "GitHub",
			Destination: &x.appID,
			Sources:     cli.EnvVars("SHOWCASE_GITHUB_APP_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub",
			Destination: &x.privateKey,
			Sources:     cli.EnvVars("SHOWCASE_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

func (x GitHub) New() (*githubapi.Client, error) {
	if x.appID != 0 {
		return githubapi.New(githubapi.WithApp(x.appID, []byte(x.privateKey)))
	}
	if x.token != "" {
		return githubapi.New(githubapi.WithToken(x.token))
	}
	return githubapi.New()
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.Int64("appID", x.appID),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}
