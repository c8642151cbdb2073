package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/cli/config"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/model"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/infra"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/usecase"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/utils/logging"
)

func detectCommand() *cli.Command {
	var (
		username string
		github   config.GitHub
	)

	return &cli.Command{
		Name:    "detect",
		Aliases: []string{"d"},
		Usage:   "Classify a user's repositories as learning projects",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "username",
				Aliases:     []string{"u"},
				Usage:       "GitHub username to inspect",
				Sources:     cli.EnvVars("SHOWCASE_GITHUB_USERNAME"),
				Destination: &username,
				Required:    true,
			},
		}, github.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			ghClient, err := github.New()
			if err != nil {
				return err
			}

			clients := infra.New(infra.WithGitHub(ghClient))
			uc := usecase.New(clients)

			repos, err := clients.GitHub().ListRepositories(ctx, username)
			if err != nil {
				return goerr.Wrap(err, "failed to list repositories", goerr.V("username", username))
			}
			if len(repos) == 0 {
				logging.From(ctx).Info("no repositories found", slog.String("username", username))
				return nil
			}

			readmes := make(map[types.GitHubRepoID]string, len(repos))
			for _, repo := range repos {
				readme, err := clients.GitHub().GetReadme(ctx, username, repo.Name)
				if err != nil {
					logging.From(ctx).Warn("failed to fetch README, classifying without it",
						slog.String("repo", repo.Name),
						slog.String("error", err.Error()),
					)
					continue
				}
				readmes[repo.ID] = readme
			}

			results := uc.ClassifyRepositories(ctx, repos, readmes)

			// Preserve the gateway's last-update ordering in the output.
			type detection struct {
				Repository     *model.RepositorySummary    `json:"repository"`
				Classification *model.ClassificationResult `json:"classification"`
			}
			detections := make([]detection, 0, len(repos))
			for _, repo := range repos {
				detections = append(detections, detection{
					Repository:     repo,
					Classification: results[repo.ID],
				})
			}

			return printJSON(detections)
		},
	}
}
