package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/cli/config"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/infra"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/usecase"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/utils/logging"
)

func worklogCommand() *cli.Command {
	var (
		owner  string
		repo   string
		rawURL string
		days   int

		github config.GitHub
	)

	return &cli.Command{
		Name:    "worklog",
		Aliases: []string{"w"},
		Usage:   "Summarize recent commit activity of a repository",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "owner",
				Usage:       "Repository owner (auto-detect from git if not specified)",
				Sources:     cli.EnvVars("SHOWCASE_GITHUB_OWNER"),
				Destination: &owner,
			},
			&cli.StringFlag{
				Name:        "repo",
				Usage:       "Repository name (auto-detect from git if not specified)",
				Sources:     cli.EnvVars("SHOWCASE_GITHUB_REPO"),
				Destination: &repo,
			},
			&cli.StringFlag{
				Name:        "url",
				Usage:       "Repository URL, overrides --owner/--repo",
				Destination: &rawURL,
			},
			&cli.IntFlag{
				Name:        "days",
				Usage:       "Timeframe in days",
				Value:       30,
				Destination: &days,
			},
		}, github.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			ghRepo, err := resolveRepository(owner, repo, rawURL)
			if err != nil {
				return err
			}

			ghClient, err := github.New()
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(infra.WithGitHub(ghClient)))

			workLog, err := uc.GenerateWorkLog(ctx, ghRepo.Owner, ghRepo.RepoName, days)
			if err != nil {
				return err
			}
			if workLog == nil {
				logging.From(ctx).Info("no commit activity in timeframe",
					slog.String("owner", ghRepo.Owner),
					slog.String("repo", ghRepo.RepoName),
					slog.Int("days", days),
				)
				return nil
			}

			return printJSON(workLog)
		},
	}
}
