package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/cli/config"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/model"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/infra"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/usecase"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/utils/logging"
)

func contentCommand() *cli.Command {
	var (
		owner  string
		repo   string
		rawURL string
		days   int

		title         string
		description   string
		liveURL       string
		technologies  []string
		customMessage string

		github config.GitHub
	)

	return &cli.Command{
		Name:    "content",
		Aliases: []string{"c"},
		Usage:   "Draft share-ready posts for a repository, one per platform",
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
				Usage:       "Work-log timeframe in days (0 skips the work log)",
				Value:       30,
				Destination: &days,
			},
			&cli.StringFlag{
				Name:        "title",
				Usage:       "Project title (defaults to the repository name)",
				Destination: &title,
			},
			&cli.StringFlag{
				Name:        "description",
				Usage:       "Project description (defaults to the repository description)",
				Destination: &description,
			},
			&cli.StringFlag{
				Name:        "live-url",
				Usage:       "Live deployment URL used as the call to action",
				Destination: &liveURL,
			},
			&cli.StringSliceFlag{
				Name:        "tech",
				Usage:       "Technology names to mention (repeatable)",
				Destination: &technologies,
			},
			&cli.StringFlag{
				Name:        "message",
				Usage:       "Custom message used verbatim as the seed text",
				Destination: &customMessage,
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

			clients := infra.New(infra.WithGitHub(ghClient))
			uc := usecase.New(clients)

			project := &model.ProjectDetails{
				Title:        title,
				Description:  description,
				LiveURL:      liveURL,
				SourceURL:    "https://github.com/" + ghRepo.Owner + "/" + ghRepo.RepoName,
				Technologies: technologies,
			}

			if project.Title == "" || project.Description == "" {
				summary, err := clients.GitHub().GetRepository(ctx, ghRepo.Owner, ghRepo.RepoName)
				if err != nil {
					return err
				}
				if project.Title == "" {
					project.Title = summary.Name
				}
				if project.Description == "" {
					project.Description = summary.Description
				}
				if summary.HTMLURL != "" {
					project.SourceURL = summary.HTMLURL
				}
			}

			var workLog *model.WorkLog
			if days > 0 {
				workLog, err = uc.GenerateWorkLog(ctx, ghRepo.Owner, ghRepo.RepoName, days)
				if err != nil && !errors.Is(err, types.ErrNotFound) {
					return err
				}
				if workLog == nil {
					logging.From(ctx).Info("no commit activity to weave into the content",
						slog.String("owner", ghRepo.Owner),
						slog.String("repo", ghRepo.RepoName),
						slog.Int("days", days),
					)
				}
			}

			contents := uc.GeneratePlatformContent(project, workLog, nil, customMessage)
			return printJSON(contents)
		},
	}
}
