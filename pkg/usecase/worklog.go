package usecase

import (
	"context"
	"fmt"
	"strings"

	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/model"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/utils/logging"
)

// commitKeywords maps each commit category to the keywords matched against
// the lowercased first line of the commit message. Categories are tried in
// types.CommitCategories order; the first match wins.
var commitKeywords = map[types.CommitCategory][]string{
	types.CommitFixes:    {"fix", "bug", "patch", "resolve"},
	types.CommitFeatures: {"add", "feature", "implement", "new"},
	types.CommitRefactor: {"refactor", "clean", "restructure", "optimize"},
	types.CommitDocs:     {"doc", "readme", "comment"},
}

// CategorizeCommit assigns a commit message to its semantic bucket based on
// the first line. Messages matching no keyword set fall into chore.
func CategorizeCommit(message string) types.CommitCategory {
	subject := strings.ToLower(model.CommitRecord{Message: message}.Subject())

	for _, category := range types.CommitCategories {
		for _, keyword := range commitKeywords[category] {
			if strings.Contains(subject, keyword) {
				return category
			}
		}
	}

	return types.CommitChore
}

// GenerateWorkLog fetches the repository's commits within the timeframe and
// summarizes them. A nil WorkLog with a nil error means the repository had no
// activity in the window; gateway failures are propagated unchanged.
func (x *UseCase) GenerateWorkLog(ctx context.Context, owner, repo string, timeframeDays int) (*model.WorkLog, error) {
	if timeframeDays <= 0 {
		return nil, goerr.Wrap(types.ErrValidationFailed, "timeframe must be positive",
			goerr.V("timeframe_days", timeframeDays),
		)
	}

	since := logging.CtxTime(ctx).AddDate(0, 0, -timeframeDays)

	commits, err := x.clients.GitHub().ListCommits(ctx, owner, repo, since)
	if err != nil {
		return nil, err
	}

	if len(commits) == 0 {
		logging.From(ctx).Warn("No commit activity in timeframe",
			slog.String("owner", owner),
			slog.String("repo", repo),
			slog.Int("timeframe_days", timeframeDays),
		)
		return nil, nil
	}

	counts := make(map[types.CommitCategory]int, len(types.CommitCategories))
	for _, category := range types.CommitCategories {
		counts[category] = 0
	}

	var latest *model.CommitRecord
	for i := range commits {
		counts[CategorizeCommit(commits[i].Message)]++

		if latest == nil || commits[i].AuthorDate.After(latest.AuthorDate) {
			latest = &commits[i]
		}
	}

	mostActive := types.CommitChore
	var mostActiveCount int
	for _, category := range types.CommitCategories {
		if counts[category] > mostActiveCount {
			mostActive = category
			mostActiveCount = counts[category]
		}
	}

	workLog := &model.WorkLog{
		TimeframeDays:      timeframeDays,
		CommitCount:        len(commits),
		CategoryCounts:     counts,
		MostActiveCategory: mostActive,
		LatestCommit:       latest,
		NarrativeSummary:   buildNarrative(len(commits), timeframeDays, mostActive, counts),
	}

	if err := workLog.Validate(); err != nil {
		return nil, goerr.Wrap(err, "generated work log is inconsistent",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	return workLog, nil
}

// buildNarrative renders a deterministic one-sentence summary of the work log.
func buildNarrative(commitCount, timeframeDays int, mostActive types.CommitCategory, counts map[types.CommitCategory]int) string {
	commitWord := "commits"
	if commitCount == 1 {
		commitWord = "commit"
	}

	var parts []string
	for _, category := range types.CommitCategories {
		if counts[category] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[category], category))
		}
	}

	return fmt.Sprintf("Made %d %s over the last %d days, with most activity in %s (%s).",
		commitCount, commitWord, timeframeDays, mostActive, strings.Join(parts, ", "))
}
