package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/model"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/infra"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/usecase"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/utils/logging"
)

var classifyNow = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

func TestClassifyRepository(t *testing.T) {
	t.Run("curriculum shell project is backend with high confidence", func(t *testing.T) {
		repo := &model.RepositorySummary{
			ID:          100,
			Name:        "alx-simple_shell",
			Description: "A UNIX command line interpreter",
			Language:    "C",
			UpdatedAt:   classifyNow.AddDate(0, 0, -3),
		}

		result := usecase.ClassifyRepository(repo, "", classifyNow)
		gt.V(t, result.Category).Equal(types.CategoryBackend)
		gt.True(t, result.Confidence > 0.6)
		gt.True(t, len(result.Signals) > 0)
	})

	t.Run("confidence stays within bounds", func(t *testing.T) {
		repos := []*model.RepositorySummary{
			{ID: 1},
			{ID: 2, Name: "alx-0x00-printf-shell-monty-holberton", Description: "alx holberton sorting_algorithms binary_trees", Language: "C", UpdatedAt: classifyNow},
			{ID: 3, Name: "dusty", UpdatedAt: classifyNow.AddDate(-5, 0, 0)},
		}
		readme := "## Tasks\n- [x] 0. mandatory\n- [ ] 1. advanced\nLearning Objectives\nalx holberton betty"

		for _, repo := range repos {
			result := usecase.ClassifyRepository(repo, readme, classifyNow)
			gt.True(t, result.Confidence >= 0)
			gt.True(t, result.Confidence <= 1)
		}
	})

	t.Run("stale repository with no signals floors at zero", func(t *testing.T) {
		repo := &model.RepositorySummary{
			ID:        4,
			Name:      "misc",
			UpdatedAt: classifyNow.AddDate(-3, 0, 0),
		}

		result := usecase.ClassifyRepository(repo, "", classifyNow)
		gt.V(t, result.Confidence).Equal(0.0)
	})

	t.Run("missing readme degrades but never fails", func(t *testing.T) {
		repo := &model.RepositorySummary{
			ID:       5,
			Name:     "alx-files_manager",
			Language: "JavaScript",
		}

		withReadme := usecase.ClassifyRepository(repo, "## Tasks\n- [x] 0. mandatory", classifyNow)
		withoutReadme := usecase.ClassifyRepository(repo, "", classifyNow)

		gt.True(t, withReadme.Confidence > withoutReadme.Confidence)
		gt.V(t, withoutReadme.Category).Equal(types.CategoryWeb)
	})

	t.Run("classification is deterministic", func(t *testing.T) {
		repo := &model.RepositorySummary{
			ID:          6,
			Name:        "alx-higher_level_programming",
			Description: "Python exercises",
			Language:    "Python",
			UpdatedAt:   classifyNow.AddDate(0, 0, -10),
		}
		readme := "Learning Objectives\n## Tasks"

		first := usecase.ClassifyRepository(repo, readme, classifyNow)
		second := usecase.ClassifyRepository(repo, readme, classifyNow)

		gt.V(t, second).Equal(first)
	})

	t.Run("category ties break by definition order", func(t *testing.T) {
		// PHP votes web 8 and backend 6; a backend hint levels nothing, but an
		// empty language with equal hint votes must pick the earlier category.
		repo := &model.RepositorySummary{
			ID:          7,
			Name:        "portfolio-api",
			Description: "",
		}

		// "portfolio" votes web, "api" votes backend, both weight 5
		result := usecase.ClassifyRepository(repo, "", classifyNow)
		gt.V(t, result.Category).Equal(types.CategoryWeb)
	})

	t.Run("no signals at all yields other", func(t *testing.T) {
		result := usecase.ClassifyRepository(&model.RepositorySummary{ID: 8, Name: "zzz"}, "", classifyNow)
		gt.V(t, result.Category).Equal(types.CategoryOther)
		gt.V(t, result.Confidence).Equal(0.0)
	})
}

func TestClassifyRepositories(t *testing.T) {
	uc := usecase.New(infra.New())
	ctx := logging.CtxWithTime(context.Background(), func() time.Time { return classifyNow })

	repos := []*model.RepositorySummary{
		{ID: 1, Name: "alx-simple_shell", Language: "C", UpdatedAt: classifyNow},
		{ID: 2, Name: "weather-app", Language: "Dart", UpdatedAt: classifyNow},
	}
	readmes := map[types.GitHubRepoID]string{
		1: "## Tasks\n- [x] 0. mandatory",
	}

	results := uc.ClassifyRepositories(ctx, repos, readmes)
	gt.V(t, len(results)).Equal(2)
	gt.V(t, results[1].Category).Equal(types.CategoryBackend)
	gt.V(t, results[2].Category).Equal(types.CategoryMobile)
	gt.True(t, results[1].Confidence > results[2].Confidence)
}
