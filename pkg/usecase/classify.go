package usecase

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/model"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/utils/logging"
)

// Weighted-signal scoring constants. The confidence is the accumulated score
// normalized by the sum of all positive weights, so it always stays in [0,1].
const (
	nameTokenWeight = 10.0
	nameTokenCap    = 30.0

	readmeMarkerWeight = 10.0
	readmeMarkerCap    = 20.0

	languageWeightCap = 10.0

	recentActivityBonus = 5.0
	stalePenalty        = 5.0

	maxAttainableScore = nameTokenCap + readmeMarkerCap + languageWeightCap + recentActivityBonus

	recentActivityWindow = 90 * 24 * time.Hour
	staleThreshold       = 2 * 365 * 24 * time.Hour
)

// curriculumTokens are name/description substrings that indicate a
// curriculum-style learning project.
var curriculumTokens = []string{
	"alx",
	"holberton",
	"0x",
	"simple_shell",
	"printf",
	"monty",
	"sorting_algorithms",
	"binary_trees",
	"higher_level_programming",
	"low_level_programming",
	"airbnb_clone",
	"shell",
	"maze",
}

// readmeMarkers are substrings of README text typical for structured
// curriculum task lists.
var readmeMarkers = []string{
	"learning objectives",
	"## tasks",
	"- [x]",
	"- [ ]",
	"holberton",
	"alx",
	"betty",
	"mandatory",
	"advanced",
}

type categoryWeight struct {
	category types.ProjectCategory
	weight   float64
}

// languageAffinity maps a repository's primary language (lowercased) to
// category weights. The strongest entry also contributes to the total score.
var languageAffinity = map[string][]categoryWeight{
	"javascript":       {{types.CategoryWeb, 10}, {types.CategoryBackend, 4}},
	"typescript":       {{types.CategoryWeb, 10}, {types.CategoryBackend, 4}},
	"html":             {{types.CategoryWeb, 10}},
	"css":              {{types.CategoryWeb, 10}},
	"vue":              {{types.CategoryWeb, 10}},
	"php":              {{types.CategoryWeb, 8}, {types.CategoryBackend, 6}},
	"c":                {{types.CategoryBackend, 10}},
	"go":               {{types.CategoryBackend, 10}},
	"java":             {{types.CategoryBackend, 8}, {types.CategoryMobile, 6}},
	"ruby":             {{types.CategoryBackend, 8}},
	"rust":             {{types.CategoryBackend, 8}},
	"c++":              {{types.CategoryBackend, 8}},
	"swift":            {{types.CategoryMobile, 10}},
	"kotlin":           {{types.CategoryMobile, 10}},
	"dart":             {{types.CategoryMobile, 10}},
	"objective-c":      {{types.CategoryMobile, 8}},
	"python":           {{types.CategoryDataScience, 8}, {types.CategoryBackend, 6}, {types.CategoryAI, 4}},
	"jupyter notebook": {{types.CategoryDataScience, 10}, {types.CategoryAI, 6}},
	"r":                {{types.CategoryDataScience, 10}},
	"shell":            {{types.CategoryDevOps, 6}, {types.CategoryBackend, 4}},
	"dockerfile":       {{types.CategoryDevOps, 10}},
	"hcl":              {{types.CategoryDevOps, 10}},
	"makefile":         {{types.CategoryDevOps, 4}},
}

// categoryHints vote for a category when found in the repository name or
// description. They affect only the category choice, not the total score.
var categoryHints = map[types.ProjectCategory][]string{
	types.CategoryWeb:         {"react", "frontend", "website", "webpage", "portfolio"},
	types.CategoryBackend:     {"api", "backend", "server", "shell", "database", "interpreter"},
	types.CategoryMobile:      {"android", "ios", "flutter", "mobile"},
	types.CategoryDataScience: {"data", "pandas", "analysis", "notebook"},
	types.CategoryAI:          {"machine learning", "machine-learning", "neural", "chatbot"},
	types.CategoryDevOps:      {"docker", "terraform", "ansible", "devops", "kubernetes", "pipeline"},
}

const categoryHintWeight = 5.0

// ClassifyRepository scores a repository for being a curriculum-style
// learning project. It is a pure function of its inputs and never fails: a
// missing description or README only lowers the confidence.
func ClassifyRepository(repo *model.RepositorySummary, readme string, now time.Time) *model.ClassificationResult {
	var score float64
	var signals []model.MatchedSignal
	categoryScores := make(map[types.ProjectCategory]float64)

	nameAndDesc := strings.ToLower(repo.Name + " " + repo.Description)

	// Curriculum tokens in name/description, with diminishing returns
	var nameScore float64
	for _, token := range curriculumTokens {
		if !strings.Contains(nameAndDesc, token) {
			continue
		}
		weight := nameTokenWeight
		if nameScore+weight > nameTokenCap {
			weight = nameTokenCap - nameScore
		}
		if weight <= 0 {
			break
		}
		nameScore += weight
		signals = append(signals, model.MatchedSignal{Signal: "name:" + token, Weight: weight})
	}
	score += nameScore

	// README markers. Absence contributes zero, never a penalty.
	if readme != "" {
		lowerReadme := strings.ToLower(readme)
		var readmeScore float64
		for _, marker := range readmeMarkers {
			if !strings.Contains(lowerReadme, marker) {
				continue
			}
			weight := readmeMarkerWeight
			if readmeScore+weight > readmeMarkerCap {
				weight = readmeMarkerCap - readmeScore
			}
			if weight <= 0 {
				break
			}
			readmeScore += weight
			signals = append(signals, model.MatchedSignal{Signal: "readme:" + marker, Weight: weight})
		}
		score += readmeScore
	}

	// Primary language feeds both the score and the category vote
	if affinities, ok := languageAffinity[strings.ToLower(repo.Language)]; ok {
		var best float64
		for _, affinity := range affinities {
			categoryScores[affinity.category] += affinity.weight
			if affinity.weight > best {
				best = affinity.weight
			}
		}
		if best > languageWeightCap {
			best = languageWeightCap
		}
		score += best
		signals = append(signals, model.MatchedSignal{Signal: "language:" + repo.Language, Weight: best})
	}

	// Category hints vote without touching the total score
	for _, category := range types.ProjectCategories {
		for _, hint := range categoryHints[category] {
			if strings.Contains(nameAndDesc, hint) {
				categoryScores[category] += categoryHintWeight
			}
		}
	}

	// Recency: small bonus for active repositories, small penalty for repos
	// untouched for years. The total is floored at zero afterwards.
	if !repo.UpdatedAt.IsZero() {
		age := now.Sub(repo.UpdatedAt)
		switch {
		case age <= recentActivityWindow:
			score += recentActivityBonus
			signals = append(signals, model.MatchedSignal{Signal: "recent-activity", Weight: recentActivityBonus})
		case age >= staleThreshold:
			score -= stalePenalty
			signals = append(signals, model.MatchedSignal{Signal: "stale", Weight: -stalePenalty})
		}
	}

	if score < 0 {
		score = 0
	}

	confidence := score / maxAttainableScore
	if confidence > 1 {
		confidence = 1
	}

	return &model.ClassificationResult{
		RepositoryID: repo.ID,
		Confidence:   confidence,
		Category:     pickCategory(categoryScores),
		Signals:      signals,
	}
}

// pickCategory returns the category with the highest accumulated weight,
// breaking ties by definition order. Other is returned when nothing voted.
func pickCategory(scores map[types.ProjectCategory]float64) types.ProjectCategory {
	best := types.CategoryOther
	var bestScore float64
	for _, category := range types.ProjectCategories {
		if scores[category] > bestScore {
			best = category
			bestScore = scores[category]
		}
	}
	return best
}

// ClassifyRepositories classifies every repository using the provided README
// lookup. It never fails: a missing README entry just degrades confidence.
func (x *UseCase) ClassifyRepositories(ctx context.Context, repos []*model.RepositorySummary, readmeLookup map[types.GitHubRepoID]string) map[types.GitHubRepoID]*model.ClassificationResult {
	now := logging.CtxTime(ctx)

	results := make(map[types.GitHubRepoID]*model.ClassificationResult, len(repos))
	for _, repo := range repos {
		results[repo.ID] = ClassifyRepository(repo, readmeLookup[repo.ID], now)
	}

	logging.From(ctx).Debug("Classified repositories",
		slog.Int("count", len(results)),
	)

	return results
}
