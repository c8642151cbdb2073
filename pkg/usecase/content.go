package usecase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/model"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
)

// PlatformLimits are the per-platform character budgets, counted in runes.
// The discord limit is advisory only: discord content is never truncated.
var PlatformLimits = map[types.Platform]int{
	types.PlatformTwitter:  280,
	types.PlatformLinkedIn: 1300,
	types.PlatformFacebook: 400,
	types.PlatformDiscord:  2000,
}

const ellipsis = "…"

// GeneratePlatformContent renders one content string per sharing target, each
// within that platform's character budget. The function is pure and total: a
// missing description or work log degrades the text but never errors, and a
// zero-length result is returned as an empty entry rather than omitted.
func GeneratePlatformContent(project *model.ProjectDetails, workLog *model.WorkLog, commits []model.CommitRecord, customMessage string) map[types.Platform]*model.PlatformContent {
	base := buildBaseMessage(project, workLog, customMessage)
	suffix := callToAction(project)

	results := make(map[types.Platform]*model.PlatformContent, len(types.Platforms))
	for _, platform := range types.Platforms {
		results[platform] = renderForPlatform(platform, base, suffix)
	}

	return results
}

// GeneratePlatformContent exposes the synthesizer on the usecase for the
// workflow and transport layers.
func (x *UseCase) GeneratePlatformContent(project *model.ProjectDetails, workLog *model.WorkLog, commits []model.CommitRecord, customMessage string) map[types.Platform]*model.PlatformContent {
	return GeneratePlatformContent(project, workLog, commits, customMessage)
}

func buildBaseMessage(project *model.ProjectDetails, workLog *model.WorkLog, customMessage string) string {
	if strings.TrimSpace(customMessage) != "" {
		return customMessage
	}

	var parts []string
	if project.Title != "" {
		parts = append(parts, "Check out "+project.Title+"!")
	}
	if project.Description != "" {
		parts = append(parts, project.Description)
	}
	if workLog != nil && workLog.NarrativeSummary != "" {
		parts = append(parts, workLog.NarrativeSummary)
	}
	if len(project.Technologies) > 0 {
		parts = append(parts, "Built with "+strings.Join(project.Technologies, ", ")+".")
	}

	return strings.Join(parts, " ")
}

func callToAction(project *model.ProjectDetails) string {
	if project.LiveURL != "" {
		return project.LiveURL
	}
	return project.SourceURL
}

func renderForPlatform(platform types.Platform, base, suffix string) *model.PlatformContent {
	limit := PlatformLimits[platform]

	content := join(base, suffix)
	rawLength := utf8.RuneCountInString(content)

	if rawLength <= limit || platform == types.PlatformDiscord {
		return &model.PlatformContent{
			Platform:  platform,
			Content:   content,
			Length:    rawLength,
			Limit:     limit,
			Optimized: rawLength <= limit,
		}
	}

	suffixLength := utf8.RuneCountInString(suffix)

	// Reserve room for the suffix, its separator, and one ellipsis rune.
	// Never truncate mid-URL: if the suffix does not fit, drop it entirely.
	budget := limit - suffixLength - 2
	if suffix == "" || budget <= 0 {
		suffix = ""
		budget = limit - 1
	}

	content = join(truncateAtWhitespace(base, budget)+ellipsis, suffix)

	return &model.PlatformContent{
		Platform:  platform,
		Content:   content,
		Length:    utf8.RuneCountInString(content),
		Limit:     limit,
		Optimized: false,
	}
}

func join(base, suffix string) string {
	switch {
	case base == "":
		return suffix
	case suffix == "":
		return base
	default:
		return base + " " + suffix
	}
}

// truncateAtWhitespace cuts s to at most maxRunes runes, preferring the last
// whitespace boundary at or before the cut. Without any whitespace it cuts
// hard at the budget.
func truncateAtWhitespace(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxRunes {
		return strings.TrimRightFunc(s, unicode.IsSpace)
	}

	cut := maxRunes
	for i := maxRunes; i > 0; i-- {
		if unicode.IsSpace(runes[i-1]) {
			cut = i - 1
			break
		}
	}
	if cut == 0 {
		cut = maxRunes
	}

	return strings.TrimRightFunc(string(runes[:cut]), unicode.IsSpace)
}
