package types

import "github.com/m-mizutani/goerr/v2"

// ProjectCategory is a coarse label assigned by the project classifier.
// The declaration order is also the tie-break order when category scores
// are equal.
type ProjectCategory string

const (
	CategoryWeb         ProjectCategory = "web"
	CategoryBackend     ProjectCategory = "backend"
	CategoryMobile      ProjectCategory = "mobile"
	CategoryDataScience ProjectCategory = "data-science"
	CategoryAI          ProjectCategory = "ai"
	CategoryDevOps      ProjectCategory = "devops"
	CategoryOther       ProjectCategory = "other"
)

// ProjectCategories lists all categories in tie-break order.
var ProjectCategories = []ProjectCategory{
	CategoryWeb,
	CategoryBackend,
	CategoryMobile,
	CategoryDataScience,
	CategoryAI,
	CategoryDevOps,
	CategoryOther,
}

// CommitCategory is a semantic bucket for a commit message. The declaration
// order is the match priority: a message matching multiple keyword sets is
// assigned to the first matching category.
type CommitCategory string

const (
	CommitFixes    CommitCategory = "fixes"
	CommitFeatures CommitCategory = "features"
	CommitRefactor CommitCategory = "refactor"
	CommitDocs     CommitCategory = "docs"
	CommitChore    CommitCategory = "chore"
)

// CommitCategories lists all commit categories in match priority order.
var CommitCategories = []CommitCategory{
	CommitFixes,
	CommitFeatures,
	CommitRefactor,
	CommitDocs,
	CommitChore,
}

// Platform is a sharing target with its own length constraint.
type Platform string

const (
	PlatformTwitter  Platform = "twitter"
	PlatformLinkedIn Platform = "linkedin"
	PlatformFacebook Platform = "facebook"
	PlatformDiscord  Platform = "discord"
)

// Platforms lists all supported sharing targets.
var Platforms = []Platform{
	PlatformTwitter,
	PlatformLinkedIn,
	PlatformFacebook,
	PlatformDiscord,
}

func (x Platform) Validate() error {
	for _, p := range Platforms {
		if x == p {
			return nil
		}
	}
	return goerr.Wrap(ErrInvalidOption, "unsupported platform", goerr.V("platform", x))
}

// ImportStep is a state of the import wizard's state machine.
type ImportStep string

const (
	StepUsername    ImportStep = "username"
	StepSelectRepos ImportStep = "select_repos"
	StepReview      ImportStep = "review_import"
)
