package githubapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"log/slog"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/interfaces"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/model"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/utils/logging"
)

// listPageSize is the page cap for list endpoints. The pipeline only ever
// needs the most recent window, so no pagination loop runs.
const listPageSize = 100

// shortCooldown is the longest rate-limit cooldown the client will wait out
// for its single bounded retry. Longer cooldowns are surfaced to the caller.
const shortCooldown = 5 * time.Second

type Client struct {
	gh       *github.Client
	cache    *responseCache
	maxRetry time.Duration
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	token      types.GitHubToken
	appID      int64
	privateKey []byte
	httpClient *http.Client
	baseURL    string
	cacheTTL   time.Duration
}

type Option func(*config)

// WithToken sets a personal access token for authentication.
func WithToken(token types.GitHubToken) Option {
	return func(cfg *config) {
		cfg.token = token
	}
}

// WithApp sets GitHub App credentials for authentication.
func WithApp(appID int64, privateKey []byte) Option {
	return func(cfg *config) {
		cfg.appID = appID
		cfg.privateKey = privateKey
	}
}

// WithHTTPClient overrides the HTTP client. Ignored when credentials are set.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = client
	}
}

// WithBaseURL points the client at a different API endpoint, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

// WithCacheTTL overrides the response cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(cfg *config) {
		cfg.cacheTTL = ttl
	}
}

func New(options ...Option) (*Client, error) {
	cfg := &config{
		cacheTTL: 5 * time.Minute,
	}
	for _, opt := range options {
		opt(cfg)
	}

	httpClient := cfg.httpClient

	switch {
	case cfg.appID != 0:
		if len(cfg.privateKey) == 0 {
			return nil, goerr.Wrap(types.ErrInvalidOption, "private key is empty")
		}
		itr, err := ghinstallation.NewAppsTransport(http.DefaultTransport, cfg.appID, cfg.privateKey)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create app transport")
		}
		httpClient = &http.Client{Transport: itr}

	case cfg.token != "":
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(cfg.token)})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	gh := github.NewClient(httpClient)
	if cfg.baseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(cfg.baseURL, "/") + "/")
		if err != nil {
			return nil, goerr.Wrap(err, "invalid base URL", goerr.V("baseURL", cfg.baseURL))
		}
		gh.BaseURL = baseURL
	}

	return &Client{
		gh:       gh,
		cache:    newResponseCache(cfg.cacheTTL),
		maxRetry: shortCooldown,
	}, nil
}

func (x *Client) ListRepositories(ctx context.Context, username string) ([]*model.RepositorySummary, error) {
	if username == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "username is empty")
	}

	return callCached(ctx, x, "repos/"+username, func(ctx context.Context) ([]*model.RepositorySummary, error) {
		opts := &github.RepositoryListOptions{
			Sort: "updated",
			ListOptions: github.ListOptions{
				PerPage: listPageSize,
			},
		}

		result, _, err := x.gh.Repositories.List(ctx, username, opts)
		if err != nil {
			return nil, mapError(err, "failed to list repositories",
				goerr.V("username", username),
			)
		}

		repos := make([]*model.RepositorySummary, len(result))
		for i, repo := range result {
			repos[i] = toRepositorySummary(repo)
		}

		logging.From(ctx).Debug("Listed user repositories",
			slog.String("username", username),
			slog.Int("count", len(repos)),
		)

		return repos, nil
	})
}

func (x *Client) GetRepository(ctx context.Context, owner, repo string) (*model.RepositorySummary, error) {
	meta := &model.GitHubRepo{Owner: owner, RepoName: repo}
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	return callCached(ctx, x, "repo/"+owner+"/"+repo, func(ctx context.Context) (*model.RepositorySummary, error) {
		result, _, err := x.gh.Repositories.Get(ctx, owner, repo)
		if err != nil {
			return nil, mapError(err, "failed to get repository",
				goerr.V("owner", owner),
				goerr.V("repo", repo),
			)
		}

		return toRepositorySummary(result), nil
	})
}

func (x *Client) ListCommits(ctx context.Context, owner, repo string, since time.Time) ([]model.CommitRecord, error) {
	meta := &model.GitHubRepo{Owner: owner, RepoName: repo}
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	key := "commits/" + owner + "/" + repo + "/" + since.UTC().Format(time.RFC3339)
	return callCached(ctx, x, key, func(ctx context.Context) ([]model.CommitRecord, error) {
		opts := &github.CommitsListOptions{
			Since: since,
			ListOptions: github.ListOptions{
				PerPage: listPageSize,
			},
		}

		result, _, err := x.gh.Repositories.ListCommits(ctx, owner, repo, opts)
		if err != nil {
			return nil, mapError(err, "failed to list commits",
				goerr.V("owner", owner),
				goerr.V("repo", repo),
				goerr.V("since", since),
			)
		}

		commits := make([]model.CommitRecord, len(result))
		for i, commit := range result {
			commits[i] = model.CommitRecord{
				SHA:        types.CommitSHA(commit.GetSHA()),
				Message:    commit.GetCommit().GetMessage(),
				AuthorDate: commit.GetCommit().GetAuthor().GetDate().Time,
			}
		}

		logging.From(ctx).Debug("Listed commits",
			slog.String("owner", owner),
			slog.String("repo", repo),
			slog.Time("since", since),
			slog.Int("count", len(commits)),
		)

		return commits, nil
	})
}

func (x *Client) GetReadme(ctx context.Context, owner, repo string) (string, error) {
	meta := &model.GitHubRepo{Owner: owner, RepoName: repo}
	if err := meta.Validate(); err != nil {
		return "", err
	}

	return callCached(ctx, x, "readme/"+owner+"/"+repo, func(ctx context.Context) (string, error) {
		content, _, err := x.gh.Repositories.GetReadme(ctx, owner, repo, nil)
		if err != nil {
			// A missing README is a normal condition, not an error
			if isNotFound(err) {
				return "", nil
			}
			return "", mapError(err, "failed to get readme",
				goerr.V("owner", owner),
				goerr.V("repo", repo),
			)
		}

		text, err := content.GetContent()
		if err != nil {
			return "", goerr.Wrap(types.ErrNetwork, "failed to decode readme content",
				goerr.V("owner", owner),
				goerr.V("repo", repo),
			)
		}

		return text, nil
	})
}

// callCached serves the call from the response cache when possible, performs
// at most one retry after a short rate-limit cooldown, and stores successful
// results back into the cache.
func callCached[T any](ctx context.Context, x *Client, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if v, ok := x.cache.get(key); ok {
		if cached, ok := v.(T); ok {
			return cached, nil
		}
	}

	result, err := fn(ctx)
	if err != nil {
		cooldown, ok := RetryAfter(err)
		if !ok || cooldown <= 0 || cooldown > x.maxRetry {
			return zero, err
		}

		logging.From(ctx).Warn("Rate limited, retrying once after cooldown",
			slog.String("endpoint", key),
			slog.Duration("cooldown", cooldown),
		)

		select {
		case <-ctx.Done():
			return zero, goerr.Wrap(ctx.Err(), "request cancelled during rate limit cooldown")
		case <-time.After(cooldown):
		}

		result, err = fn(ctx)
		if err != nil {
			return zero, err
		}
	}

	x.cache.set(key, result)
	return result, nil
}

func toRepositorySummary(repo *github.Repository) *model.RepositorySummary {
	return &model.RepositorySummary{
		ID:          types.GitHubRepoID(repo.GetID()),
		Name:        repo.GetName(),
		Description: repo.GetDescription(),
		Language:    repo.GetLanguage(),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		HTMLURL:     repo.GetHTMLURL(),
		UpdatedAt:   repo.GetUpdatedAt().Time,
		Private:     repo.GetPrivate(),
	}
}
