package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/controller/server"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/mock"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/model"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/infra"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/usecase"
)

func doJSON(t *testing.T, srv *server.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw := gt.R1(json.Marshal(body)).NoError(t)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func decodeSession(t *testing.T, rec *httptest.ResponseRecorder) *model.ImportSession {
	t.Helper()

	var session model.ImportSession
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	return &session
}

func TestRouterSmokeTests(t *testing.T) {
	t.Run("GET /health returns 200", func(t *testing.T) {
		srv := server.New(usecase.New(infra.New()))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("ok")
	})
}

func TestSessionEndpoints(t *testing.T) {
	repos := []*model.RepositorySummary{
		{ID: 100, Name: "alx-simple_shell", Language: "C", UpdatedAt: time.Now().AddDate(0, 0, -3)},
		{ID: 200, Name: "weather-app", Language: "Dart", UpdatedAt: time.Now().AddDate(0, 0, -10)},
	}

	newServer := func() *server.Server {
		mockGH := &mock.GitHubMock{
			ListRepositoriesFunc: func(ctx context.Context, username string) ([]*model.RepositorySummary, error) {
				return repos, nil
			},
			GetReadmeFunc: func(ctx context.Context, owner, repo string) (string, error) {
				return "## Tasks\n- [x] 0. mandatory", nil
			},
		}
		store := &mock.ProjectStoreMock{
			ImportProjectsFunc: func(ctx context.Context, projects []*model.ImportedProject) error {
				return nil
			},
		}
		return server.New(usecase.New(infra.New(infra.WithGitHub(mockGH), infra.WithProjectStore(store))))
	}

	t.Run("full wizard over HTTP", func(t *testing.T) {
		srv := newServer()

		rec := doJSON(t, srv, http.MethodPost, "/api/sessions", map[string]any{
			"username": "octocat",
			"platform": "twitter",
		})
		gt.V(t, rec.Code).Equal(http.StatusCreated)
		session := decodeSession(t, rec)
		gt.V(t, session.Step).Equal(types.StepUsername)

		base := "/api/sessions/" + string(session.ID)

		rec = doJSON(t, srv, http.MethodPost, base+"/fetch", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, decodeSession(t, rec).Step).Equal(types.StepSelectRepos)

		rec = doJSON(t, srv, http.MethodPost, base+"/select", map[string]any{
			"repo_ids": []int64{100},
		})
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.S(t, rec.Body.String()).Contains(`"selected_ids":[100]`)

		// The selection survives a plain read
		rec = doJSON(t, srv, http.MethodGet, base, nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.S(t, rec.Body.String()).Contains(`"selected_ids":[100]`)

		rec = doJSON(t, srv, http.MethodPost, base+"/detect", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, decodeSession(t, rec).Step).Equal(types.StepReview)

		rec = doJSON(t, srv, http.MethodPost, base+"/import", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.S(t, rec.Body.String()).Contains("alx-simple_shell")

		rec = doJSON(t, srv, http.MethodGet, base, nil)
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("unknown session returns 404", func(t *testing.T) {
		srv := newServer()
		rec := doJSON(t, srv, http.MethodGet, "/api/sessions/no-such-session", nil)
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("unsupported platform returns 400", func(t *testing.T) {
		srv := newServer()
		rec := doJSON(t, srv, http.MethodPost, "/api/sessions", map[string]any{
			"username": "octocat",
			"platform": "myspace",
		})
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		srv := newServer()

		req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("DELETE closes the session", func(t *testing.T) {
		srv := newServer()

		rec := doJSON(t, srv, http.MethodPost, "/api/sessions", map[string]any{
			"username": "octocat",
			"platform": "twitter",
		})
		session := decodeSession(t, rec)

		rec = doJSON(t, srv, http.MethodDelete, "/api/sessions/"+string(session.ID), nil)
		gt.V(t, rec.Code).Equal(http.StatusNoContent)

		rec = doJSON(t, srv, http.MethodGet, "/api/sessions/"+string(session.ID), nil)
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestWorkLogEndpoint(t *testing.T) {
	t.Run("missing owner or repo returns 400", func(t *testing.T) {
		srv := server.New(usecase.New(infra.New()))
		rec := doJSON(t, srv, http.MethodGet, "/api/worklog?owner=octocat", nil)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("null work_log when there is no activity", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			GenerateWorkLogFunc: func(ctx context.Context, owner, repo string, timeframeDays int) (*model.WorkLog, error) {
				return nil, nil
			},
		}
		srv := server.New(mockUC)

		rec := doJSON(t, srv, http.MethodGet, "/api/worklog?owner=octocat&repo=quiet&days=7", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.S(t, rec.Body.String()).Contains(`"work_log":null`)

		calls := mockUC.GenerateWorkLogCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].TimeframeDays).Equal(7)
	})

	t.Run("rate limit maps to 429 with Retry-After", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			GenerateWorkLogFunc: func(ctx context.Context, owner, repo string, timeframeDays int) (*model.WorkLog, error) {
				return nil, goerr.Wrap(types.ErrRateLimited, "rate limit exceeded",
					goerr.V(types.RetryAfterKey, 30*time.Second),
				)
			},
		}
		srv := server.New(mockUC)

		rec := doJSON(t, srv, http.MethodGet, "/api/worklog?owner=octocat&repo=busy", nil)
		gt.V(t, rec.Code).Equal(http.StatusTooManyRequests)
		gt.V(t, rec.Header().Get("Retry-After")).Equal("30")
	})

	t.Run("network failure maps to 502", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			GenerateWorkLogFunc: func(ctx context.Context, owner, repo string, timeframeDays int) (*model.WorkLog, error) {
				return nil, goerr.Wrap(types.ErrNetwork, "connection reset")
			},
		}
		srv := server.New(mockUC)

		rec := doJSON(t, srv, http.MethodGet, "/api/worklog?owner=octocat&repo=flaky", nil)
		gt.V(t, rec.Code).Equal(http.StatusBadGateway)
	})
}

func TestContentEndpoint(t *testing.T) {
	t.Run("generates content for all platforms", func(t *testing.T) {
		srv := server.New(usecase.New(infra.New()))

		rec := doJSON(t, srv, http.MethodPost, "/api/content", map[string]any{
			"project": map[string]any{
				"title":       "AirBnB Clone",
				"description": "A full web application clone",
				"source_url":  "https://github.com/octocat/airbnb-clone",
			},
		})
		gt.V(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Contents map[types.Platform]*model.PlatformContent `json:"contents"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.V(t, len(resp.Contents)).Equal(len(types.Platforms))
	})

	t.Run("missing project returns 400", func(t *testing.T) {
		srv := server.New(usecase.New(infra.New()))
		rec := doJSON(t, srv, http.MethodPost, "/api/content", map[string]any{})
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestParseURLEndpoint(t *testing.T) {
	t.Run("valid repository URL", func(t *testing.T) {
		srv := server.New(usecase.New(infra.New()))

		rec := doJSON(t, srv, http.MethodGet, "/api/parse-url?url=https%3A%2F%2Fgithub.com%2Foctocat%2Fhello-world.git", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)

		var repo model.GitHubRepo
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &repo))
		gt.V(t, repo.Owner).Equal("octocat")
		gt.V(t, repo.RepoName).Equal("hello-world")
	})

	t.Run("malformed URL returns 400", func(t *testing.T) {
		srv := server.New(usecase.New(infra.New()))
		rec := doJSON(t, srv, http.MethodGet, "/api/parse-url?url=octocat", nil)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}
