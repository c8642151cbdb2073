package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/interfaces"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/model"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/infra/githubapi"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/repository"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/utils/errutil"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/utils/logging"
	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/utils/safe"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func respondJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(body)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}

	safeWrite(w, code, data)
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, types.ErrValidationFailed), errors.Is(err, types.ErrInvalidOption):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})

	case errors.Is(err, types.ErrNotFound), errors.Is(err, repository.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})

	case errors.Is(err, types.ErrRateLimited):
		if cooldown, ok := githubapi.RetryAfter(err); ok {
			w.Header().Set("Retry-After", strconv.Itoa(int(cooldown.Seconds())))
		}
		respondJSON(w, http.StatusTooManyRequests, errorResponse{Error: err.Error()})

	case errors.Is(err, types.ErrNetwork):
		respondJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})

	default:
		errutil.HandleError(r.Context(), "unexpected error in HTTP handler", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func decodeJSON(r *http.Request, dst any) error {
	defer safe.Close(r.Body)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return goerr.Wrap(types.ErrValidationFailed, "invalid request body", goerr.V("cause", err.Error()))
	}
	return nil
}

type createSessionRequest struct {
	Username string         `json:"username"`
	Platform types.Platform `json:"platform"`
}

type selectRepositoriesRequest struct {
	RepoIDs []types.GitHubRepoID `json:"repo_ids"`
}

type generateContentRequest struct {
	Project       *model.ProjectDetails `json:"project"`
	WorkLog       *model.WorkLog        `json:"work_log,omitempty"`
	Commits       []model.CommitRecord  `json:"commits,omitempty"`
	CustomMessage string                `json:"custom_message,omitempty"`
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", func(w http.ResponseWriter, r *http.Request) {
				var req createSessionRequest
				if err := decodeJSON(r, &req); err != nil {
					respondError(w, r, err)
					return
				}
				if err := req.Platform.Validate(); err != nil {
					respondError(w, r, err)
					return
				}

				session, err := uc.CreateSession(r.Context(), req.Username, req.Platform)
				if err != nil {
					respondError(w, r, err)
					return
				}
				respondJSON(w, http.StatusCreated, session)
			})

			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", func(w http.ResponseWriter, r *http.Request) {
					session, err := uc.GetSession(r.Context(), sessionID(r))
					if err != nil {
						respondError(w, r, err)
						return
					}
					respondJSON(w, http.StatusOK, session)
				})

				r.Delete("/", func(w http.ResponseWriter, r *http.Request) {
					if err := uc.CloseSession(r.Context(), sessionID(r)); err != nil {
						respondError(w, r, err)
						return
					}
					w.WriteHeader(http.StatusNoContent)
				})

				r.Post("/fetch", func(w http.ResponseWriter, r *http.Request) {
					session, err := uc.FetchRepositories(r.Context(), sessionID(r))
					if err != nil {
						respondError(w, r, err)
						return
					}
					respondJSON(w, http.StatusOK, session)
				})

				r.Post("/select", func(w http.ResponseWriter, r *http.Request) {
					var req selectRepositoriesRequest
					if err := decodeJSON(r, &req); err != nil {
						respondError(w, r, err)
						return
					}

					session, err := uc.SelectRepositories(r.Context(), sessionID(r), req.RepoIDs)
					if err != nil {
						respondError(w, r, err)
						return
					}
					respondJSON(w, http.StatusOK, session)
				})

				r.Post("/detect", func(w http.ResponseWriter, r *http.Request) {
					session, err := uc.DetectProjects(r.Context(), sessionID(r))
					if err != nil {
						respondError(w, r, err)
						return
					}
					respondJSON(w, http.StatusOK, session)
				})

				r.Post("/back", func(w http.ResponseWriter, r *http.Request) {
					session, err := uc.Back(r.Context(), sessionID(r))
					if err != nil {
						respondError(w, r, err)
						return
					}
					respondJSON(w, http.StatusOK, session)
				})

				r.Post("/import", func(w http.ResponseWriter, r *http.Request) {
					projects, err := uc.ImportProjects(r.Context(), sessionID(r))
					if err != nil {
						respondError(w, r, err)
						return
					}
					respondJSON(w, http.StatusOK, map[string]any{
						"projects": projects,
					})
				})
			})
		})

		r.Get("/worklog", func(w http.ResponseWriter, r *http.Request) {
			owner := r.URL.Query().Get("owner")
			repo := r.URL.Query().Get("repo")
			if owner == "" || repo == "" {
				respondError(w, r, goerr.Wrap(types.ErrValidationFailed, "owner and repo are required"))
				return
			}

			days := 30
			if raw := r.URL.Query().Get("days"); raw != "" {
				parsed, err := strconv.Atoi(raw)
				if err != nil {
					respondError(w, r, goerr.Wrap(types.ErrValidationFailed, "days must be an integer", goerr.V("days", raw)))
					return
				}
				days = parsed
			}

			workLog, err := uc.GenerateWorkLog(r.Context(), owner, repo, days)
			if err != nil {
				respondError(w, r, err)
				return
			}
			// A null work_log means no activity in the timeframe.
			respondJSON(w, http.StatusOK, map[string]any{
				"work_log": workLog,
			})
		})

		r.Post("/content", func(w http.ResponseWriter, r *http.Request) {
			var req generateContentRequest
			if err := decodeJSON(r, &req); err != nil {
				respondError(w, r, err)
				return
			}
			if req.Project == nil {
				respondError(w, r, goerr.Wrap(types.ErrValidationFailed, "project is required"))
				return
			}

			contents := uc.GeneratePlatformContent(req.Project, req.WorkLog, req.Commits, req.CustomMessage)
			respondJSON(w, http.StatusOK, map[string]any{
				"contents": contents,
			})
		})

		r.Get("/parse-url", func(w http.ResponseWriter, r *http.Request) {
			rawURL := r.URL.Query().Get("url")
			ghRepo := model.ParseRepositoryURL(rawURL)
			if ghRepo == nil {
				respondError(w, r, goerr.Wrap(types.ErrValidationFailed, "not a repository URL", goerr.V("url", rawURL)))
				return
			}
			respondJSON(w, http.StatusOK, ghRepo)
		})
	})

	return &Server{
		mux: r,
	}
}

func sessionID(r *http.Request) types.SessionID {
	return types.SessionID(chi.URLParam(r, "sessionID"))
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
