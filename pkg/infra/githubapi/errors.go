package githubapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/domain/types"
)

// mapError translates go-github errors into the domain error taxonomy:
// ErrNotFound, ErrRateLimited (with retry-after hint), or ErrNetwork.
func mapError(err error, msg string, values ...goerr.Option) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		cooldown := time.Until(rateErr.Rate.Reset.Time)
		if cooldown < 0 {
			cooldown = 0
		}
		values = append(values, goerr.V(types.RetryAfterKey, cooldown))
		return goerr.Wrap(types.ErrRateLimited, msg, values...)
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		if abuseErr.RetryAfter != nil {
			values = append(values, goerr.V(types.RetryAfterKey, *abuseErr.RetryAfter))
		}
		return goerr.Wrap(types.ErrRateLimited, msg, values...)
	}

	if isNotFound(err) {
		return goerr.Wrap(types.ErrNotFound, msg, values...)
	}

	values = append(values, goerr.V("cause", err.Error()))
	return goerr.Wrap(types.ErrNetwork, msg, values...)
}

func isNotFound(err error) bool {
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return respErr.Response.StatusCode == http.StatusNotFound
	}
	return false
}

// RetryAfter extracts the rate-limit cooldown hint from an error returned by
// this package. It returns false when the error carries no hint.
func RetryAfter(err error) (time.Duration, bool) {
	if !errors.Is(err, types.ErrRateLimited) {
		return 0, false
	}

	goErr := goerr.Unwrap(err)
	if goErr == nil {
		return 0, false
	}

	for k, v := range goErr.Values() {
		if k == types.RetryAfterKey {
			if d, ok := v.(time.Duration); ok {
				return d, true
			}
		}
	}

	return 0, false
}
