package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubRepoID int64
	CommitSHA    string
	GitHubToken  string
	RequestID    string
	SessionID    string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}
