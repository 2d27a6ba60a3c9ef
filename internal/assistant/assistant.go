// Package assistant answers free-text student questions through an
// OpenAI-compatible chat-completion API. The engine treats it as an
// optional collaborator: every call is bounded by the caller's context
// and a deterministic fallback covers absence, failure and timeout.
package assistant

import (
	"context"

	"github.com/edutena/pathways/internal/domain"
)

// SessionContext carries the assessment progress the model may use to
// ground its answer. It never includes the phone number.
type SessionContext struct {
	Language domain.Language
	Level    domain.Level
	Grade    domain.Grade
	Pathway  domain.Pathway
	Phase    string
}

// Asker answers a free-text question within the caller's deadline.
type Asker interface {
	Ask(ctx context.Context, sc SessionContext, question string) (string, error)
}
