package ports

import (
	"context"

	"sadomusic/internal/domain/session"
)

// SessionStore holds at most one active guided flow per user. It is
// persisted so a process restart degrades to "please restart the flow"
// instead of silent loss of collected fields.
type SessionStore interface {
	// Begin starts a flow, replacing any previous session for the user.
	Begin(ctx context.Context, userID int64, step session.Step, fields map[string]string) error
	// Advance moves to the next step and merges field updates into the bag.
	Advance(ctx context.Context, userID int64, step session.Step, updates map[string]string) error
	// Get reports found=false when the user has no active session.
	Get(ctx context.Context, userID int64) (sess session.Session, found bool, err error)
	// Clear is idempotent and succeeds even when no session exists.
	Clear(ctx context.Context, userID int64) error
}
