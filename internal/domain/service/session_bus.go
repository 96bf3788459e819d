package service

import (
	"context"
	"time"

	"unigate/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionEventKind identifies an authentication state transition.
type SessionEventKind string

const (
	// SessionSignedIn is published after a successful signup or login.
	SessionSignedIn SessionEventKind = "signed_in"
	// SessionSignedOut is published after logout.
	SessionSignedOut SessionEventKind = "signed_out"
	// SessionTokenRefreshed is published after a refresh-token rotation.
	SessionTokenRefreshed SessionEventKind = "token_refreshed"
	// SessionIdentityUpdated is published when identity attributes change,
	// e.g. after email confirmation.
	SessionIdentityUpdated SessionEventKind = "identity_updated"
)

// SessionEvent is a single authentication state transition delivered, in
// publish order, to the session listener.
type SessionEvent struct {
	Kind       SessionEventKind     // The transition type.
	IdentityID uuid.UUID            // The identity the event concerns.
	Session    *entity.SessionToken // Raw token material; nil for signed_out and identity_updated.
	Force      bool                 // Forces re-resolution even for an already-resolved identity.
	OccurredAt time.Time            // Publish time, for diagnostics.
}

// SessionEventBus carries session events from the account flows to the
// session listener. Publish must not block on slow consumers beyond the bus
// buffer; delivery order matches publish order.
type SessionEventBus interface {
	// Publish enqueues an event for the listener.
	Publish(ctx context.Context, event SessionEvent) error

	// Subscribe returns the listener's receive channel. The bus supports one
	// consumer; the channel closes when the bus is closed.
	Subscribe() <-chan SessionEvent

	// Close shuts the bus down and closes the subscriber channel.
	Close() error
}
