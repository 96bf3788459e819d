package authstate

import (
	"context"
	"log/slog"

	"unigate/internal/delivery"
	"unigate/internal/domain/entity"
	"unigate/internal/domain/service"
	"unigate/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ListenerParams holds dependencies for the session listener.
type ListenerParams struct {
	fx.In

	Bus       service.SessionEventBus
	Store     *Store
	Resolver  usecase.ResolverUsecase
	Directory service.IdentityDirectory
	Logger    *slog.Logger
}

// listener is the single consumer of the session event bus. It owns every
// write to the auth-state store and runs profile resolution for identities it
// has not resolved yet. The resolved map is touched only by the consumer
// goroutine, so the handler path needs no locking.
type listener struct {
	bus       service.SessionEventBus
	store     *Store
	resolver  usecase.ResolverUsecase
	directory service.IdentityDirectory
	logger    *slog.Logger
	resolved  map[uuid.UUID]bool
}

// NewListener creates the session listener delivery.
func NewListener(params ListenerParams) delivery.Delivery {
	return &listener{
		bus:       params.Bus,
		store:     params.Store,
		resolver:  params.Resolver,
		directory: params.Directory,
		logger:    params.Logger,
		resolved:  make(map[uuid.UUID]bool),
	}
}

// Serve consumes session events in publish order until the bus closes or the
// context is canceled.
func (l *listener) Serve(ctx context.Context) error {
	l.logger.Info("Starting session listener")

	events := l.bus.Subscribe()
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Session listener stopped", slog.Any("reason", ctx.Err()))

			return nil
		case event, ok := <-events:
			if !ok {
				l.logger.Info("Session listener stopped, bus closed")

				return nil
			}

			l.handle(ctx, event)
		}
	}
}

func (l *listener) handle(ctx context.Context, event service.SessionEvent) {
	logger := l.logger.With(
		slog.String("kind", string(event.Kind)),
		slog.String("identity_id", event.IdentityID.String()),
	)

	if event.Kind == service.SessionSignedOut {
		delete(l.resolved, event.IdentityID)
		l.store.Clear(event.IdentityID)
		logger.Info("Cleared auth state")

		return
	}

	// An already-resolved identity only gets its session material swapped,
	// unless the event forces a fresh resolution.
	if l.resolved[event.IdentityID] && !event.Force {
		if snap, ok := l.store.Get(event.IdentityID); ok {
			if event.Session != nil {
				snap.Session = event.Session
				l.store.Set(event.IdentityID, snap)
			}
			logger.Debug("Updated session on existing snapshot")

			return
		}
	}

	l.resolve(ctx, event, logger)
}

// resolve publishes a loading snapshot, runs the resolver, then publishes the
// final snapshot whether or not a profile came back.
func (l *listener) resolve(ctx context.Context, event service.SessionEvent, logger *slog.Logger) {
	current, _ := l.store.Get(event.IdentityID)

	snap := Snapshot{
		Profile:        current.Profile,
		Identity:       current.Identity,
		Session:        current.Session,
		Loading:        true,
		ProfileLoading: true,
	}
	if event.Session != nil {
		snap.Session = event.Session
	}
	l.store.Set(event.IdentityID, snap)

	identity, err := l.directory.GetIdentity(ctx, event.IdentityID)
	if err != nil {
		logger.Warn("Failed to load identity for snapshot", slog.Any("error", err))
		identity = current.Identity
	}
	snap.Identity = identity

	profile, err := l.safeResolve(ctx, event.IdentityID)
	if err != nil {
		logger.Error("Profile resolution failed", slog.Any("error", err))
	} else {
		l.resolved[event.IdentityID] = true
	}

	snap.Profile = profile
	snap.Loading = false
	snap.ProfileLoading = false
	l.store.Set(event.IdentityID, snap)

	logger.Info("Published auth snapshot", slog.Bool("profile_resolved", profile != nil))
}

// safeResolve shields the consumer loop from a panicking resolution; a panic
// is logged and treated as an empty result.
func (l *listener) safeResolve(ctx context.Context, identityID uuid.UUID) (profile *entity.Profile, err error) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("Resolver panicked",
				slog.String("identity_id", identityID.String()),
				slog.Any("panic", r),
			)
			profile = nil
			err = nil
		}
	}()

	return l.resolver.Resolve(ctx, identityID)
}
