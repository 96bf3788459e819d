// Package janitor runs the scheduled cleanup jobs: purging expired refresh
// sessions and pruning the audit trail past its retention window.
package janitor

import (
	"context"
	"log/slog"
	"time"

	"unigate/config"
	"unigate/internal/delivery"
	"unigate/internal/domain/lifecycle"
	"unigate/internal/domain/repository"
	"unigate/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Defaults applied when the janitor config section is missing or partial.
const (
	defaultSessionPurgeSpec   = "0 */30 * * * *"
	defaultAuditPurgeSpec     = "0 0 3 * * *"
	defaultAuditRetentionDays = 90

	jobTimeout = 5 * time.Minute
)

type janitorServer struct {
	logger        *slog.Logger
	scheduler     *cron.Cron
	sessionRepo   repository.SessionRepository
	auditRepo     repository.AuditLogRepository
	publisher     service.EventPublisher
	retentionDays int
}

// JanitorParams holds dependencies for the janitor, injected by Fx.
type JanitorParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	SessionRepo repository.SessionRepository
	AuditRepo   repository.AuditLogRepository
	Publisher   service.EventPublisher
}

// NewJanitor creates the cron-backed janitor delivery.
func NewJanitor(params JanitorParams) (delivery.Delivery, error) {
	sessionSpec := defaultSessionPurgeSpec
	auditSpec := defaultAuditPurgeSpec
	retentionDays := defaultAuditRetentionDays

	if jc := params.Cfg.Janitor; jc != nil {
		if jc.SessionPurgeSpec != "" {
			sessionSpec = jc.SessionPurgeSpec
		}
		if jc.AuditPurgeSpec != "" {
			auditSpec = jc.AuditPurgeSpec
		}
		if jc.AuditRetentionDays > 0 {
			retentionDays = jc.AuditRetentionDays
		}
	}

	cronLog := cronLogger{logger: params.Logger}
	scheduler := cron.New(
		cron.WithSeconds(),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.SkipIfStillRunning(cronLog)),
	)

	srv := &janitorServer{
		logger:        params.Logger,
		scheduler:     scheduler,
		sessionRepo:   params.SessionRepo,
		auditRepo:     params.AuditRepo,
		publisher:     params.Publisher,
		retentionDays: retentionDays,
	}

	if _, err := scheduler.AddFunc(sessionSpec, srv.purgeSessions); err != nil {
		return nil, errors.Wrapf(err, "invalid session purge spec %q", sessionSpec)
	}
	if _, err := scheduler.AddFunc(auditSpec, srv.purgeAuditLogs); err != nil {
		return nil, errors.Wrapf(err, "invalid audit purge spec %q", auditSpec)
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the cron scheduler. Jobs run on the scheduler's own
// goroutines, so this returns immediately.
func (s *janitorServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting janitor scheduler",
		slog.Int("retention_days", s.retentionDays),
	)
	s.scheduler.Start()

	return nil
}

// stop halts the scheduler and waits for any running job to finish.
func (s *janitorServer) stop(ctx context.Context) error {
	s.logger.Info("Shutting down janitor scheduler")

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.scheduler.Stop().Done():
		return nil
	case <-shutdownCtx.Done():
		return errors.New("janitor jobs did not finish before shutdown deadline")
	}
}

// purgeSessions removes expired and revoked refresh sessions.
func (s *janitorServer) purgeSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	purged, err := s.sessionRepo.DeleteExpiredSessions(ctx)
	if err != nil {
		s.logger.Error("[Janitor] Session purge failed", slog.Any("error", err))

		return
	}

	if purged == 0 {
		return
	}

	s.logger.Info("[Janitor] Purged expired sessions", slog.Int64("purged", purged))
	s.emitPurgeEvent(ctx, "session", purged)
}

// purgeAuditLogs prunes audit rows older than the retention window.
func (s *janitorServer) purgeAuditLogs() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)
	purged, err := s.auditRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("[Janitor] Audit purge failed", slog.Any("error", err))

		return
	}

	if purged == 0 {
		return
	}

	s.logger.Info("[Janitor] Purged audit rows",
		slog.Int64("purged", purged),
		slog.Time("cutoff", cutoff),
	)
	s.emitPurgeEvent(ctx, "audit_log", purged)
}

// emitPurgeEvent records the purge in the audit trail, best effort.
func (s *janitorServer) emitPurgeEvent(ctx context.Context, resource string, purged int64) {
	event := &service.AuditEvent{
		Action:   service.AuditActionJanitorPurged,
		Resource: resource,
		Metadata: map[string]any{
			"purged": purged,
		},
	}

	if err := s.publisher.PublishAuditEvent(ctx, event); err != nil {
		s.logger.Warn("[Janitor] Failed to publish purge event",
			slog.String("resource", resource),
			slog.Any("error", err),
		)
	}
}

// cronLogger adapts slog to the cron logger interface. Scheduler chatter
// stays at debug; job errors surface as errors.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	args := append([]any{slog.Any("error", err)}, keysAndValues...)
	l.logger.Error(msg, args...)
}
