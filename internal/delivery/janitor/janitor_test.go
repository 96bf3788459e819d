package janitor

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"unigate/internal/domain/service"
	mockRepo "unigate/internal/mocks/repository"
	mockSvc "unigate/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// janitorFixtures holds the janitor under test with mocked dependencies.
// The scheduler is left nil; jobs are invoked directly.
type janitorFixtures struct {
	server      *janitorServer
	sessionRepo *mockRepo.MockSessionRepository
	auditRepo   *mockRepo.MockAuditLogRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestJanitor(t *testing.T) *janitorFixtures {
	t.Helper()

	sessionRepo := mockRepo.NewMockSessionRepository(t)
	auditRepo := mockRepo.NewMockAuditLogRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &janitorFixtures{
		server: &janitorServer{
			logger:        logger,
			sessionRepo:   sessionRepo,
			auditRepo:     auditRepo,
			publisher:     publisher,
			retentionDays: 30,
		},
		sessionRepo: sessionRepo,
		auditRepo:   auditRepo,
		publisher:   publisher,
	}
}

func TestJanitor_PurgeSessions_PublishesAuditEvent(t *testing.T) {
	fx := createTestJanitor(t)

	fx.sessionRepo.EXPECT().
		DeleteExpiredSessions(mock.Anything).
		Return(int64(3), nil).Once()

	var published *service.AuditEvent
	fx.publisher.EXPECT().
		PublishAuditEvent(mock.Anything, mock.AnythingOfType("*service.AuditEvent")).
		RunAndReturn(func(_ context.Context, event *service.AuditEvent) error {
			published = event

			return nil
		}).Once()

	fx.server.purgeSessions()

	require.NotNil(t, published)
	assert.Equal(t, service.AuditActionJanitorPurged, published.Action)
	assert.Equal(t, "session", published.Resource)
	assert.Equal(t, int64(3), published.Metadata["purged"])
}

func TestJanitor_PurgeSessions_SkipsEventWhenNothingPurged(t *testing.T) {
	fx := createTestJanitor(t)

	fx.sessionRepo.EXPECT().
		DeleteExpiredSessions(mock.Anything).
		Return(int64(0), nil).Once()

	fx.server.purgeSessions()
}

func TestJanitor_PurgeSessions_RepositoryFailureSkipsEvent(t *testing.T) {
	fx := createTestJanitor(t)

	fx.sessionRepo.EXPECT().
		DeleteExpiredSessions(mock.Anything).
		Return(int64(0), errors.New("connection refused")).Once()

	fx.server.purgeSessions()
}

func TestJanitor_PurgeAuditLogs_UsesRetentionCutoff(t *testing.T) {
	fx := createTestJanitor(t)

	var cutoff time.Time
	fx.auditRepo.EXPECT().
		DeleteOlderThan(mock.Anything, mock.AnythingOfType("time.Time")).
		RunAndReturn(func(_ context.Context, c time.Time) (int64, error) {
			cutoff = c

			return 17, nil
		}).Once()

	var published *service.AuditEvent
	fx.publisher.EXPECT().
		PublishAuditEvent(mock.Anything, mock.AnythingOfType("*service.AuditEvent")).
		RunAndReturn(func(_ context.Context, event *service.AuditEvent) error {
			published = event

			return nil
		}).Once()

	fx.server.purgeAuditLogs()

	expected := time.Now().AddDate(0, 0, -30)
	assert.WithinDuration(t, expected, cutoff, time.Minute)

	require.NotNil(t, published)
	assert.Equal(t, "audit_log", published.Resource)
	assert.Equal(t, int64(17), published.Metadata["purged"])
}

func TestJanitor_PurgeAuditLogs_PublishFailureTolerated(t *testing.T) {
	fx := createTestJanitor(t)

	fx.auditRepo.EXPECT().
		DeleteOlderThan(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(int64(5), nil).Once()

	fx.publisher.EXPECT().
		PublishAuditEvent(mock.Anything, mock.AnythingOfType("*service.AuditEvent")).
		Return(errors.New("topic unavailable")).Once()

	fx.server.purgeAuditLogs()
}
