package impl

import (
	"context"
	"log/slog"

	deliverycontext "unigate/internal/delivery/context"
	"unigate/internal/domain/service"
)

// publishAuditAsync publishes an audit event without blocking the caller.
// The publish inherits the request id but detaches from the request's
// cancellation, so an aborted request still leaves its trail.
func publishAuditAsync(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.AuditEvent) {
	if publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	go func() {
		publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditPublishTimeout)
		defer cancel()

		if err := publisher.PublishAuditEvent(publishCtx, event); err != nil {
			logger.Warn("Failed to publish audit event",
				slog.String("action", event.Action), slog.Any("error", err))
		}
	}()
}
