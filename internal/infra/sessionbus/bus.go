// Package sessionbus carries authentication state transitions from the
// account flows to the session listener, in publish order, within the process.
package sessionbus

import (
	"context"
	"log/slog"
	"sync"

	"unigate/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrBusClosed is returned by Publish after the bus has shut down.
var ErrBusClosed = errors.New("session event bus is closed")

const defaultBufferSize = 256

// channelBus implements service.SessionEventBus on a single buffered channel.
// Ordering holds because there is exactly one channel and one consumer; the
// listener's dedupe logic depends on that.
type channelBus struct {
	ch     chan service.SessionEvent
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Logger *slog.Logger
}

// New creates the session event bus and ties its shutdown to the fx lifecycle.
func New(params Params) service.SessionEventBus {
	bus := NewWithBuffer(defaultBufferSize, params.Logger)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bus.Close()
		},
	})

	return bus
}

// NewWithBuffer creates a bus with an explicit buffer size. Tests use small
// buffers to exercise backpressure.
func NewWithBuffer(size int, logger *slog.Logger) service.SessionEventBus {
	if size <= 0 {
		size = defaultBufferSize
	}

	return &channelBus{
		ch:     make(chan service.SessionEvent, size),
		logger: logger,
	}
}

// Publish enqueues an event for the listener. When the buffer is full the
// call blocks until the listener catches up or the context is cancelled.
func (b *channelBus) Publish(ctx context.Context, event service.SessionEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	select {
	case b.ch <- event:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "session event not published")
	}
}

// Subscribe returns the listener's receive channel.
func (b *channelBus) Subscribe() <-chan service.SessionEvent {
	return b.ch
}

// Close shuts the bus down and closes the subscriber channel. Safe to call
// more than once.
func (b *channelBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	close(b.ch)

	if b.logger != nil {
		b.logger.Info("Session event bus closed")
	}

	return nil
}
