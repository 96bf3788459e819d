package sessionbus

import (
	"context"
	"testing"
	"time"

	"unigate/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestChannelBus_PublishDeliversInOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	bus := NewWithBuffer(8, nil)
	defer bus.Close()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		err := bus.Publish(context.Background(), service.SessionEvent{
			Kind:       service.SessionSignedIn,
			IdentityID: id,
		})
		require.NoError(t, err)
	}

	ch := bus.Subscribe()
	for _, want := range ids {
		select {
		case got := <-ch:
			assert.Equal(t, want, got.IdentityID)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestChannelBus_PublishAfterCloseFails(t *testing.T) {
	defer goleak.VerifyNone(t)

	bus := NewWithBuffer(1, nil)
	require.NoError(t, bus.Close())

	err := bus.Publish(context.Background(), service.SessionEvent{Kind: service.SessionSignedOut})
	assert.ErrorIs(t, err, ErrBusClosed)
}

func TestChannelBus_CloseIsIdempotentAndClosesChannel(t *testing.T) {
	defer goleak.VerifyNone(t)

	bus := NewWithBuffer(1, nil)
	ch := bus.Subscribe()

	require.NoError(t, bus.Close())
	require.NoError(t, bus.Close())

	_, open := <-ch
	assert.False(t, open)
}

func TestChannelBus_PublishRespectsContextOnFullBuffer(t *testing.T) {
	defer goleak.VerifyNone(t)

	bus := NewWithBuffer(1, nil)
	defer bus.Close()

	// Fill the buffer; nobody consumes.
	require.NoError(t, bus.Publish(context.Background(), service.SessionEvent{Kind: service.SessionSignedIn}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := bus.Publish(ctx, service.SessionEvent{Kind: service.SessionSignedIn})
	assert.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
