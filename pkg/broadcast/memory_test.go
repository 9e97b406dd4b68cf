package broadcast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uikit/pkg/broadcast"
)

func TestMemory_Broadcast(t *testing.T) {
	t.Parallel()

	b := broadcast.NewMemory[string](4)
	defer b.Close()

	s1 := b.Subscribe(context.Background())
	s2 := b.Subscribe(context.Background())

	require.NoError(t, b.Broadcast(context.Background(), broadcast.Message[string]{Data: "hello"}))

	assert.Equal(t, "hello", (<-s1.Receive()).Data)
	assert.Equal(t, "hello", (<-s2.Receive()).Data)
}

func TestMemory_DropsForSlowSubscribers(t *testing.T) {
	t.Parallel()

	b := broadcast.NewMemory[int](1)
	defer b.Close()
	sub := b.Subscribe(context.Background())

	for i := range 5 {
		require.NoError(t, b.Broadcast(context.Background(), broadcast.Message[int]{Data: i}))
	}

	assert.Equal(t, uint64(4), sub.Dropped())
	assert.Equal(t, 0, (<-sub.Receive()).Data)
	select {
	case msg := <-sub.Receive():
		t.Fatalf("unexpected message %d", msg.Data)
	default:
	}
	assert.Equal(t, 1, b.Len(), "slow subscriber stays subscribed")
}

func TestMemory_ContextCancellation(t *testing.T) {
	t.Parallel()

	b := broadcast.NewMemory[int](1)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sub := b.Subscribe(ctx)
	cancel()

	select {
	case _, ok := <-sub.Receive():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscriber was not closed")
	}
	assert.Eventually(t, func() bool { return b.Len() == 0 }, time.Second, time.Millisecond)
}

func TestMemory_Close(t *testing.T) {
	t.Parallel()

	b := broadcast.NewMemory[int](1)
	sub := b.Subscribe(context.Background())

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	_, ok := <-sub.Receive()
	assert.False(t, ok)

	late := b.Subscribe(context.Background())
	_, ok = <-late.Receive()
	assert.False(t, ok)

	assert.NoError(t, b.Broadcast(context.Background(), broadcast.Message[int]{Data: 1}))
	assert.NoError(t, sub.Close(), "closing twice is fine")
}
