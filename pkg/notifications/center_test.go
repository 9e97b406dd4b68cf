package notifications_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uikit/pkg/logger"
	"github.com/dmitrymomot/uikit/pkg/notifications"
	"github.com/dmitrymomot/uikit/pkg/scheduler"
)

func newCenter(t *testing.T, opts ...notifications.Option) (*notifications.Center, *scheduler.Manual) {
	t.Helper()

	clock := scheduler.NewManual(time.Time{})
	opts = append([]notifications.Option{
		notifications.WithScheduler(clock),
		notifications.WithLogger(logger.Nop()),
	}, opts...)
	c := notifications.NewCenter(opts...)
	t.Cleanup(func() { _ = c.Close() })
	return c, clock
}

func TestCenter_NotifyAndExpire(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, clock := newCenter(t)

	_, ok := c.Container()
	assert.False(t, ok, "container is created lazily")

	h := c.Notify(ctx, "x", notifications.TypeSuccess)
	require.False(t, h.IsZero())

	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, h.ID(), active[0].ID)
	assert.Equal(t, notifications.TypeSuccess, active[0].Type)
	assert.Equal(t, notifications.DefaultTimeout, active[0].Timeout)
	assert.Equal(t, clock.Now(), active[0].CreatedAt)

	clock.Advance(notifications.DefaultTimeout - time.Millisecond)
	assert.Equal(t, 1, c.Len())

	clock.Advance(time.Millisecond)
	assert.Equal(t, 0, c.Len())

	assert.NotPanics(t, func() {
		c.Dismiss(ctx, h)
		c.Dismiss(ctx, h)
	})
}

func TestCenter_IndependentTimeouts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, clock := newCenter(t)

	short := c.Notify(ctx, "first", notifications.TypeInfo, notifications.WithTimeout(3*time.Second))
	long := c.Notify(ctx, "second", notifications.TypeWarning)

	active := c.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "first", active[0].Message)
	assert.Equal(t, "second", active[1].Message)

	clock.Advance(3 * time.Second)
	active = c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, long.ID(), active[0].ID)

	c.Dismiss(ctx, short)
	assert.Equal(t, 1, c.Len(), "dismissing an expired handle leaves others alone")

	clock.Advance(2 * time.Second)
	assert.Equal(t, 0, c.Len())
}

func TestCenter_Dismiss(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, clock := newCenter(t)

	h := c.Notify(ctx, "bye", notifications.TypeError)
	other := c.Notify(ctx, "stay", notifications.TypeInfo)
	require.Equal(t, 2, clock.Pending())

	c.Dismiss(ctx, h)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, clock.Pending(), "timer is cancelled")
	assert.Equal(t, other.ID(), c.Active()[0].ID)

	c.Dismiss(ctx, notifications.Handle{})
	assert.Equal(t, 1, c.Len())
}

func TestCenter_SingleContainer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, clock := newCenter(t)

	c.Notify(ctx, "a", notifications.TypeInfo)
	first, ok := c.Container()
	require.True(t, ok)

	clock.Advance(time.Minute)
	c.Notify(ctx, "b", notifications.TypeInfo)
	second, ok := c.Container()
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestCenter_EdgeCases(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty message", func(t *testing.T) {
		c, _ := newCenter(t)
		h := c.Notify(ctx, "  ", notifications.TypeError)
		assert.True(t, h.IsZero())
		assert.Equal(t, 0, c.Len())
		_, ok := c.Container()
		assert.False(t, ok)
	})

	t.Run("unknown severity falls back to info", func(t *testing.T) {
		c, _ := newCenter(t)
		c.Notify(ctx, "hi", notifications.Type("loud"))
		assert.Equal(t, notifications.TypeInfo, c.Active()[0].Type)
	})

	t.Run("non-positive timeout uses default", func(t *testing.T) {
		c, _ := newCenter(t, notifications.WithDefaultTimeout(3*time.Second))
		c.Notify(ctx, "hi", notifications.TypeInfo, notifications.WithTimeout(-time.Second))
		assert.Equal(t, 3*time.Second, c.Active()[0].Timeout)
	})

	t.Run("notify after close", func(t *testing.T) {
		c, clock := newCenter(t)
		c.Notify(ctx, "hi", notifications.TypeInfo)
		require.NoError(t, c.Close())
		assert.Equal(t, 0, clock.Pending())
		assert.True(t, c.Notify(ctx, "late", notifications.TypeInfo).IsZero())
	})
}

func TestCenter_ReplaceOnShow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, clock := newCenter(t, notifications.WithReplaceOnShow(true))

	c.Notify(ctx, "first", notifications.TypeError)
	c.Notify(ctx, "second", notifications.TypeError)

	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "second", active[0].Message)
	assert.Equal(t, 1, clock.Pending())
}

func TestCenter_ReplaceOption(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, _ := newCenter(t)

	c.Notify(ctx, "a", notifications.TypeInfo)
	c.Notify(ctx, "b", notifications.TypeInfo)
	c.Notify(ctx, "c", notifications.TypeInfo, notifications.Replace())

	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "c", active[0].Message)
}

func TestCenter_MaxVisible(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, clock := newCenter(t, notifications.WithMaxVisible(2))

	c.Notify(ctx, "1", notifications.TypeInfo)
	c.Notify(ctx, "2", notifications.TypeInfo)
	c.Notify(ctx, "3", notifications.TypeInfo)

	active := c.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "2", active[0].Message)
	assert.Equal(t, "3", active[1].Message)
	assert.Equal(t, 2, clock.Pending())
}

func TestCenter_Events(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, clock := newCenter(t, notifications.WithReplaceOnShow(true))
	sub := c.Subscribe(ctx)

	first := c.Notify(ctx, "one", notifications.TypeInfo)
	second := c.Notify(ctx, "two", notifications.TypeSuccess)
	clock.Advance(notifications.DefaultTimeout)

	want := []struct {
		kind   notifications.EventKind
		id     string
		reason notifications.Reason
	}{
		{notifications.EventShown, first.ID(), ""},
		{notifications.EventDismissed, first.ID(), notifications.ReasonReplaced},
		{notifications.EventShown, second.ID(), ""},
		{notifications.EventDismissed, second.ID(), notifications.ReasonTimeout},
	}
	for _, w := range want {
		msg := <-sub.Receive()
		assert.Equal(t, w.kind, msg.Data.Kind)
		assert.Equal(t, w.id, msg.Data.Notification.ID)
		assert.Equal(t, w.reason, msg.Data.Reason)
	}
}

func TestCenter_ConcurrentNotify(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, clock := newCenter(t)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Notify(ctx, "hello", notifications.TypeInfo)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, c.Len())
	ids := make(map[string]struct{})
	for _, n := range c.Active() {
		ids[n.ID] = struct{}{}
	}
	assert.Len(t, ids, 50)

	clock.Advance(notifications.DefaultTimeout)
	assert.Equal(t, 0, c.Len())
}

type mockScheduler struct {
	mock.Mock
}

func (m *mockScheduler) Now() time.Time {
	return time.Unix(100, 0)
}

func (m *mockScheduler) AfterFunc(d time.Duration, fn func()) scheduler.Task {
	args := m.Called(d, fn)
	return args.Get(0).(scheduler.Task)
}

type mockTask struct {
	mock.Mock
}

func (m *mockTask) Stop() bool {
	return m.Called().Bool(0)
}

func TestCenter_DismissStopsTask(t *testing.T) {
	t.Parallel()

	task := &mockTask{}
	task.On("Stop").Return(true).Once()

	sched := &mockScheduler{}
	sched.On("AfterFunc", 4*time.Second, mock.AnythingOfType("func()")).Return(task).Once()

	c := notifications.NewCenter(
		notifications.WithScheduler(sched),
		notifications.WithLogger(logger.Nop()),
		notifications.WithDefaultTimeout(4*time.Second),
	)

	h := c.Notify(context.Background(), "saved", notifications.TypeSuccess)
	assert.Equal(t, time.Unix(100, 0), c.Active()[0].CreatedAt)
	c.Dismiss(context.Background(), h)
	require.NoError(t, c.Close())

	sched.AssertExpectations(t)
	task.AssertExpectations(t)
}

func TestParseType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, notifications.TypeError, notifications.ParseType("ERROR"))
	assert.Equal(t, notifications.TypeWarning, notifications.ParseType(" warning "))
	assert.Equal(t, notifications.TypeInfo, notifications.ParseType("fatal"))
	assert.Equal(t, notifications.TypeInfo, notifications.ParseType(""))
}
