package render_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uikit/pkg/logger"
	"github.com/dmitrymomot/uikit/pkg/notifications"
	"github.com/dmitrymomot/uikit/pkg/render"
	"github.com/dmitrymomot/uikit/pkg/scheduler"
)

func TestContainer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	html, err := render.Render(ctx, render.Container(nil))
	require.NoError(t, err)
	assert.Equal(t, `<div id="notifications-container" class="notifications-container" aria-live="polite"></div>`, html)

	html, err = render.Render(ctx, render.Container([]notifications.Notification{
		{ID: "n1", Type: notifications.TypeSuccess, Message: "Saved"},
		{ID: "n2", Type: notifications.Type("bogus"), Message: "Hi"},
	}))
	require.NoError(t, err)
	assert.Contains(t, html, `<div class="notification notification-success" data-id="n1" role="status"><span class="notification-message">Saved</span>`)
	assert.Contains(t, html, `notification-info" data-id="n2"`)
	assert.Contains(t, html, `data-dismiss="n1"`)
	assert.Less(t, strings.Index(html, "n1"), strings.Index(html, "n2"), "entries keep display order")
}

func TestNotification_SanitizesMessage(t *testing.T) {
	t.Parallel()

	html, err := render.Render(context.Background(), render.Notification(notifications.Notification{
		ID:      `"><x`,
		Type:    notifications.TypeError,
		Message: `<b>Bold</b> & <script>alert(1)</script>`,
	}))
	require.NoError(t, err)
	assert.NotContains(t, html, "<script")
	assert.NotContains(t, html, "<b>")
	assert.NotContains(t, html, `"><x`)
	assert.Contains(t, html, "Bold &amp;")
}

func TestFieldError(t *testing.T) {
	t.Parallel()

	html, err := render.Render(context.Background(), render.FieldError("login-email", "Please enter your email"))
	require.NoError(t, err)
	assert.Equal(t, `<span class="field-error" data-field="login-email">Please enter your email</span>`, html)
}

func TestSnapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	clock := scheduler.NewManual(time.Time{})
	center := notifications.NewCenter(
		notifications.WithScheduler(clock),
		notifications.WithLogger(logger.Nop()),
	)
	defer center.Close()

	snap := render.NewSnapshot(ctx, center, logger.Nop())
	assert.Equal(t, uint64(1), snap.Version())
	assert.NotContains(t, snap.HTML(), "notification-message")

	center.Notify(ctx, "Article saved!", notifications.TypeSuccess)
	assert.Eventually(t, func() bool {
		return strings.Contains(snap.HTML(), "Article saved!")
	}, time.Second, 5*time.Millisecond)

	clock.Advance(notifications.DefaultTimeout)
	assert.Eventually(t, func() bool {
		return !strings.Contains(snap.HTML(), "Article saved!")
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, snap.Close())
}
