package uistate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uikit/pkg/kvstore"
	"github.com/dmitrymomot/uikit/pkg/logger"
	"github.com/dmitrymomot/uikit/pkg/notifications"
	"github.com/dmitrymomot/uikit/pkg/scheduler"
	"github.com/dmitrymomot/uikit/pkg/uistate"
)

func newState(t *testing.T, opts ...uistate.Option) *uistate.State {
	t.Helper()
	center := notifications.NewCenter(
		notifications.WithScheduler(scheduler.NewManual(time.Time{})),
		notifications.WithLogger(logger.Nop()),
	)
	t.Cleanup(func() { _ = center.Close() })
	return uistate.New(append([]uistate.Option{
		uistate.WithCenter(center),
		uistate.WithLogger(logger.Nop()),
	}, opts...)...)
}

func TestState_Theme(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("falls back to host preference", func(t *testing.T) {
		light := newState(t)
		theme, err := light.Theme(ctx)
		require.NoError(t, err)
		assert.Equal(t, uistate.ThemeLight, theme)

		dark := newState(t, uistate.WithPrefersDark(true))
		theme, err = dark.Theme(ctx)
		require.NoError(t, err)
		assert.Equal(t, uistate.ThemeDark, theme)
	})

	t.Run("stored value wins", func(t *testing.T) {
		st := newState(t,
			uistate.WithPrefersDark(true),
			uistate.WithStore(kvstore.NewMemoryStore(map[string]string{uistate.ThemeKey: "light"})),
		)
		theme, err := st.Theme(ctx)
		require.NoError(t, err)
		assert.Equal(t, uistate.ThemeLight, theme)
	})

	t.Run("toggle persists", func(t *testing.T) {
		store := kvstore.NewMemoryStore(nil)
		st := newState(t, uistate.WithStore(store))

		theme, err := st.ToggleTheme(ctx)
		require.NoError(t, err)
		assert.Equal(t, uistate.ThemeDark, theme)
		assert.Equal(t, map[string]string{uistate.ThemeKey: "dark"}, store.Snapshot())

		theme, err = st.ToggleTheme(ctx)
		require.NoError(t, err)
		assert.Equal(t, uistate.ThemeLight, theme)
	})
}

func TestState_ToggleSavedArticle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newState(t)

	saved, err := st.ToggleSavedArticle(ctx)
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = st.ToggleSavedArticle(ctx)
	require.NoError(t, err)
	assert.False(t, saved)

	active := st.Center().Active()
	require.Len(t, active, 2)
	assert.Equal(t, uistate.ArticleSavedMessage, active[0].Message)
	assert.Equal(t, notifications.TypeSuccess, active[0].Type)
	assert.Equal(t, uistate.ArticleRemovedMessage, active[1].Message)
	assert.Equal(t, notifications.TypeInfo, active[1].Type)
}

func TestState_Boot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newState(t, uistate.WithCapabilities(uistate.CapabilityClipboard))

	var started []string
	record := func(name string) func(context.Context, *uistate.State) error {
		return func(context.Context, *uistate.State) error {
			started = append(started, name)
			return nil
		}
	}

	report := st.Boot(ctx,
		uistate.Feature{Name: "map", Requires: []uistate.Capability{uistate.CapabilityMap}, Init: record("map")},
		uistate.Feature{Name: "share", Requires: []uistate.Capability{uistate.CapabilityClipboard}, Init: record("share")},
		uistate.Feature{Name: "broken", Init: func(context.Context, *uistate.State) error { return errors.New("boom") }},
		uistate.Feature{Name: "panics", Init: func(context.Context, *uistate.State) error { panic("nil map") }},
		uistate.Feature{Name: "faq", Init: record("faq")},
	)

	assert.Equal(t, []string{"share", "faq"}, started)
	assert.Equal(t, uistate.Report{
		Started: []string{"share", "faq"},
		Skipped: []string{"map"},
		Failed:  []string{"broken", "panics"},
	}, report)
}

func TestState_Defaults(t *testing.T) {
	t.Parallel()

	st := uistate.New(uistate.WithLogger(logger.Nop()))
	assert.NotNil(t, st.Center())
	assert.NotNil(t, st.Store())
	assert.False(t, st.Has(uistate.CapabilityCharts))
}
