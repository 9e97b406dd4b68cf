package uistate

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/uikit/pkg/kvstore"
	"github.com/dmitrymomot/uikit/pkg/notifications"
)

// Store keys.
const (
	ThemeKey        = "theme"
	SavedArticleKey = "saved_article"
)

// Notices surfaced when the saved-article marker changes.
const (
	ArticleSavedMessage   = "Article saved!"
	ArticleRemovedMessage = "Article removed from saved items"
)

// Theme is the page color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Capability names an optional host facility.
type Capability string

const (
	CapabilityMap       Capability = "map"
	CapabilityClipboard Capability = "clipboard"
	CapabilityCharts    Capability = "charts"
)

// State is the page-wide context shared by handlers: the notification
// center, local storage, theme and the host capabilities.
// It replaces ad-hoc global lookups and is safe for concurrent use.
type State struct {
	center      *notifications.Center
	store       kvstore.Store
	logger      *slog.Logger
	caps        map[Capability]struct{}
	prefersDark bool

	mu sync.Mutex
}

// Option configures a State.
type Option func(*State)

// WithCenter sets the notification center.
func WithCenter(c *notifications.Center) Option {
	return func(s *State) {
		if c != nil {
			s.center = c
		}
	}
}

// WithStore sets the local key-value store.
func WithStore(st kvstore.Store) Option {
	return func(s *State) {
		if st != nil {
			s.store = st
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCapabilities declares the host capabilities that are available.
func WithCapabilities(caps ...Capability) Option {
	return func(s *State) {
		for _, c := range caps {
			s.caps[c] = struct{}{}
		}
	}
}

// WithPrefersDark records the host's dark color-scheme preference, used
// when no theme has been stored yet.
func WithPrefersDark(dark bool) Option {
	return func(s *State) {
		s.prefersDark = dark
	}
}

// New builds the page state. Missing collaborators get in-memory defaults.
func New(opts ...Option) *State {
	s := &State{
		logger: slog.Default(),
		caps:   make(map[Capability]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = kvstore.NewMemoryStore(nil)
	}
	if s.center == nil {
		s.center = notifications.NewCenter(notifications.WithLogger(s.logger))
	}
	return s
}

// Center returns the notification center.
func (s *State) Center() *notifications.Center { return s.center }

// Store returns the local key-value store.
func (s *State) Store() kvstore.Store { return s.store }

// Has reports whether the host provides c.
func (s *State) Has(c Capability) bool {
	_, ok := s.caps[c]
	return ok
}

// Theme returns the stored theme, or the host preference when none is stored.
func (s *State) Theme(ctx context.Context) (Theme, error) {
	v, ok, err := s.store.Get(ctx, ThemeKey)
	if err != nil {
		return s.preferred(), err
	}
	if ok {
		switch Theme(v) {
		case ThemeLight, ThemeDark:
			return Theme(v), nil
		}
	}
	return s.preferred(), nil
}

// ToggleTheme switches between light and dark and persists the choice.
func (s *State) ToggleTheme(ctx context.Context) (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.Theme(ctx)
	if err != nil {
		return cur, err
	}
	next := ThemeDark
	if cur == ThemeDark {
		next = ThemeLight
	}
	if err := s.store.Set(ctx, ThemeKey, string(next)); err != nil {
		return cur, err
	}
	return next, nil
}

// SavedArticle returns the saved-article marker.
func (s *State) SavedArticle() kvstore.Flag {
	return kvstore.Flag{Store: s.store, Key: SavedArticleKey}
}

// ToggleSavedArticle flips the saved-article marker and tells the user:
// a success notice when saved, an info notice when removed.
func (s *State) ToggleSavedArticle(ctx context.Context) (bool, error) {
	s.mu.Lock()
	saved, err := s.SavedArticle().Toggle(ctx)
	s.mu.Unlock()
	if err != nil {
		return saved, err
	}

	if saved {
		s.center.Notify(ctx, ArticleSavedMessage, notifications.TypeSuccess)
	} else {
		s.center.Notify(ctx, ArticleRemovedMessage, notifications.TypeInfo)
	}
	return saved, nil
}

func (s *State) preferred() Theme {
	if s.prefersDark {
		return ThemeDark
	}
	return ThemeLight
}
