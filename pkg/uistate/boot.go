package uistate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/uikit/pkg/logger"
)

// Feature is an optional page behavior, such as the disaster map or the
// dashboard charts, that needs host capabilities to start.
type Feature struct {
	Name     string
	Requires []Capability
	Init     func(ctx context.Context, s *State) error
}

// Report lists what Boot did with each feature.
type Report struct {
	Started []string
	Skipped []string
	Failed  []string
}

// Boot initializes features in order. Features with a missing capability
// are skipped; init errors and panics are logged. Neither stops the
// remaining features.
func (s *State) Boot(ctx context.Context, features ...Feature) Report {
	var r Report
	for _, f := range features {
		if missing, ok := s.missing(f.Requires); !ok {
			s.logger.LogAttrs(ctx, slog.LevelInfo, "feature skipped",
				logger.Component("uistate"),
				logger.Feature(f.Name),
				logger.Error(fmt.Errorf("%w: %s", ErrCapabilityMissing, missing)),
			)
			r.Skipped = append(r.Skipped, f.Name)
			continue
		}

		if err := s.initFeature(ctx, f); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelError, "feature failed to start",
				logger.Component("uistate"),
				logger.Feature(f.Name),
				logger.Error(err),
			)
			r.Failed = append(r.Failed, f.Name)
			continue
		}
		r.Started = append(r.Started, f.Name)
	}
	return r
}

func (s *State) missing(req []Capability) (Capability, bool) {
	for _, c := range req {
		if !s.Has(c) {
			return c, false
		}
	}
	return "", true
}

func (s *State) initFeature(ctx context.Context, f Feature) (err error) {
	if f.Init == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrFeaturePanicked, r)
		}
	}()
	return f.Init(ctx, s)
}
