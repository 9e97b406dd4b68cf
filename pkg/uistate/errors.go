package uistate

import "errors"

var (
	// ErrCapabilityMissing indicates a feature needs a host capability that is absent.
	ErrCapabilityMissing = errors.New("uistate.capability_missing")

	// ErrFeaturePanicked indicates a feature initializer panicked.
	ErrFeaturePanicked = errors.New("uistate.feature_panicked")
)
