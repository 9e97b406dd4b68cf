// Package uistate holds the page-wide state that browser scripts usually keep
// in globals: the notification center, local storage, the color theme and
// the optional host capabilities.
//
// A State is built once at startup and passed to every handler:
//
//	st := uistate.New(
//	    uistate.WithCenter(center),
//	    uistate.WithStore(kvstore.NewMemoryStore(nil)),
//	    uistate.WithCapabilities(uistate.CapabilityClipboard),
//	    uistate.WithPrefersDark(true),
//	)
//	report := st.Boot(ctx, mapFeature, chartsFeature)
//
// Boot never fails: a feature whose capability is missing is skipped and
// logged, so unrelated page features keep working.
package uistate
