// Package uikit is the behavior core of the site's pages: form validation,
// transient notifications, submit gating and page-wide state, with the
// document abstracted behind small interfaces.
//
// Event handlers are pure functions from UI events to commands. A Kit routes
// events to the site's handlers and executes their commands against the
// notification center and a rendering surface.
//
// Basic Usage:
//
//	cfg, err := uikit.LoadConfig()
//	if err != nil { ... }
//
//	kit, err := uikit.New(ctx, cfg, uikit.WithSurface(domSurface))
//	if err != nil { ... }
//	defer kit.Close()
//
//	kit.Handle(ctx, events.Event{
//		Kind:   events.KindSubmit,
//		Form:   events.FormLogin,
//		Values: map[string]string{"login-email": email, "login-password": password},
//	})
//
// Configuration:
//
// Settings come from UIKIT_* environment variables, see Config. The
// notification timeout defaults to five seconds and the validation mode to
// first_per_field, which reports the first failing rule of every field.
//
// Testing:
//
// Pass a scheduler.Manual with WithScheduler to control every timer, and a
// dispatch.Recorder with WithSurface to inspect field decorations.
package uikit
