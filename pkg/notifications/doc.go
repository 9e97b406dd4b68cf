// Package notifications implements the transient notification container:
// short, typed messages that disappear on their own after a timeout.
//
// # Basic Usage
//
//	center := notifications.NewCenter(
//	    notifications.WithDefaultTimeout(5*time.Second),
//	)
//
//	h := center.Notify(ctx, "Profile updated", notifications.TypeSuccess)
//	// ... the user clicked the close button
//	center.Dismiss(ctx, h)
//
// The container is created lazily on the first Notify and there is exactly
// one per Center. Entries keep insertion order. Each entry owns a scheduled
// removal task; dismissing an entry cancels that task, and dismissing an
// entry that is already gone does nothing.
//
// # Policies
//
// WithReplaceOnShow keeps a single visible entry, matching alert areas that
// replace their previous message. WithMaxVisible evicts the oldest entries
// once the cap is exceeded. The Replace notify option applies the replace
// policy to a single call.
//
// # Events
//
// Subscribe returns a broadcast subscriber receiving EventShown and
// EventDismissed events, which renderers use to mirror the container.
// Slow subscribers miss events instead of blocking Notify.
//
// # Testing
//
// Pass a scheduler.Manual via WithScheduler to drive timeouts from tests.
package notifications
