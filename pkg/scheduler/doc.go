// Package scheduler provides cancellable delayed callbacks.
//
// Every scheduled callback returns a Task whose Stop method acts as an
// explicit cancellation token, so callers never need to keep timers alive
// through closures. Two implementations are provided:
//
//   - Real runs callbacks on wall-clock timers (time.AfterFunc).
//   - Manual is a simulated clock for tests and headless hosts: nothing runs
//     until Advance is called.
//
// A panicking callback is recovered and logged; it never propagates.
//
//	clock := scheduler.NewManual(time.Time{})
//	task := clock.AfterFunc(5*time.Second, func() { fmt.Println("done") })
//	clock.Advance(5 * time.Second) // prints "done"
//	task.Stop()                    // false: already ran
package scheduler
