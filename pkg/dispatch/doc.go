// Package dispatch is the thin adapter between pure event handlers and the
// host: it runs ShowNotification commands on the notification center,
// applies validation results to a Surface and starts the submit gate for
// valid submits.
//
//	d := dispatch.New(center,
//	    dispatch.WithSurface(domSurface),
//	    dispatch.WithGate(gate),
//	)
//	d.Dispatch(ctx, mux.Handle(ev)...)
package dispatch
