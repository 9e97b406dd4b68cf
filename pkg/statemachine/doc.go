// Package statemachine provides a small generic finite state machine.
//
// States and events are any comparable types, usually string constants:
//
//	type phase string
//	type signal string
//
//	m := statemachine.New[phase, signal]("idle",
//	    statemachine.Transition[phase, signal]{From: "idle", To: "sending", Event: "submit"},
//	    statemachine.Transition[phase, signal]{From: "sending", To: "idle", Event: "done"},
//	)
//	next, err := m.Fire(ctx, "submit")
//
// Guards veto transitions at runtime and Actions run side effects before the
// state changes. IsNoTransition and IsRejected tell the two failure cases
// apart.
package statemachine
