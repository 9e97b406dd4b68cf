package statemachine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uikit/pkg/statemachine"
)

type (
	phase  string
	signal string
)

type transition = statemachine.Transition[phase, signal]

func TestMachine_Fire(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := statemachine.New[phase, signal]("idle",
		transition{From: "idle", To: "sending", Event: "submit"},
		transition{From: "sending", To: "sent", Event: "delivered"},
		transition{From: "sent", To: "idle", Event: "reset"},
	)
	assert.Equal(t, phase("idle"), m.Current())
	assert.True(t, m.CanFire(ctx, "submit"))
	assert.False(t, m.CanFire(ctx, "delivered"))

	next, err := m.Fire(ctx, "submit")
	require.NoError(t, err)
	assert.Equal(t, phase("sending"), next)

	_, err = m.Fire(ctx, "submit")
	require.Error(t, err)
	assert.True(t, statemachine.IsNoTransition(err))
	assert.Equal(t, "no transition available from state 'sending' for event 'submit'", err.Error())

	m.Reset()
	assert.Equal(t, phase("idle"), m.Current())
}

func TestMachine_Guards(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	open := false
	m := statemachine.New[phase, signal]("idle",
		transition{
			From: "idle", To: "sending", Event: "submit",
			Guards: []statemachine.Guard[phase, signal]{
				func(context.Context, phase, signal) bool { return open },
			},
		},
	)

	_, err := m.Fire(ctx, "submit")
	assert.True(t, statemachine.IsRejected(err))
	assert.Equal(t, phase("idle"), m.Current())

	open = true
	_, err = m.Fire(ctx, "submit")
	require.NoError(t, err)
}

func TestMachine_GuardBranching(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	deny := func(context.Context, phase, signal) bool { return false }
	m := statemachine.New[phase, signal]("idle",
		transition{From: "idle", To: "blocked", Event: "go", Guards: []statemachine.Guard[phase, signal]{deny}},
		transition{From: "idle", To: "running", Event: "go"},
	)

	next, err := m.Fire(ctx, "go")
	require.NoError(t, err)
	assert.Equal(t, phase("running"), next)
}

func TestMachine_Actions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen []string
	record := func(_ context.Context, from, to phase, ev signal) error {
		seen = append(seen, string(from)+"->"+string(to)+":"+string(ev))
		return nil
	}
	fail := func(context.Context, phase, phase, signal) error { return errors.New("boom") }

	m := statemachine.New[phase, signal]("idle",
		transition{From: "idle", To: "sending", Event: "submit", Actions: []statemachine.Action[phase, signal]{record}},
		transition{From: "sending", To: "sent", Event: "delivered", Actions: []statemachine.Action[phase, signal]{fail}},
	)

	_, err := m.Fire(ctx, "submit")
	require.NoError(t, err)
	assert.Equal(t, []string{"idle->sending:submit"}, seen)

	_, err = m.Fire(ctx, "delivered")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action failed: boom")
	assert.Equal(t, phase("sending"), m.Current(), "failed action keeps the state")
}
