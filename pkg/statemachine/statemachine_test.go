package statemachine_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/statemachine"
)

const (
	Constructed = statemachine.StringState("constructed")
	Validating  = statemachine.StringState("validating")
	Valid       = statemachine.StringState("valid")
	Invalid     = statemachine.StringState("invalid")

	Start = statemachine.StringEvent("start")
	Pass  = statemachine.StringEvent("pass")
	Fail  = statemachine.StringEvent("fail")
)

func lifecycle(opts ...statemachine.Option) *statemachine.Machine {
	opts = append([]statemachine.Option{
		statemachine.WithTransition(Constructed, Validating, Start),
		statemachine.WithTransition(Validating, Valid, Pass),
		statemachine.WithTransition(Validating, Invalid, Fail),
		statemachine.WithTransitions(
			statemachine.Transition{From: Valid, To: Validating, Event: Start},
			statemachine.Transition{From: Invalid, To: Validating, Event: Start},
		),
	}, opts...)
	return statemachine.MustNew(Constructed, opts...)
}

func TestMachine_Transitions(t *testing.T) {
	t.Parallel()

	m := lifecycle()
	assert.True(t, m.Is(Constructed))
	assert.True(t, m.CanFire(Start))
	assert.False(t, m.CanFire(Pass))

	require.NoError(t, m.Fire(Start))
	require.NoError(t, m.Fire(Fail))
	assert.Equal(t, Invalid, m.Current())

	require.NoError(t, m.Fire(Start))
	require.NoError(t, m.Fire(Pass))
	assert.True(t, m.Is(Valid))

	m.Reset()
	assert.True(t, m.Is(Constructed))
}

func TestMachine_Errors(t *testing.T) {
	t.Parallel()

	t.Run("undeclared transition", func(t *testing.T) {
		m := lifecycle()
		err := m.Fire(Pass)
		require.Error(t, err)
		assert.True(t, statemachine.IsNoTransitionAvailableError(err))
		assert.Equal(t, "no transition available from state 'constructed' for event 'pass'", err.Error())
		assert.True(t, m.Is(Constructed))
	})

	t.Run("nil event", func(t *testing.T) {
		m := lifecycle()
		assert.ErrorIs(t, m.Fire(nil), statemachine.ErrInvalidEvent)
		assert.False(t, m.CanFire(nil))
	})

	t.Run("nil state in transition", func(t *testing.T) {
		_, err := statemachine.New(Constructed, statemachine.WithTransition(nil, Valid, Pass))
		assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)

		_, err = statemachine.New(nil)
		assert.Error(t, err)
		assert.Panics(t, func() { statemachine.MustNew(nil) })
	})
}

func TestMachine_GuardsAndActions(t *testing.T) {
	t.Parallel()

	allowed := false
	var trail []string

	m := statemachine.MustNew(Constructed,
		statemachine.WithTransition(Constructed, Validating, Start,
			statemachine.WithGuard(func(statemachine.State, statemachine.Event) bool { return allowed }),
			statemachine.WithAction(func(from, to statemachine.State, _ statemachine.Event) error {
				trail = append(trail, from.Name()+"->"+to.Name())
				return nil
			}),
		),
		statemachine.WithTransition(Validating, Valid, Pass,
			statemachine.WithAction(func(statemachine.State, statemachine.State, statemachine.Event) error {
				return errors.New("boom")
			}),
		),
	)

	err := m.Fire(Start)
	assert.True(t, statemachine.IsTransitionRejectedError(err))
	assert.False(t, m.CanFire(Start))

	allowed = true
	require.NoError(t, m.Fire(Start))
	assert.Equal(t, []string{"constructed->validating"}, trail)

	err = m.Fire(Pass)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action failed: boom")
	assert.True(t, m.Is(Validating), "failed action keeps the state")
}

func TestMachine_Listener(t *testing.T) {
	t.Parallel()

	var seen []string
	m := lifecycle(statemachine.WithListener(func(from, to statemachine.State, ev statemachine.Event) {
		seen = append(seen, from.Name()+"-"+ev.Name()+"->"+to.Name())
	}))

	require.NoError(t, m.Fire(Start))
	require.NoError(t, m.Fire(Pass))
	assert.Equal(t, []string{"constructed-start->validating", "validating-pass->valid"}, seen)
}

func TestMachine_Concurrent(t *testing.T) {
	t.Parallel()

	m := lifecycle()
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Fire(Start)
			_ = m.CanFire(Pass)
			_ = m.Current()
		}()
	}
	wg.Wait()
	assert.True(t, m.Is(Validating))
}
