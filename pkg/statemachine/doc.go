// Package statemachine provides a small finite state machine.
//
// States and events are minimal interfaces; StringState and StringEvent cover
// the common case. Transitions are declared up front with functional options,
// optionally gated by guards and accompanied by actions, and listeners observe
// each completed transition.
//
//	const (
//		Idle    = statemachine.StringState("idle")
//		Running = statemachine.StringState("running")
//		Start   = statemachine.StringEvent("start")
//	)
//
//	m := statemachine.MustNew(Idle,
//		statemachine.WithTransition(Idle, Running, Start),
//	)
//	if err := m.Fire(Start); err != nil {
//		// statemachine.IsNoTransitionAvailableError(err) or IsTransitionRejectedError(err)
//	}
//
// The form package drives each form instance through
// constructed, validating, valid and invalid with a Machine.
//
// Machine is safe for concurrent use. Listeners run after the lock is released.
package statemachine
