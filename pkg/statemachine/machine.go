package statemachine

import (
	"fmt"
	"sync"
)

// Machine is a thread-safe in-memory state machine.
// Transitions are indexed as [fromState][event][]Transition.
type Machine struct {
	initial     State
	current     State
	transitions map[string]map[string][]Transition
	listeners   []Listener
	mu          sync.RWMutex
}

func newMachine(initial State) *Machine {
	return &Machine{
		initial:     initial,
		current:     initial,
		transitions: make(map[string]map[string][]Transition),
	}
}

func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the machine is in state.
func (m *Machine) Is(state State) bool {
	if state == nil {
		return false
	}
	return m.Current().Name() == state.Name()
}

func (m *Machine) addTransition(t Transition) error {
	if t.From == nil || t.To == nil || t.Event == nil {
		return ErrInvalidTransition
	}

	from := t.From.Name()
	if _, ok := m.transitions[from]; !ok {
		m.transitions[from] = make(map[string][]Transition)
	}
	// Several transitions per from/event allow guard-based branching.
	m.transitions[from][t.Event.Name()] = append(m.transitions[from][t.Event.Name()], t)
	return nil
}

// Fire applies the first transition whose guards pass.
func (m *Machine) Fire(event Event) error {
	if event == nil {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	from := m.current
	t, err := m.find(event)
	if err != nil {
		m.mu.Unlock()
		return err
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(from, t.To, event); err != nil {
			m.mu.Unlock()
			return fmt.Errorf("action failed: %w", err)
		}
	}

	m.current = t.To
	listeners := m.listeners
	m.mu.Unlock()

	for _, l := range listeners {
		l(from, t.To, event)
	}
	return nil
}

func (m *Machine) CanFire(event Event) bool {
	if event == nil {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	_, err := m.find(event)
	return err == nil
}

// Reset returns the machine to its initial state without notifying listeners.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

// Must be called with lock held.
func (m *Machine) find(event Event) (*Transition, error) {
	from := m.current.Name()
	candidates := m.transitions[from][event.Name()]
	if len(candidates) == 0 {
		return nil, NewErrNoTransitionAvailable(from, event.Name())
	}

	for i, t := range candidates {
		if guardsPass(t.Guards, m.current, event) {
			return &candidates[i], nil
		}
	}
	return nil, NewErrTransitionRejected(from, event.Name())
}

func guardsPass(guards []Guard, from State, event Event) bool {
	for _, g := range guards {
		if g != nil && !g(from, event) {
			return false
		}
	}
	return true
}
