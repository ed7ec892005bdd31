package view

import "sync"

// Session is one page session: an id and the screen state behind a lock.
// Hosts that receive events concurrently go through it so that every event
// of one screen is applied in order.
type Session struct {
	ID string

	mu    sync.Mutex
	state State
}

func NewSession(id string) *Session {
	return &Session{ID: id, state: New()}
}

func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Update applies fn to the current state and stores the result.
func (s *Session) Update(fn func(State) State) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fn(s.state)
	return s.state
}

// Submit edits the prompt and submits it as one step.
func (s *Session) Submit(prompt string) (State, Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, sub, err := s.state.EditPrompt(prompt).Submit()
	if err != nil {
		// the edit still counts, only the submit is refused
		s.state = s.state.EditPrompt(prompt)
		return s.state, Submission{}, err
	}
	s.state = next
	return s.state, sub, nil
}
