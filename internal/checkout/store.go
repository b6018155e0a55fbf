package checkout

import "sync"

// Store keeps per-session wizard state across requests.
type Store interface {
	Load(token string) (*State, error)
	Save(token string, st *State) error
	Clear(token string) error
}

type InMemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*State
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*State)}
}

// Load hands out a deep copy so callers can mutate without racing other
// requests on the same session; mutations only take effect through Save.
func (s *InMemoryStore) Load(token string) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.sessions[token]; ok {
		return st.clone(), nil
	}
	return NewState(), nil
}

func (s *InMemoryStore) Save(token string, st *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = st.clone()
	return nil
}

func (s *InMemoryStore) Clear(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}
