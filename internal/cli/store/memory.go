package store

import "sync"

// MemoryStore is an in-memory Store for tests, where the OS keyring is not
// available.
type MemoryStore struct {
	mu         sync.Mutex
	credential *string
	profile    *Profile
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Read() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.credential == nil {
		return "", false
	}
	return *s.credential, true
}

func (s *MemoryStore) ReadProfile() (*Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil, false
	}
	p := *s.profile
	return &p, true
}

func (s *MemoryStore) Write(credential *string, profile *Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if credential == nil {
		s.credential = nil
		s.profile = nil
		return nil
	}
	cred := *credential
	s.credential = &cred
	if profile == nil {
		s.profile = nil
		return nil
	}
	p := *profile
	s.profile = &p
	return nil
}
