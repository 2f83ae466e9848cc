// Package session holds the in-memory, observable representation of "who
// is logged in", kept in sync with the persistent store.
package session

import (
	"context"
	"sync"

	"github.com/libhub-dev/libhub/internal/cli/client"
	"github.com/libhub-dev/libhub/internal/cli/store"
)

// Session is the live copy of the persisted session. It is rehydrated from
// the store exactly once at construction; afterwards the store mirrors it.
type Session struct {
	mu         sync.Mutex
	api        *client.Client
	store      store.Store
	credential *string
	profile    *store.Profile
	subs       []func()
}

// New rehydrates a session from the store.
func New(api *client.Client, st store.Store) *Session {
	s := &Session{api: api, store: st}
	if token, ok := st.Read(); ok {
		s.credential = &token
	}
	if profile, ok := st.ReadProfile(); ok && s.profile == nil {
		s.profile = profile
	}
	return s
}

// Subscribe registers fn to run after every state change.
func (s *Session) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Session) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential != nil
}

func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile != nil && s.profile.Role == store.RoleAdmin
}

// Profile returns a copy of the cached profile, or nil when logged out.
// The copy is a stale snapshot until FetchUser has reconciled it.
func (s *Session) Profile() *store.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// Login authenticates and, on success, sets and persists both the
// credential and the profile. On failure the session is left untouched and
// the request error propagates unchanged.
func (s *Session) Login(ctx context.Context, email, password string) (*store.Profile, error) {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	profile := profileFromUser(resp.User)

	s.mu.Lock()
	token := resp.AccessToken
	s.credential = &token
	s.profile = profile
	err = s.store.Write(&token, profile)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.notify()
	p := *profile
	return &p, nil
}

// Logout clears the session. Calling it when already logged out is a no-op.
func (s *Session) Logout() error {
	s.mu.Lock()
	if s.credential == nil && s.profile == nil {
		s.mu.Unlock()
		return nil
	}
	s.credential = nil
	s.profile = nil
	err := s.store.Write(nil, nil)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notify()
	return nil
}

// FetchUser reconciles the cached profile against server truth. Without a
// credential it returns nil without a network call. Any failure of the
// underlying call, authorization or otherwise, escalates to a full logout.
func (s *Session) FetchUser(ctx context.Context) *store.Profile {
	s.mu.Lock()
	if s.credential == nil {
		s.mu.Unlock()
		return nil
	}
	token := *s.credential
	s.mu.Unlock()

	user, err := s.api.Me(ctx)
	if err != nil || user == nil {
		_ = s.Logout()
		return nil
	}

	profile := profileFromUser(*user)

	s.mu.Lock()
	s.profile = profile
	writeErr := s.store.Write(&token, profile)
	s.mu.Unlock()
	if writeErr != nil {
		return nil
	}

	s.notify()
	p := *profile
	return &p
}

func profileFromUser(u client.User) *store.Profile {
	return &store.Profile{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
	}
}
