package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libhub-dev/libhub/internal/cli/client"
	"github.com/libhub-dev/libhub/internal/cli/events"
	"github.com/libhub-dev/libhub/internal/cli/store"
)

type apiState struct {
	loginStatus int
	meStatus    int
	meCalls     int
}

func newTestSession(t *testing.T, api *apiState) (*Session, *store.MemoryStore, *events.Broadcaster) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			if api.loginStatus != 0 && api.loginStatus != http.StatusOK {
				w.WriteHeader(api.loginStatus)
				_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
				return
			}
			_, _ = w.Write([]byte(`{
				"accessToken":"fresh-token",
				"user":{"id":5,"email":"m@example.com","fullName":"Mai","role":"ADMIN","status":"ACTIVE"}
			}`))
		case "/api/auth/me":
			api.meCalls++
			if api.meStatus != 0 && api.meStatus != http.StatusOK {
				w.WriteHeader(api.meStatus)
				_, _ = w.Write([]byte(`{"message":"token expired"}`))
				return
			}
			_, _ = w.Write([]byte(`{"id":5,"email":"m@example.com","fullName":"Mai Renamed","role":"MEMBER","status":"ACTIVE"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	st := store.NewMemoryStore()
	bc := &events.Broadcaster{}
	return New(client.New(srv.URL, st, bc), st), st, bc
}

func TestSession_RehydratesFromStore(t *testing.T) {
	st := store.NewMemoryStore()
	cred := "persisted-token"
	require.NoError(t, st.Write(&cred, &store.Profile{ID: 2, Role: store.RoleAdmin}))

	s := New(client.New("http://unused", st, &events.Broadcaster{}), st)

	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.IsAdmin())
	require.NotNil(t, s.Profile())
	assert.Equal(t, int64(2), s.Profile().ID)
}

func TestSession_StartsAnonymous(t *testing.T) {
	s, _, _ := newTestSession(t, &apiState{})

	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	assert.Nil(t, s.Profile())
}

func TestSession_LoginSetsAndPersists(t *testing.T) {
	s, st, _ := newTestSession(t, &apiState{})

	var changes int
	s.Subscribe(func() { changes++ })

	profile, err := s.Login(context.Background(), "m@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Mai", profile.FullName)

	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.IsAdmin())
	assert.Equal(t, 1, changes)

	cred, ok := st.Read()
	require.True(t, ok)
	assert.Equal(t, "fresh-token", cred)
	stored, ok := st.ReadProfile()
	require.True(t, ok)
	assert.Equal(t, store.RoleAdmin, stored.Role)
}

func TestSession_LoginFailureLeavesStateUntouched(t *testing.T) {
	s, st, _ := newTestSession(t, &apiState{loginStatus: http.StatusBadRequest})

	_, err := s.Login(context.Background(), "m@example.com", "wrong")

	var reqErr *client.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "invalid credentials", reqErr.Message)

	assert.False(t, s.IsAuthenticated())
	_, ok := st.Read()
	assert.False(t, ok)
}

func TestSession_LogoutIsIdempotent(t *testing.T) {
	s, st, _ := newTestSession(t, &apiState{})

	_, err := s.Login(context.Background(), "m@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, s.Logout())
	assert.False(t, s.IsAuthenticated())
	_, ok := st.Read()
	assert.False(t, ok)
	_, ok = st.ReadProfile()
	assert.False(t, ok)

	// Second logout changes nothing and raises no error.
	require.NoError(t, s.Logout())
	assert.False(t, s.IsAuthenticated())
}

func TestSession_FetchUserWithoutCredentialSkipsNetwork(t *testing.T) {
	api := &apiState{}
	s, _, _ := newTestSession(t, api)

	assert.Nil(t, s.FetchUser(context.Background()))
	assert.Equal(t, 0, api.meCalls)
}

func TestSession_FetchUserReplacesCachedProfile(t *testing.T) {
	api := &apiState{}
	s, st, _ := newTestSession(t, api)

	_, err := s.Login(context.Background(), "m@example.com", "secret")
	require.NoError(t, err)
	assert.True(t, s.IsAdmin())

	// The server has since demoted the user; FetchUser must reconcile.
	profile := s.FetchUser(context.Background())
	require.NotNil(t, profile)
	assert.Equal(t, "Mai Renamed", profile.FullName)
	assert.False(t, s.IsAdmin())

	stored, ok := st.ReadProfile()
	require.True(t, ok)
	assert.Equal(t, "MEMBER", stored.Role)
}

func TestSession_FetchUserFailureEscalatesToLogout(t *testing.T) {
	api := &apiState{meStatus: http.StatusInternalServerError}
	s, st, _ := newTestSession(t, api)

	_, err := s.Login(context.Background(), "m@example.com", "secret")
	require.NoError(t, err)

	assert.Nil(t, s.FetchUser(context.Background()))
	assert.False(t, s.IsAuthenticated())
	_, ok := st.Read()
	assert.False(t, ok)
}

func TestSession_ExpiredCredentialEndToEnd(t *testing.T) {
	api := &apiState{meStatus: http.StatusUnauthorized}
	s, st, bc := newTestSession(t, api)

	_, err := s.Login(context.Background(), "m@example.com", "secret")
	require.NoError(t, err)

	var signals int
	bc.Subscribe(func() { signals++ })

	// The 401 clears the store and broadcasts inside the pipeline, then
	// FetchUser escalates to a full logout.
	assert.Nil(t, s.FetchUser(context.Background()))

	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	_, ok := st.Read()
	assert.False(t, ok)
	assert.Equal(t, 1, signals)
}
