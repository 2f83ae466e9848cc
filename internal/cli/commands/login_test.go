package commands

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/libhub-dev/libhub/internal/cli/store"
)

// useMemoryStore swaps the keyring out for the duration of a test.
func useMemoryStore(t *testing.T) *store.MemoryStore {
	t.Helper()

	mem := store.NewMemoryStore()
	previous := newStore
	newStore = func(host string) (store.Store, error) {
		return mem, nil
	}
	t.Cleanup(func() { newStore = previous })
	return mem
}

// mockAPIServer serves the login endpoint with a single valid credential
// pair.
func mockAPIServer(t *testing.T, email, password, token string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if req.Email != email || req.Password != password {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "Invalid email or password"}`))
			return
		}

		json.NewEncoder(w).Encode(map[string]any{
			"accessToken": token,
			"user": map[string]any{
				"id":       int64(7),
				"email":    req.Email,
				"fullName": "Test Member",
				"role":     "MEMBER",
				"status":   "ACTIVE",
			},
		})
	}))
}

func TestLoginCommand_Structure(t *testing.T) {
	cmd := NewLoginCmd()

	if cmd.Use != "login" {
		t.Errorf("expected Use to be 'login', got %s", cmd.Use)
	}
	if cmd.Flags().Lookup("email") == nil {
		t.Error("expected --email flag to exist")
	}
	if cmd.Flags().Lookup("password") == nil {
		t.Error("expected --password flag to exist")
	}
}

func TestLoginCommand_SuccessfulLogin(t *testing.T) {
	srv := mockAPIServer(t, "reader@example.com", "password123", "token-abc")
	defer srv.Close()

	mem := useMemoryStore(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LIBHUB_SERVER", srv.URL)

	if err := runLogin("reader@example.com", "password123"); err != nil {
		t.Fatalf("runLogin: %v", err)
	}

	cred, ok := mem.Read()
	if !ok || cred != "token-abc" {
		t.Errorf("expected stored credential token-abc, got %q (present=%v)", cred, ok)
	}
	profile, ok := mem.ReadProfile()
	if !ok {
		t.Fatal("expected stored profile after login")
	}
	if profile.Email != "reader@example.com" || profile.FullName != "Test Member" {
		t.Errorf("unexpected profile: %+v", profile)
	}
}

func TestLoginCommand_BadCredentials(t *testing.T) {
	srv := mockAPIServer(t, "reader@example.com", "password123", "token-abc")
	defer srv.Close()

	mem := useMemoryStore(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LIBHUB_SERVER", srv.URL)

	err := runLogin("reader@example.com", "wrong-password")
	if err == nil {
		t.Fatal("expected error for wrong password, got nil")
	}
	if !strings.Contains(err.Error(), "Invalid email or password") {
		t.Errorf("expected the server message to surface, got %q", err.Error())
	}

	if _, ok := mem.Read(); ok {
		t.Error("no credential should be stored after a failed login")
	}
}

func TestLoginCommand_MissingEmail(t *testing.T) {
	t.Setenv("LIBHUB_EMAIL", "")
	t.Setenv("LIBHUB_PASSWORD", "")

	err := runLogin("", "password123")
	if err == nil {
		t.Fatal("expected error when email is missing, got nil")
	}

	expectedError := "email is required (use --email flag or LIBHUB_EMAIL env var)"
	if err.Error() != expectedError {
		t.Errorf("expected error %q, got %q", expectedError, err.Error())
	}
}

func TestLoginCommand_InvalidEmail(t *testing.T) {
	err := runLogin("not-an-email", "password123")
	if err == nil {
		t.Fatal("expected error for malformed email, got nil")
	}
}

func TestLoginCommand_EnvCredentials(t *testing.T) {
	srv := mockAPIServer(t, "ci@example.com", "ci-password", "ci-token")
	defer srv.Close()

	mem := useMemoryStore(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LIBHUB_SERVER", srv.URL)
	t.Setenv("LIBHUB_EMAIL", "ci@example.com")
	t.Setenv("LIBHUB_PASSWORD", "ci-password")

	if err := runLogin("", ""); err != nil {
		t.Fatalf("runLogin with env credentials: %v", err)
	}

	if cred, ok := mem.Read(); !ok || cred != "ci-token" {
		t.Errorf("expected stored credential ci-token, got %q (present=%v)", cred, ok)
	}
}
