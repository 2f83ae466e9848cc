package commands

import (
	"strings"
	"testing"

	"github.com/libhub-dev/libhub/internal/cli/guard"
	"github.com/libhub-dev/libhub/internal/cli/store"
)

func TestEnsureRoute_AnonymousOnProtectedRoute(t *testing.T) {
	useMemoryStore(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LIBHUB_SERVER", "http://localhost:8080")

	e, err := newEnv()
	if err != nil {
		t.Fatalf("newEnv: %v", err)
	}

	ok, err := e.ensureRoute(guard.Loans)
	if ok {
		t.Error("anonymous user should not pass the loans route")
	}
	if err == nil || !strings.Contains(err.Error(), "libhub login") {
		t.Errorf("expected a login hint, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), guard.Loans.Path) {
		t.Errorf("expected the return target %s in the error, got %v", guard.Loans.Path, err)
	}
	if ActiveRoute().Name != guard.Loans.Name {
		t.Errorf("active route should record the attempted route, got %s", ActiveRoute().Name)
	}
}

func TestEnsureRoute_MemberOnAdminRoute(t *testing.T) {
	mem := useMemoryStore(t)
	token := "member-token"
	mem.Write(&token, &store.Profile{ID: 1, Email: "m@example.com", FullName: "Member", Role: "MEMBER"})
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LIBHUB_SERVER", "http://localhost:8080")

	e, err := newEnv()
	if err != nil {
		t.Fatalf("newEnv: %v", err)
	}

	// The downgrade is a notice, not an error.
	ok, err := e.ensureRoute(guard.Admin)
	if ok {
		t.Error("member should not pass the admin route")
	}
	if err != nil {
		t.Errorf("the home downgrade is silent, got error %v", err)
	}
}

func TestEnsureRoute_AdminOnAdminRoute(t *testing.T) {
	mem := useMemoryStore(t)
	token := "admin-token"
	mem.Write(&token, &store.Profile{ID: 2, Email: "a@example.com", FullName: "Admin", Role: store.RoleAdmin})
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LIBHUB_SERVER", "http://localhost:8080")

	e, err := newEnv()
	if err != nil {
		t.Fatalf("newEnv: %v", err)
	}

	ok, err := e.ensureRoute(guard.AdminUsers)
	if !ok || err != nil {
		t.Errorf("admin should pass the admin route, got ok=%v err=%v", ok, err)
	}
}
