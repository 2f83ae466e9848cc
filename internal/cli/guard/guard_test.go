package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSession struct {
	authenticated bool
	admin         bool
}

func (f fakeSession) IsAuthenticated() bool { return f.authenticated }
func (f fakeSession) IsAdmin() bool         { return f.admin }

func TestDecide_AdminRouteUnauthenticated(t *testing.T) {
	d := Decide(AdminBooks, fakeSession{})

	assert.Equal(t, RedirectLogin, d.Action)
	assert.Equal(t, Login.Path, d.RedirectTo)
	assert.Equal(t, AdminBooks.Path, d.ReturnTo)
}

func TestDecide_AdminRouteAsMember(t *testing.T) {
	d := Decide(Admin, fakeSession{authenticated: true})

	assert.Equal(t, RedirectHome, d.Action)
	assert.Equal(t, Home.Path, d.RedirectTo)
	assert.Empty(t, d.ReturnTo)
}

func TestDecide_AdminRouteAsAdmin(t *testing.T) {
	d := Decide(AdminUsers, fakeSession{authenticated: true, admin: true})

	assert.Equal(t, Allow, d.Action)
}

func TestDecide_AuthRouteUnauthenticated(t *testing.T) {
	d := Decide(Loans, fakeSession{})

	assert.Equal(t, RedirectLogin, d.Action)
	assert.Equal(t, Login.Path, d.RedirectTo)
	assert.Equal(t, Loans.Path, d.ReturnTo)
}

func TestDecide_AuthRouteAuthenticated(t *testing.T) {
	d := Decide(Reviews, fakeSession{authenticated: true})

	assert.Equal(t, Allow, d.Action)
}

func TestDecide_PublicRouteAlwaysAllowed(t *testing.T) {
	for _, s := range []fakeSession{
		{},
		{authenticated: true},
		{authenticated: true, admin: true},
	} {
		assert.Equal(t, Allow, Decide(Books, s).Action)
		assert.Equal(t, Allow, Decide(Home, s).Action)
	}
}

func TestDecide_FreshEvaluationAfterLogout(t *testing.T) {
	s := &fakeSession{authenticated: true}
	assert.Equal(t, Allow, Decide(Loans, *s).Action)

	// Session changed between attempts; the guard must not cache.
	s.authenticated = false
	assert.Equal(t, RedirectLogin, Decide(Loans, *s).Action)
}
