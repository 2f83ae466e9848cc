package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/libhub-dev/libhub/internal/cli/client"
	"github.com/libhub-dev/libhub/internal/cli/config"
	"github.com/libhub-dev/libhub/internal/cli/events"
	"github.com/libhub-dev/libhub/internal/cli/guard"
	"github.com/libhub-dev/libhub/internal/cli/session"
	"github.com/libhub-dev/libhub/internal/cli/store"
)

// newStore builds the session store for a server host. Swapped out in tests
// where the OS keyring is unavailable.
var newStore = func(host string) (store.Store, error) {
	return store.NewKeyringStore(host)
}

// activeRoute is the route of the command currently running. The shell's
// invalidation listener uses it as the return target.
var activeRoute = guard.Home

// ActiveRoute returns the route of the command currently running.
func ActiveRoute() guard.Route {
	return activeRoute
}

// cmdEnv bundles what a command run needs: resolved config, API client and
// the rehydrated session.
type cmdEnv struct {
	cfg  *config.Config
	api  *client.Client
	sess *session.Session
}

func newEnv() (*cmdEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	st, err := newStore(cfg.Host())
	if err != nil {
		return nil, err
	}

	api := client.New(cfg.ServerURL, st, events.Default)
	return &cmdEnv{
		cfg:  cfg,
		api:  api,
		sess: session.New(api, st),
	}, nil
}

// ensureRoute records the route and enforces its access requirements. The
// returned bool says whether the command may proceed: a login redirect is
// an error, the member-on-admin-route downgrade is a printed notice and a
// quiet stop.
func (e *cmdEnv) ensureRoute(route guard.Route) (bool, error) {
	activeRoute = route

	switch d := guard.Decide(route, e.sess); d.Action {
	case guard.RedirectLogin:
		return false, fmt.Errorf("login required. Run 'libhub login', then retry (return to %s)", d.ReturnTo)
	case guard.RedirectHome:
		fmt.Println("Administrator access required. Taking you back home.")
		return false, nil
	}

	return true, nil
}

// currentProfile returns the cached profile, reconciling it with the server
// first when nothing is cached yet.
func (e *cmdEnv) currentProfile() (*store.Profile, error) {
	if p := e.sess.Profile(); p != nil {
		return p, nil
	}
	if p := e.sess.FetchUser(cmdContext()); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("not authenticated. Please run 'libhub login' first")
}

func cmdContext() context.Context {
	return context.Background()
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// strOrDash renders optional response fields in tables.
func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
