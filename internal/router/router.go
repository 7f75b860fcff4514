// Package router maps URL fragments to views. Routes are a data-driven
// table: each entry names its view, its access gates, and the side effects
// to run when the view is entered.
package router

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hrportal/employee-portal/internal"
	"github.com/hrportal/employee-portal/internal/notify"
)

// Route names. Empty fragments resolve to RouteHome.
const (
	RouteHome        = "home"
	RouteRegister    = "register"
	RouteVerifyEmail = "verify-email"
	RouteLogin       = "login"
	RouteProfile     = "profile"
	RouteEmployees   = "employees"
	RouteDepartments = "departments"
	RouteAccounts    = "accounts"
	RouteRequests    = "requests"
)

// Redirect targets for failed gates. Neither is gated itself, so a
// navigation triggers at most one redirect.
const (
	loginFragment = "#/login"
	homeFragment  = "#/"
)

// EffectFunc is a view-specific side effect run when a route is entered,
// before the view renders (e.g. consuming a one-shot marker).
type EffectFunc func(ctx context.Context) error

// RenderFunc is the render callback for a list-backed view. Callbacks take
// no arguments beyond the context; they read the store themselves.
type RenderFunc func(ctx context.Context) error

type Route struct {
	Name         string
	ViewID       string
	RequireAuth  bool
	RequireAdmin bool
	OnEnter      EffectFunc
	Render       RenderFunc
}

// Session is the slice of session state the router consults for its gates.
type Session interface {
	Authenticated() bool
	IsAdmin() bool
}

type Router struct {
	table      map[string]Route
	session    Session
	notifier   notify.Notifier
	logger     *slog.Logger
	fragment   string
	activeView string
}

func New(session Session, notifier notify.Notifier, logger *slog.Logger) *Router {
	return &Router{
		table:    make(map[string]Route),
		session:  session,
		notifier: notifier,
		logger:   logger,
	}
}

func (r *Router) Handle(route Route) {
	r.table[route.Name] = route
}

// Fragment returns the externally visible routing state, written back on
// every navigation including redirects.
func (r *Router) Fragment() string {
	return r.fragment
}

// ActiveView returns the view shown by the last completed transition, or
// empty between transitions.
func (r *Router) ActiveView() string {
	return r.activeView
}

// ParseFragment extracts the route name from a URL fragment. Empty or
// bare-slash fragments resolve to the home route.
func ParseFragment(fragment string) string {
	name := strings.TrimPrefix(fragment, "#")
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return RouteHome
	}
	return name
}

// Navigate runs one transition of the routing state machine:
// deactivate everything, apply the auth and admin gates (redirecting on
// failure), resolve the route, run its entry effect and render callback,
// then activate the view. Unrecognized routes fall back to home.
func (r *Router) Navigate(ctx context.Context, fragment string) {
	r.fragment = fragment
	r.activeView = ""

	name := ParseFragment(fragment)
	route, ok := r.table[name]
	if !ok {
		route = r.table[RouteHome]
	}

	if route.RequireAuth && !r.session.Authenticated() {
		r.logger.Debug("route requires authentication", "route", route.Name)
		r.notifier.Notify(ctx, internal.ErrLoginRequired.Message, internal.ErrLoginRequired.Severity)
		r.Navigate(ctx, loginFragment)
		return
	}

	if route.RequireAdmin && !r.session.IsAdmin() {
		r.logger.Debug("route requires admin", "route", route.Name)
		r.notifier.Notify(ctx, internal.ErrAdminOnly.Message, internal.ErrAdminOnly.Severity)
		r.Navigate(ctx, homeFragment)
		return
	}

	if route.OnEnter != nil {
		if err := route.OnEnter(ctx); err != nil {
			r.logger.Error("route entry effect failed", "route", route.Name, "error", err)
			r.notifier.Notify(ctx, err.Error(), internal.SeverityFor(err))
		}
	}

	if route.Render != nil {
		if err := route.Render(ctx); err != nil {
			r.logger.Error("view render failed", "route", route.Name, "error", err)
			r.notifier.Notify(ctx, err.Error(), internal.SeverityFor(err))
		}
	}

	r.activeView = route.ViewID
	r.logger.Debug("view activated",
		"route", route.Name,
		"view", route.ViewID,
		"principal", internal.PrincipalEmailFromContext(ctx))
}
