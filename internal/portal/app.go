// Package portal wires the substrate, store, session, router, workflows,
// and views into a runnable application with a small interactive shell.
package portal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/hrportal/employee-portal/internal"
	"github.com/hrportal/employee-portal/internal/auth"
	"github.com/hrportal/employee-portal/internal/core/events"
	"github.com/hrportal/employee-portal/internal/identity"
	"github.com/hrportal/employee-portal/internal/notify"
	"github.com/hrportal/employee-portal/internal/router"
	"github.com/hrportal/employee-portal/internal/session"
	"github.com/hrportal/employee-portal/internal/storage"
	"github.com/hrportal/employee-portal/internal/store"
	"github.com/hrportal/employee-portal/internal/views"
	"github.com/hrportal/employee-portal/pkg/logger"
)

type App struct {
	Config   *internal.Config
	Logger   *slog.Logger
	Bus      *events.EventBus
	Store    *store.Repository
	Session  *session.Manager
	Router   *router.Router
	Auth     *auth.Service
	Renderer *views.Renderer

	out    io.Writer
	reader *bufio.Reader
}

func NewApp(cfg *internal.Config, substrate storage.Substrate, in io.Reader, out io.Writer, logger *slog.Logger) *App {
	bus := events.NewEventBus(logger)
	notifier := notify.NewBusNotifier(bus, logger)

	seed := store.DefaultSeedOptions()
	if cfg != nil && cfg.Seed.AdminEmail != "" {
		seed = store.SeedOptions{
			AdminEmail:     cfg.Seed.AdminEmail,
			AdminPassword:  cfg.Seed.AdminPassword,
			AdminFirstName: cfg.Seed.AdminFirstName,
			AdminLastName:  cfg.Seed.AdminLastName,
			Departments:    cfg.Seed.Departments,
		}
	}

	storeRepo := store.NewRepositoryWithSeed(substrate, seed, logger)
	sessionMgr := session.NewManager(substrate, storeRepo, logger)
	rt := router.New(sessionMgr, notifier, logger)
	renderer := views.NewRenderer(storeRepo, substrate, sessionMgr, out)
	authSvc := auth.NewService(storeRepo, substrate, sessionMgr, identity.NewUUIDGenerator(), notifier, rt, logger)

	app := &App{
		Config:   cfg,
		Logger:   logger,
		Bus:      bus,
		Store:    storeRepo,
		Session:  sessionMgr,
		Router:   rt,
		Auth:     authSvc,
		Renderer: renderer,
		out:      out,
		reader:   bufio.NewReader(in),
	}

	app.registerRoutes()
	app.subscribeToasts()
	return app
}

// registerRoutes builds the route table. Protected views require a
// principal; the three admin views additionally require the Admin role.
func (a *App) registerRoutes() {
	a.Router.Handle(router.Route{
		Name:   router.RouteHome,
		ViewID: "home-page",
		Render: a.Renderer.Home,
	})
	a.Router.Handle(router.Route{
		Name:   router.RouteRegister,
		ViewID: "register-page",
		Render: a.Renderer.RegisterForm,
	})
	a.Router.Handle(router.Route{
		Name:    router.RouteVerifyEmail,
		ViewID:  "verify-email-page",
		OnEnter: a.Renderer.VerifyEmailNotice,
	})
	a.Router.Handle(router.Route{
		Name:    router.RouteLogin,
		ViewID:  "login-page",
		OnEnter: a.Renderer.LoginBanner,
		Render:  a.Renderer.LoginForm,
	})
	a.Router.Handle(router.Route{
		Name:        router.RouteProfile,
		ViewID:      "profile-page",
		RequireAuth: true,
		Render:      a.Renderer.Profile,
	})
	a.Router.Handle(router.Route{
		Name:         router.RouteEmployees,
		ViewID:       "employees-page",
		RequireAuth:  true,
		RequireAdmin: true,
		Render:       a.Renderer.Employees,
	})
	a.Router.Handle(router.Route{
		Name:         router.RouteDepartments,
		ViewID:       "departments-page",
		RequireAuth:  true,
		RequireAdmin: true,
		Render:       a.Renderer.Departments,
	})
	a.Router.Handle(router.Route{
		Name:         router.RouteAccounts,
		ViewID:       "accounts-page",
		RequireAuth:  true,
		RequireAdmin: true,
		Render:       a.Renderer.Accounts,
	})
	a.Router.Handle(router.Route{
		Name:        router.RouteRequests,
		ViewID:      "requests-page",
		RequireAuth: true,
		Render:      a.Renderer.Requests,
	})
}

// subscribeToasts prints every notification the workflows raise, the way a
// browser front end would pop a toast.
func (a *App) subscribeToasts() {
	a.Bus.Subscribe(notify.EventTypeNotification, func(ctx context.Context, event events.Event) error {
		data, ok := event.Payload().(map[string]interface{})
		if !ok {
			return nil
		}
		fmt.Fprintf(a.out, "[%v] %v\n", data["severity"], data["message"])
		return nil
	})
}

// Run restores any persisted session, navigates to the initial fragment,
// and hands control to the interactive loop.
func (a *App) Run(ctx context.Context) error {
	ctx = logger.Attach(ctx, a.Logger)

	if err := a.Session.Restore(ctx); err != nil {
		a.Logger.Error("session restore failed", "error", err)
	}
	if a.Session.Authenticated() {
		fmt.Fprintf(a.out, "Welcome back, %s.\n", a.Session.DisplayName())
	}

	a.Router.Navigate(ctx, "#/")
	return a.runShell(ctx)
}
