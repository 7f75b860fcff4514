package portal

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hrportal/employee-portal/internal/auth"
)

// runShell is the interactive front end. Navigation commands feed the
// router exactly like fragment changes would in a browser; workflow
// commands collect form input and invoke the auth service. Handler errors
// are already surfaced as notifications, so the loop ignores them.
func (a *App) runShell(ctx context.Context) error {
	for {
		fmt.Fprintf(a.out, "portal %s> ", a.Router.Fragment())

		line, err := a.reader.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch {
		case cmd == "help":
			a.printHelp()

		case strings.HasPrefix(cmd, "#/"):
			a.Router.Navigate(ctx, cmd)

		case cmd == "go":
			if len(parts) < 2 {
				fmt.Fprintln(a.out, "usage: go <route>")
				continue
			}
			a.Router.Navigate(ctx, "#/"+strings.TrimPrefix(parts[1], "#/"))

		case cmd == "register":
			dto := auth.RegisterDTO{
				FirstName: a.prompt("First name: "),
				LastName:  a.prompt("Last name: "),
				Email:     a.prompt("Email: "),
				Password:  a.prompt("Password: "),
			}
			_ = a.Auth.Register(ctx, dto)

		case cmd == "verify":
			_ = a.Auth.Verify(ctx)

		case cmd == "login":
			dto := auth.LoginDTO{
				Email:    a.prompt("Email: "),
				Password: a.prompt("Password: "),
			}
			_ = a.Auth.Login(ctx, dto)

		case cmd == "logout":
			_ = a.Auth.Logout(ctx)

		case cmd == "whoami":
			if a.Session.Authenticated() {
				fmt.Fprintf(a.out, "%s (%s)\n", a.Session.DisplayName(), a.Session.Principal().Email)
			} else {
				fmt.Fprintln(a.out, "not logged in")
			}

		case cmd == "exit", cmd == "quit":
			fmt.Fprintln(a.out, "Bye!")
			return nil

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) prompt(label string) string {
	fmt.Fprint(a.out, label)
	line, err := a.reader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, "Navigation: #/<route> or go <route> (home, register, verify-email, login, profile, employees, departments, accounts, requests)")
	if a.Session.Authenticated() {
		fmt.Fprintln(a.out, "Commands: whoami, logout, help, exit")
	} else {
		fmt.Fprintln(a.out, "Commands: register, verify, login, whoami, help, exit")
	}
}
