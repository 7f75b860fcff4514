// Package views is the reference rendering collaborator: one render
// callback per list-backed view, reading the store and writing aligned
// text to an io.Writer. Presentation stays deliberately thin.
package views

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/hrportal/employee-portal/internal/storage"
	"github.com/hrportal/employee-portal/internal/store"
)

// PrincipalSource is what the profile view needs from the session.
type PrincipalSource interface {
	Principal() *store.Account
}

type Renderer struct {
	store     *store.Repository
	substrate storage.Substrate
	session   PrincipalSource
	out       io.Writer
}

func NewRenderer(storeRepo *store.Repository, substrate storage.Substrate, session PrincipalSource, out io.Writer) *Renderer {
	return &Renderer{store: storeRepo, substrate: substrate, session: session, out: out}
}

func (r *Renderer) Home(ctx context.Context) error {
	fmt.Fprintln(r.out, "Welcome to the employee portal.")
	return nil
}

func (r *Renderer) RegisterForm(ctx context.Context) error {
	fmt.Fprintln(r.out, "Create an account with the `register` command.")
	return nil
}

// VerifyEmailNotice injects the pending email into the verify-email view.
func (r *Renderer) VerifyEmailNotice(ctx context.Context) error {
	email, present, err := r.substrate.Get(ctx, storage.UnverifiedEmailKey)
	if err != nil {
		return err
	}
	if present {
		fmt.Fprintf(r.out, "A verification email was sent to %s. Run `verify` to simulate clicking the link.\n", email)
	}
	return nil
}

// LoginBanner consumes the one-shot "just verified" marker and shows the
// success banner exactly once.
func (r *Renderer) LoginBanner(ctx context.Context) error {
	flag, present, err := r.substrate.Get(ctx, storage.EmailVerifiedKey)
	if err != nil {
		return err
	}
	if present && flag == "true" {
		fmt.Fprintln(r.out, "Your email has been verified. Please log in.")
		return r.substrate.Delete(ctx, storage.EmailVerifiedKey)
	}
	return nil
}

func (r *Renderer) LoginForm(ctx context.Context) error {
	fmt.Fprintln(r.out, "Log in with the `login` command.")
	return nil
}

func (r *Renderer) Profile(ctx context.Context) error {
	principal := r.session.Principal()
	if principal == nil {
		return nil
	}
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", principal.DisplayName())
	fmt.Fprintf(w, "Email:\t%s\n", principal.Email)
	fmt.Fprintf(w, "Role:\t%s\n", principal.Role)
	return w.Flush()
}

func (r *Renderer) Employees(ctx context.Context) error {
	db, err := r.store.Load(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tACCOUNT\tPOSITION\tDEPARTMENT\tHIRED")
	for _, e := range db.Employees {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.AccountID, e.Position, e.DepartmentID, e.HireDate)
	}
	return w.Flush()
}

func (r *Renderer) Departments(ctx context.Context) error {
	db, err := r.store.Load(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
	for _, d := range db.Departments {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.ID, d.Name, d.Description)
	}
	return w.Flush()
}

func (r *Renderer) Accounts(ctx context.Context) error {
	db, err := r.store.Load(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tVERIFIED")
	for _, a := range db.Accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", a.ID, a.DisplayName(), a.Email, a.Role, a.Verified)
	}
	return w.Flush()
}

func (r *Renderer) Requests(ctx context.Context) error {
	db, err := r.store.Load(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tACCOUNT\tTYPE\tSTATUS")
	for _, req := range db.Requests {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", req.ID, req.AccountID, req.Type, req.Status)
	}
	return w.Flush()
}
