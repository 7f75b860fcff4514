// Package store owns the persisted portal database: a single serialized
// blob holding accounts, departments, employees, and requests. The blob is
// the only source of truth; loading replaces the whole value, never merges.
package store

import (
	"encoding/json"
	"strings"
)

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// Account is created by registration (unverified) and flipped to verified
// by the verification workflow. Passwords are stored in plain text: this is
// a demo flow, not a real authentication scheme.
type Account struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
}

func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a *Account) DisplayName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Employee struct {
	ID           string `json:"id"`
	AccountID    string `json:"accountId"`
	Position     string `json:"position"`
	DepartmentID string `json:"departmentId"`
	HireDate     string `json:"hireDate"`
}

type Request struct {
	ID        string `json:"id"`
	AccountID string `json:"accountId"`
	Type      string `json:"type"`
	Status    string `json:"status"`
}

type Database struct {
	Accounts    []Account    `json:"accounts"`
	Departments []Department `json:"departments"`
	Employees   []Employee   `json:"employees"`
	Requests    []Request    `json:"requests"`
}

// NormalizeEmail is the canonical form used for uniqueness checks and
// session token lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindAccountByEmail returns a pointer into the Accounts slice for the
// account with the given email (case-insensitive), or nil.
func (d *Database) FindAccountByEmail(email string) *Account {
	normalized := NormalizeEmail(email)
	for i := range d.Accounts {
		if NormalizeEmail(d.Accounts[i].Email) == normalized {
			return &d.Accounts[i]
		}
	}
	return nil
}

// Parse turns a raw substrate value into a Database. Absent or unparsable
// input falls back to the seed; the second return reports whether that
// fallback happened so callers can persist the seed immediately.
func Parse(raw string, present bool) (*Database, bool) {
	return ParseWith(raw, present, DefaultSeedOptions())
}

func ParseWith(raw string, present bool, seed SeedOptions) (*Database, bool) {
	if !present {
		return SeedWith(seed), true
	}

	var db Database
	if err := json.Unmarshal([]byte(raw), &db); err != nil {
		return SeedWith(seed), true
	}
	return &db, false
}

// Serialize renders the database to the string form stored in the substrate.
func Serialize(db *Database) (string, error) {
	raw, err := json.Marshal(db)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
